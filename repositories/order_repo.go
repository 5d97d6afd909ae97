package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopadmin/models"
)

// OrderRepository defines data access for the orders collection. Orders are
// append-and-update only; nothing ever deletes one.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	// FindAllNewestFirst returns every order sorted by createdAt descending.
	FindAllNewestFirst(ctx context.Context) ([]models.Order, error)
	// UpdateStatus sets the status and returns the updated order, or
	// mongo.ErrNoDocuments when no order has that id.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
	// TotalRevenue sums totalAmount over all orders, 0 when there are none.
	TotalRevenue(ctx context.Context) (float64, error)
}
