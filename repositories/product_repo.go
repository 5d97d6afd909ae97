package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopadmin/models"
)

// ProductRepository defines data access for the products collection.
type ProductRepository interface {
	// FindAll returns every product, or only those in category when it is
	// non-empty.
	FindAll(ctx context.Context, category models.Category) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	// Delete is idempotent: deleting an id that matches nothing is not an
	// error.
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
