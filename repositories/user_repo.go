package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopadmin/models"
)

// UserRepository defines data access for the users collection. Lookups that
// match nothing return mongo.ErrNoDocuments; callers map that to their own
// error taxonomy.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	MarkLoggedIn(ctx context.Context, id primitive.ObjectID) error
	AddToWishlist(ctx context.Context, email string, productID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}
