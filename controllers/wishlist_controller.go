package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shopadmin/apperrors"
	"shopadmin/models"
	"shopadmin/repositories"
)

type WishlistController struct {
	users    repositories.UserRepository
	products repositories.ProductRepository
}

func NewWishlistController(users repositories.UserRepository, products repositories.ProductRepository) *WishlistController {
	return &WishlistController{users: users, products: products}
}

func (w *WishlistController) Add(c *gin.Context) {
	var input struct {
		Email     string `json:"email" binding:"required"`
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperrors.Validation("Email and productId are required"))
		return
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		fail(c, apperrors.Validation("Invalid product id"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.users.AddToWishlist(ctx, input.Email, productID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			fail(c, apperrors.NotFound("User not found"))
			return
		}
		fail(c, apperrors.Internal("adding to wishlist", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Get resolves the user's wishlist references into full product documents,
// preserving wishlist order and skipping products deleted since they were
// added.
func (w *WishlistController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := w.users.FindByEmail(ctx, c.Param("email"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			fail(c, apperrors.NotFound("User not found"))
			return
		}
		fail(c, apperrors.Internal("looking up user", err))
		return
	}

	resolved := make([]models.Product, 0, len(user.Wishlist))
	if len(user.Wishlist) > 0 {
		products, err := w.products.FindByIDs(ctx, user.Wishlist)
		if err != nil {
			fail(c, apperrors.Internal("resolving wishlist", err))
			return
		}
		byID := make(map[primitive.ObjectID]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}
		for _, id := range user.Wishlist {
			if p, ok := byID[id]; ok {
				resolved = append(resolved, p)
			}
		}
	}

	c.JSON(http.StatusOK, resolved)
}
