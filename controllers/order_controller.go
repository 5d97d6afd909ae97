package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"shopadmin/apperrors"
	"shopadmin/models"
	"shopadmin/repositories"
)

type OrderController struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
	users    repositories.UserRepository
}

func NewOrderController(orders repositories.OrderRepository, products repositories.ProductRepository, users repositories.UserRepository) *OrderController {
	return &OrderController{orders: orders, products: products, users: users}
}

// Create places an order. Every referenced product must exist; the lookups
// run concurrently and any miss aborts before the order is written, so a
// partial order is never persisted.
func (o *OrderController) Create(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Products []struct {
			ProductID string `json:"productId" binding:"required"`
			Quantity  int    `json:"quantity"`
		} `json:"products" binding:"required,min=1,dive"`
		TotalAmount *float64 `json:"totalAmount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperrors.Validation("Email, products and totalAmount are required"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := o.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			fail(c, apperrors.NotFound("User not found"))
			return
		}
		fail(c, apperrors.Internal("looking up user", err))
		return
	}

	ids := make([]primitive.ObjectID, len(input.Products))
	for i, line := range input.Products {
		id, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			fail(c, apperrors.Validation("Invalid product id "+line.ProductID))
			return
		}
		ids[i] = id
	}

	items := make([]models.OrderItem, len(input.Products))
	g, gctx := errgroup.WithContext(ctx)
	for i := range input.Products {
		i := i
		g.Go(func() error {
			product, err := o.products.FindByID(gctx, ids[i])
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return apperrors.NotFound("Product not found: " + input.Products[i].ProductID)
				}
				return apperrors.Internal("looking up product", err)
			}
			items[i] = models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductPrice: product.Price,
				Quantity:     input.Products[i].Quantity,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail(c, err)
		return
	}

	// totalAmount is stored as sent by the client; it is not recomputed from
	// the snapshots.
	order := models.Order{
		UserID:      user.ID,
		Products:    items,
		TotalAmount: *input.TotalAmount,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := o.orders.Insert(ctx, &order); err != nil {
		fail(c, apperrors.Internal("creating order", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// List returns every order newest first, with each userId expanded to the
// owning user's email via one batched lookup.
func (o *OrderController) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := o.orders.FindAllNewestFirst(ctx)
	if err != nil {
		fail(c, apperrors.Internal("listing orders", err))
		return
	}

	seen := make(map[primitive.ObjectID]bool)
	userIDs := make([]primitive.ObjectID, 0)
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}

	emails := make(map[primitive.ObjectID]string, len(userIDs))
	if len(userIDs) > 0 {
		users, err := o.users.FindByIDs(ctx, userIDs)
		if err != nil {
			fail(c, apperrors.Internal("resolving order users", err))
			return
		}
		for _, u := range users {
			emails[u.ID] = u.Email
		}
	}

	views := make([]models.OrderUserView, 0, len(orders))
	for _, order := range orders {
		views = append(views, models.OrderUserView{
			ID:          order.ID,
			User:        models.OrderUser{ID: order.UserID, Email: emails[order.UserID]},
			Products:    order.Products,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, views)
}

func (o *OrderController) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, apperrors.Validation("Invalid order id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apperrors.Validation("Status is required"))
		return
	}

	status, err := models.ParseOrderStatus(input.Status)
	if err != nil {
		fail(c, apperrors.Validation("Status must be Pending, Shipped or Delivered"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := o.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			fail(c, apperrors.NotFound("Order not found"))
			return
		}
		fail(c, apperrors.Internal("updating order", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}
