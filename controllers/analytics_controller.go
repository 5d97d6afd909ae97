package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"shopadmin/apperrors"
	"shopadmin/models"
	"shopadmin/repositories"
)

type AnalyticsController struct {
	users    repositories.UserRepository
	products repositories.ProductRepository
	orders   repositories.OrderRepository
}

func NewAnalyticsController(users repositories.UserRepository, products repositories.ProductRepository, orders repositories.OrderRepository) *AnalyticsController {
	return &AnalyticsController{users: users, products: products, orders: orders}
}

// Get runs the five reads concurrently. Each is an independent query with no
// shared snapshot, so the fields are not guaranteed consistent with each
// other.
func (a *AnalyticsController) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		totalUsers    int64
		totalAdmins   int64
		totalProducts int64
		totalOrders   int64
		totalRevenue  float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalUsers, err = a.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalAdmins, err = a.users.CountByRole(gctx, models.RoleAdmin)
		return err
	})
	g.Go(func() (err error) {
		totalProducts, err = a.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalOrders, err = a.orders.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalRevenue, err = a.orders.TotalRevenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		fail(c, apperrors.Internal("computing analytics", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    totalUsers,
		"totalAdmins":   totalAdmins,
		"totalProducts": totalProducts,
		"totalOrders":   totalOrders,
		"totalRevenue":  totalRevenue,
	})
}
