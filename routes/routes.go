package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"shopadmin/controllers"
	"shopadmin/middleware"
)

type Deps struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Wishlist  *controllers.WishlistController
	Orders    *controllers.OrderController
	Analytics *controllers.AnalyticsController
	JWTSecret []byte
	UploadDir string
	PublicDir string
}

func Register(r *gin.Engine, d Deps) {
	r.POST("/signup", d.Auth.Signup)
	r.POST("/login", d.Auth.Login)

	r.GET("/products", d.Products.List)
	r.POST("/products", d.Products.Create)
	r.DELETE("/products/:id", d.Products.Delete)

	r.POST("/wishlist", d.Wishlist.Add)
	r.GET("/wishlist/:email", d.Wishlist.Get)

	r.POST("/orders", d.Orders.Create)
	r.GET("/orders", d.Orders.List)
	r.PUT("/orders/:id", d.Orders.UpdateStatus)

	r.GET("/analytics", d.Analytics.Get)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.JWTSecret))
	{
		api.GET("/me", d.Auth.Me)
	}

	// Uploaded images are exposed at a stable prefix; everything else that
	// misses the API falls through to the frontend build.
	r.Static("/uploads", d.UploadDir)
	r.NoRoute(spaFallback(d.PublicDir))
}

func spaFallback(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
			return
		}
		path := filepath.Join(publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(publicDir, "index.html"))
	}
}
