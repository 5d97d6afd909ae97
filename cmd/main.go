package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shopadmin/config"
	"shopadmin/controllers"
	"shopadmin/database"
	"shopadmin/middleware"
	"shopadmin/models"
	"shopadmin/repositories"
	"shopadmin/routes"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("MongoDB connection error: ", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Println("MongoDB disconnect error:", err)
		}
	}()
	db := client.Database(cfg.DBName)
	log.Println("Connected to MongoDB, database:", cfg.DBName)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Creating upload directory: ", err)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("category", models.ValidCategory); err != nil {
			log.Fatal("Registering category validation: ", err)
		}
	}

	userRepo := repositories.NewMongoUserRepository(db)
	productRepo := repositories.NewMongoProductRepository(db)
	orderRepo := repositories.NewMongoOrderRepository(db)

	secret := []byte(cfg.JWTSecret)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
	}))
	r.Use(middleware.RequestID())

	routes.Register(r, routes.Deps{
		Auth:      controllers.NewAuthController(userRepo, secret),
		Products:  controllers.NewProductController(productRepo, cfg.UploadDir),
		Wishlist:  controllers.NewWishlistController(userRepo, productRepo),
		Orders:    controllers.NewOrderController(orderRepo, productRepo, userRepo),
		Analytics: controllers.NewAnalyticsController(userRepo, productRepo, orderRepo),
		JWTSecret: secret,
		UploadDir: cfg.UploadDir,
		PublicDir: cfg.PublicDir,
	})

	log.Println("Listening on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
