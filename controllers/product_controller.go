package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopadmin/apperrors"
	"shopadmin/models"
	"shopadmin/repositories"
)

type ProductController struct {
	products  repositories.ProductRepository
	uploadDir string
}

func NewProductController(products repositories.ProductRepository, uploadDir string) *ProductController {
	return &ProductController{products: products, uploadDir: uploadDir}
}

func (p *ProductController) List(c *gin.Context) {
	var category models.Category
	if raw := c.Query("category"); raw != "" {
		parsed, err := models.ParseCategory(raw)
		if err != nil {
			fail(c, apperrors.Validation("Category must be men, women or kids"))
			return
		}
		category = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	products, err := p.products.FindAll(ctx, category)
	if err != nil {
		fail(c, apperrors.Internal("listing products", err))
		return
	}

	c.JSON(http.StatusOK, products)
}

func (p *ProductController) Create(c *gin.Context) {
	var product models.Product
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		product, err = p.productFromForm(c)
	} else {
		product, err = p.productFromJSON(c)
	}
	if err != nil {
		fail(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.products.Insert(ctx, &product); err != nil {
		fail(c, apperrors.Internal("creating product", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (p *ProductController) productFromJSON(c *gin.Context) (models.Product, error) {
	var input struct {
		Name     string   `json:"name" binding:"required"`
		Price    *float64 `json:"price" binding:"required"`
		Category string   `json:"category" binding:"required,category"`
		ImageURL string   `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		return models.Product{}, apperrors.Validation("Name, price and category are required")
	}
	if input.ImageURL == "" {
		return models.Product{}, apperrors.Validation("An image file or imageUrl is required")
	}

	return models.Product{
		Name:     input.Name,
		Price:    *input.Price,
		Image:    input.ImageURL,
		Category: models.Category(input.Category),
	}, nil
}

func (p *ProductController) productFromForm(c *gin.Context) (models.Product, error) {
	name := c.PostForm("name")
	rawPrice := c.PostForm("price")
	rawCategory := c.PostForm("category")
	if name == "" || rawPrice == "" || rawCategory == "" {
		return models.Product{}, apperrors.Validation("Name, price and category are required")
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return models.Product{}, apperrors.Validation("Price must be a number")
	}
	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return models.Product{}, apperrors.Validation("Category must be men, women or kids")
	}

	// An uploaded file wins over a supplied imageUrl.
	image := c.PostForm("imageUrl")
	if file, err := c.FormFile("imageFile"); err == nil {
		filename := uploadFilename(time.Now(), file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(p.uploadDir, filename)); err != nil {
			return models.Product{}, apperrors.Internal("saving upload", err)
		}
		image = "/uploads/" + filename
	}
	if image == "" {
		return models.Product{}, apperrors.Validation("An image file or imageUrl is required")
	}

	return models.Product{
		Name:     name,
		Price:    price,
		Image:    image,
		Category: category,
	}, nil
}

// uploadFilename prefixes the original name with the creation time in unix
// milliseconds so concurrent uploads of the same file never collide on disk.
func uploadFilename(now time.Time, original string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), filepath.Base(original))
}

func (p *ProductController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, apperrors.Validation("Invalid product id"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Deleting a product that no longer exists is still a success.
	if err := p.products.Delete(ctx, id); err != nil {
		fail(c, apperrors.Internal("deleting product", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
