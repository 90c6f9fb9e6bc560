package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-server/models"
	"storefront-server/storage"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Slug          string   `json:"slug" binding:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	ListPrice     *float64 `json:"listPrice" binding:"omitempty,gte=0"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    *uint    `json:"categoryId"`
	InStock       *bool    `json:"inStock"`
	Rating        float64  `json:"rating" binding:"gte=0,lte=5"`
	ReviewCount   int      `json:"reviewCount" binding:"gte=0"`
	SoldCount     int      `json:"soldCount" binding:"gte=0"`
	Featured      bool     `json:"featured"`
	Material      string   `json:"material"`
	Type          string   `json:"type"`
	Design        string   `json:"design"`
	Customization string   `json:"customization"`
	Protection    string   `json:"protection"`
	Warranty      string   `json:"warranty"`
	Size          string   `json:"size"`
	Color         string   `json:"color"`
	Brand         string   `json:"brand"`
	Seller        string   `json:"seller"`
}

// POST /api/products (admin)
func CreateProduct(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		inStock := true
		if input.InStock != nil {
			inStock = *input.InStock
		}

		product := models.Product{
			Name:          input.Name,
			Slug:          input.Slug,
			Description:   input.Description,
			Price:         *input.Price,
			ListPrice:     input.ListPrice,
			ImageURL:      input.ImageURL,
			CategoryID:    input.CategoryID,
			InStock:       inStock,
			Rating:        input.Rating,
			ReviewCount:   input.ReviewCount,
			SoldCount:     input.SoldCount,
			Featured:      input.Featured,
			Material:      input.Material,
			Type:          input.Type,
			Design:        input.Design,
			Customization: input.Customization,
			Protection:    input.Protection,
			Warranty:      input.Warranty,
			Size:          input.Size,
			Color:         input.Color,
			Brand:         input.Brand,
			Seller:        input.Seller,
		}

		if err := store.CreateProduct(c.Request.Context(), &product); err != nil {
			if errors.Is(err, storage.ErrDuplicateSlug) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
