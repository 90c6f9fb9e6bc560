package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-server/models"
	"storefront-server/storage"
)

// GET /api/categories
func GetCategories(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.GetCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /api/categories/:id
func GetCategoryByID(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		category, err := store.GetCategoryByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// GET /api/categories/slug/:slug
func GetCategoryBySlug(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := store.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ParentID    *uint  `json:"parentId"`
}

// POST /api/categories (admin)
func CreateCategory(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Slug:        input.Slug,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			ParentID:    input.ParentID,
		}

		if err := store.CreateCategory(c.Request.Context(), &category); err != nil {
			switch {
			case errors.Is(err, storage.ErrDuplicateSlug):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
			case errors.Is(err, storage.ErrInvalidParent):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			}
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}
