package storage

import (
	"context"
	"errors"

	"storefront-server/models"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateSlug   = errors.New("slug already exists")
	ErrDuplicateUser   = errors.New("username or email already taken")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidParent   = errors.New("parent category does not exist")
)

// ProductQuery describes a catalog query. All filters are optional and
// AND-combined. Limit/Offset apply after filtering and sorting.
type ProductQuery struct {
	CategoryID *uint
	Featured   *bool
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	InStock    *bool
	SortBy     string // "price", "rating" or "newest"; empty sorts by name
	SortOrder  string // "asc" (default) or "desc"
	Limit      *int
	Offset     int
}

// ProductPatch is a partial product update. Nil fields are left untouched.
type ProductPatch struct {
	Name          *string  `json:"name"`
	Slug          *string  `json:"slug"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	ListPrice     *float64 `json:"listPrice"`
	ImageURL      *string  `json:"imageUrl"`
	CategoryID    *uint    `json:"categoryId"`
	InStock       *bool    `json:"inStock"`
	Rating        *float64 `json:"rating"`
	ReviewCount   *int     `json:"reviewCount"`
	SoldCount     *int     `json:"soldCount"`
	Featured      *bool    `json:"featured"`
	Material      *string  `json:"material"`
	Type          *string  `json:"type"`
	Design        *string  `json:"design"`
	Customization *string  `json:"customization"`
	Protection    *string  `json:"protection"`
	Warranty      *string  `json:"warranty"`
	Size          *string  `json:"size"`
	Color         *string  `json:"color"`
	Brand         *string  `json:"brand"`
	Seller        *string  `json:"seller"`
}

// Storage is the single persistence contract. Two implementations exist:
// MemStorage (map-backed, for development and tests) and GormStorage
// (SQL-backed). Everything above the storage layer depends only on this
// interface.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// Products
	GetProducts(ctx context.Context, q ProductQuery) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetRelatedProducts(ctx context.Context, productID uint, limit int) ([]models.Product, error)

	// Categories
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error

	// Cart. AddToCart merges quantities into an existing row with the same
	// (userID, productID, savedForLater) key instead of inserting a second
	// row. SaveForLater and MoveToCart only flip the flag and deliberately
	// do not re-run the merge: moving an item back to an already-populated
	// cart can leave two active rows for the same product.
	GetCartItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	GetCartItemByID(ctx context.Context, id uint) (*models.CartItem, error)
	AddToCart(ctx context.Context, item *models.CartItem) error
	UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(ctx context.Context, id uint) error
	ClearCart(ctx context.Context, userID uint) error
	GetSavedItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	SaveForLater(ctx context.Context, id uint) (*models.CartItem, error)
	MoveToCart(ctx context.Context, id uint) (*models.CartItem, error)
}
