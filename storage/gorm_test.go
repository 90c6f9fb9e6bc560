package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront-server/models"
)

// setupGorm runs the SQL backend against a throwaway SQLite database so
// the suite needs no running server.
func setupGorm(t *testing.T) *GormStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "storefront_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	s, err := NewGormStorage(db)
	require.NoError(t, err)
	require.NoError(t, Seed(context.Background(), s))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return s
}

func TestGormAddToCartMergesDuplicates(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	first := models.CartItem{UserID: 1, ProductID: 1, Quantity: 2}
	require.NoError(t, s.AddToCart(ctx, &first))
	second := models.CartItem{UserID: 1, ProductID: 1, Quantity: 3}
	require.NoError(t, s.AddToCart(ctx, &second))

	items, err := s.GetCartItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestGormAddToCartConcurrentMerge(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := models.CartItem{UserID: 1, ProductID: 2, Quantity: 1}
			assert.NoError(t, s.AddToCart(ctx, &item))
		}()
	}
	wg.Wait()

	items, err := s.GetCartItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}

func TestGormCartLifecycle(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	item := models.CartItem{UserID: 1, ProductID: 3, Quantity: 2}
	require.NoError(t, s.AddToCart(ctx, &item))
	saved := models.CartItem{UserID: 1, ProductID: 4, Quantity: 1, SavedForLater: true}
	require.NoError(t, s.AddToCart(ctx, &saved))

	_, err := s.UpdateCartItem(ctx, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	got, err := s.GetCartItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)

	updated, err := s.UpdateCartItem(ctx, item.ID, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)

	movedOut, err := s.SaveForLater(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, movedOut.SavedForLater)
	movedBack, err := s.MoveToCart(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, movedBack.SavedForLater)
	assert.Equal(t, 6, movedBack.Quantity)

	require.NoError(t, s.ClearCart(ctx, 1))
	cart, err := s.GetCartItems(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart)
	savedItems, err := s.GetSavedItems(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, savedItems, 1)

	assert.ErrorIs(t, s.RemoveFromCart(ctx, item.ID), ErrNotFound)
}

func TestGormProductQuery(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	minPrice := 90.0
	maxPrice := 150.0
	inStock := true
	got, err := s.GetProducts(ctx, ProductQuery{MinPrice: &minPrice, MaxPrice: &maxPrice, InStock: &inStock})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, minPrice)
		assert.LessOrEqual(t, p.Price, maxPrice)
		assert.True(t, p.InStock)
	}

	search, err := s.GetProducts(ctx, ProductQuery{Search: "CAMERA"})
	require.NoError(t, err)
	require.NotEmpty(t, search)

	byPrice, err := s.GetProducts(ctx, ProductQuery{SortBy: "price", SortOrder: "desc"})
	require.NoError(t, err)
	for i := 1; i < len(byPrice); i++ {
		assert.GreaterOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	limit := 10
	empty, err := s.GetProducts(ctx, ProductQuery{Limit: &limit, Offset: 1000})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGormSlugUniqueness(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	dup := models.Product{Name: "Clone", Slug: "apple-iphone-12-pro", Price: 1}
	assert.ErrorIs(t, s.CreateProduct(ctx, &dup), ErrDuplicateSlug)

	dupCat := models.Category{Name: "Clone", Slug: "electronics"}
	assert.ErrorIs(t, s.CreateCategory(ctx, &dupCat), ErrDuplicateSlug)

	dupUser := models.User{Username: "user1", Password: "x", Email: "other@example.com"}
	assert.ErrorIs(t, s.CreateUser(ctx, &dupUser), ErrDuplicateUser)
}

func TestGormRelatedProductsBackfill(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	laptop, err := s.GetProductBySlug(ctx, "modern-laptop-ssd")
	require.NoError(t, err)

	related, err := s.GetRelatedProducts(ctx, laptop.ID, 4)
	require.NoError(t, err)
	require.Len(t, related, 4)
	for _, p := range related {
		assert.NotEqual(t, laptop.ID, p.ID)
	}

	none, err := s.GetRelatedProducts(ctx, 9999, 4)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormDeleteProduct(t *testing.T) {
	s := setupGorm(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteProduct(ctx, 1))
	assert.ErrorIs(t, s.DeleteProduct(ctx, 1), ErrNotFound)
	_, err := s.GetProductByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
