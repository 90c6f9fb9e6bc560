package cartcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-server/models"
	"storefront-server/pricing"
	"storefront-server/storage"
)

const testUserID uint = 1

// setupRouter mounts the cart handlers behind a stub auth middleware that
// pins the resolved user, standing in for the JWT layer.
func setupRouter(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemStorage()
	require.NoError(t, storage.Seed(context.Background(), store))

	r := gin.New()
	authed := r.Group("/api")
	authed.Use(func(c *gin.Context) { c.Set("user_id", testUserID) })
	{
		authed.GET("/cart", GetUserCart(store))
		authed.GET("/cart/summary", CartSummary(store))
		authed.POST("/cart", AddToCart(store))
		authed.PUT("/cart/:id", UpdateCartItem(store))
		authed.DELETE("/cart/:id", RemoveFromCart(store))
		authed.DELETE("/cart", ClearUserCart(store))
		authed.POST("/cart/:id/save-for-later", SaveForLater(store))
		authed.GET("/saved-items", GetSavedItems(store))
		authed.POST("/saved-items/:id/move-to-cart", MoveToCart(store))
	}
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestAddToCartReturnsItemWithProduct(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	item := decode[models.CartItemDetail](t, w)
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, "gopro-hero6-4k-action-camera", item.Product.Slug)
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"productId": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, decode[models.CartItemDetail](t, w).Quantity)
}

func TestAddToCartMergesThroughAPI(t *testing.T) {
	r, _ := setupRouter(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"productId": 2, "quantity": 2})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]models.CartItemDetail](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAddToCartRejectsUnknownProduct(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"productId": 9999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToCartRejectsNegativeQuantity(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"productId": 1, "quantity": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemQuantityValidation(t *testing.T) {
	r, store := setupRouter(t)
	item := models.CartItem{UserID: testUserID, ProductID: 1, Quantity: 4}
	require.NoError(t, store.AddToCart(context.Background(), &item))

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/cart/%d", item.ID), gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got, err := store.GetCartItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/cart/%d", item.ID), gin.H{"quantity": 9})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9, decode[models.CartItemDetail](t, w).Quantity)

	w = doJSON(t, r, http.MethodPut, "/api/cart/9999", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/cart/abc", gin.H{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCartTwice(t *testing.T) {
	r, store := setupRouter(t)
	item := models.CartItem{UserID: testUserID, ProductID: 1, Quantity: 1}
	require.NoError(t, store.AddToCart(context.Background(), &item))

	path := fmt.Sprintf("/api/cart/%d", item.ID)
	assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, path, nil).Code)
}

func TestClearCartKeepsSavedItems(t *testing.T) {
	r, store := setupRouter(t)
	ctx := context.Background()

	active := models.CartItem{UserID: testUserID, ProductID: 1, Quantity: 2}
	require.NoError(t, store.AddToCart(ctx, &active))
	saved := models.CartItem{UserID: testUserID, ProductID: 2, Quantity: 1, SavedForLater: true}
	require.NoError(t, store.AddToCart(ctx, &saved))

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, "/api/cart", nil).Code)

	cart := decode[[]models.CartItemDetail](t, doJSON(t, r, http.MethodGet, "/api/cart", nil))
	assert.Empty(t, cart)

	savedItems := decode[[]models.CartItemDetail](t, doJSON(t, r, http.MethodGet, "/api/saved-items", nil))
	require.Len(t, savedItems, 1)
	assert.Equal(t, saved.ID, savedItems[0].ID)
}

func TestSaveForLaterRoundTrip(t *testing.T) {
	r, store := setupRouter(t)
	item := models.CartItem{UserID: testUserID, ProductID: 1, Quantity: 3}
	require.NoError(t, store.AddToCart(context.Background(), &item))

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/cart/%d/save-for-later", item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.CartItemDetail](t, w).SavedForLater)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/saved-items/%d/move-to-cart", item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	restored := decode[models.CartItemDetail](t, w)
	assert.False(t, restored.SavedForLater)
	assert.Equal(t, 3, restored.Quantity)

	w = doJSON(t, r, http.MethodPost, "/api/cart/9999/save-for-later", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartSummary(t *testing.T) {
	r, store := setupRouter(t)
	ctx := context.Background()

	product := models.Product{Name: "Flat Hundred", Slug: "flat-hundred", Price: 100.00}
	require.NoError(t, store.CreateProduct(ctx, &product))
	item := models.CartItem{UserID: testUserID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, store.AddToCart(ctx, &item))

	w := doJSON(t, r, http.MethodGet, "/api/cart/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	summary := decode[pricing.Summary](t, w)
	assert.Equal(t, 200.00, summary.Subtotal)
	assert.Equal(t, 10.00, summary.Discount)
	assert.Equal(t, 19.00, summary.Tax)
	assert.Equal(t, 209.00, summary.Total)
}

func TestCartRequiresResolvedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStorage()
	r := gin.New()
	r.GET("/api/cart", GetUserCart(store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
