package authcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-server/config"
	"storefront-server/middleware"
	"storefront-server/storage"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	store := storage.NewMemStorage()
	require.NoError(t, storage.Seed(context.Background(), store))

	r := gin.New()
	r.POST("/api/auth/register", Register(store))
	r.POST("/api/auth/login", Login(store))
	r.GET("/api/auth/me", middleware.ValidateToken, Me(store))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginMeFlow(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/api/auth/register", gin.H{
		"username": "shopper",
		"password": "supersecret",
		"email":    "shopper@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "supersecret", "password hash must not leak")

	w = postJSON(t, r, "/api/auth/login", gin.H{
		"username": "shopper",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"shopper"`)
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	// password too short
	w := postJSON(t, r, "/api/auth/register", gin.H{
		"username": "x", "password": "short", "email": "x@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed email
	w = postJSON(t, r, "/api/auth/register", gin.H{
		"username": "x", "password": "longenough", "email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// seeded username is taken
	w = postJSON(t, r, "/api/auth/register", gin.H{
		"username": "user1", "password": "longenough", "email": "new@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupRouter(t)

	w := postJSON(t, r, "/api/auth/login", gin.H{
		"username": "user1", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/auth/login", gin.H{
		"username": "ghost", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
