package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront-server/config"
	"storefront-server/middleware"
	"storefront-server/routes"
	"storefront-server/storage"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.AppConfig

	store := initStorage(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestID)

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Optional Redis-backed rate limiting
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		r.Use(middleware.RateLimit(client, cfg.RateLimit, cfg.RateLimitWindow))
		log.Printf("Rate limiting enabled: %d requests per %s", cfg.RateLimit, cfg.RateLimitWindow)
	}

	routes.SetupRoutes(r, store)

	log.Printf("Server running on port %s (%s storage)...", cfg.ServerPort, cfg.StorageBackend)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initStorage picks the backend from configuration. The rest of the
// application only sees the storage.Storage interface.
func initStorage(cfg *config.Config) storage.Storage {
	switch cfg.StorageBackend {
	case "memory":
		store := storage.NewMemStorage()
		if cfg.SeedData {
			if err := storage.Seed(context.Background(), store); err != nil {
				log.Fatalf("Failed to seed sample data: %v", err)
			}
			log.Println("Seeded sample catalog into memory storage")
		}
		return store

	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		store, err := storage.NewGormStorage(db)
		if err != nil {
			log.Fatalf("DB migration failed: %v", err)
		}
		if cfg.SeedData {
			seedIfEmpty(store)
		}
		return store

	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want memory or postgres)", cfg.StorageBackend)
		return nil
	}
}

func seedIfEmpty(store storage.Storage) {
	ctx := context.Background()
	products, err := store.GetProducts(ctx, storage.ProductQuery{})
	if err != nil {
		log.Fatalf("Failed to inspect catalog before seeding: %v", err)
	}
	if len(products) > 0 {
		return
	}
	if err := storage.Seed(ctx, store); err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}
	log.Println("Seeded sample catalog into empty database")
}
