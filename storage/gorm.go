package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"storefront-server/models"
)

// GormStorage is the SQL-backed implementation of Storage. It expects the
// DB to be opened with TranslateError enabled so unique-index violations
// surface as gorm.ErrDuplicatedKey regardless of driver.
type GormStorage struct {
	db *gorm.DB

	// cartLocks serializes the find-then-write merge in AddToCart per
	// user. The cart key carries no unique index (moving a saved item
	// back may legitimately duplicate an active row), so the merge
	// cannot be expressed as a single conditional write.
	cartLocks sync.Map
}

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStorage{db: db}, nil
}

// Users

func (s *GormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Products

func (s *GormStorage) GetProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if q.CategoryID != nil {
		query = query.Where("category_id = ?", *q.CategoryID)
	}
	if q.Featured != nil {
		query = query.Where("featured = ?", *q.Featured)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}
	if q.InStock != nil {
		query = query.Where("in_stock = ?", *q.InStock)
	}

	query = query.Order(orderClause(q.SortBy, q.SortOrder))

	if q.Limit != nil && *q.Limit >= 0 {
		query = query.Limit(*q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func orderClause(sortBy, sortOrder string) string {
	direction := "asc"
	if sortOrder == "desc" {
		direction = "desc"
	}
	switch sortBy {
	case "price":
		return "price " + direction + ", id asc"
	case "rating":
		return "rating " + direction + ", id asc"
	case "newest":
		return "id " + direction
	default:
		return "name " + direction + ", id asc"
	}
}

func (s *GormStorage) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *GormStorage) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *GormStorage) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (s *GormStorage) UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return translate(err)
		}
		applyPatch(&product, patch)
		if err := tx.Save(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSlug
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStorage) DeleteProduct(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("rating desc, id asc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *GormStorage) GetRelatedProducts(ctx context.Context, productID uint, limit int) ([]models.Product, error) {
	target, err := s.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Product{}, nil
		}
		return nil, err
	}

	related := make([]models.Product, 0, limit)
	if target.CategoryID != nil {
		err = s.db.WithContext(ctx).
			Where("category_id = ? AND id <> ?", *target.CategoryID, productID).
			Order("id asc").
			Limit(limit).
			Find(&related).Error
		if err != nil {
			return nil, err
		}
	}

	if len(related) < limit {
		exclude := make([]uint, 0, len(related)+1)
		exclude = append(exclude, productID)
		for _, p := range related {
			exclude = append(exclude, p.ID)
		}

		var fill []models.Product
		err = s.db.WithContext(ctx).
			Where("id NOT IN ?", exclude).
			Order("RANDOM()").
			Limit(limit - len(related)).
			Find(&fill).Error
		if err != nil {
			return nil, err
		}
		related = append(related, fill...)
	}

	return related, nil
}

// Categories

func (s *GormStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *GormStorage) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *GormStorage) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *GormStorage) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ParentID != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Category{}).
			Where("id = ?", *category.ParentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrInvalidParent
		}
	}

	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// Cart

func (s *GormStorage) GetCartItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartItemsWhere(ctx, userID, false)
}

func (s *GormStorage) GetSavedItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartItemsWhere(ctx, userID, true)
}

func (s *GormStorage) cartItemsWhere(ctx context.Context, userID uint, saved bool) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND saved_for_later = ?", userID, saved).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func (s *GormStorage) GetCartItemByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStorage) AddToCart(ctx context.Context, item *models.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	lock, _ := s.cartLocks.LoadOrStore(item.UserID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where(
			"user_id = ? AND product_id = ? AND saved_for_later = ?",
			item.UserID, item.ProductID, item.SavedForLater,
		).First(&existing).Error

		if err == nil {
			existing.Quantity += item.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*item = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(item).Error
	})
}

func (s *GormStorage) UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return translate(err)
		}
		item.Quantity = quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStorage) RemoveFromCart(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.CartItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) ClearCart(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND saved_for_later = ?", userID, false).
		Delete(&models.CartItem{}).Error
}

func (s *GormStorage) SaveForLater(ctx context.Context, id uint) (*models.CartItem, error) {
	return s.setSavedForLater(ctx, id, true)
}

func (s *GormStorage) MoveToCart(ctx context.Context, id uint) (*models.CartItem, error) {
	return s.setSavedForLater(ctx, id, false)
}

func (s *GormStorage) setSavedForLater(ctx context.Context, id uint, saved bool) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return translate(err)
		}
		item.SavedForLater = saved
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
