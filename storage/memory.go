package storage

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"storefront-server/models"
)

// MemStorage keeps every collection in a map guarded by a single mutex.
// Holding the write lock across the find-then-write merge in AddToCart is
// what keeps concurrent adds for the same key from producing two rows.
type MemStorage struct {
	mu sync.RWMutex

	users      map[uint]models.User
	products   map[uint]models.Product
	categories map[uint]models.Category
	cartItems  map[uint]models.CartItem

	nextUserID     uint
	nextProductID  uint
	nextCategoryID uint
	nextCartItemID uint
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:          make(map[uint]models.User),
		products:       make(map[uint]models.Product),
		categories:     make(map[uint]models.Category),
		cartItems:      make(map[uint]models.CartItem),
		nextUserID:     1,
		nextProductID:  1,
		nextCategoryID: 1,
		nextCartItemID: 1,
	}
}

// Users

func (s *MemStorage) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return ErrDuplicateUser
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = *user
	return nil
}

// Products

func (s *MemStorage) GetProducts(_ context.Context, q ProductQuery) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *q.CategoryID) {
			continue
		}
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		if q.Search != "" {
			needle := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if q.InStock != nil && p.InStock != *q.InStock {
			continue
		}
		products = append(products, p)
	}

	sortProducts(products, q.SortBy, q.SortOrder)
	return paginate(products, q.Limit, q.Offset), nil
}

func sortProducts(products []models.Product, sortBy, sortOrder string) {
	desc := sortOrder == "desc"
	sort.Slice(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "price":
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case "rating":
			if a.Rating != b.Rating {
				return a.Rating < b.Rating
			}
		case "newest":
			return a.ID < b.ID
		default:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		}
		return a.ID < b.ID
	})
}

func paginate(products []models.Product, limit *int, offset int) []models.Product {
	if offset >= len(products) {
		return []models.Product{}
	}
	products = products[offset:]
	if limit != nil && *limit >= 0 && *limit < len(products) {
		products = products[:*limit]
	}
	return products
}

func (s *MemStorage) GetProductByID(_ context.Context, id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemStorage) GetProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.Slug == product.Slug {
			return ErrDuplicateSlug
		}
	}

	product.ID = s.nextProductID
	s.nextProductID++
	s.products[product.ID] = *product
	return nil
}

func (s *MemStorage) UpdateProduct(_ context.Context, id uint, patch ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Slug != nil && *patch.Slug != product.Slug {
		for _, existing := range s.products {
			if existing.Slug == *patch.Slug {
				return nil, ErrDuplicateSlug
			}
		}
	}

	applyPatch(&product, patch)
	s.products[id] = product
	return &product, nil
}

func applyPatch(p *models.Product, patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ListPrice != nil {
		p.ListPrice = patch.ListPrice
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.CategoryID != nil {
		p.CategoryID = patch.CategoryID
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.ReviewCount != nil {
		p.ReviewCount = *patch.ReviewCount
	}
	if patch.SoldCount != nil {
		p.SoldCount = *patch.SoldCount
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Material != nil {
		p.Material = *patch.Material
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Design != nil {
		p.Design = *patch.Design
	}
	if patch.Customization != nil {
		p.Customization = *patch.Customization
	}
	if patch.Protection != nil {
		p.Protection = *patch.Protection
	}
	if patch.Warranty != nil {
		p.Warranty = *patch.Warranty
	}
	if patch.Size != nil {
		p.Size = *patch.Size
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Seller != nil {
		p.Seller = *patch.Seller
	}
}

func (s *MemStorage) DeleteProduct(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *MemStorage) GetFeaturedProducts(_ context.Context, limit int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	// Highest rated first, id as the tiebreak so the order is stable.
	sort.Slice(featured, func(i, j int) bool {
		if featured[i].Rating != featured[j].Rating {
			return featured[i].Rating > featured[j].Rating
		}
		return featured[i].ID < featured[j].ID
	})

	if limit < len(featured) {
		featured = featured[:limit]
	}
	return featured, nil
}

func (s *MemStorage) GetRelatedProducts(_ context.Context, productID uint, limit int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target, ok := s.products[productID]
	if !ok {
		return []models.Product{}, nil
	}

	related := make([]models.Product, 0, limit)
	if target.CategoryID != nil {
		for _, p := range s.products {
			if p.ID == productID {
				continue
			}
			if p.CategoryID != nil && *p.CategoryID == *target.CategoryID {
				related = append(related, p)
			}
		}
		sort.Slice(related, func(i, j int) bool { return related[i].ID < related[j].ID })
	}

	if len(related) < limit {
		selected := make(map[uint]bool, len(related))
		for _, p := range related {
			selected[p.ID] = true
		}

		others := make([]models.Product, 0)
		for _, p := range s.products {
			if p.ID != productID && !selected[p.ID] {
				others = append(others, p)
			}
		}
		rand.Shuffle(len(others), func(i, j int) {
			others[i], others[j] = others[j], others[i]
		})

		need := limit - len(related)
		if need > len(others) {
			need = len(others)
		}
		related = append(related, others[:need]...)
	}

	if limit < len(related) {
		related = related[:limit]
	}
	return related, nil
}

// Categories

func (s *MemStorage) GetCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemStorage) GetCategoryByID(_ context.Context, id uint) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemStorage) GetCategoryBySlug(_ context.Context, slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.Slug == category.Slug {
			return ErrDuplicateSlug
		}
	}
	if category.ParentID != nil {
		if _, ok := s.categories[*category.ParentID]; !ok {
			return ErrInvalidParent
		}
	}

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[category.ID] = *category
	return nil
}

// Cart

func (s *MemStorage) GetCartItems(_ context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartItemsWhere(userID, false), nil
}

func (s *MemStorage) GetSavedItems(_ context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartItemsWhere(userID, true), nil
}

func (s *MemStorage) cartItemsWhere(userID uint, saved bool) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, 0)
	for _, item := range s.cartItems {
		if item.UserID == userID && item.SavedForLater == saved {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *MemStorage) GetCartItemByID(_ context.Context, id uint) (*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (s *MemStorage) AddToCart(_ context.Context, item *models.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.cartItems {
		if existing.UserID == item.UserID &&
			existing.ProductID == item.ProductID &&
			existing.SavedForLater == item.SavedForLater {
			existing.Quantity += item.Quantity
			s.cartItems[id] = existing
			*item = existing
			return nil
		}
	}

	item.ID = s.nextCartItemID
	s.nextCartItemID++
	s.cartItems[item.ID] = *item
	return nil
}

func (s *MemStorage) UpdateCartItem(_ context.Context, id uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return &item, nil
}

func (s *MemStorage) RemoveFromCart(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems, id)
	return nil
}

func (s *MemStorage) ClearCart(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.UserID == userID && !item.SavedForLater {
			delete(s.cartItems, id)
		}
	}
	return nil
}

func (s *MemStorage) SaveForLater(_ context.Context, id uint) (*models.CartItem, error) {
	return s.setSavedForLater(id, true)
}

func (s *MemStorage) MoveToCart(_ context.Context, id uint) (*models.CartItem, error) {
	return s.setSavedForLater(id, false)
}

func (s *MemStorage) setSavedForLater(id uint, saved bool) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	item.SavedForLater = saved
	s.cartItems[id] = item
	return &item, nil
}
