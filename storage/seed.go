package storage

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront-server/models"
)

func ptrUint(v uint) *uint { return &v }

func ptrFloat(v float64) *float64 { return &v }

// Seed loads the sample catalog and demo accounts. Intended for the memory
// backend and for empty SQL databases in development.
func Seed(ctx context.Context, s Storage) error {
	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics", Description: "Electronic devices and gadgets"},
		{Name: "Clothing", Slug: "clothing", Description: "Apparel and fashion items"},
		{Name: "Home & Outdoor", Slug: "home-outdoor", Description: "Home decor and outdoor items"},
		{Name: "Smartphones", Slug: "smartphones", Description: "Mobile phones and accessories", ParentID: ptrUint(1)},
		{Name: "Laptops", Slug: "laptops", Description: "Portable computers", ParentID: ptrUint(1)},
		{Name: "Men's Wear", Slug: "mens-wear", Description: "Clothing for men", ParentID: ptrUint(2)},
		{Name: "Women's Wear", Slug: "womens-wear", Description: "Clothing for women", ParentID: ptrUint(2)},
		{Name: "Kitchen", Slug: "kitchen", Description: "Kitchen appliances and utensils", ParentID: ptrUint(3)},
	}
	for i := range categories {
		if err := s.CreateCategory(ctx, &categories[i]); err != nil {
			return fmt.Errorf("seed category %q: %w", categories[i].Slug, err)
		}
	}

	products := []models.Product{
		{
			Name:        "GoPro HERO6 4K Action Camera",
			Slug:        "gopro-hero6-4k-action-camera",
			Description: "Capture stunning 4K video and incredible photos with the GoPro HERO6 Black. With its all-new GP1 chip, improved stabilization, and 2x the performance of the HERO5, this action camera lets you capture life's moments like never before.",
			Price:       99.50,
			ListPrice:   ptrFloat(128.00),
			ImageURL:    "https://images.unsplash.com/photo-1526406915894-7bcd65f60845?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(1),
			InStock:     true,
			Rating:      4.5,
			ReviewCount: 154,
			SoldCount:   254,
			Featured:    true,
			Material:    "Plastic material",
			Type:        "Action Camera",
			Design:      "Modern nice",
			Color:       "Black",
			Brand:       "GoPro",
			Seller:      "Artel Market",
		},
		{
			Name:          "Mens Long Sleeve T-shirt Cotton Base",
			Slug:          "mens-long-sleeve-tshirt",
			Description:   "Classic long sleeve t-shirt for men, made with high-quality cotton material that's comfortable and durable.",
			Price:         78.00,
			ListPrice:     ptrFloat(98.00),
			ImageURL:      "https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99?ixlib=rb-4.0.3",
			CategoryID:    ptrUint(6),
			InStock:       true,
			Rating:        4.7,
			ReviewCount:   32,
			SoldCount:     154,
			Featured:      true,
			Material:      "Cotton",
			Type:          "T-shirt",
			Design:        "Classic style",
			Customization: "Customized logo and design custom packages",
			Protection:    "Refund Policy",
			Warranty:      "2 years full warranty",
			Size:          "Medium",
			Color:         "Gray",
			Brand:         "Fashion Brand",
			Seller:        "Guizar Trading LLC",
		},
		{
			Name:        "T-shirts with multiple colors",
			Slug:        "tshirts-multiple-colors",
			Description: "High-quality t-shirts available in various colors, perfect for casual wear.",
			Price:       10.30,
			ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(6),
			InStock:     true,
			Rating:      4.0,
			ReviewCount: 42,
			SoldCount:   137,
			Material:    "Cotton",
			Size:        "Medium",
			Color:       "Blue",
			Brand:       "Fashion Brand",
			Seller:      "Artel Market",
		},
		{
			Name:        "Samsung Smart Watch",
			Slug:        "samsung-smart-watch",
			Description: "Stay connected with this stylish and functional smart watch from Samsung.",
			Price:       99.50,
			ListPrice:   ptrFloat(128.00),
			ImageURL:    "https://images.unsplash.com/photo-1546868871-7041f2a55e12?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(1),
			InStock:     true,
			Rating:      4.8,
			ReviewCount: 75,
			SoldCount:   208,
			Featured:    true,
			Material:    "Plastic and metal",
			Type:        "Smart Watch",
			Color:       "Silver",
			Brand:       "Samsung",
			Seller:      "Best Factory LLC",
		},
		{
			Name:        "Apple iPhone 12 Pro",
			Slug:        "apple-iphone-12-pro",
			Description: "The latest iPhone with advanced features and stunning camera capabilities.",
			Price:       999.00,
			ListPrice:   ptrFloat(1099.00),
			ImageURL:    "https://images.unsplash.com/photo-1605236453806-6ff36851218e?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(4),
			InStock:     true,
			Rating:      4.9,
			ReviewCount: 132,
			SoldCount:   345,
			Featured:    true,
			Material:    "Glass and aluminum",
			Type:        "Smartphone",
			Color:       "Blue",
			Brand:       "Apple",
			Seller:      "Tech Solutions Inc",
		},
		{
			Name:        "Professional DSLR Camera",
			Slug:        "professional-dslr-camera",
			Description: "Capture professional-quality photos and videos with this high-end DSLR camera.",
			Price:       699.00,
			ListPrice:   ptrFloat(799.00),
			ImageURL:    "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(1),
			InStock:     true,
			Rating:      4.7,
			ReviewCount: 87,
			SoldCount:   156,
			Material:    "Plastic and metal",
			Type:        "Camera",
			Color:       "Black",
			Brand:       "Canon",
			Seller:      "PhotoPro Store",
		},
		{
			Name:        "Modern Laptop with SSD",
			Slug:        "modern-laptop-ssd",
			Description: "Fast and efficient laptop with solid-state drive for optimal performance.",
			Price:       899.00,
			ListPrice:   ptrFloat(999.00),
			ImageURL:    "https://images.unsplash.com/photo-1531297484001-80022131f5a1?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(5),
			InStock:     true,
			Rating:      4.6,
			ReviewCount: 65,
			SoldCount:   129,
			Featured:    true,
			Material:    "Aluminum",
			Type:        "Laptop",
			Color:       "Silver",
			Brand:       "Dell",
			Seller:      "TechMart",
		},
		{
			Name:        "Wireless Bluetooth Headphones",
			Slug:        "wireless-bluetooth-headphones",
			Description: "Immerse yourself in high-quality sound with these comfortable wireless headphones.",
			Price:       59.99,
			ListPrice:   ptrFloat(79.99),
			ImageURL:    "https://images.unsplash.com/photo-1600086827875-a63b01f1335c?ixlib=rb-4.0.3",
			CategoryID:  ptrUint(1),
			InStock:     true,
			Rating:      4.4,
			ReviewCount: 93,
			SoldCount:   217,
			Material:    "Plastic and fabric",
			Type:        "Headphones",
			Color:       "Black",
			Brand:       "Sony",
			Seller:      "AudioPlus",
		},
	}
	for i := range products {
		if err := s.CreateProduct(ctx, &products[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", products[i].Slug, err)
		}
	}

	users := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				Username:  "user1",
				Email:     "user1@example.com",
				FirstName: "John",
				LastName:  "Doe",
				Address:   "123 Main St",
				City:      "Anytown",
				Country:   "USA",
				ZipCode:   "12345",
			},
			password: "password123",
		},
		{
			user: models.User{
				Username:  "admin",
				Email:     "admin@example.com",
				FirstName: "Admin",
				LastName:  "User",
				IsAdmin:   true,
			},
			password: "admin123",
		},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(users[i].password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", users[i].user.Username, err)
		}
		users[i].user.Password = string(hash)
		if err := s.CreateUser(ctx, &users[i].user); err != nil {
			return fmt.Errorf("seed user %q: %w", users[i].user.Username, err)
		}
	}

	return nil
}
