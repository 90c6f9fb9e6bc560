package models

type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" gorm:"not null"`
	// ListPrice is the crossed-out "was" price shown next to Price.
	// It is unrelated to the promotional discount applied at cart level.
	ListPrice     *float64 `json:"listPrice,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	CategoryID    *uint    `json:"categoryId,omitempty" gorm:"index"`
	InStock       bool     `json:"inStock" gorm:"default:true"`
	Rating        float64  `json:"rating" gorm:"default:0"`
	ReviewCount   int      `json:"reviewCount" gorm:"default:0"`
	SoldCount     int      `json:"soldCount" gorm:"default:0"`
	Featured      bool     `json:"featured" gorm:"default:false;index"`
	Material      string   `json:"material,omitempty"`
	Type          string   `json:"type,omitempty"`
	Design        string   `json:"design,omitempty"`
	Customization string   `json:"customization,omitempty"`
	Protection    string   `json:"protection,omitempty"`
	Warranty      string   `json:"warranty,omitempty"`
	Size          string   `json:"size,omitempty"`
	Color         string   `json:"color,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Seller        string   `json:"seller,omitempty"`
}
