package models

type CartItem struct {
	ID            uint `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        uint `json:"userId" gorm:"index"`
	ProductID     uint `json:"productId" gorm:"not null"`
	Quantity      int  `json:"quantity" gorm:"not null;default:1"`
	SavedForLater bool `json:"savedForLater" gorm:"default:false"`
}

// CartItemDetail is a cart row joined with its product at read time.
// Product is nil when the product record cannot be loaded; the row is
// still returned since the item itself is the primary fact.
type CartItemDetail struct {
	CartItem
	Product *Product `json:"product"`
}
