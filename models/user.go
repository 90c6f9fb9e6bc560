package models

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	IsAdmin   bool   `json:"isAdmin" gorm:"default:false"`
}
