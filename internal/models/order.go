package models

import (
	"fmt"
	"time"
)

// ShippingAddress is the customer record an order ships to.
type ShippingAddress struct {
	ID         uint   `gorm:"primaryKey"`
	FirstName  string `gorm:"size:100;not null"`
	LastName   string `gorm:"size:100;not null"`
	Country    string `gorm:"size:100;not null"`
	State      string `gorm:"size:100;not null"`
	PostalCode string `gorm:"size:100;not null"`
	AddressOne string `gorm:"size:100;not null"`
	AddressTwo string `gorm:"size:100;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns "First Last".
func (a ShippingAddress) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

// Order represents a customer order of a single product.
type Order struct {
	ID         uint             `gorm:"primaryKey"`
	ProductID  uint             `gorm:"not null;index"`
	Product    *Product         `gorm:"constraint:OnDelete:CASCADE"`
	Quantity   int              `gorm:"not null"`
	CustomerID uint             `gorm:"not null;index"`
	Customer   *ShippingAddress `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewsLetter is a newsletter subscription.
type NewsLetter struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time
}
