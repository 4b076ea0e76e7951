package models

import "time"

// Property is one entry of a free-form property bag, e.g. {"name": "color", "value": ["Red", "Blue"]}.
type Property struct {
	Name  string   `json:"name" validate:"required,max=100"`
	Value []string `json:"value" validate:"dive,max=100"`
}

// Product represents a product in the store.
// Money fields are stored in minor units.
type Product struct {
	ID                uint        `gorm:"primaryKey"`
	Name              string      `gorm:"size:100;not null;index"`
	CategoryID        uint        `gorm:"not null;index"`
	Category          *Category   `gorm:"constraint:OnDelete:CASCADE"`
	ConditionID       uint        `gorm:"not null;index"`
	Condition         *Condition  `gorm:"constraint:OnDelete:CASCADE"`
	Description       string      `gorm:"type:text;not null"`
	Price             int64       `gorm:"not null;default:0"`
	PreviousPrice     int64       `gorm:"not null;default:0"`
	Discount          int64       `gorm:"not null;default:0"`
	QuantityAvailable int         `gorm:"not null;default:0"`
	InStock           bool        `gorm:"not null;default:false"`
	FreeShipping      bool        `gorm:"not null;default:false"`
	Ratings           int         `gorm:"not null;default:1"`
	Properties        []Property  `gorm:"type:text;serializer:json"`
	Album             *ImageAlbum `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
