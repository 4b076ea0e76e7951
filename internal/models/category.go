package models

import "time"

// Category groups products. Image fields hold media references (relative path or absolute URL).
type Category struct {
	ID             uint       `gorm:"primaryKey"`
	Name           string     `gorm:"size:100;not null"`
	BannerImage    string     `gorm:"size:255"`
	ThumbnailImage string     `gorm:"size:255"`
	Properties     []Property `gorm:"type:text;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Condition is a categorical attribute of a product such as "new" or "used".
type Condition struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
