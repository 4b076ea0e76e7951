package models

import "time"

// ImageAlbum is the image collection owned by exactly one product.
type ImageAlbum struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null"`
	ProductID uint    `gorm:"not null;uniqueIndex"`
	Images    []Image `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// Image is a stored picture. Path is relative to the media root.
type Image struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	AlbumID   uint   `gorm:"not null;index"`
	Path      string `gorm:"size:255;not null"`
	CreatedAt time.Time
}
