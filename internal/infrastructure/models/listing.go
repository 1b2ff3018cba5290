package models

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(100);not null;index"`
	ListingType string    `gorm:"type:varchar(20);not null;index"`
	Price       float64   `gorm:"not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	State       string    `gorm:"type:varchar(100);not null;index"`
	Bedrooms    *int64
	Bathrooms   *int64
	Size        *int64
	Description string    `gorm:"type:text;not null"`
	Images      []string  `gorm:"serializer:json;type:text"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerName   string    `gorm:"type:varchar(255);not null"`
	OwnerPhone  string    `gorm:"type:varchar(50);not null"`
	OwnerEmail  string    `gorm:"type:varchar(255);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	Views       int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
