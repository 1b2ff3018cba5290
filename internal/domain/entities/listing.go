package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ListingType says whether a listing is for sale or for rent
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// ListingStatus represents listing lifecycle status
type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusClosed ListingStatus = "closed"
)

// Listing represents a property record available for sale or rent.
// Owner contact fields are a snapshot taken at creation time and are not
// synced when the owner later changes their details.
type Listing struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Type        string        `json:"type"`
	ListingType ListingType   `json:"listingType"`
	Price       float64       `json:"price"`
	Location    string        `json:"location"`
	State       string        `json:"state"`
	Bedrooms    null.Int64    `json:"bedrooms,omitempty"`
	Bathrooms   null.Int64    `json:"bathrooms,omitempty"`
	Size        null.Int64    `json:"size,omitempty"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	OwnerName   string        `json:"ownerName"`
	OwnerPhone  string        `json:"ownerPhone"`
	OwnerEmail  string        `json:"ownerEmail"`
	Status      ListingStatus `json:"status"`
	Views       int64         `json:"views"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CreateListingInput represents input for creating a listing
type CreateListingInput struct {
	Title       string     `json:"title" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	ListingType string     `json:"listingType" binding:"required,oneof=sale rent"`
	Price       float64    `json:"price" binding:"required,gte=0"`
	Location    string     `json:"location" binding:"required"`
	State       string     `json:"state" binding:"required"`
	Bedrooms    null.Int64 `json:"bedrooms"`
	Bathrooms   null.Int64 `json:"bathrooms"`
	Size        null.Int64 `json:"size"`
	Description string     `json:"description" binding:"required"`
	Images      []string   `json:"images"`
}

// UpdateListingInput represents a partial listing patch. Nil fields are left
// untouched; identifier and owner are immutable and have no patch fields.
type UpdateListingInput struct {
	Title       *string    `json:"title"`
	Type        *string    `json:"type"`
	ListingType *string    `json:"listingType" binding:"omitempty,oneof=sale rent"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
	Location    *string    `json:"location"`
	State       *string    `json:"state"`
	Bedrooms    null.Int64 `json:"bedrooms"`
	Bathrooms   null.Int64 `json:"bathrooms"`
	Size        null.Int64 `json:"size"`
	Description *string    `json:"description"`
	Images      []string   `json:"images"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active closed"`
}

// ListingFilters represents the optional conjunction of list filters
type ListingFilters struct {
	Type        string
	ListingType string
	State       string
	MaxPrice    *float64
}
