package entities

import (
	"time"

	"github.com/google/uuid"
)

// Unlock records one paid reveal of a listing owner's contact details.
// At most one record exists per (user, listing) pair; records are never
// mutated or deleted.
type Unlock struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ListingID uuid.UUID `json:"listingId"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	PaidAt    time.Time `json:"paidAt"`
}

// InitializePaymentInput represents input for starting the unlock flow
type InitializePaymentInput struct {
	ListingID string  `json:"listingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// VerifyPaymentResult is returned by verify regardless of whether the call
// created the unlock record or found it already present.
type VerifyPaymentResult struct {
	Message   string `json:"message"`
	ListingID string `json:"listingId"`
	Reference string `json:"reference"`
}
