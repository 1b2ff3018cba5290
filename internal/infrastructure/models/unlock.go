package models

import (
	"time"

	"github.com/google/uuid"
)

// Unlock rows are insert-only. The composite unique index is what makes the
// verify step's find-or-create safe under concurrent duplicate calls.
type Unlock struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unlocks_user_listing"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unlocks_user_listing"`
	Reference string    `gorm:"type:varchar(255);not null"`
	Amount    float64   `gorm:"not null"`
	PaidAt    time.Time `gorm:"not null"`
}
