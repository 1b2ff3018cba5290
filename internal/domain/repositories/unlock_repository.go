package repositories

import (
	"context"

	"github.com/google/uuid"
	"homeconnect.backend/internal/domain/entities"
)

// UnlockRepository defines unlock-record data operations. Create must return
// ErrAlreadyExists when a record for the same (user, listing) pair is
// present, so callers can treat duplicate verifies as success.
type UnlockRepository interface {
	Create(ctx context.Context, unlock *entities.Unlock) error
	GetByUserAndListing(ctx context.Context, userID, listingID uuid.UUID) (*entities.Unlock, error)
	Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}
