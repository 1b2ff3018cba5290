package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/infrastructure/models"
)

// UnlockRepository implements unlock-record data operations
type UnlockRepository struct {
	db *gorm.DB
}

// NewUnlockRepository creates a new unlock repository
func NewUnlockRepository(db *gorm.DB) *UnlockRepository {
	return &UnlockRepository{db: db}
}

// Create inserts an unlock record. The unique index on (user_id, listing_id)
// turns a lost race between two verify calls into ErrAlreadyExists instead
// of a second row.
func (r *UnlockRepository) Create(ctx context.Context, unlock *entities.Unlock) error {
	m := &models.Unlock{
		ID:        unlock.ID,
		UserID:    unlock.UserID,
		ListingID: unlock.ListingID,
		Reference: unlock.Reference,
		Amount:    unlock.Amount,
		PaidAt:    unlock.PaidAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUserAndListing gets the unlock record for a (user, listing) pair
func (r *UnlockRepository) GetByUserAndListing(ctx context.Context, userID, listingID uuid.UUID) (*entities.Unlock, error) {
	var m models.Unlock
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.Unlock{
		ID:        m.ID,
		UserID:    m.UserID,
		ListingID: m.ListingID,
		Reference: m.Reference,
		Amount:    m.Amount,
		PaidAt:    m.PaidAt,
	}, nil
}

// Exists reports whether an unlock record exists for a (user, listing) pair
func (r *UnlockRepository) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Unlock{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
