package repositories

import (
	"context"

	"github.com/google/uuid"
	"homeconnect.backend/internal/domain/entities"
)

// ListingRepository defines listing data operations
type ListingRepository interface {
	Create(ctx context.Context, listing *entities.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Listing, error)
	List(ctx context.Context, filters entities.ListingFilters) ([]*entities.Listing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Listing, error)
	Update(ctx context.Context, listing *entities.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByListingType(ctx context.Context, listingType entities.ListingType) (int64, error)
}
