package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/domain/repositories"
	"homeconnect.backend/pkg/logger"
)

// ListingUsecase handles the property catalog
type ListingUsecase struct {
	listingRepo repositories.ListingRepository
	userRepo    repositories.UserRepository
}

// NewListingUsecase creates a new listing usecase
func NewListingUsecase(listingRepo repositories.ListingRepository, userRepo repositories.UserRepository) *ListingUsecase {
	return &ListingUsecase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

// List returns all listings matching the filter conjunction
func (u *ListingUsecase) List(ctx context.Context, filters entities.ListingFilters) ([]*entities.Listing, error) {
	return u.listingRepo.List(ctx, filters)
}

// Get returns one listing and counts the view
func (u *ListingUsecase) Get(ctx context.Context, id string) (*entities.Listing, error) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}

	listing, err := u.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	// View counting is best-effort; a failed bump never fails the read
	if err := u.listingRepo.IncrementViews(ctx, listingID); err != nil {
		logger.Warn(ctx, "failed to increment listing views", zap.String("listing_id", id), zap.Error(err))
	} else {
		listing.Views++
	}

	return listing, nil
}

// Create stores a new listing owned by the caller. The owner's contact
// details are copied onto the listing and never re-synced afterwards.
func (u *ListingUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *entities.CreateListingInput) (*entities.Listing, error) {
	owner, err := u.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	listing := &entities.Listing{
		ID:          uuid.New(),
		Title:       input.Title,
		Type:        input.Type,
		ListingType: entities.ListingType(input.ListingType),
		Price:       input.Price,
		Location:    input.Location,
		State:       input.State,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Size:        input.Size,
		Description: input.Description,
		Images:      images,
		OwnerID:     owner.ID,
		OwnerName:   owner.FullName(),
		OwnerPhone:  owner.Phone,
		OwnerEmail:  owner.Email,
		Status:      entities.ListingStatusActive,
		Views:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update patches a listing. Only the owner may update; identifier and owner
// are immutable through the patch.
func (u *ListingUsecase) Update(ctx context.Context, callerID uuid.UUID, id string, input *entities.UpdateListingInput) (*entities.Listing, error) {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}

	listing, err := u.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != callerID {
		return nil, domainerrors.Forbidden("You can only update your own listings")
	}

	applyListingPatch(listing, input)
	listing.UpdatedAt = time.Now()

	if err := u.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing. Only the owner may delete.
func (u *ListingUsecase) Delete(ctx context.Context, callerID uuid.UUID, id string) error {
	listingID, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrNotFound
	}

	listing, err := u.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.OwnerID != callerID {
		return domainerrors.Forbidden("You can only delete your own listings")
	}

	return u.listingRepo.Delete(ctx, listingID)
}

// ListByOwner returns all listings owned by the caller
func (u *ListingUsecase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Listing, error) {
	return u.listingRepo.ListByOwner(ctx, ownerID)
}

func applyListingPatch(listing *entities.Listing, input *entities.UpdateListingInput) {
	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Type != nil {
		listing.Type = *input.Type
	}
	if input.ListingType != nil {
		listing.ListingType = entities.ListingType(*input.ListingType)
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.State != nil {
		listing.State = *input.State
	}
	if input.Bedrooms.Valid {
		listing.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms.Valid {
		listing.Bathrooms = input.Bathrooms
	}
	if input.Size.Valid {
		listing.Size = input.Size
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Images != nil {
		listing.Images = input.Images
	}
	if input.Status != nil {
		listing.Status = entities.ListingStatus(*input.Status)
	}
}
