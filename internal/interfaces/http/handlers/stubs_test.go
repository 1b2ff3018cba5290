package handlers

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/infrastructure/paystack"
	"homeconnect.backend/internal/interfaces/http/middleware"
)

// asUser injects an authenticated identity the way AuthMiddleware would
func asUser(userID uuid.UUID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, email)
		c.Next()
	}
}

type userRepoStub struct {
	getByID    func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmail func(ctx context.Context, email string) (*entities.User, error)
	createFn   func(ctx context.Context, user *entities.User) error
	countFn    func(ctx context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmail != nil {
		return s.getByEmail(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type listingRepoStub struct {
	createFn       func(ctx context.Context, listing *entities.Listing) error
	getByID        func(ctx context.Context, id uuid.UUID) (*entities.Listing, error)
	listFn         func(ctx context.Context, filters entities.ListingFilters) ([]*entities.Listing, error)
	listByOwner    func(ctx context.Context, ownerID uuid.UUID) ([]*entities.Listing, error)
	updateFn       func(ctx context.Context, listing *entities.Listing) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	countFn        func(ctx context.Context) (int64, error)
	countByTypeFn  func(ctx context.Context, listingType entities.ListingType) (int64, error)
	incrementViews func(ctx context.Context, id uuid.UUID) error
}

func (s *listingRepoStub) Create(ctx context.Context, listing *entities.Listing) error {
	if s.createFn != nil {
		return s.createFn(ctx, listing)
	}
	return nil
}

func (s *listingRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Listing, error) {
	if s.getByID != nil {
		return s.getByID(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *listingRepoStub) List(ctx context.Context, filters entities.ListingFilters) ([]*entities.Listing, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filters)
	}
	return nil, nil
}

func (s *listingRepoStub) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Listing, error) {
	if s.listByOwner != nil {
		return s.listByOwner(ctx, ownerID)
	}
	return nil, nil
}

func (s *listingRepoStub) Update(ctx context.Context, listing *entities.Listing) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, listing)
	}
	return nil
}

func (s *listingRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *listingRepoStub) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if s.incrementViews != nil {
		return s.incrementViews(ctx, id)
	}
	return nil
}

func (s *listingRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *listingRepoStub) CountByListingType(ctx context.Context, listingType entities.ListingType) (int64, error) {
	if s.countByTypeFn != nil {
		return s.countByTypeFn(ctx, listingType)
	}
	return 0, nil
}

type unlockRepoStub struct {
	createFn            func(ctx context.Context, unlock *entities.Unlock) error
	getByUserAndListing func(ctx context.Context, userID, listingID uuid.UUID) (*entities.Unlock, error)
	existsFn            func(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

func (s *unlockRepoStub) Create(ctx context.Context, unlock *entities.Unlock) error {
	if s.createFn != nil {
		return s.createFn(ctx, unlock)
	}
	return nil
}

func (s *unlockRepoStub) GetByUserAndListing(ctx context.Context, userID, listingID uuid.UUID) (*entities.Unlock, error) {
	if s.getByUserAndListing != nil {
		return s.getByUserAndListing(ctx, userID, listingID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *unlockRepoStub) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, userID, listingID)
	}
	return false, nil
}

type providerStub struct {
	initializeFn func(ctx context.Context, input *paystack.InitializeRequest) (json.RawMessage, error)
	verifyFn     func(ctx context.Context, reference string) (*paystack.VerifyResponse, error)
}

func (s *providerStub) Initialize(ctx context.Context, input *paystack.InitializeRequest) (json.RawMessage, error) {
	return s.initializeFn(ctx, input)
}

func (s *providerStub) Verify(ctx context.Context, reference string) (*paystack.VerifyResponse, error) {
	return s.verifyFn(ctx, reference)
}
