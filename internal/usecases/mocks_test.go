package usecases_test

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"homeconnect.backend/internal/domain/entities"
	"homeconnect.backend/internal/infrastructure/paystack"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *entities.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Listing), args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context, filters entities.ListingFilters) ([]*entities.Listing, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Listing), args.Error(1)
}

func (m *MockListingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Listing), args.Error(1)
}

func (m *MockListingRepository) Update(ctx context.Context, listing *entities.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockListingRepository) CountByListingType(ctx context.Context, listingType entities.ListingType) (int64, error) {
	args := m.Called(ctx, listingType)
	return args.Get(0).(int64), args.Error(1)
}

type MockUnlockRepository struct {
	mock.Mock
}

func (m *MockUnlockRepository) Create(ctx context.Context, unlock *entities.Unlock) error {
	args := m.Called(ctx, unlock)
	return args.Error(0)
}

func (m *MockUnlockRepository) GetByUserAndListing(ctx context.Context, userID, listingID uuid.UUID) (*entities.Unlock, error) {
	args := m.Called(ctx, userID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Unlock), args.Error(1)
}

func (m *MockUnlockRepository) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Initialize(ctx context.Context, input *paystack.InitializeRequest) (json.RawMessage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPaymentProvider) Verify(ctx context.Context, reference string) (*paystack.VerifyResponse, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paystack.VerifyResponse), args.Error(1)
}
