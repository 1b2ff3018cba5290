package usecases

import (
	"context"

	"homeconnect.backend/internal/domain/entities"
	"homeconnect.backend/internal/domain/repositories"
)

// StatsUsecase aggregates catalog-wide counts
type StatsUsecase struct {
	userRepo    repositories.UserRepository
	listingRepo repositories.ListingRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(userRepo repositories.UserRepository, listingRepo repositories.ListingRepository) *StatsUsecase {
	return &StatsUsecase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

// GetStats returns user and listing totals
func (u *StatsUsecase) GetStats(ctx context.Context) (*entities.Stats, error) {
	totalUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalListings, err := u.listingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	forSale, err := u.listingRepo.CountByListingType(ctx, entities.ListingTypeSale)
	if err != nil {
		return nil, err
	}

	forRent, err := u.listingRepo.CountByListingType(ctx, entities.ListingTypeRent)
	if err != nil {
		return nil, err
	}

	return &entities.Stats{
		TotalUsers:      totalUsers,
		TotalListings:   totalListings,
		ListingsForSale: forSale,
		ListingsForRent: forRent,
	}, nil
}
