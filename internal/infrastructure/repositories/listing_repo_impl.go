package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/infrastructure/models"
)

// ListingRepository implements listing data operations
type ListingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create creates a new listing
func (r *ListingRepository) Create(ctx context.Context, listing *entities.Listing) error {
	return r.db.WithContext(ctx).Create(r.toModel(listing)).Error
}

// GetByID gets a listing by ID
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Listing, error) {
	var m models.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists listings matching the given filter conjunction, in storage order
func (r *ListingRepository) List(ctx context.Context, filters entities.ListingFilters) ([]*entities.Listing, error) {
	query := r.db.WithContext(ctx).Model(&models.Listing{})

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.ListingType != "" {
		query = query.Where("listing_type = ?", filters.ListingType)
	}
	if filters.State != "" {
		query = query.Where("state = ?", filters.State)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var listingModels []models.Listing
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]*entities.Listing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, r.toEntity(&listingModels[i]))
	}
	return listings, nil
}

// ListByOwner lists all listings owned by the given account
func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Listing, error) {
	var listingModels []models.Listing
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]*entities.Listing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, r.toEntity(&listingModels[i]))
	}
	return listings, nil
}

// Update rewrites a listing row
func (r *ListingRepository) Update(ctx context.Context, listing *entities.Listing) error {
	result := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", listing.ID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(r.toModel(listing))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a listing
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a listing
func (r *ListingRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// Count counts all listings
func (r *ListingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Listing{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByListingType counts listings of one kind (sale or rent)
func (r *ListingRepository) CountByListingType(ctx context.Context, listingType entities.ListingType) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("listing_type = ?", string(listingType)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ListingRepository) toModel(l *entities.Listing) *models.Listing {
	return &models.Listing{
		ID:          l.ID,
		Title:       l.Title,
		Type:        l.Type,
		ListingType: string(l.ListingType),
		Price:       l.Price,
		Location:    l.Location,
		State:       l.State,
		Bedrooms:    l.Bedrooms.Ptr(),
		Bathrooms:   l.Bathrooms.Ptr(),
		Size:        l.Size.Ptr(),
		Description: l.Description,
		Images:      l.Images,
		OwnerID:     l.OwnerID,
		OwnerName:   l.OwnerName,
		OwnerPhone:  l.OwnerPhone,
		OwnerEmail:  l.OwnerEmail,
		Status:      string(l.Status),
		Views:       l.Views,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (r *ListingRepository) toEntity(m *models.Listing) *entities.Listing {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	return &entities.Listing{
		ID:          m.ID,
		Title:       m.Title,
		Type:        m.Type,
		ListingType: entities.ListingType(m.ListingType),
		Price:       m.Price,
		Location:    m.Location,
		State:       m.State,
		Bedrooms:    null.Int64FromPtr(m.Bedrooms),
		Bathrooms:   null.Int64FromPtr(m.Bathrooms),
		Size:        null.Int64FromPtr(m.Size),
		Description: m.Description,
		Images:      images,
		OwnerID:     m.OwnerID,
		OwnerName:   m.OwnerName,
		OwnerPhone:  m.OwnerPhone,
		OwnerEmail:  m.OwnerEmail,
		Status:      entities.ListingStatus(m.Status),
		Views:       m.Views,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
