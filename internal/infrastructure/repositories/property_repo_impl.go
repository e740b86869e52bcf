package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	domainRepos "rentora.backend/internal/domain/repositories"
	"rentora.backend/internal/infrastructure/models"
)

// PropertyRepository implements property data operations
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property
func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	m := &models.Property{
		ID:          property.ID,
		LandlordID:  property.LandlordID,
		Title:       property.Title,
		Address:     property.Address,
		City:        property.City,
		Rent:        property.Rent,
		Deposit:     property.Deposit,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		Description: property.Description,
		IsAvailable: property.IsAvailable,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	property.CreatedAt = m.CreatedAt
	property.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a property by ID with its images
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	var m models.Property
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Images").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPropertyEntity(&m), nil
}

// Update persists mutable property fields
func (r *PropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", property.ID).
		Updates(map[string]interface{}{
			"title":       property.Title,
			"address":     property.Address,
			"city":        property.City,
			"rent":        property.Rent,
			"deposit":     property.Deposit,
			"bedrooms":    property.Bedrooms,
			"bathrooms":   property.Bathrooms,
			"description": property.Description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft-deletes a property and hard-deletes its child records
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Property{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	// Cascade for drivers without FK enforcement (sqlite in tests).
	db.WithContext(ctx).Where("property_id = ?", id).Delete(&models.PropertyImage{})
	db.WithContext(ctx).Where("property_id = ?", id).Delete(&models.UtilityBill{})
	db.WithContext(ctx).Where("property_id = ?", id).Delete(&models.MaintenanceRequest{})
	db.WithContext(ctx).Where("property_id = ?", id).Delete(&models.Lease{})
	return nil
}

// SetAvailability flips the availability flag
func (r *PropertyRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_available": available,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByLandlordID returns all properties owned by a landlord
func (r *PropertyRepository) GetByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*entities.Property, error) {
	var ms []models.Property
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("landlord_id = ?", landlordID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	properties := make([]*entities.Property, 0, len(ms))
	for i := range ms {
		properties = append(properties, toPropertyEntity(&ms[i]))
	}
	return properties, nil
}

var searchSortColumns = map[string]string{
	"rent":      "rent",
	"bedrooms":  "bedrooms",
	"bathrooms": "bathrooms",
	"date":      "created_at",
}

// Search returns available properties matching the filter, with total count
func (r *PropertyRepository) Search(ctx context.Context, filter domainRepos.PropertySearchFilter) ([]*entities.Property, int, error) {
	q := r.db.WithContext(ctx).Model(&models.Property{}).Where("is_available = ?", true)
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.MinRent > 0 {
		q = q.Where("rent >= ?", filter.MinRent)
	}
	if filter.MaxRent > 0 {
		q = q.Where("rent <= ?", filter.MaxRent)
	}
	if filter.Bedrooms > 0 {
		q = q.Where("bedrooms = ?", filter.Bedrooms)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := searchSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := column + " ASC"
	if filter.SortDesc {
		order = column + " DESC"
	}

	var ms []models.Property
	if err := q.Preload("Images").
		Order(order).
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	properties := make([]*entities.Property, 0, len(ms))
	for i := range ms {
		properties = append(properties, toPropertyEntity(&ms[i]))
	}
	return properties, int(total), nil
}

// AddImages persists image records for a property
func (r *PropertyRepository) AddImages(ctx context.Context, images []*entities.PropertyImage) error {
	if len(images) == 0 {
		return nil
	}
	ms := make([]models.PropertyImage, 0, len(images))
	for _, img := range images {
		if img.ID == uuid.Nil {
			img.ID = uuid.New()
		}
		ms = append(ms, models.PropertyImage{
			ID:         img.ID,
			PropertyID: img.PropertyID,
			Path:       img.Path,
		})
	}
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(&ms).Error
}

// GetImages returns the images of a property
func (r *PropertyRepository) GetImages(ctx context.Context, propertyID uuid.UUID) ([]*entities.PropertyImage, error) {
	var ms []models.PropertyImage
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	images := make([]*entities.PropertyImage, 0, len(ms))
	for i := range ms {
		images = append(images, toPropertyImageEntity(&ms[i]))
	}
	return images, nil
}

func toPropertyEntity(m *models.Property) *entities.Property {
	p := &entities.Property{
		ID:          m.ID,
		LandlordID:  m.LandlordID,
		Title:       m.Title,
		Address:     m.Address,
		City:        m.City,
		Rent:        m.Rent,
		Deposit:     m.Deposit,
		Bedrooms:    m.Bedrooms,
		Bathrooms:   m.Bathrooms,
		Description: m.Description,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Images {
		p.Images = append(p.Images, toPropertyImageEntity(&m.Images[i]))
	}
	if m.DeletedAt.Valid {
		p.DeletedAt = &m.DeletedAt.Time
	}
	return p
}

func toPropertyImageEntity(m *models.PropertyImage) *entities.PropertyImage {
	return &entities.PropertyImage{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Path:       m.Path,
		CreatedAt:  m.CreatedAt,
	}
}
