package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/infrastructure/models"
)

// LeaseRepository implements lease data operations
type LeaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository creates a new lease repository
func NewLeaseRepository(db *gorm.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

// Create creates a new lease
func (r *LeaseRepository) Create(ctx context.Context, lease *entities.Lease) error {
	if lease.ID == uuid.Nil {
		lease.ID = uuid.New()
	}
	m := &models.Lease{
		ID:           lease.ID,
		PropertyID:   lease.PropertyID,
		TenantID:     lease.TenantID,
		StartDate:    lease.StartDate,
		EndDate:      lease.EndDate,
		MonthlyRent:  lease.MonthlyRent,
		Terms:        lease.Terms,
		DocumentPath: lease.DocumentPath.Ptr(),
		IsActive:     lease.IsActive,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	lease.CreatedAt = m.CreatedAt
	lease.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a lease by ID with its property and tenant
func (r *LeaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lease, error) {
	var m models.Lease
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Property").Preload("Tenant").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toLeaseEntity(&m), nil
}

// Update persists mutable lease fields
func (r *LeaseRepository) Update(ctx context.Context, lease *entities.Lease) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Lease{}).
		Where("id = ?", lease.ID).
		Updates(map[string]interface{}{
			"start_date":   lease.StartDate,
			"end_date":     lease.EndDate,
			"monthly_rent": lease.MonthlyRent,
			"terms":        lease.Terms,
			"is_active":    lease.IsActive,
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

// UpdateDocumentPath records the generated agreement document location
func (r *LeaseRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Lease{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"document_path": path,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByPropertyID returns the lease history of a property
func (r *LeaseRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.Lease, error) {
	var ms []models.Lease
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("start_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toLeaseEntities(ms), nil
}

// GetByTenantID returns all leases held by a tenant
func (r *LeaseRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*entities.Lease, error) {
	var ms []models.Lease
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Property").
		Where("tenant_id = ?", tenantID).
		Order("start_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toLeaseEntities(ms), nil
}

// HasOverlap reports whether any lease on the property intersects [start, end].
// Ended leases still count: history rows block re-letting the same interval.
func (r *LeaseRepository) HasOverlap(ctx context.Context, propertyID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Lease{}).
		Where("property_id = ?", propertyID).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func toLeaseEntities(ms []models.Lease) []*entities.Lease {
	leases := make([]*entities.Lease, 0, len(ms))
	for i := range ms {
		leases = append(leases, toLeaseEntity(&ms[i]))
	}
	return leases
}

func toLeaseEntity(m *models.Lease) *entities.Lease {
	l := &entities.Lease{
		ID:           m.ID,
		PropertyID:   m.PropertyID,
		TenantID:     m.TenantID,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		MonthlyRent:  m.MonthlyRent,
		Terms:        m.Terms,
		DocumentPath: null.StringFromPtr(m.DocumentPath),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Property.ID != uuid.Nil {
		l.Property = toPropertyEntity(&m.Property)
	}
	if m.Tenant.ID != uuid.Nil {
		l.Tenant = toUserEntity(&m.Tenant)
	}
	if m.DeletedAt.Valid {
		l.DeletedAt = &m.DeletedAt.Time
	}
	return l
}
