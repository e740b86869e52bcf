package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/infrastructure/models"
)

// MaintenanceRepository implements maintenance request data operations
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create creates a new maintenance request
func (r *MaintenanceRepository) Create(ctx context.Context, request *entities.MaintenanceRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	m := &models.MaintenanceRequest{
		ID:          request.ID,
		PropertyID:  request.PropertyID,
		TenantID:    request.TenantID,
		Description: request.Description,
		RequestDate: request.RequestDate,
		Status:      string(request.Status),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	request.CreatedAt = m.CreatedAt
	request.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a maintenance request by ID
func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Tenant").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toMaintenanceEntity(&m), nil
}

// UpdateStatus transitions the request, stamping completion when provided
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MaintenanceStatus, completedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.MaintenanceRequest{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByPropertyID returns all requests raised against a property
func (r *MaintenanceRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	var ms []models.MaintenanceRequest
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Tenant").
		Where("property_id = ?", propertyID).
		Order("request_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toMaintenanceEntities(ms), nil
}

// GetByTenantID returns all requests raised by a tenant
func (r *MaintenanceRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	var ms []models.MaintenanceRequest
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("request_date DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toMaintenanceEntities(ms), nil
}

func toMaintenanceEntities(ms []models.MaintenanceRequest) []*entities.MaintenanceRequest {
	requests := make([]*entities.MaintenanceRequest, 0, len(ms))
	for i := range ms {
		requests = append(requests, toMaintenanceEntity(&ms[i]))
	}
	return requests
}

func toMaintenanceEntity(m *models.MaintenanceRequest) *entities.MaintenanceRequest {
	req := &entities.MaintenanceRequest{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		TenantID:    m.TenantID,
		Description: m.Description,
		RequestDate: m.RequestDate,
		CompletedAt: m.CompletedAt,
		Status:      entities.MaintenanceStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Tenant.ID != uuid.Nil {
		req.Tenant = toUserEntity(&m.Tenant)
	}
	return req
}
