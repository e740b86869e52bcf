package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
)

// MaintenanceRepository defines maintenance request data operations
type MaintenanceRepository interface {
	Create(ctx context.Context, request *entities.MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MaintenanceStatus, completedAt *time.Time) error
	GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.MaintenanceRequest, error)
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*entities.MaintenanceRequest, error)
}
