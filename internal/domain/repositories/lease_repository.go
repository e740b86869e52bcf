package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
)

// LeaseRepository defines lease data operations
type LeaseRepository interface {
	Create(ctx context.Context, lease *entities.Lease) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Lease, error)
	Update(ctx context.Context, lease *entities.Lease) error
	UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error
	GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.Lease, error)
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*entities.Lease, error)
	// HasOverlap reports whether any lease on the property intersects [start, end].
	HasOverlap(ctx context.Context, propertyID uuid.UUID, start, end time.Time) (bool, error)
}
