package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
)

// PaymentRepository defines rent payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.RentPayment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.RentPayment, error)
	// MarkPaid stamps the payment date and flips status to PAID.
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error
	UpdateSlipPath(ctx context.Context, id uuid.UUID, path string) error
	GetByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*entities.RentPayment, error)
	GetByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.RentPayment, int, error)
	// GetOverdue returns pending payments whose due date is before the given time.
	GetOverdue(ctx context.Context, before time.Time) ([]*entities.RentPayment, error)
	// GetDueBetween returns pending payments due inside [from, to].
	GetDueBetween(ctx context.Context, from, to time.Time) ([]*entities.RentPayment, error)
}
