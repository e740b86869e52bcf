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

// PaymentRepository implements rent payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new rent payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.RentPayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	m := &models.RentPayment{
		ID:          payment.ID,
		LeaseID:     payment.LeaseID,
		Amount:      payment.Amount,
		DueDate:     payment.DueDate,
		PaymentDate: payment.PaymentDate,
		Status:      string(payment.Status),
		SlipPath:    payment.SlipPath.Ptr(),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	payment.CreatedAt = m.CreatedAt
	payment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a rent payment by ID with its lease
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RentPayment, error) {
	var m models.RentPayment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Lease").Preload("Lease.Tenant").Preload("Lease.Property").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPaymentEntity(&m), nil
}

// MarkPaid stamps the payment date and flips status to PAID. The guard on the
// stored status makes the PAID transition race-safe: a second writer matches
// zero rows.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.RentPayment{}).
		Where("id = ? AND status <> ?", id, string(entities.PaymentStatusPaid)).
		Updates(map[string]interface{}{
			"status":       string(entities.PaymentStatusPaid),
			"payment_date": paidAt,
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

// UpdateSlipPath records the uploaded payment slip location
func (r *PaymentRepository) UpdateSlipPath(ctx context.Context, id uuid.UUID, path string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.RentPayment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"slip_path":  path,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByLeaseID returns all payments under a lease
func (r *PaymentRepository) GetByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*entities.RentPayment, error) {
	var ms []models.RentPayment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("due_date ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toPaymentEntities(ms), nil
}

// GetByTenantID returns a tenant's payment history joined through leases
func (r *PaymentRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.RentPayment, int, error) {
	base := r.db.WithContext(ctx).Model(&models.RentPayment{}).
		Joins("JOIN leases ON leases.id = rent_payments.lease_id").
		Where("leases.tenant_id = ?", tenantID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.RentPayment
	if err := base.
		Order("rent_payments.due_date DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return toPaymentEntities(ms), int(total), nil
}

// GetOverdue returns pending payments whose due date is before the given time
func (r *PaymentRepository) GetOverdue(ctx context.Context, before time.Time) ([]*entities.RentPayment, error) {
	var ms []models.RentPayment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Lease").Preload("Lease.Tenant").
		Where("status = ? AND due_date < ?", string(entities.PaymentStatusPending), before).
		Order("due_date ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toPaymentEntities(ms), nil
}

// GetDueBetween returns pending payments due inside [from, to]
func (r *PaymentRepository) GetDueBetween(ctx context.Context, from, to time.Time) ([]*entities.RentPayment, error) {
	var ms []models.RentPayment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Lease").Preload("Lease.Tenant").
		Where("status = ? AND due_date BETWEEN ? AND ?", string(entities.PaymentStatusPending), from, to).
		Order("due_date ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return toPaymentEntities(ms), nil
}

func toPaymentEntities(ms []models.RentPayment) []*entities.RentPayment {
	payments := make([]*entities.RentPayment, 0, len(ms))
	for i := range ms {
		payments = append(payments, toPaymentEntity(&ms[i]))
	}
	return payments
}

func toPaymentEntity(m *models.RentPayment) *entities.RentPayment {
	p := &entities.RentPayment{
		ID:          m.ID,
		LeaseID:     m.LeaseID,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		PaymentDate: m.PaymentDate,
		Status:      entities.PaymentStatus(m.Status),
		SlipPath:    null.StringFromPtr(m.SlipPath),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Lease.ID != uuid.Nil {
		p.Lease = toLeaseEntity(&m.Lease)
	}
	if m.DeletedAt.Valid {
		p.DeletedAt = &m.DeletedAt.Time
	}
	return p
}
