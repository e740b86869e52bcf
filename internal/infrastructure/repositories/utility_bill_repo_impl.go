package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/infrastructure/models"
)

// UtilityBillRepository implements utility bill data operations
type UtilityBillRepository struct {
	db *gorm.DB
}

// NewUtilityBillRepository creates a new utility bill repository
func NewUtilityBillRepository(db *gorm.DB) *UtilityBillRepository {
	return &UtilityBillRepository{db: db}
}

// Create records a utility bill against a property
func (r *UtilityBillRepository) Create(ctx context.Context, bill *entities.UtilityBill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	m := &models.UtilityBill{
		ID:           bill.ID,
		PropertyID:   bill.PropertyID,
		BillType:     bill.BillType,
		Amount:       bill.Amount,
		BillingMonth: bill.BillingMonth,
		IsPaid:       bill.IsPaid,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	bill.CreatedAt = m.CreatedAt
	bill.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByPropertyID returns all bills recorded for a property
func (r *UtilityBillRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.UtilityBill, error) {
	var ms []models.UtilityBill
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("billing_month DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	bills := make([]*entities.UtilityBill, 0, len(ms))
	for i := range ms {
		bills = append(bills, toUtilityBillEntity(&ms[i]))
	}
	return bills, nil
}

// MarkPaid flags a bill as settled
func (r *UtilityBillRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.UtilityBill{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_paid":    true,
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

func toUtilityBillEntity(m *models.UtilityBill) *entities.UtilityBill {
	return &entities.UtilityBill{
		ID:           m.ID,
		PropertyID:   m.PropertyID,
		BillType:     m.BillType,
		Amount:       m.Amount,
		BillingMonth: m.BillingMonth,
		IsPaid:       m.IsPaid,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
