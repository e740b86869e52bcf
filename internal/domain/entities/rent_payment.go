package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents rent payment status
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	// PaymentStatusOverdue is derived, never stored: a PENDING payment past its due date.
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

// RentPayment represents a rent payment record under a lease
type RentPayment struct {
	ID          uuid.UUID     `json:"id"`
	LeaseID     uuid.UUID     `json:"leaseId"`
	Amount      float64       `json:"amount"`
	DueDate     time.Time     `json:"dueDate"`
	PaymentDate *time.Time    `json:"paymentDate,omitempty"`
	Status      PaymentStatus `json:"status"`
	SlipPath    null.String   `json:"slipPath,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	DeletedAt   *time.Time    `json:"-"`

	// Joins
	Lease *Lease `json:"lease,omitempty"`
}

// EffectiveStatus returns the stored status, substituting OVERDUE for a
// pending payment whose due date has passed.
func (p *RentPayment) EffectiveStatus(now time.Time) PaymentStatus {
	if p.Status == PaymentStatusPending && now.After(p.DueDate) {
		return PaymentStatusOverdue
	}
	return p.Status
}

// CreatePaymentInput represents input for creating a rent payment record
type CreatePaymentInput struct {
	LeaseID string    `json:"leaseId" binding:"required,uuid"`
	Amount  float64   `json:"amount" binding:"required,gt=0"`
	DueDate time.Time `json:"dueDate" binding:"required"`
}

// UpdatePaymentStatusInput represents input for a payment status transition
type UpdatePaymentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// LateFeeResponse represents a late-fee calculation result
type LateFeeResponse struct {
	PaymentID uuid.UUID `json:"paymentId"`
	DaysLate  int       `json:"daysLate"`
	LateFee   float64   `json:"lateFee"`
}

// VerifyPaymentResponse represents the result of a payment verification
type VerifyPaymentResponse struct {
	PaymentID uuid.UUID `json:"paymentId"`
	Verified  bool      `json:"verified"`
}
