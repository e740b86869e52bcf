package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/domain/repositories"
	"rentora.backend/internal/infrastructure/email"
	"rentora.backend/pkg/logger"
)

// PaymentUsecase handles rent payment business logic
type PaymentUsecase struct {
	paymentRepo repositories.PaymentRepository
	leaseRepo   repositories.LeaseRepository
	userRepo    repositories.UserRepository
	mailer      email.Sender
	renderer    DocumentRenderer
	store       FileStore

	// lateFeeDailyRate is the flat fee charged per day past due
	lateFeeDailyRate float64
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	paymentRepo repositories.PaymentRepository,
	leaseRepo repositories.LeaseRepository,
	userRepo repositories.UserRepository,
	mailer email.Sender,
	renderer DocumentRenderer,
	store FileStore,
	lateFeeDailyRate float64,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo:      paymentRepo,
		leaseRepo:        leaseRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		renderer:         renderer,
		store:            store,
		lateFeeDailyRate: lateFeeDailyRate,
	}
}

// CreatePayment records a pending rent payment under a lease
func (u *PaymentUsecase) CreatePayment(ctx context.Context, input *entities.CreatePaymentInput) (*entities.RentPayment, error) {
	leaseID, err := uuid.Parse(input.LeaseID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	lease, err := u.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if !lease.IsActive {
		return nil, domainerrors.NewError("cannot record payment on an ended lease", domainerrors.ErrBadRequest)
	}

	payment := &entities.RentPayment{
		LeaseID: leaseID,
		Amount:  input.Amount,
		DueDate: input.DueDate,
		Status:  entities.PaymentStatusPending,
	}

	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment gets a payment by ID with its effective status applied
func (u *PaymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*entities.RentPayment, error) {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payment.Status = payment.EffectiveStatus(timeNow())
	return payment, nil
}

// UpdateStatus transitions a payment's stored status. PAID is terminal
// and OVERDUE is derived, so the only real transition is to PAID.
func (u *PaymentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdatePaymentStatusInput) (*entities.RentPayment, error) {
	status := entities.PaymentStatus(input.Status)
	switch status {
	case entities.PaymentStatusPaid:
	case entities.PaymentStatusPending:
		return nil, domainerrors.NewError("payments are created pending", domainerrors.ErrBadRequest)
	case entities.PaymentStatusOverdue:
		return nil, domainerrors.NewError("OVERDUE is derived from the due date and cannot be set", domainerrors.ErrBadRequest)
	default:
		return nil, domainerrors.ErrInvalidInput
	}

	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status == entities.PaymentStatusPaid {
		return nil, domainerrors.ErrPaymentFinal
	}

	paidAt := timeNow()
	if err := u.paymentRepo.MarkPaid(ctx, id, paidAt); err != nil {
		return nil, err
	}
	payment.Status = entities.PaymentStatusPaid
	payment.PaymentDate = &paidAt

	u.sendReceipt(payment)

	return payment, nil
}

// UploadSlip stores a payment slip file and records its path
func (u *PaymentUsecase) UploadSlip(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error) {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	path, err := u.store.SaveSlip(filename, r)
	if err != nil {
		return "", err
	}

	if err := u.paymentRepo.UpdateSlipPath(ctx, payment.ID, path); err != nil {
		return "", err
	}

	return path, nil
}

// LateFee computes the accrued late fee for a payment. Paid payments
// accrue nothing, whatever their payment date.
func (u *PaymentUsecase) LateFee(ctx context.Context, id uuid.UUID) (*entities.LateFeeResponse, error) {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &entities.LateFeeResponse{PaymentID: payment.ID}
	if payment.Status == entities.PaymentStatusPaid {
		return resp, nil
	}

	if now := timeNow(); now.After(payment.DueDate) {
		resp.DaysLate = int(now.Sub(payment.DueDate).Hours() / 24)
		resp.LateFee = float64(resp.DaysLate) * u.lateFeeDailyRate
	}

	return resp, nil
}

// Verify confirms a payment is settled: it must be PAID and carry an
// uploaded slip.
func (u *PaymentUsecase) Verify(ctx context.Context, id uuid.UUID) (*entities.VerifyPaymentResponse, error) {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.Status != entities.PaymentStatusPaid {
		return nil, domainerrors.NewError("payment is not paid", domainerrors.ErrBadRequest)
	}
	if !payment.SlipPath.Valid || payment.SlipPath.String == "" {
		return nil, domainerrors.NewError("no payment slip uploaded", domainerrors.ErrBadRequest)
	}

	return &entities.VerifyPaymentResponse{PaymentID: payment.ID, Verified: true}, nil
}

// GetPaymentsByLease lists payments under a lease with derived statuses
func (u *PaymentUsecase) GetPaymentsByLease(ctx context.Context, leaseID uuid.UUID) ([]*entities.RentPayment, error) {
	payments, err := u.paymentRepo.GetByLeaseID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	for _, p := range payments {
		p.Status = p.EffectiveStatus(now)
	}
	return payments, nil
}

// GetPaymentsByTenant lists a tenant's payments across leases
func (u *PaymentUsecase) GetPaymentsByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.RentPayment, int, error) {
	payments, total, err := u.paymentRepo.GetByTenantID(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	now := timeNow()
	for _, p := range payments {
		p.Status = p.EffectiveStatus(now)
	}
	return payments, total, nil
}

// GetOverduePayments lists pending payments past their due date
func (u *PaymentUsecase) GetOverduePayments(ctx context.Context) ([]*entities.RentPayment, error) {
	payments, err := u.paymentRepo.GetOverdue(ctx, timeNow())
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		p.Status = entities.PaymentStatusOverdue
	}
	return payments, nil
}

// sendReceipt emails the tenant a rent receipt PDF off the request path
func (u *PaymentUsecase) sendReceipt(payment *entities.RentPayment) {
	if u.mailer == nil || u.renderer == nil {
		return
	}
	go func() {
		ctx := context.Background()

		lease, err := u.leaseRepo.GetByID(ctx, payment.LeaseID)
		if err != nil {
			logger.Warn(ctx, "receipt lease lookup failed", zap.String("payment_id", payment.ID.String()), zap.Error(err))
			return
		}
		tenant, err := u.userRepo.GetByID(ctx, lease.TenantID)
		if err != nil {
			logger.Warn(ctx, "receipt tenant lookup failed", zap.String("payment_id", payment.ID.String()), zap.Error(err))
			return
		}

		pdfBytes, err := u.renderer.RentReceipt(payment, lease, tenant)
		if err != nil {
			logger.Warn(ctx, "receipt render failed", zap.String("payment_id", payment.ID.String()), zap.Error(err))
			return
		}

		body := fmt.Sprintf("<p>We received your rent payment of BDT %.2f. The receipt is attached.</p>", payment.Amount)
		if err := u.mailer.SendWithAttachment(ctx, tenant.Email, "Rent payment received", body, "rent-receipt.pdf", pdfBytes); err != nil {
			logger.Warn(ctx, "receipt email failed", zap.String("to", tenant.Email), zap.Error(err))
		}
	}()
}
