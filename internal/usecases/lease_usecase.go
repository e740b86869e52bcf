package usecases

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/domain/repositories"
	"rentora.backend/internal/infrastructure/email"
	"rentora.backend/pkg/logger"
)

// LeaseUsecase handles lease lifecycle business logic
type LeaseUsecase struct {
	leaseRepo    repositories.LeaseRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	uow          repositories.UnitOfWork
	mailer       email.Sender
	renderer     DocumentRenderer
	store        FileStore
}

// NewLeaseUsecase creates a new lease usecase
func NewLeaseUsecase(
	leaseRepo repositories.LeaseRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	mailer email.Sender,
	renderer DocumentRenderer,
	store FileStore,
) *LeaseUsecase {
	return &LeaseUsecase{
		leaseRepo:    leaseRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		uow:          uow,
		mailer:       mailer,
		renderer:     renderer,
		store:        store,
	}
}

// CreateLease creates a lease over an available property. The overlap
// check, lease insert and availability flip run in one transaction.
func (u *LeaseUsecase) CreateLease(ctx context.Context, input *entities.CreateLeaseInput) (*entities.Lease, error) {
	propertyID, err := uuid.Parse(input.PropertyID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	tenantID, err := uuid.Parse(input.TenantID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.NewError("end date must be after start date", domainerrors.ErrInvalidInput)
	}

	tenant, err := u.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant.Role != entities.UserRoleTenant {
		return nil, domainerrors.NewError("lease party must be a tenant", domainerrors.ErrInvalidInput)
	}
	if !tenant.NIDVerified {
		return nil, domainerrors.ErrNotVerified
	}

	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !property.IsAvailable {
		return nil, domainerrors.ErrPropertyUnavailable
	}

	lease := &entities.Lease{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MonthlyRent: input.MonthlyRent,
		Terms:       input.Terms,
		IsActive:    true,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		overlap, err := u.leaseRepo.HasOverlap(txCtx, propertyID, input.StartDate, input.EndDate)
		if err != nil {
			return err
		}
		if overlap {
			return domainerrors.ErrLeaseOverlap
		}
		if err := u.leaseRepo.Create(txCtx, lease); err != nil {
			return err
		}
		return u.propertyRepo.SetAvailability(txCtx, propertyID, false)
	})
	if err != nil {
		return nil, err
	}

	u.notify(tenant.Email, "Lease created",
		fmt.Sprintf("<p>Your lease for <b>%s</b> starts on %s.</p>", property.Title, lease.StartDate.Format("2006-01-02")))

	return lease, nil
}

// GetLease gets a lease by ID
func (u *LeaseUsecase) GetLease(ctx context.Context, id uuid.UUID) (*entities.Lease, error) {
	return u.leaseRepo.GetByID(ctx, id)
}

// GetLeasesByProperty lists leases on a property
func (u *LeaseUsecase) GetLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.Lease, error) {
	return u.leaseRepo.GetByPropertyID(ctx, propertyID)
}

// GetLeasesByTenant lists a tenant's leases
func (u *LeaseUsecase) GetLeasesByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.Lease, error) {
	return u.leaseRepo.GetByTenantID(ctx, tenantID)
}

// EndLease deactivates a lease and releases the property, atomically
func (u *LeaseUsecase) EndLease(ctx context.Context, id uuid.UUID) (*entities.Lease, error) {
	lease, err := u.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lease.IsActive {
		return nil, domainerrors.NewError("lease is already ended", domainerrors.ErrBadRequest)
	}

	now := timeNow()
	lease.IsActive = false
	if now.Before(lease.EndDate) {
		lease.EndDate = now
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.leaseRepo.Update(txCtx, lease); err != nil {
			return err
		}
		return u.propertyRepo.SetAvailability(txCtx, lease.PropertyID, true)
	})
	if err != nil {
		return nil, err
	}

	return lease, nil
}

// RenewLease extends an active lease to a later end date
func (u *LeaseUsecase) RenewLease(ctx context.Context, id uuid.UUID, input *entities.RenewLeaseInput) (*entities.Lease, error) {
	lease, err := u.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lease.IsActive {
		return nil, domainerrors.NewError("cannot renew an ended lease", domainerrors.ErrBadRequest)
	}
	if !input.NewEndDate.After(lease.EndDate) {
		return nil, domainerrors.NewError("new end date must be after current end date", domainerrors.ErrInvalidInput)
	}

	lease.EndDate = input.NewEndDate
	if err := u.leaseRepo.Update(ctx, lease); err != nil {
		return nil, err
	}

	return lease, nil
}

// GenerateAgreement renders the lease agreement PDF, stores it and
// records the document path on the lease.
func (u *LeaseUsecase) GenerateAgreement(ctx context.Context, id uuid.UUID) (string, error) {
	lease, err := u.leaseRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	property, err := u.propertyRepo.GetByID(ctx, lease.PropertyID)
	if err != nil {
		return "", err
	}
	tenant, err := u.userRepo.GetByID(ctx, lease.TenantID)
	if err != nil {
		return "", err
	}

	pdfBytes, err := u.renderer.LeaseAgreement(lease, property, tenant)
	if err != nil {
		return "", err
	}

	path, err := u.store.SaveDocument(fmt.Sprintf("lease-%s.pdf", lease.ID), bytes.NewReader(pdfBytes))
	if err != nil {
		return "", err
	}

	if err := u.leaseRepo.UpdateDocumentPath(ctx, lease.ID, path); err != nil {
		return "", err
	}

	u.notifyWithAttachment(tenant.Email, "Your lease agreement",
		"<p>Your lease agreement is attached.</p>", "lease-agreement.pdf", pdfBytes)

	return path, nil
}

// notify sends best-effort email off the request path
func (u *LeaseUsecase) notify(to, subject, body string) {
	if u.mailer == nil {
		return
	}
	go func() {
		ctx := context.Background()
		if err := u.mailer.Send(ctx, to, subject, body); err != nil {
			logger.Warn(ctx, "lease notification failed", zap.String("to", to), zap.Error(err))
		}
	}()
}

func (u *LeaseUsecase) notifyWithAttachment(to, subject, body, filename string, attachment []byte) {
	if u.mailer == nil {
		return
	}
	go func() {
		ctx := context.Background()
		if err := u.mailer.SendWithAttachment(ctx, to, subject, body, filename, attachment); err != nil {
			logger.Warn(ctx, "lease notification failed", zap.String("to", to), zap.Error(err))
		}
	}()
}
