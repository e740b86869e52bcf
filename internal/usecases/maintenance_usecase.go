package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/domain/repositories"
	"rentora.backend/internal/infrastructure/email"
	"rentora.backend/pkg/logger"
)

// MaintenanceUsecase handles maintenance request business logic
type MaintenanceUsecase struct {
	maintRepo    repositories.MaintenanceRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	mailer       email.Sender
}

// NewMaintenanceUsecase creates a new maintenance usecase
func NewMaintenanceUsecase(
	maintRepo repositories.MaintenanceRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	mailer email.Sender,
) *MaintenanceUsecase {
	return &MaintenanceUsecase{
		maintRepo:    maintRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		mailer:       mailer,
	}
}

// CreateRequest opens a pending maintenance request and notifies the
// property's landlord.
func (u *MaintenanceUsecase) CreateRequest(ctx context.Context, tenantID uuid.UUID, input *entities.CreateMaintenanceInput) (*entities.MaintenanceRequest, error) {
	propertyID, err := uuid.Parse(input.PropertyID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	request := &entities.MaintenanceRequest{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		Description: input.Description,
		RequestDate: timeNow(),
		Status:      entities.MaintenanceStatusPending,
	}

	if err := u.maintRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	u.notifyLandlord(property, request)

	return request, nil
}

// GetRequest gets a maintenance request by ID
func (u *MaintenanceUsecase) GetRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return u.maintRepo.GetByID(ctx, id)
}

// UpdateStatus moves a request along its lifecycle. RESOLVED stamps the
// completion time and notifies the tenant.
func (u *MaintenanceUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMaintenanceStatusInput) (*entities.MaintenanceRequest, error) {
	status := entities.MaintenanceStatus(input.Status)
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	request, err := u.maintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status == entities.MaintenanceStatusResolved {
		return nil, domainerrors.NewError("request is already resolved", domainerrors.ErrBadRequest)
	}

	var completedAt *time.Time
	if status == entities.MaintenanceStatusResolved {
		now := timeNow()
		completedAt = &now
	}

	if err := u.maintRepo.UpdateStatus(ctx, id, status, completedAt); err != nil {
		return nil, err
	}
	request.Status = status
	request.CompletedAt = completedAt

	if status == entities.MaintenanceStatusResolved {
		u.notifyTenant(request)
	}

	return request, nil
}

// GetRequestsByProperty lists requests raised against a property
func (u *MaintenanceUsecase) GetRequestsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	return u.maintRepo.GetByPropertyID(ctx, propertyID)
}

// GetRequestsByTenant lists a tenant's requests
func (u *MaintenanceUsecase) GetRequestsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	return u.maintRepo.GetByTenantID(ctx, tenantID)
}

func (u *MaintenanceUsecase) notifyLandlord(property *entities.Property, request *entities.MaintenanceRequest) {
	if u.mailer == nil {
		return
	}
	go func() {
		ctx := context.Background()
		landlord, err := u.userRepo.GetByID(ctx, property.LandlordID)
		if err != nil {
			logger.Warn(ctx, "maintenance landlord lookup failed", zap.String("property_id", property.ID.String()), zap.Error(err))
			return
		}
		body := fmt.Sprintf("<p>New maintenance request for <b>%s</b>:</p><p>%s</p>", property.Title, request.Description)
		if err := u.mailer.Send(ctx, landlord.Email, "New maintenance request", body); err != nil {
			logger.Warn(ctx, "maintenance notification failed", zap.String("to", landlord.Email), zap.Error(err))
		}
	}()
}

func (u *MaintenanceUsecase) notifyTenant(request *entities.MaintenanceRequest) {
	if u.mailer == nil {
		return
	}
	go func() {
		ctx := context.Background()
		tenant, err := u.userRepo.GetByID(ctx, request.TenantID)
		if err != nil {
			logger.Warn(ctx, "maintenance tenant lookup failed", zap.String("request_id", request.ID.String()), zap.Error(err))
			return
		}
		if err := u.mailer.Send(ctx, tenant.Email, "Maintenance request resolved",
			"<p>Your maintenance request has been resolved.</p>"); err != nil {
			logger.Warn(ctx, "maintenance notification failed", zap.String("to", tenant.Email), zap.Error(err))
		}
	}()
}
