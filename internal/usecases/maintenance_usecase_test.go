package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/usecases"
)

type maintenanceTestDeps struct {
	maintRepo    *MockMaintenanceRepository
	propertyRepo *MockPropertyRepository
	userRepo     *MockUserRepository
}

func newMaintenanceUsecaseForTest() (*usecases.MaintenanceUsecase, *maintenanceTestDeps) {
	d := &maintenanceTestDeps{
		maintRepo:    new(MockMaintenanceRepository),
		propertyRepo: new(MockPropertyRepository),
		userRepo:     new(MockUserRepository),
	}
	uc := usecases.NewMaintenanceUsecase(d.maintRepo, d.propertyRepo, d.userRepo, nil)
	return uc, d
}

func TestMaintenanceUsecase_CreateRequest_Success(t *testing.T) {
	uc, d := newMaintenanceUsecaseForTest()

	tenantID := uuid.New()
	property := &entities.Property{ID: uuid.New(), LandlordID: uuid.New(), Title: "Flat 3B"}

	d.propertyRepo.On("GetByID", mock.Anything, property.ID).Return(property, nil).Once()
	d.maintRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.MaintenanceRequest")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.MaintenanceRequest).ID = uuid.New()
	}).Once()

	request, err := uc.CreateRequest(context.Background(), tenantID, &entities.CreateMaintenanceInput{
		PropertyID:  property.ID.String(),
		Description: "Kitchen sink is leaking",
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusPending, request.Status)
	assert.False(t, request.RequestDate.IsZero())
	assert.Nil(t, request.CompletedAt)
	d.maintRepo.AssertExpectations(t)
}

func TestMaintenanceUsecase_CreateRequest_PropertyNotFound(t *testing.T) {
	uc, d := newMaintenanceUsecaseForTest()

	id := uuid.New()
	d.propertyRepo.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.CreateRequest(context.Background(), uuid.New(), &entities.CreateMaintenanceInput{
		PropertyID:  id.String(),
		Description: "Broken window",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMaintenanceUsecase_CreateRequest_BadPropertyID(t *testing.T) {
	uc, _ := newMaintenanceUsecaseForTest()

	_, err := uc.CreateRequest(context.Background(), uuid.New(), &entities.CreateMaintenanceInput{
		PropertyID:  "nope",
		Description: "Broken window",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestMaintenanceUsecase_UpdateStatus_InProgress(t *testing.T) {
	uc, d := newMaintenanceUsecaseForTest()

	request := &entities.MaintenanceRequest{ID: uuid.New(), Status: entities.MaintenanceStatusPending}
	d.maintRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil).Once()
	d.maintRepo.On("UpdateStatus", mock.Anything, request.ID, entities.MaintenanceStatusInProgress, (*time.Time)(nil)).Return(nil).Once()

	updated, err := uc.UpdateStatus(context.Background(), request.ID, &entities.UpdateMaintenanceStatusInput{Status: "IN_PROGRESS"})
	assert.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusInProgress, updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestMaintenanceUsecase_UpdateStatus_ResolvedStampsCompletion(t *testing.T) {
	uc, d := newMaintenanceUsecaseForTest()

	request := &entities.MaintenanceRequest{ID: uuid.New(), TenantID: uuid.New(), Status: entities.MaintenanceStatusInProgress}
	d.maintRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil).Once()
	d.maintRepo.On("UpdateStatus", mock.Anything, request.ID, entities.MaintenanceStatusResolved, mock.AnythingOfType("*time.Time")).Return(nil).Once()

	updated, err := uc.UpdateStatus(context.Background(), request.ID, &entities.UpdateMaintenanceStatusInput{Status: "RESOLVED"})
	assert.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusResolved, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
}

func TestMaintenanceUsecase_UpdateStatus_ResolvedIsTerminal(t *testing.T) {
	uc, d := newMaintenanceUsecaseForTest()

	request := &entities.MaintenanceRequest{ID: uuid.New(), Status: entities.MaintenanceStatusResolved}
	d.maintRepo.On("GetByID", mock.Anything, request.ID).Return(request, nil).Once()

	_, err := uc.UpdateStatus(context.Background(), request.ID, &entities.UpdateMaintenanceStatusInput{Status: "IN_PROGRESS"})
	assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
	d.maintRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMaintenanceUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	uc, _ := newMaintenanceUsecaseForTest()

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), &entities.UpdateMaintenanceStatusInput{Status: "CLOSED"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestMaintenanceUsecase_GetRequestsByTenant(t *testing.T) {
	uc, d := newMaintenanceUsecaseForTest()

	tenantID := uuid.New()
	requests := []*entities.MaintenanceRequest{{ID: uuid.New(), TenantID: tenantID}}
	d.maintRepo.On("GetByTenantID", mock.Anything, tenantID).Return(requests, nil).Once()

	got, err := uc.GetRequestsByTenant(context.Background(), tenantID)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
