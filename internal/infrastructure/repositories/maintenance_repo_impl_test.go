package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
)

func TestMaintenanceRepository_BasicFlow(t *testing.T) {
	db := newTestDB(t)
	createAllTables(t, db)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	propertyID := uuid.New()
	tenantID := uuid.New()
	req := &entities.MaintenanceRequest{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		Description: "Kitchen tap is leaking",
		RequestDate: time.Now(),
		Status:      entities.MaintenanceStatusPending,
	}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MaintenanceStatusPending, got.Status)
	require.Nil(t, got.CompletedAt)

	require.NoError(t, repo.UpdateStatus(ctx, req.ID, entities.MaintenanceStatusInProgress, nil))

	inProgress, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MaintenanceStatusInProgress, inProgress.Status)
	require.Nil(t, inProgress.CompletedAt)

	completedAt := time.Now()
	require.NoError(t, repo.UpdateStatus(ctx, req.ID, entities.MaintenanceStatusResolved, &completedAt))

	resolved, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MaintenanceStatusResolved, resolved.Status)
	require.NotNil(t, resolved.CompletedAt)

	byProperty, err := repo.GetByPropertyID(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, byProperty, 1)

	byTenant, err := repo.GetByTenantID(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, byTenant, 1)
}

func TestMaintenanceRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createAllTables(t, db)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.MaintenanceStatusResolved, nil), domainerrors.ErrNotFound)
}
