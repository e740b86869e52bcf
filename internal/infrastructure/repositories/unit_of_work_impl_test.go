package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createAllTables(t, db)
	uow := NewUnitOfWork(db)
	leaseRepo := NewLeaseRepository(db)
	propertyRepo := NewPropertyRepository(db)
	ctx := context.Background()

	p := seedProperty(t, propertyRepo, "Dhaka", 20000, 3)

	err := uow.Do(ctx, func(txCtx context.Context) error {
		lease := &entities.Lease{
			PropertyID:  p.ID,
			TenantID:    uuid.New(),
			StartDate:   time.Now(),
			EndDate:     time.Now().AddDate(0, 6, 0),
			MonthlyRent: 20000,
			IsActive:    true,
		}
		if err := leaseRepo.Create(txCtx, lease); err != nil {
			return err
		}
		return propertyRepo.SetAvailability(txCtx, p.ID, false)
	})
	require.NoError(t, err)

	got, err := propertyRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, got.IsAvailable)

	leases, err := leaseRepo.GetByPropertyID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, leases, 1)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createAllTables(t, db)
	uow := NewUnitOfWork(db)
	leaseRepo := NewLeaseRepository(db)
	propertyRepo := NewPropertyRepository(db)
	ctx := context.Background()

	p := seedProperty(t, propertyRepo, "Dhaka", 20000, 3)
	boom := errors.New("boom")

	err := uow.Do(ctx, func(txCtx context.Context) error {
		lease := &entities.Lease{
			PropertyID:  p.ID,
			TenantID:    uuid.New(),
			StartDate:   time.Now(),
			EndDate:     time.Now().AddDate(0, 6, 0),
			MonthlyRent: 20000,
			IsActive:    true,
		}
		if err := leaseRepo.Create(txCtx, lease); err != nil {
			return err
		}
		if err := propertyRepo.SetAvailability(txCtx, p.ID, false); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing inside the unit is visible.
	got, err := propertyRepo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, got.IsAvailable)

	leases, err := leaseRepo.GetByPropertyID(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, leases)
}

func TestUnitOfWork_DomainErrorsPassThrough(t *testing.T) {
	db := newTestDB(t)
	createAllTables(t, db)
	uow := NewUnitOfWork(db)
	propertyRepo := NewPropertyRepository(db)

	err := uow.Do(context.Background(), func(txCtx context.Context) error {
		return propertyRepo.SetAvailability(txCtx, uuid.New(), false)
	})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGetDB_FallbackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	require.Same(t, db, GetDB(context.Background(), db))
}
