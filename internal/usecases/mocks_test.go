package usecases_test

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"rentora.backend/internal/domain/entities"
	"rentora.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) MarkNIDVerified(ctx context.Context, id uuid.UUID, nidNumber string) error {
	args := m.Called(ctx, id, nidNumber)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Int(1), args.Error(2)
}

// Mock PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*entities.Property, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

func (m *MockPropertyRepository) Search(ctx context.Context, filter repositories.PropertySearchFilter) ([]*entities.Property, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Property), args.Int(1), args.Error(2)
}

func (m *MockPropertyRepository) AddImages(ctx context.Context, images []*entities.PropertyImage) error {
	args := m.Called(ctx, images)
	return args.Error(0)
}

func (m *MockPropertyRepository) GetImages(ctx context.Context, propertyID uuid.UUID) ([]*entities.PropertyImage, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PropertyImage), args.Error(1)
}

// Mock UtilityBillRepository
type MockUtilityBillRepository struct {
	mock.Mock
}

func (m *MockUtilityBillRepository) Create(ctx context.Context, bill *entities.UtilityBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockUtilityBillRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.UtilityBill, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UtilityBill), args.Error(1)
}

func (m *MockUtilityBillRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock LeaseRepository
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) Create(ctx context.Context, lease *entities.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lease), args.Error(1)
}

func (m *MockLeaseRepository) Update(ctx context.Context, lease *entities.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *MockLeaseRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.Lease, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lease), args.Error(1)
}

func (m *MockLeaseRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*entities.Lease, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lease), args.Error(1)
}

func (m *MockLeaseRepository) HasOverlap(ctx context.Context, propertyID uuid.UUID, start, end time.Time) (bool, error) {
	args := m.Called(ctx, propertyID, start, end)
	return args.Bool(0), args.Error(1)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.RentPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RentPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RentPayment), args.Error(1)
}

func (m *MockPaymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	args := m.Called(ctx, id, paidAt)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdateSlipPath(ctx context.Context, id uuid.UUID, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*entities.RentPayment, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RentPayment), args.Error(1)
}

func (m *MockPaymentRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.RentPayment, int, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.RentPayment), args.Int(1), args.Error(2)
}

func (m *MockPaymentRepository) GetOverdue(ctx context.Context, before time.Time) ([]*entities.RentPayment, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RentPayment), args.Error(1)
}

func (m *MockPaymentRepository) GetDueBetween(ctx context.Context, from, to time.Time) ([]*entities.RentPayment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RentPayment), args.Error(1)
}

// Mock MaintenanceRepository
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) Create(ctx context.Context, request *entities.MaintenanceRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MaintenanceStatus, completedAt *time.Time) error {
	args := m.Called(ctx, id, status, completedAt)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MaintenanceRequest), args.Error(1)
}

func (m *MockMaintenanceRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MaintenanceRequest), args.Error(1)
}

// Mock email sender
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

func (m *MockMailer) SendWithAttachment(ctx context.Context, to, subject, htmlBody, filename string, attachment []byte) error {
	args := m.Called(ctx, to, subject, htmlBody, filename, attachment)
	return args.Error(0)
}

// Mock document renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) LeaseAgreement(lease *entities.Lease, property *entities.Property, tenant *entities.User) ([]byte, error) {
	args := m.Called(lease, property, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RentReceipt(payment *entities.RentPayment, lease *entities.Lease, tenant *entities.User) ([]byte, error) {
	args := m.Called(payment, lease, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Mock file store
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) SaveImage(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) SaveDocument(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) SaveSlip(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileStore) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
