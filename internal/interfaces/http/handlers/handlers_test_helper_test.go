package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rentora.backend/internal/domain/entities"
	"rentora.backend/internal/interfaces/http/middleware"
	"rentora.backend/internal/usecases"
	"rentora.backend/pkg/jwt"
	"rentora.backend/pkg/utils"
)

// identity injects an authenticated caller into the gin context,
// standing in for the JWT middleware.
func identity(userID uuid.UUID, role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "user@mail.com")
		c.Set(middleware.UserRoleKey, string(role))
		c.Next()
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// multipartFile builds a single-file multipart body
func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// Mock services

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthResponse), args.Error(1)
}

func (m *mockUserService) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.TokenPair), args.Error(1)
}

func (m *mockUserService) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	return m.Called(ctx, userID, input).Error(0)
}

func (m *mockUserService) VerifyNID(ctx context.Context, userID uuid.UUID, input *entities.VerifyNIDInput) (*entities.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Int(1), args.Error(2)
}

type mockPropertyService struct {
	mock.Mock
}

func (m *mockPropertyService) CreateProperty(ctx context.Context, landlordID uuid.UUID, input *entities.CreatePropertyInput) (*entities.Property, error) {
	args := m.Called(ctx, landlordID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Property), args.Error(1)
}

func (m *mockPropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Property), args.Error(1)
}

func (m *mockPropertyService) UpdateProperty(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole, input *entities.UpdatePropertyInput) (*entities.Property, error) {
	args := m.Called(ctx, id, actorID, actorRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Property), args.Error(1)
}

func (m *mockPropertyService) DeleteProperty(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole) error {
	return m.Called(ctx, id, actorID, actorRole).Error(0)
}

func (m *mockPropertyService) SetAvailability(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole, available bool) error {
	return m.Called(ctx, id, actorID, actorRole, available).Error(0)
}

func (m *mockPropertyService) GetPropertiesByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entities.Property, error) {
	args := m.Called(ctx, landlordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

func (m *mockPropertyService) SearchProperties(ctx context.Context, input *entities.PropertySearchInput) ([]*entities.Property, utils.PaginationMeta, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, utils.PaginationMeta{}, args.Error(2)
	}
	return args.Get(0).([]*entities.Property), args.Get(1).(utils.PaginationMeta), args.Error(2)
}

func (m *mockPropertyService) AddImages(ctx context.Context, propertyID, actorID uuid.UUID, actorRole entities.UserRole, uploads []usecases.ImageUpload) ([]*entities.PropertyImage, error) {
	args := m.Called(ctx, propertyID, actorID, actorRole, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PropertyImage), args.Error(1)
}

func (m *mockPropertyService) AddUtilityBill(ctx context.Context, propertyID, actorID uuid.UUID, actorRole entities.UserRole, input *entities.CreateUtilityBillInput) (*entities.UtilityBill, error) {
	args := m.Called(ctx, propertyID, actorID, actorRole, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UtilityBill), args.Error(1)
}

func (m *mockPropertyService) GetUtilityBills(ctx context.Context, propertyID uuid.UUID) ([]*entities.UtilityBill, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UtilityBill), args.Error(1)
}

func (m *mockPropertyService) MarkUtilityBillPaid(ctx context.Context, billID uuid.UUID) error {
	return m.Called(ctx, billID).Error(0)
}

type mockLeaseService struct {
	mock.Mock
}

func (m *mockLeaseService) CreateLease(ctx context.Context, input *entities.CreateLeaseInput) (*entities.Lease, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lease), args.Error(1)
}

func (m *mockLeaseService) GetLease(ctx context.Context, id uuid.UUID) (*entities.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lease), args.Error(1)
}

func (m *mockLeaseService) GetLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.Lease, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lease), args.Error(1)
}

func (m *mockLeaseService) GetLeasesByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.Lease, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Lease), args.Error(1)
}

func (m *mockLeaseService) EndLease(ctx context.Context, id uuid.UUID) (*entities.Lease, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lease), args.Error(1)
}

func (m *mockLeaseService) RenewLease(ctx context.Context, id uuid.UUID, input *entities.RenewLeaseInput) (*entities.Lease, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lease), args.Error(1)
}

func (m *mockLeaseService) GenerateAgreement(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) CreatePayment(ctx context.Context, input *entities.CreatePaymentInput) (*entities.RentPayment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RentPayment), args.Error(1)
}

func (m *mockPaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entities.RentPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RentPayment), args.Error(1)
}

func (m *mockPaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdatePaymentStatusInput) (*entities.RentPayment, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RentPayment), args.Error(1)
}

func (m *mockPaymentService) UploadSlip(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, id, filename, r)
	return args.String(0), args.Error(1)
}

func (m *mockPaymentService) LateFee(ctx context.Context, id uuid.UUID) (*entities.LateFeeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LateFeeResponse), args.Error(1)
}

func (m *mockPaymentService) Verify(ctx context.Context, id uuid.UUID) (*entities.VerifyPaymentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerifyPaymentResponse), args.Error(1)
}

func (m *mockPaymentService) GetPaymentsByLease(ctx context.Context, leaseID uuid.UUID) ([]*entities.RentPayment, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RentPayment), args.Error(1)
}

func (m *mockPaymentService) GetPaymentsByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.RentPayment, int, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.RentPayment), args.Int(1), args.Error(2)
}

func (m *mockPaymentService) GetOverduePayments(ctx context.Context) ([]*entities.RentPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RentPayment), args.Error(1)
}

type mockMaintenanceService struct {
	mock.Mock
}

func (m *mockMaintenanceService) CreateRequest(ctx context.Context, tenantID uuid.UUID, input *entities.CreateMaintenanceInput) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MaintenanceRequest), args.Error(1)
}

func (m *mockMaintenanceService) GetRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MaintenanceRequest), args.Error(1)
}

func (m *mockMaintenanceService) UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMaintenanceStatusInput) (*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MaintenanceRequest), args.Error(1)
}

func (m *mockMaintenanceService) GetRequestsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MaintenanceRequest), args.Error(1)
}

func (m *mockMaintenanceService) GetRequestsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MaintenanceRequest), args.Error(1)
}
