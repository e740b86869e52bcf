package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/interfaces/http/handlers"
)

func leaseRouter(svc *mockLeaseService, userID uuid.UUID, role entities.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewLeaseHandler(svc)
	r := gin.New()
	r.Use(identity(userID, role))
	r.POST("/leases", h.Create)
	r.GET("/leases/mine", h.Mine)
	r.GET("/leases/:id", h.Get)
	r.POST("/leases/:id/end", h.End)
	r.POST("/leases/:id/renew", h.Renew)
	r.POST("/leases/:id/agreement", h.GenerateAgreement)
	r.GET("/properties/:id/leases", h.ByProperty)
	return r
}

func TestLeaseHandler_Create_Created(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleLandlord)

	leaseID := uuid.New()
	svc.On("CreateLease", mock.Anything, mock.AnythingOfType("*entities.CreateLeaseInput")).Return(&entities.Lease{
		ID:       leaseID,
		IsActive: true,
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leases", jsonBody(t, gin.H{
		"propertyId":  uuid.New().String(),
		"tenantId":    uuid.New().String(),
		"startDate":   time.Now().Format(time.RFC3339),
		"endDate":     time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
		"monthlyRent": 25000,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), leaseID.String())
}

func TestLeaseHandler_Create_Overlap(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleLandlord)

	svc.On("CreateLease", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLeaseOverlap).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leases", jsonBody(t, gin.H{
		"propertyId":  uuid.New().String(),
		"tenantId":    uuid.New().String(),
		"startDate":   time.Now().Format(time.RFC3339),
		"endDate":     time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
		"monthlyRent": 25000,
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLeaseHandler_Create_MissingRent(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleLandlord)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leases", jsonBody(t, gin.H{
		"propertyId": uuid.New().String(),
		"tenantId":   uuid.New().String(),
		"startDate":  time.Now().Format(time.RFC3339),
		"endDate":    time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateLease", mock.Anything, mock.Anything)
}

func TestLeaseHandler_Get_NotFound(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleTenant)

	id := uuid.New()
	svc.On("GetLease", mock.Anything, id).Return(nil, domainerrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leases/"+id.String(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaseHandler_Get_BadID(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleTenant)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leases/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaseHandler_End(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleLandlord)

	id := uuid.New()
	svc.On("EndLease", mock.Anything, id).Return(&entities.Lease{ID: id, IsActive: false}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leases/"+id.String()+"/end", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"isActive":false`)
}

func TestLeaseHandler_Renew(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleLandlord)

	id := uuid.New()
	newEnd := time.Now().AddDate(2, 0, 0)
	svc.On("RenewLease", mock.Anything, id, mock.AnythingOfType("*entities.RenewLeaseInput")).
		Return(&entities.Lease{ID: id, EndDate: newEnd, IsActive: true}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leases/"+id.String()+"/renew", jsonBody(t, gin.H{
		"newEndDate": newEnd.Format(time.RFC3339),
	}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLeaseHandler_GenerateAgreement(t *testing.T) {
	svc := new(mockLeaseService)
	r := leaseRouter(svc, uuid.New(), entities.UserRoleLandlord)

	id := uuid.New()
	svc.On("GenerateAgreement", mock.Anything, id).Return("uploads/documents/lease.pdf", nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leases/"+id.String()+"/agreement", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "uploads/documents/lease.pdf")
}

func TestLeaseHandler_Mine(t *testing.T) {
	svc := new(mockLeaseService)
	tenantID := uuid.New()
	r := leaseRouter(svc, tenantID, entities.UserRoleTenant)

	svc.On("GetLeasesByTenant", mock.Anything, tenantID).Return([]*entities.Lease{{ID: uuid.New()}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leases/mine", nil))
	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
