package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/interfaces/http/middleware"
	"rentora.backend/internal/interfaces/http/response"
)

type LeaseService interface {
	CreateLease(ctx context.Context, input *entities.CreateLeaseInput) (*entities.Lease, error)
	GetLease(ctx context.Context, id uuid.UUID) (*entities.Lease, error)
	GetLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.Lease, error)
	GetLeasesByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.Lease, error)
	EndLease(ctx context.Context, id uuid.UUID) (*entities.Lease, error)
	RenewLease(ctx context.Context, id uuid.UUID, input *entities.RenewLeaseInput) (*entities.Lease, error)
	GenerateAgreement(ctx context.Context, id uuid.UUID) (string, error)
}

// LeaseHandler handles lease lifecycle endpoints
type LeaseHandler struct {
	leaseUsecase LeaseService
}

// NewLeaseHandler creates a new lease handler
func NewLeaseHandler(leaseUsecase LeaseService) *LeaseHandler {
	return &LeaseHandler{leaseUsecase: leaseUsecase}
}

// Create creates a lease
// POST /api/v1/leases
func (h *LeaseHandler) Create(c *gin.Context) {
	var input entities.CreateLeaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	lease, err := h.leaseUsecase.CreateLease(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, lease)
}

// Get returns a lease by ID
// GET /api/v1/leases/:id
func (h *LeaseHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	lease, err := h.leaseUsecase.GetLease(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Lease not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lease)
}

// ByProperty lists leases on a property
// GET /api/v1/properties/:id/leases
func (h *LeaseHandler) ByProperty(c *gin.Context) {
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	leases, err := h.leaseUsecase.GetLeasesByProperty(c.Request.Context(), propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, leases)
}

// Mine lists the caller's leases
// GET /api/v1/leases/mine
func (h *LeaseHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	leases, err := h.leaseUsecase.GetLeasesByTenant(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, leases)
}

// End deactivates a lease and releases its property
// POST /api/v1/leases/:id/end
func (h *LeaseHandler) End(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	lease, err := h.leaseUsecase.EndLease(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lease)
}

// Renew extends a lease to a later end date
// POST /api/v1/leases/:id/renew
func (h *LeaseHandler) Renew(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.RenewLeaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	lease, err := h.leaseUsecase.RenewLease(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lease)
}

// GenerateAgreement renders and stores the lease agreement PDF
// POST /api/v1/leases/:id/agreement
func (h *LeaseHandler) GenerateAgreement(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	path, err := h.leaseUsecase.GenerateAgreement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"documentPath": path})
}
