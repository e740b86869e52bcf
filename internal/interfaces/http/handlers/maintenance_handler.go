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

type MaintenanceService interface {
	CreateRequest(ctx context.Context, tenantID uuid.UUID, input *entities.CreateMaintenanceInput) (*entities.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMaintenanceStatusInput) (*entities.MaintenanceRequest, error)
	GetRequestsByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.MaintenanceRequest, error)
	GetRequestsByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entities.MaintenanceRequest, error)
}

// MaintenanceHandler handles maintenance request endpoints
type MaintenanceHandler struct {
	maintUsecase MaintenanceService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintUsecase MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintUsecase: maintUsecase}
}

// Create opens a maintenance request for the caller
// POST /api/v1/maintenance
func (h *MaintenanceHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	request, err := h.maintUsecase.CreateRequest(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// Get returns a maintenance request by ID
// GET /api/v1/maintenance/:id
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	request, err := h.maintUsecase.GetRequest(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Maintenance request not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// UpdateStatus moves a request through its lifecycle
// PATCH /api/v1/maintenance/:id/status
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateMaintenanceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	request, err := h.maintUsecase.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// ByProperty lists requests against a property
// GET /api/v1/properties/:id/maintenance
func (h *MaintenanceHandler) ByProperty(c *gin.Context) {
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	requests, err := h.maintUsecase.GetRequestsByProperty(c.Request.Context(), propertyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, requests)
}

// Mine lists the caller's maintenance requests
// GET /api/v1/maintenance/mine
func (h *MaintenanceHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	requests, err := h.maintUsecase.GetRequestsByTenant(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, requests)
}
