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
	"rentora.backend/internal/usecases"
	"rentora.backend/pkg/utils"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, landlordID uuid.UUID, input *entities.CreatePropertyInput) (*entities.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*entities.Property, error)
	UpdateProperty(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole, input *entities.UpdatePropertyInput) (*entities.Property, error)
	DeleteProperty(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole) error
	SetAvailability(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole, available bool) error
	GetPropertiesByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entities.Property, error)
	SearchProperties(ctx context.Context, input *entities.PropertySearchInput) ([]*entities.Property, utils.PaginationMeta, error)
	AddImages(ctx context.Context, propertyID, actorID uuid.UUID, actorRole entities.UserRole, uploads []usecases.ImageUpload) ([]*entities.PropertyImage, error)
	AddUtilityBill(ctx context.Context, propertyID, actorID uuid.UUID, actorRole entities.UserRole, input *entities.CreateUtilityBillInput) (*entities.UtilityBill, error)
	GetUtilityBills(ctx context.Context, propertyID uuid.UUID) ([]*entities.UtilityBill, error)
	MarkUtilityBillPaid(ctx context.Context, billID uuid.UUID) error
}

// PropertyHandler handles property listing endpoints
type PropertyHandler struct {
	propertyUsecase PropertyService
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyUsecase PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyUsecase: propertyUsecase}
}

func callerIdentity(c *gin.Context) (uuid.UUID, entities.UserRole, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}

// Create creates a property listing
// POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	property, err := h.propertyUsecase.CreateProperty(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, property)
}

// Get returns a property with its images
// GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	property, err := h.propertyUsecase.GetProperty(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, property)
}

// Update applies a partial update to a property
// PATCH /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	property, err := h.propertyUsecase.UpdateProperty(c.Request.Context(), id, userID, role, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, property)
}

// Delete removes a property listing
// DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.propertyUsecase.DeleteProperty(c.Request.Context(), id, userID, role); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Property deleted"})
}

// SetAvailability flips the availability flag
// PATCH /api/v1/properties/:id/availability
func (h *PropertyHandler) SetAvailability(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.propertyUsecase.SetAvailability(c.Request.Context(), id, userID, role, *input.IsAvailable); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Availability updated"})
}

// Mine lists the caller's properties
// GET /api/v1/properties/mine
func (h *PropertyHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	properties, err := h.propertyUsecase.GetPropertiesByLandlord(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, properties)
}

// Search lists available properties with filters
// GET /api/v1/properties
func (h *PropertyHandler) Search(c *gin.Context) {
	var input entities.PropertySearchInput
	if err := c.ShouldBindQuery(&input); err != nil {
		response.BindError(c, err)
		return
	}

	properties, meta, err := h.propertyUsecase.SearchProperties(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, properties, meta)
}

// UploadImages attaches multipart image files to a property
// POST /api/v1/properties/:id/images
func (h *PropertyHandler) UploadImages(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Expected multipart form"))
		return
	}

	var uploads []usecases.ImageUpload
	var closers []func()
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Unreadable upload: "+fh.Filename))
			return
		}
		closers = append(closers, func() { _ = f.Close() })
		uploads = append(uploads, usecases.ImageUpload{Filename: fh.Filename, Reader: f})
	}
	defer func() {
		for _, close := range closers {
			close()
		}
	}()

	images, err := h.propertyUsecase.AddImages(c.Request.Context(), id, userID, role, uploads)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, images)
}

// AddUtilityBill records a utility bill against a property
// POST /api/v1/properties/:id/bills
func (h *PropertyHandler) AddUtilityBill(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, role, ok := callerIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateUtilityBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	bill, err := h.propertyUsecase.AddUtilityBill(c.Request.Context(), id, userID, role, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, bill)
}

// ListUtilityBills lists bills recorded against a property
// GET /api/v1/properties/:id/bills
func (h *PropertyHandler) ListUtilityBills(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	bills, err := h.propertyUsecase.GetUtilityBills(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, bills)
}

// MarkUtilityBillPaid settles a utility bill
// PATCH /api/v1/properties/bills/:billId/paid
func (h *PropertyHandler) MarkUtilityBillPaid(c *gin.Context) {
	billID, err := pathUUID(c, "billId")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.propertyUsecase.MarkUtilityBillPaid(c.Request.Context(), billID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Bill marked paid"})
}
