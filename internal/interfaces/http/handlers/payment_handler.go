package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/interfaces/http/middleware"
	"rentora.backend/internal/interfaces/http/response"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, input *entities.CreatePaymentInput) (*entities.RentPayment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*entities.RentPayment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input *entities.UpdatePaymentStatusInput) (*entities.RentPayment, error)
	UploadSlip(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (string, error)
	LateFee(ctx context.Context, id uuid.UUID) (*entities.LateFeeResponse, error)
	Verify(ctx context.Context, id uuid.UUID) (*entities.VerifyPaymentResponse, error)
	GetPaymentsByLease(ctx context.Context, leaseID uuid.UUID) ([]*entities.RentPayment, error)
	GetPaymentsByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*entities.RentPayment, int, error)
	GetOverduePayments(ctx context.Context) ([]*entities.RentPayment, error)
}

// PaymentHandler handles rent payment endpoints
type PaymentHandler struct {
	paymentUsecase PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// Create records a pending rent payment
// POST /api/v1/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var input entities.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	payment, err := h.paymentUsecase.CreatePayment(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, payment)
}

// Get returns a payment by ID
// GET /api/v1/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payment, err := h.paymentUsecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Payment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payment)
}

// UpdateStatus transitions a payment's status
// PATCH /api/v1/payments/:id/status
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdatePaymentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	payment, err := h.paymentUsecase.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payment)
}

// UploadSlip stores a payment slip file
// POST /api/v1/payments/:id/slip
func (h *PaymentHandler) UploadSlip(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	fh, err := c.FormFile("slip")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Expected a multipart 'slip' file"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Unreadable upload"))
		return
	}
	defer f.Close()

	path, err := h.paymentUsecase.UploadSlip(c.Request.Context(), id, fh.Filename, f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slipPath": path})
}

// LateFee returns the accrued late fee for a payment
// GET /api/v1/payments/:id/late-fee
func (h *PaymentHandler) LateFee(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	fee, err := h.paymentUsecase.LateFee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, fee)
}

// Verify confirms a payment is settled with a slip on file
// GET /api/v1/payments/:id/verify
func (h *PaymentHandler) Verify(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.paymentUsecase.Verify(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ByLease lists payments under a lease
// GET /api/v1/leases/:id/payments
func (h *PaymentHandler) ByLease(c *gin.Context) {
	leaseID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payments, err := h.paymentUsecase.GetPaymentsByLease(c.Request.Context(), leaseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payments)
}

// Mine lists the caller's payments across leases
// GET /api/v1/payments/mine
func (h *PaymentHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, limit := paginationQuery(c)
	payments, total, err := h.paymentUsecase.GetPaymentsByTenant(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": payments,
		"total": total,
	})
}

// Overdue lists pending payments past due
// GET /api/v1/payments/overdue
func (h *PaymentHandler) Overdue(c *gin.Context) {
	payments, err := h.paymentUsecase.GetOverduePayments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payments)
}
