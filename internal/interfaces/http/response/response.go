package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "rentora.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, items interface{}, meta interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"meta":  meta,
	})
}

// Error sends an error response, mapping domain errors to HTTP status codes
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		appErr = domainerrors.InternalError(err)
		c.JSON(status, gin.H{
			"code":    status,
			"message": appErr.Message,
		})
		return
	}

	c.JSON(status, gin.H{
		"code":    status,
		"message": err.Error(),
	})
}

// BindError sends a 400 for request body or query binding failures
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    http.StatusBadRequest,
		"message": "invalid request: " + err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrLeaseOverlap):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrWeakPassword),
		errors.Is(err, domainerrors.ErrNotVerified),
		errors.Is(err, domainerrors.ErrPropertyUnavailable),
		errors.Is(err, domainerrors.ErrPaymentFinal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
