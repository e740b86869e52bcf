package entities

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceStatus represents maintenance request status
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "PENDING"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusResolved   MaintenanceStatus = "RESOLVED"
)

// Valid reports whether the status is one of the closed set.
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusResolved:
		return true
	}
	return false
}

// MaintenanceRequest represents a tenant-raised maintenance request
type MaintenanceRequest struct {
	ID          uuid.UUID         `json:"id"`
	PropertyID  uuid.UUID         `json:"propertyId"`
	TenantID    uuid.UUID         `json:"tenantId"`
	Description string            `json:"description"`
	RequestDate time.Time         `json:"requestDate"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	Status      MaintenanceStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	// Joins
	Property *Property `json:"property,omitempty"`
	Tenant   *User     `json:"tenant,omitempty"`
}

// CreateMaintenanceInput represents input for creating a maintenance request
type CreateMaintenanceInput struct {
	PropertyID  string `json:"propertyId" binding:"required,uuid"`
	Description string `json:"description" binding:"required,min=5"`
}

// UpdateMaintenanceStatusInput represents input for a status transition
type UpdateMaintenanceStatusInput struct {
	Status string `json:"status" binding:"required"`
}
