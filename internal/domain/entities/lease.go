package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Lease represents a lease agreement between a landlord's property and a tenant
type Lease struct {
	ID           uuid.UUID   `json:"id"`
	PropertyID   uuid.UUID   `json:"propertyId"`
	TenantID     uuid.UUID   `json:"tenantId"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	MonthlyRent  float64     `json:"monthlyRent"`
	Terms        string      `json:"terms,omitempty"`
	DocumentPath null.String `json:"documentPath,omitempty"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	DeletedAt    *time.Time  `json:"-"`

	// Joins
	Property *Property `json:"property,omitempty"`
	Tenant   *User     `json:"tenant,omitempty"`
}

// Overlaps reports whether the lease interval intersects [start, end].
func (l *Lease) Overlaps(start, end time.Time) bool {
	return !start.After(l.EndDate) && !end.Before(l.StartDate)
}

// CreateLeaseInput represents input for creating a lease
type CreateLeaseInput struct {
	PropertyID  string    `json:"propertyId" binding:"required,uuid"`
	TenantID    string    `json:"tenantId" binding:"required,uuid"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	MonthlyRent float64   `json:"monthlyRent" binding:"required,gt=0"`
	Terms       string    `json:"terms"`
}

// RenewLeaseInput represents input for extending a lease
type RenewLeaseInput struct {
	NewEndDate time.Time `json:"newEndDate" binding:"required"`
}
