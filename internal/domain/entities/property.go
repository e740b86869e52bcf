package entities

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a rental property entity
type Property struct {
	ID          uuid.UUID  `json:"id"`
	LandlordID  uuid.UUID  `json:"landlordId"`
	Title       string     `json:"title"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Rent        float64    `json:"rent"`
	Deposit     float64    `json:"deposit"`
	Bedrooms    int        `json:"bedrooms"`
	Bathrooms   int        `json:"bathrooms"`
	Description string     `json:"description,omitempty"`
	IsAvailable bool       `json:"isAvailable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"-"`

	// Joins
	Landlord *User            `json:"landlord,omitempty"`
	Images   []*PropertyImage `json:"images,omitempty"`
}

// PropertyImage represents an image attached to a property
type PropertyImage struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	Path       string    `json:"path"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UtilityBill represents a utility bill recorded against a property
type UtilityBill struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"propertyId"`
	BillType     string    `json:"billType"`
	Amount       float64   `json:"amount"`
	BillingMonth string    `json:"billingMonth"`
	IsPaid       bool      `json:"isPaid"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreatePropertyInput represents input for creating a property
type CreatePropertyInput struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Address     string  `json:"address" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Rent        float64 `json:"rent" binding:"required,gt=0"`
	Deposit     float64 `json:"deposit" binding:"gte=0"`
	Bedrooms    int     `json:"bedrooms" binding:"required,gt=0"`
	Bathrooms   int     `json:"bathrooms" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// UpdatePropertyInput represents input for updating a property
type UpdatePropertyInput struct {
	Title       *string  `json:"title,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Rent        *float64 `json:"rent,omitempty"`
	Deposit     *float64 `json:"deposit,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// PropertySearchInput represents property search filters
type PropertySearchInput struct {
	City      string  `form:"city"`
	MinRent   float64 `form:"minRent"`
	MaxRent   float64 `form:"maxRent"`
	Bedrooms  int     `form:"bedrooms"`
	Page      int     `form:"page"`
	Limit     int     `form:"limit"`
	SortBy    string  `form:"sortBy"`
	SortDir   string  `form:"sortDir"`
}

// CreateUtilityBillInput represents input for recording a utility bill
type CreateUtilityBillInput struct {
	BillType     string  `json:"billType" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	BillingMonth string  `json:"billingMonth" binding:"required"`
}
