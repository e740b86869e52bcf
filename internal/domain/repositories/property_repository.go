package repositories

import (
	"context"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
)

// PropertySearchFilter holds search filters for available properties.
// Zero values mean "no filter" for the corresponding field.
type PropertySearchFilter struct {
	City     string
	MinRent  float64
	MaxRent  float64
	Bedrooms int
	SortBy   string // one of: rent, bedrooms, bathrooms, date
	SortDesc bool
	Limit    int
	Offset   int
}

// PropertyRepository defines property data operations
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error)
	Update(ctx context.Context, property *entities.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	GetByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*entities.Property, error)
	Search(ctx context.Context, filter PropertySearchFilter) ([]*entities.Property, int, error)
	AddImages(ctx context.Context, images []*entities.PropertyImage) error
	GetImages(ctx context.Context, propertyID uuid.UUID) ([]*entities.PropertyImage, error)
}

// UtilityBillRepository defines utility bill data operations
type UtilityBillRepository interface {
	Create(ctx context.Context, bill *entities.UtilityBill) error
	GetByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entities.UtilityBill, error)
	MarkPaid(ctx context.Context, id uuid.UUID) error
}
