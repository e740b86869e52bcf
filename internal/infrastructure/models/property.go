package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	LandlordID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Address     string    `gorm:"type:varchar(500);not null"`
	City        string    `gorm:"type:varchar(100);not null;index"`
	Rent        float64   `gorm:"not null"`
	Deposit     float64   `gorm:"not null;default:0"`
	Bedrooms    int       `gorm:"not null"`
	Bathrooms   int       `gorm:"not null"`
	Description string    `gorm:"type:text"`
	IsAvailable bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Landlord deletion is restricted while properties reference it;
	// property deletion cascades to all children.
	Landlord            User                 `gorm:"foreignKey:LandlordID;constraint:OnDelete:RESTRICT"`
	Images              []PropertyImage      `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Leases              []Lease              `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	UtilityBills        []UtilityBill        `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

type PropertyImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Path       string    `gorm:"type:varchar(500);not null"`
	CreatedAt  time.Time
}

type UtilityBill struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	BillType     string    `gorm:"type:varchar(50);not null"`
	Amount       float64   `gorm:"not null"`
	BillingMonth string    `gorm:"type:varchar(20);not null"`
	IsPaid       bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
