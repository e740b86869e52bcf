package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lease struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null"`
	MonthlyRent  float64   `gorm:"not null"`
	Terms        string    `gorm:"type:text"`
	DocumentPath *string   `gorm:"type:varchar(500)"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Property Property `gorm:"foreignKey:PropertyID"`
	Tenant   User     `gorm:"foreignKey:TenantID"`
}

type RentPayment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	LeaseID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"not null"`
	DueDate     time.Time `gorm:"not null;index"`
	PaymentDate *time.Time
	Status      string  `gorm:"type:varchar(20);not null;index"`
	SlipPath    *string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Lease Lease `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE"`
}
