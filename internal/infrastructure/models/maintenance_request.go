package models

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	RequestDate time.Time `gorm:"not null"`
	CompletedAt *time.Time
	Status      string `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tenant User `gorm:"foreignKey:TenantID"`
}
