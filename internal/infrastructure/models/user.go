package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(30)"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null;index"`
	NIDNumber     string    `gorm:"type:varchar(20)"`
	NIDVerified   bool      `gorm:"not null;default:false"`
	NIDVerifiedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
