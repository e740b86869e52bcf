package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleTenant   UserRole = "TENANT"
	UserRoleLandlord UserRole = "LANDLORD"
	UserRoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether the role is one of the closed set.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleTenant, UserRoleLandlord, UserRoleAdmin:
		return true
	}
	return false
}

// User represents a user entity
type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone,omitempty"`
	PasswordHash  string     `json:"-"`
	Role          UserRole   `json:"role"`
	NIDNumber     string     `json:"nidNumber,omitempty"`
	NIDVerified   bool       `json:"nidVerified"`
	NIDVerifiedAt *time.Time `json:"nidVerifiedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     *time.Time `json:"-"`
}

// RegisterInput represents input for registering a user
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// VerifyNIDInput represents input for national-ID verification.
type VerifyNIDInput struct {
	NIDNumber string `json:"nidNumber" binding:"required"`
}
