package repositories

import (
	"context"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	MarkNIDVerified(ctx context.Context, id uuid.UUID, nidNumber string) error
	List(ctx context.Context, limit, offset int) ([]*entities.User, int, error)
}
