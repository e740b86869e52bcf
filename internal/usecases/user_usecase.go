package usecases

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/domain/repositories"
	"rentora.backend/pkg/crypto"
	"rentora.backend/pkg/jwt"
)

// UserUsecase handles account and authentication business logic
type UserUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new tenant or landlord account
func (u *UserUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	role := entities.UserRole(strings.ToUpper(input.Role))
	if !role.Valid() || role == entities.UserRoleAdmin {
		return nil, domainerrors.NewError("role must be TENANT or LANDLORD", domainerrors.ErrInvalidInput)
	}

	if !crypto.ValidatePassword(input.Password) {
		return nil, domainerrors.ErrWeakPassword
	}

	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns tokens
func (u *UserUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Get current user to ensure still valid
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// ChangePassword rotates a user's password after checking the current one
func (u *UserUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	if !crypto.ValidatePassword(input.NewPassword) {
		return domainerrors.ErrWeakPassword
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return u.userRepo.UpdatePasswordHash(ctx, userID, hash)
}

// VerifyNID records national-ID verification for a user. The number must
// be all digits and either 10 or 17 characters long.
func (u *UserUsecase) VerifyNID(ctx context.Context, userID uuid.UUID, input *entities.VerifyNIDInput) (*entities.User, error) {
	nid := strings.TrimSpace(input.NIDNumber)
	if !validNID(nid) {
		return nil, domainerrors.NewError("NID number must be 10 or 17 digits", domainerrors.ErrInvalidInput)
	}

	if err := u.userRepo.MarkNIDVerified(ctx, userID, nid); err != nil {
		return nil, err
	}

	return u.userRepo.GetByID(ctx, userID)
}

// GetByID gets a user by ID
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ListUsers returns a page of users for the admin console
func (u *UserUsecase) ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int, error) {
	return u.userRepo.List(ctx, limit, offset)
}

func validNID(nid string) bool {
	if len(nid) != 10 && len(nid) != 17 {
		return false
	}
	for _, r := range nid {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
