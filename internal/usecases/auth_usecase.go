package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/domain/repositories"
	"homeconnect.backend/pkg/crypto"
	"homeconnect.backend/pkg/jwt"
)

// AuthUsecase handles registration and login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account and returns it with a signed session token
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(input.Email)

	// Email uniqueness is case-insensitive
	_, err := u.userRepo.GetByEmail(ctx, email)
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

	now := time.Now()
	user := &entities.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Phone:        input.Phone,
		UserType:     entities.UserType(input.UserType),
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Two registrations racing on the same email: the unique index wins
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Message: "Registration successful",
		Token:   token,
		User:    user,
	}, nil
}

// Login authenticates an account and returns a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
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

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, nil
}

// GetUserByID resolves a token's account, for the /auth/me endpoint
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
