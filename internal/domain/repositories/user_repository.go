package repositories

import (
	"context"

	"github.com/google/uuid"
	"homeconnect.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
