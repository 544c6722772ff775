package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/photocards/internal/domain/entity"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrInvalidID       = errors.New("malformed id")
	ErrInvalidDocument = errors.New("document failed schema validation")
)

// UserRepository defines the interface for user-related database operations.
//
// Reads come in three projections: GetByID and List hide email and password,
// GetOwn hides the password only, and GetCredentials returns everything.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetOwn(ctx context.Context, id string) (*entity.User, error)
	GetCredentials(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*entity.User, error)
}
