package repository

import (
	"context"

	"github.com/Koundinya12/UserService/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Lookup methods return (nil, nil) when no row matches; a non-nil error
// always means the store itself failed.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save persists the user and its addresses. A non-empty ID is kept,
	// otherwise one is assigned. Returns the persisted entity.
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
}
