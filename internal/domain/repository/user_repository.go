package repository

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// UserRepository is the persistence port for login identities.
type UserRepository interface {
	// FindByEmail returns nil (no error) when no user has this email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error
}
