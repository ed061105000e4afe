package repository

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// CustomerRepository is the persistence port for customers (owner-scoped).
type CustomerRepository interface {
	// ListByOwner returns the owner's customers ordered by bedrijfsnaam.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Customer, error)

	// GetByID returns nil (no error) when not found.
	GetByID(ctx context.Context, ownerID, id string) (*entity.Customer, error)

	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, ownerID, id string) error
}
