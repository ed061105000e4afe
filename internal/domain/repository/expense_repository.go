package repository

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// ExpenseRepository is the persistence port for expenses (owner-scoped).
type ExpenseRepository interface {
	// ListByOwner returns every expense of the owner, newest created_at first.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Expense, error)

	// GetByID returns nil (no error) when not found.
	GetByID(ctx context.Context, ownerID, id string) (*entity.Expense, error)

	Create(ctx context.Context, expense *entity.Expense) error
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, ownerID, id string) error
}
