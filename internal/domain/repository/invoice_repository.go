package repository

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoices. Implementations are
// owner-scoped: no method ever returns or touches another owner's records.
type InvoiceRepository interface {
	// ListByOwner returns every invoice of the owner, newest created_at first.
	// The result is a fresh snapshot; callers may not see writes that commit
	// after the call started.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Invoice, error)

	// GetByID returns nil (no error) when the invoice does not exist or
	// belongs to a different owner.
	GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error)

	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, ownerID, id string) error
}
