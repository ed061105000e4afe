package repository

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// SettingsRepository is the persistence port for the per-owner company
// settings document.
type SettingsRepository interface {
	// Get returns nil (no error) when the owner has no settings row yet;
	// callers treat that as an empty settings object.
	Get(ctx context.Context, ownerID string) (*entity.CompanySettings, error)

	// Upsert creates or replaces the settings row.
	Upsert(ctx context.Context, settings *entity.CompanySettings) error

	// NextFactuurnummer atomically claims the next invoice number from the
	// owner's sequence and returns it formatted as prefix + zero-padded
	// counter, e.g. "F0042". The first call for an owner without settings
	// starts the sequence at 1 with the default prefix.
	NextFactuurnummer(ctx context.Context, ownerID string) (string, error)
}
