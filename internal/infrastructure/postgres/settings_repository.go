package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// defaultFactuurPrefix is used until the owner saves a prefix of their own.
const defaultFactuurPrefix = "F"

// SettingsRepo implements SettingsRepository on PostgreSQL (works with pool or tx).
// One row per owner; the row also carries the invoice number sequence.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the adapter. Pass a pool or tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsColumns = `owner_id, bedrijfsnaam, adres, postcode, plaats, kvk_nummer, btw_nummer,
		iban, email, telefoon, website, factuur_prefix, volgende_factuurnummer,
		dashboard_jaar, dashboard_kwartaal`

// Get fetches the owner's settings row, nil when absent.
func (r *SettingsRepo) Get(ctx context.Context, ownerID string) (*entity.CompanySettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM company_settings WHERE owner_id = $1`
	var s entity.CompanySettings
	err := r.q.QueryRow(ctx, query, ownerID).Scan(
		&s.OwnerID, &s.Bedrijfsnaam, &s.Adres, &s.Postcode, &s.Plaats, &s.KVKNummer, &s.BTWNummer,
		&s.IBAN, &s.Email, &s.Telefoon, &s.Website, &s.FactuurPrefix, &s.VolgendeFactuurnummer,
		&s.DashboardJaar, &s.DashboardKwartaal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert creates or replaces the settings row.
func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.CompanySettings) error {
	if s.FactuurPrefix == "" {
		s.FactuurPrefix = defaultFactuurPrefix
	}
	if s.VolgendeFactuurnummer == 0 {
		s.VolgendeFactuurnummer = 1
	}
	query := `
		INSERT INTO company_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (owner_id) DO UPDATE SET
			bedrijfsnaam = EXCLUDED.bedrijfsnaam, adres = EXCLUDED.adres,
			postcode = EXCLUDED.postcode, plaats = EXCLUDED.plaats,
			kvk_nummer = EXCLUDED.kvk_nummer, btw_nummer = EXCLUDED.btw_nummer,
			iban = EXCLUDED.iban, email = EXCLUDED.email, telefoon = EXCLUDED.telefoon,
			website = EXCLUDED.website, factuur_prefix = EXCLUDED.factuur_prefix,
			dashboard_jaar = EXCLUDED.dashboard_jaar,
			dashboard_kwartaal = EXCLUDED.dashboard_kwartaal`
	_, err := r.q.Exec(ctx, query,
		s.OwnerID, s.Bedrijfsnaam, s.Adres, s.Postcode, s.Plaats, s.KVKNummer, s.BTWNummer,
		s.IBAN, s.Email, s.Telefoon, s.Website, s.FactuurPrefix, s.VolgendeFactuurnummer,
		s.DashboardJaar, s.DashboardKwartaal,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// NextFactuurnummer atomically claims the next number from the owner's
// sequence. The UPDATE ... RETURNING bumps the counter and hands back the
// claimed value in one statement; a missing row starts the sequence at 1.
func (r *SettingsRepo) NextFactuurnummer(ctx context.Context, ownerID string) (string, error) {
	var prefix string
	var nummer int
	err := r.q.QueryRow(ctx, `
		UPDATE company_settings
		SET volgende_factuurnummer = volgende_factuurnummer + 1
		WHERE owner_id = $1
		RETURNING factuur_prefix, volgende_factuurnummer - 1`, ownerID,
	).Scan(&prefix, &nummer)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.q.QueryRow(ctx, `
			INSERT INTO company_settings (owner_id, factuur_prefix, volgende_factuurnummer)
			VALUES ($1, $2, 2)
			ON CONFLICT (owner_id) DO UPDATE
				SET volgende_factuurnummer = company_settings.volgende_factuurnummer + 1
			RETURNING factuur_prefix, volgende_factuurnummer - 1`, ownerID, defaultFactuurPrefix,
		).Scan(&prefix, &nummer)
	}
	if err != nil {
		return "", fmt.Errorf("next factuurnummer: %w", err)
	}
	if prefix == "" {
		prefix = defaultFactuurPrefix
	}
	return fmt.Sprintf("%s%04d", prefix, nummer), nil
}
