package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository on PostgreSQL (works with pool or tx).
//
// The regels column is JSONB; the date and timestamp columns are TEXT, matching
// the string-based period derivation of the reporting engine. Money columns
// are NUMERIC(12,2) and cross the boundary as shopspring decimals.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, owner_id, factuurnummer, klant_id, klant_naam, factuurdatum, vervaldatum,
		onderwerp, regels, notities, status, daan_of_wim, subtotaal, btw_totaal, totaal,
		pdf_url, verzonden_op, betaald_op, created_at, updated_at`

// Create persists a new invoice.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	regels, err := json.Marshal(inv.Regels)
	if err != nil {
		return fmt.Errorf("marshal regels: %w", err)
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = r.q.Exec(ctx, query,
		inv.ID, inv.OwnerID, inv.Factuurnummer, inv.KlantID, inv.KlantNaam, inv.Factuurdatum, inv.Vervaldatum,
		inv.Onderwerp, regels, inv.Notities, inv.Status, inv.DaanOfWim,
		decimal.NewFromFloat(inv.Subtotaal), decimal.NewFromFloat(inv.BTWTotaal), decimal.NewFromFloat(inv.Totaal),
		inv.PDFURL, inv.VerzondenOp, inv.BetaaldOp, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches one invoice scoped to the owner.
func (r *InvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_id = $1 AND id = $2`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByOwner returns every invoice of the owner, newest created_at first.
func (r *InvoiceRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, *inv)
	}
	return list, rows.Err()
}

// Update replaces the mutable columns of an invoice.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	regels, err := json.Marshal(inv.Regels)
	if err != nil {
		return fmt.Errorf("marshal regels: %w", err)
	}
	query := `
		UPDATE invoices SET
			klant_id = $3, klant_naam = $4, factuurdatum = $5, vervaldatum = $6, onderwerp = $7,
			regels = $8, notities = $9, status = $10, daan_of_wim = $11, subtotaal = $12,
			btw_totaal = $13, totaal = $14, pdf_url = $15, verzonden_op = $16, betaald_op = $17,
			updated_at = $18
		WHERE owner_id = $1 AND id = $2`
	_, err = r.q.Exec(ctx, query,
		inv.OwnerID, inv.ID,
		inv.KlantID, inv.KlantNaam, inv.Factuurdatum, inv.Vervaldatum, inv.Onderwerp,
		regels, inv.Notities, inv.Status, inv.DaanOfWim, decimal.NewFromFloat(inv.Subtotaal),
		decimal.NewFromFloat(inv.BTWTotaal), decimal.NewFromFloat(inv.Totaal),
		inv.PDFURL, inv.VerzondenOp, inv.BetaaldOp, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete removes an invoice scoped to the owner.
func (r *InvoiceRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var regels []byte
	var subtotaal, btwTotaal, totaal decimal.Decimal
	err := row.Scan(
		&inv.ID, &inv.OwnerID, &inv.Factuurnummer, &inv.KlantID, &inv.KlantNaam, &inv.Factuurdatum, &inv.Vervaldatum,
		&inv.Onderwerp, &regels, &inv.Notities, &inv.Status, &inv.DaanOfWim, &subtotaal, &btwTotaal, &totaal,
		&inv.PDFURL, &inv.VerzondenOp, &inv.BetaaldOp, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Subtotaal = subtotaal.InexactFloat64()
	inv.BTWTotaal = btwTotaal.InexactFloat64()
	inv.Totaal = totaal.InexactFloat64()
	if len(regels) > 0 {
		if err := json.Unmarshal(regels, &inv.Regels); err != nil {
			return nil, fmt.Errorf("unmarshal regels: %w", err)
		}
	}
	return &inv, nil
}
