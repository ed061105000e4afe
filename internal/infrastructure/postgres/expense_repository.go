package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements ExpenseRepository on PostgreSQL (works with pool or tx).
// Money columns are NUMERIC(12,2), same convention as the invoices table.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the adapter. Pass a pool or tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, owner_id, leverancier, factuurnummer, datum, categorie, beschrijving,
		subtotaal, btw, totaal, status, daan_of_wim, pdf_url, created_at, updated_at`

// Create persists a new expense.
func (r *ExpenseRepo) Create(ctx context.Context, exp *entity.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		exp.ID, exp.OwnerID, exp.Leverancier, exp.Factuurnummer, exp.Datum, exp.Categorie, exp.Beschrijving,
		decimal.NewFromFloat(exp.Subtotaal), decimal.NewFromFloat(exp.BTW), decimal.NewFromFloat(exp.Totaal),
		exp.Status, exp.DaanOfWim, exp.PDFURL, exp.CreatedAt, exp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID fetches one expense scoped to the owner.
func (r *ExpenseRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE owner_id = $1 AND id = $2`
	var exp entity.Expense
	var subtotaal, btw, totaal decimal.Decimal
	err := r.q.QueryRow(ctx, query, ownerID, id).Scan(
		&exp.ID, &exp.OwnerID, &exp.Leverancier, &exp.Factuurnummer, &exp.Datum, &exp.Categorie, &exp.Beschrijving,
		&subtotaal, &btw, &totaal, &exp.Status, &exp.DaanOfWim, &exp.PDFURL, &exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	exp.Subtotaal = subtotaal.InexactFloat64()
	exp.BTW = btw.InexactFloat64()
	exp.Totaal = totaal.InexactFloat64()
	return &exp, nil
}

// ListByOwner returns every expense of the owner, newest created_at first.
func (r *ExpenseRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []entity.Expense
	for rows.Next() {
		var exp entity.Expense
		var subtotaal, btw, totaal decimal.Decimal
		if err := rows.Scan(
			&exp.ID, &exp.OwnerID, &exp.Leverancier, &exp.Factuurnummer, &exp.Datum, &exp.Categorie, &exp.Beschrijving,
			&subtotaal, &btw, &totaal, &exp.Status, &exp.DaanOfWim, &exp.PDFURL, &exp.CreatedAt, &exp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		exp.Subtotaal = subtotaal.InexactFloat64()
		exp.BTW = btw.InexactFloat64()
		exp.Totaal = totaal.InexactFloat64()
		list = append(list, exp)
	}
	return list, rows.Err()
}

// Update replaces the mutable columns of an expense.
func (r *ExpenseRepo) Update(ctx context.Context, exp *entity.Expense) error {
	query := `
		UPDATE expenses SET
			leverancier = $3, factuurnummer = $4, datum = $5, categorie = $6, beschrijving = $7,
			subtotaal = $8, btw = $9, totaal = $10, status = $11, daan_of_wim = $12, pdf_url = $13,
			updated_at = $14
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		exp.OwnerID, exp.ID,
		exp.Leverancier, exp.Factuurnummer, exp.Datum, exp.Categorie, exp.Beschrijving,
		decimal.NewFromFloat(exp.Subtotaal), decimal.NewFromFloat(exp.BTW), decimal.NewFromFloat(exp.Totaal),
		exp.Status, exp.DaanOfWim, exp.PDFURL, exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete removes an expense scoped to the owner.
func (r *ExpenseRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
