package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository on PostgreSQL (works with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, owner_id, bedrijfsnaam, voornaam, achternaam, email, telefoon,
		adres, postcode, plaats, land, kvk_nummer, btw_nummer, notities, created_at, updated_at`

// Create persists a new customer.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.OwnerID, c.Bedrijfsnaam, c.Voornaam, c.Achternaam, c.Email, c.Telefoon,
		c.Adres, c.Postcode, c.Plaats, c.Land, c.KVKNummer, c.BTWNummer, c.Notities, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches one customer scoped to the owner.
func (r *CustomerRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE owner_id = $1 AND id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, ownerID, id).Scan(
		&c.ID, &c.OwnerID, &c.Bedrijfsnaam, &c.Voornaam, &c.Achternaam, &c.Email, &c.Telefoon,
		&c.Adres, &c.Postcode, &c.Plaats, &c.Land, &c.KVKNummer, &c.BTWNummer, &c.Notities, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByOwner returns the owner's customers ordered by bedrijfsnaam.
func (r *CustomerRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE owner_id = $1 ORDER BY bedrijfsnaam`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Bedrijfsnaam, &c.Voornaam, &c.Achternaam, &c.Email, &c.Telefoon,
			&c.Adres, &c.Postcode, &c.Plaats, &c.Land, &c.KVKNummer, &c.BTWNummer, &c.Notities, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update replaces the mutable columns of a customer.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET
			bedrijfsnaam = $3, voornaam = $4, achternaam = $5, email = $6, telefoon = $7,
			adres = $8, postcode = $9, plaats = $10, land = $11, kvk_nummer = $12,
			btw_nummer = $13, notities = $14, updated_at = $15
		WHERE owner_id = $1 AND id = $2`
	_, err := r.q.Exec(ctx, query,
		c.OwnerID, c.ID,
		c.Bedrijfsnaam, c.Voornaam, c.Achternaam, c.Email, c.Telefoon,
		c.Adres, c.Postcode, c.Plaats, c.Land, c.KVKNummer,
		c.BTWNummer, c.Notities, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer scoped to the owner.
func (r *CustomerRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
