package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/expense"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

// ExpenseUseCase CRUD for purchase invoices (uitgaven) plus the text import
// that extracts the fields from a pasted supplier invoice.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create persists a new expense.
func (uc *ExpenseUseCase) Create(ctx context.Context, ownerID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	now := nowStamp()
	exp := &entity.Expense{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Leverancier:   in.Leverancier,
		Factuurnummer: in.Factuurnummer,
		Datum:         in.Datum,
		Categorie:     in.Categorie,
		Beschrijving:  in.Beschrijving,
		Subtotaal:     in.Subtotaal,
		BTW:           in.BTW,
		Totaal:        in.Totaal,
		Status:        in.Status,
		DaanOfWim:     in.DaanOfWim,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if exp.Status == "" {
		exp.Status = entity.StatusBetaald
	}
	if exp.DaanOfWim == "" {
		exp.DaanOfWim = entity.PartnerBeiden
	}
	if err := uc.repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return toExpenseResponse(exp), nil
}

// Import extracts an expense from the pasted text of a supplier invoice and
// persists it. The caller reviews and corrects via the normal update flow.
func (uc *ExpenseUseCase) Import(ctx context.Context, ownerID string, in dto.ImportExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Tekst == "" {
		return nil, domain.ErrInvalidInput
	}
	ext := expense.Extract(in.Tekst)

	now := nowStamp()
	exp := &entity.Expense{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Leverancier:   ext.Leverancier,
		Factuurnummer: ext.Factuurnummer,
		Datum:         ext.Datum,
		Categorie:     ext.Categorie,
		Beschrijving:  ext.Beschrijving,
		Subtotaal:     ext.Subtotaal,
		BTW:           ext.BTW,
		Totaal:        ext.Totaal,
		Status:        entity.StatusBetaald,
		DaanOfWim:     entity.PartnerBeiden,
		PDFURL:        in.PDFURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(exp)
	resp.Methode = "tekst"
	return resp, nil
}

// GetByID fetches one expense. Returns (nil, nil) when it does not exist.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ExpenseResponse, error) {
	exp, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, nil
	}
	return toExpenseResponse(exp), nil
}

// List returns the owner's expenses, newest first.
func (uc *ExpenseUseCase) List(ctx context.Context, ownerID string) ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for i := range list {
		items = append(items, *toExpenseResponse(&list[i]))
	}
	return items, nil
}

// Update replaces the editable fields of an expense.
func (uc *ExpenseUseCase) Update(ctx context.Context, ownerID, id string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	exp, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, nil
	}
	exp.Leverancier = in.Leverancier
	exp.Factuurnummer = in.Factuurnummer
	exp.Datum = in.Datum
	exp.Categorie = in.Categorie
	exp.Beschrijving = in.Beschrijving
	exp.Subtotaal = in.Subtotaal
	exp.BTW = in.BTW
	exp.Totaal = in.Totaal
	exp.Status = in.Status
	exp.DaanOfWim = in.DaanOfWim
	exp.UpdatedAt = nowStamp()

	if err := uc.repo.Update(ctx, exp); err != nil {
		return nil, err
	}
	return toExpenseResponse(exp), nil
}

// Delete removes an expense by ID.
func (uc *ExpenseUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

func toExpenseResponse(exp *entity.Expense) *dto.ExpenseResponse {
	if exp == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:            exp.ID,
		Leverancier:   exp.Leverancier,
		Factuurnummer: exp.Factuurnummer,
		Datum:         exp.Datum,
		Categorie:     exp.Categorie,
		Beschrijving:  exp.Beschrijving,
		Subtotaal:     exp.Subtotaal,
		BTW:           exp.BTW,
		Totaal:        exp.Totaal,
		Status:        exp.Status,
		DaanOfWim:     exp.DaanOfWim,
		PDFURL:        exp.PDFURL,
		CreatedAt:     exp.CreatedAt,
		UpdatedAt:     exp.UpdatedAt,
	}
}
