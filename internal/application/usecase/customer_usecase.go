package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

// CustomerUseCase CRUD for customers (klanten).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create persists a new customer. Bedrijfsnaam is required.
func (uc *CustomerUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Bedrijfsnaam == "" {
		return nil, domain.ErrInvalidInput
	}
	now := nowStamp()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Bedrijfsnaam: in.Bedrijfsnaam,
		Voornaam:     in.Voornaam,
		Achternaam:   in.Achternaam,
		Email:        in.Email,
		Telefoon:     in.Telefoon,
		Adres:        in.Adres,
		Postcode:     in.Postcode,
		Plaats:       in.Plaats,
		Land:         in.Land,
		KVKNummer:    in.KVKNummer,
		BTWNummer:    in.BTWNummer,
		Notities:     in.Notities,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if customer.Land == "" {
		customer.Land = "Nederland"
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID fetches one customer. Returns (nil, nil) when it does not exist.
func (uc *CustomerUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List returns the owner's customers ordered by bedrijfsnaam.
func (uc *CustomerUseCase) List(ctx context.Context, ownerID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for i := range list {
		items = append(items, *toCustomerResponse(&list[i]))
	}
	return items, nil
}

// Update replaces the editable fields of a customer.
func (uc *CustomerUseCase) Update(ctx context.Context, ownerID, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	customer.Bedrijfsnaam = in.Bedrijfsnaam
	customer.Voornaam = in.Voornaam
	customer.Achternaam = in.Achternaam
	customer.Email = in.Email
	customer.Telefoon = in.Telefoon
	customer.Adres = in.Adres
	customer.Postcode = in.Postcode
	customer.Plaats = in.Plaats
	customer.Land = in.Land
	customer.KVKNummer = in.KVKNummer
	customer.BTWNummer = in.BTWNummer
	customer.Notities = in.Notities
	customer.UpdatedAt = nowStamp()

	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer by ID.
func (uc *CustomerUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.repo.Delete(ctx, ownerID, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		Bedrijfsnaam: c.Bedrijfsnaam,
		Voornaam:     c.Voornaam,
		Achternaam:   c.Achternaam,
		Email:        c.Email,
		Telefoon:     c.Telefoon,
		Adres:        c.Adres,
		Postcode:     c.Postcode,
		Plaats:       c.Plaats,
		Land:         c.Land,
		KVKNummer:    c.KVKNummer,
		BTWNummer:    c.BTWNummer,
		Notities:     c.Notities,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
