package usecase

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

// SettingsUseCase reads and saves the per-owner company settings document.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the settings, or an empty document with defaults when the owner
// has not saved anything yet.
func (uc *SettingsUseCase) Get(ctx context.Context, ownerID string) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.CompanySettings{OwnerID: ownerID}
	}
	if settings.FactuurPrefix == "" {
		settings.FactuurPrefix = "F"
	}
	return toSettingsResponse(settings), nil
}

// Save replaces the settings document. The invoice number sequence is managed
// by the repository and is not client-writable.
func (uc *SettingsUseCase) Save(ctx context.Context, ownerID string, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	current, err := uc.repo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	settings := &entity.CompanySettings{
		OwnerID:           ownerID,
		Bedrijfsnaam:      in.Bedrijfsnaam,
		Adres:             in.Adres,
		Postcode:          in.Postcode,
		Plaats:            in.Plaats,
		KVKNummer:         in.KVKNummer,
		BTWNummer:         in.BTWNummer,
		IBAN:              in.IBAN,
		Email:             in.Email,
		Telefoon:          in.Telefoon,
		Website:           in.Website,
		FactuurPrefix:     in.FactuurPrefix,
		DashboardJaar:     in.DashboardJaar,
		DashboardKwartaal: in.DashboardKwartaal,
	}
	if settings.FactuurPrefix == "" {
		settings.FactuurPrefix = "F"
	}
	if current != nil {
		settings.VolgendeFactuurnummer = current.VolgendeFactuurnummer
	}

	if err := uc.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.CompanySettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Bedrijfsnaam:      s.Bedrijfsnaam,
		Adres:             s.Adres,
		Postcode:          s.Postcode,
		Plaats:            s.Plaats,
		KVKNummer:         s.KVKNummer,
		BTWNummer:         s.BTWNummer,
		IBAN:              s.IBAN,
		Email:             s.Email,
		Telefoon:          s.Telefoon,
		Website:           s.Website,
		FactuurPrefix:     s.FactuurPrefix,
		DashboardJaar:     s.DashboardJaar,
		DashboardKwartaal: s.DashboardKwartaal,
	}
}
