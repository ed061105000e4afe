package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/application/usecase"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

func newInvoiceUC(invRepo *fakeInvoiceRepo) *usecase.InvoiceUseCase {
	return usecase.NewInvoiceUseCase(
		invRepo,
		&fakeCustomerRepo{},
		&fakeSettingsRepo{},
		nil, nil, nil,
	)
}

type fakeCustomerRepo struct {
	customers []entity.Customer
}

func (f *fakeCustomerRepo) ListByOwner(_ context.Context, _ string) ([]entity.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerRepo) GetByID(_ context.Context, _, id string) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			return &f.customers[i], nil
		}
	}
	return nil, nil
}
func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.customers = append(f.customers, *c)
	return nil
}
func (f *fakeCustomerRepo) Update(_ context.Context, _ *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(_ context.Context, _, _ string) error        { return nil }

func TestInvoiceCreate_BerekentTotalenEnClaimtNummer(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	uc := newInvoiceUC(repo)

	out, err := uc.Create(context.Background(), "owner", dto.CreateInvoiceRequest{
		KlantNaam:    "Bakkerij Jansen",
		Factuurdatum: "2024-03-01",
		Regels: []entity.InvoiceLine{
			{Beschrijving: "Advies", Aantal: 4, Tarief: 95, BTWPercentage: 21},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "F0001", out.Factuurnummer)
	assert.Equal(t, 380.0, out.Subtotaal)
	assert.Equal(t, 79.8, out.BTWTotaal)
	assert.Equal(t, 459.8, out.Totaal)
	assert.Equal(t, entity.StatusConcept, out.Status)
	assert.Equal(t, entity.PartnerBeiden, out.DaanOfWim)
	assert.Empty(t, out.VerzondenOp)
	require.Len(t, repo.invoices, 1)
}

func TestInvoiceUpdate_StatusBetaaldStemptBeideDatums(t *testing.T) {
	repo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		{ID: "inv1", OwnerID: "owner", Status: entity.StatusConcept},
	}}
	uc := newInvoiceUC(repo)

	status := entity.StatusBetaald
	out, err := uc.Update(context.Background(), "owner", "inv1", dto.UpdateInvoiceRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusBetaald, out.Status)
	assert.NotEmpty(t, out.VerzondenOp)
	assert.NotEmpty(t, out.BetaaldOp)
}

func TestInvoiceUpdate_RegelsWijzigenHerberekentTotalen(t *testing.T) {
	repo := &fakeInvoiceRepo{invoices: []entity.Invoice{
		{ID: "inv1", OwnerID: "owner", Subtotaal: 100, BTWTotaal: 21, Totaal: 121},
	}}
	uc := newInvoiceUC(repo)

	regels := []entity.InvoiceLine{
		{Beschrijving: "Ontwikkeling", Aantal: 10, Tarief: 80, BTWPercentage: 21},
	}
	out, err := uc.Update(context.Background(), "owner", "inv1", dto.UpdateInvoiceRequest{Regels: &regels})
	require.NoError(t, err)

	assert.Equal(t, 800.0, out.Subtotaal)
	assert.Equal(t, 168.0, out.BTWTotaal)
	assert.Equal(t, 968.0, out.Totaal)
}

func TestInvoiceUpdate_OnbekendeFactuurGeeftNil(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{})

	out, err := uc.Update(context.Background(), "owner", "bestaat-niet", dto.UpdateInvoiceRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
