package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opwolken/facturatie-api/internal/application/usecase"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes for the three repositories the dashboard composer reads.
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices []entity.Invoice
}

func (f *fakeInvoiceRepo) ListByOwner(_ context.Context, _ string) ([]entity.Invoice, error) {
	return f.invoices, nil
}
func (f *fakeInvoiceRepo) GetByID(_ context.Context, _, id string) (*entity.Invoice, error) {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			return &f.invoices[i], nil
		}
	}
	return nil, nil
}
func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.invoices = append(f.invoices, *inv)
	return nil
}
func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	for i := range f.invoices {
		if f.invoices[i].ID == inv.ID {
			f.invoices[i] = *inv
		}
	}
	return nil
}
func (f *fakeInvoiceRepo) Delete(_ context.Context, _, _ string) error { return nil }

type fakeExpenseRepo struct {
	expenses []entity.Expense
}

func (f *fakeExpenseRepo) ListByOwner(_ context.Context, _ string) ([]entity.Expense, error) {
	return f.expenses, nil
}
func (f *fakeExpenseRepo) GetByID(_ context.Context, _, _ string) (*entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) Create(_ context.Context, exp *entity.Expense) error {
	f.expenses = append(f.expenses, *exp)
	return nil
}
func (f *fakeExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(_ context.Context, _, _ string) error       { return nil }

type fakeSettingsRepo struct {
	settings *entity.CompanySettings
}

func (f *fakeSettingsRepo) Get(_ context.Context, _ string) (*entity.CompanySettings, error) {
	return f.settings, nil
}
func (f *fakeSettingsRepo) Upsert(_ context.Context, s *entity.CompanySettings) error {
	f.settings = s
	return nil
}
func (f *fakeSettingsRepo) NextFactuurnummer(_ context.Context, _ string) (string, error) {
	return "F0001", nil
}

func intPtr(n int) *int { return &n }

func newComposer(invoices []entity.Invoice, expenses []entity.Expense, settings *entity.CompanySettings) *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(
		&fakeInvoiceRepo{invoices: invoices},
		&fakeExpenseRepo{expenses: expenses},
		&fakeSettingsRepo{settings: settings},
		0,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Year and quarter resolution: explicit param > saved preference > today.
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_JaarParamWintVanVoorkeur(t *testing.T) {
	settings := &entity.CompanySettings{DashboardJaar: intPtr(2023)}
	uc := newComposer(nil, nil, settings)

	out, err := uc.GetDashboard(context.Background(), "owner", intPtr(2024))
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Jaar)
}

func TestGetDashboard_VoorkeurWintVanHuidigJaar(t *testing.T) {
	settings := &entity.CompanySettings{DashboardJaar: intPtr(2022)}
	uc := newComposer(nil, nil, settings)

	out, err := uc.GetDashboard(context.Background(), "owner", nil)
	require.NoError(t, err)
	assert.Equal(t, 2022, out.Jaar)
}

func TestGetDashboard_ZonderVoorkeurValtTerugOpHuidigJaar(t *testing.T) {
	uc := newComposer(nil, nil, nil)

	out, err := uc.GetDashboard(context.Background(), "owner", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Year(), out.Jaar)
}

func TestGetFinancial_KwartaalResolutie(t *testing.T) {
	settings := &entity.CompanySettings{
		DashboardJaar:     intPtr(2024),
		DashboardKwartaal: intPtr(3),
	}
	uc := newComposer(nil, nil, settings)

	// Saved preference wins when no param is given.
	out, err := uc.GetFinancial(context.Background(), "owner", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Jaar)
	assert.Equal(t, 3, out.Kwartaal)

	// Explicit param wins over the preference.
	out, err = uc.GetFinancial(context.Background(), "owner", intPtr(2023), intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, 2023, out.Jaar)
	assert.Equal(t, 1, out.Kwartaal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Composition: the year filter applies to the overview figures while
// beschikbare_jaren is derived from the unfiltered snapshot.
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_FiltertOpJaarMaarJarenlijstNiet(t *testing.T) {
	invoices := []entity.Invoice{
		{ID: "a", Factuurdatum: "2024-02-01", Status: entity.StatusBetaald, Subtotaal: 1000, Totaal: 1210, CreatedAt: "2024-02-01T10:00:00"},
		{ID: "b", Factuurdatum: "2023-05-01", Status: entity.StatusBetaald, Subtotaal: 400, Totaal: 484, CreatedAt: "2023-05-01T10:00:00"},
	}
	expenses := []entity.Expense{
		{ID: "x", Datum: "2024-03-10", Subtotaal: 250, CreatedAt: "2024-03-10T10:00:00"},
	}
	uc := newComposer(invoices, expenses, nil)

	out, err := uc.GetDashboard(context.Background(), "owner", intPtr(2024))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, out.TotaalOmzet)
	assert.Equal(t, 250.0, out.TotaalUitgaven)
	assert.Equal(t, 1, out.AantalFacturen)
	assert.Equal(t, []int{2024, 2023}, out.BeschikbareJaren)
	require.Len(t, out.RecenteFacturen, 1)
	assert.Equal(t, "a", out.RecenteFacturen[0].ID)
}

func TestGetFinancial_RekentOverHetHeleJaarEnKwartaal(t *testing.T) {
	invoices := []entity.Invoice{
		{Factuurdatum: "2024-01-15", Status: entity.StatusBetaald, Subtotaal: 1000, BTWTotaal: 210, DaanOfWim: entity.PartnerDaan},
		{Factuurdatum: "2024-07-15", Status: entity.StatusBetaald, Subtotaal: 500, BTWTotaal: 105, DaanOfWim: entity.PartnerWim},
	}
	expenses := []entity.Expense{
		{Datum: "2024-01-20", Subtotaal: 80, BTW: 16.8, DaanOfWim: entity.PartnerBeiden},
	}
	uc := newComposer(invoices, expenses, nil)

	out, err := uc.GetFinancial(context.Background(), "owner", intPtr(2024), intPtr(1))
	require.NoError(t, err)

	// Profit & loss covers the whole year.
	assert.Equal(t, 1500.0, out.WinstVerlies.Inkomsten)
	assert.Equal(t, 80.0, out.WinstVerlies.Uitgaven)

	// The VAT return covers Q1 only.
	assert.Equal(t, 1000.0, out.BTW.Omzet)
	assert.Equal(t, 210.0, out.BTW.OmzetBTW)
	assert.Equal(t, 17.0, out.BTW.InkoopBTW)
	assert.Equal(t, 193.0, out.BTW.Verschil)

	// Attribution: Daan 1000, Wim 500, shared expense split 40/40.
	assert.Equal(t, 1000.0, out.Inkomstenbelasting.InkDaan)
	assert.Equal(t, 500.0, out.Inkomstenbelasting.InkWim)
	assert.Equal(t, 40.0, out.Inkomstenbelasting.UitDaan)
	assert.Equal(t, 40.0, out.Inkomstenbelasting.UitWim)
}
