package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Profit & loss
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeProfitLoss_YearScoped(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2024-03-15", entity.StatusBetaald, 100, 21),
		invoice("2024-05-01", entity.StatusVerzonden, 50, 10.5),
		invoice("2023-11-01", entity.StatusBetaald, 999, 0), // other year
		invoice("2024-06-01", entity.StatusConcept, 999, 0), // draft
	}
	expenses := []entity.Expense{
		expense("2024-02-01", "", 30, 6.3),
		expense("2023-02-01", "", 999, 0),
	}

	pl := finance.ComputeProfitLoss(invoices, expenses, 2024)

	assert.Equal(t, 2024, pl.Jaar)
	assert.Equal(t, 150.0, pl.Inkomsten)
	assert.Equal(t, 30.0, pl.Uitgaven)
	assert.Equal(t, 120.0, pl.Winst)
}

// ──────────────────────────────────────────────────────────────────────────────
// VAT return
// ──────────────────────────────────────────────────────────────────────────────

// Cost-side figures are ceiled: two Q1 expenses of 50+30 with 10.50+6.30 VAT
// produce inkoop=80 and inkoop_btw=ceil(16.8)=17.
func TestComputeVATReturn_CeilsCostSide(t *testing.T) {
	expenses := []entity.Expense{
		expense("2024-01-10", "", 50, 10.5),
		expense("2024-02-20", "", 30, 6.3),
	}

	btw := finance.ComputeVATReturn(nil, expenses, 2024, 1)

	assert.Equal(t, 80.0, btw.Inkoop)
	assert.Equal(t, 17.0, btw.InkoopBTW)
}

// verschil = floor(omzet_btw) - ceil(inkoop_btw): 21.6 and 16.8 give 21-17=4.
func TestComputeVATReturn_Verschil(t *testing.T) {
	invoices := []entity.Invoice{invoice("2024-01-15", entity.StatusBetaald, 102.9, 21.6)}
	expenses := []entity.Expense{expense("2024-02-10", "", 80, 16.8)}

	btw := finance.ComputeVATReturn(invoices, expenses, 2024, 1)

	assert.Equal(t, 21.0, btw.OmzetBTW, "revenue-side VAT is floored")
	assert.Equal(t, 17.0, btw.InkoopBTW, "cost-side VAT is ceiled")
	assert.Equal(t, 4.0, btw.Verschil)
	assert.Equal(t, 102.0, btw.Omzet, "revenue is floored")
}

func TestComputeVATReturn_QuarterScoped(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2024-03-31", entity.StatusBetaald, 100, 21), // Q1
		invoice("2024-04-01", entity.StatusBetaald, 100, 21), // Q2
	}

	btw := finance.ComputeVATReturn(invoices, nil, 2024, 1)

	assert.Equal(t, 100.0, btw.Omzet)
	assert.Equal(t, 21.0, btw.OmzetBTW)
}

// Out-of-range quarters are not rejected; nothing matches and every figure
// stays zero.
func TestComputeVATReturn_BogusQuarterYieldsZeros(t *testing.T) {
	invoices := []entity.Invoice{invoice("2024-03-31", entity.StatusBetaald, 100, 21)}

	btw := finance.ComputeVATReturn(invoices, nil, 2024, 9)

	assert.Equal(t, 9, btw.Kwartaal)
	assert.Zero(t, btw.Omzet)
	assert.Zero(t, btw.OmzetBTW)
	assert.Zero(t, btw.Verschil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Income-tax estimate
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeIncomeTax_BeidenSplitsEvenly(t *testing.T) {
	invoices := []entity.Invoice{
		{Factuurdatum: "2024-03-15", Status: entity.StatusBetaald, Subtotaal: 100, DaanOfWim: entity.PartnerBeiden},
	}

	it := finance.ComputeIncomeTax(invoices, nil, 2024, finance.DefaultTaxFactor)

	assert.Equal(t, 50.0, it.InkDaan)
	assert.Equal(t, 50.0, it.InkWim)
}

// Halves must sum back to the unsplit total when everything is tagged Beiden.
func TestComputeIncomeTax_HalvesSumToWhole(t *testing.T) {
	invoices := []entity.Invoice{
		{Factuurdatum: "2024-01-01", Status: entity.StatusBetaald, Subtotaal: 1234.55, DaanOfWim: entity.PartnerBeiden},
		{Factuurdatum: "2024-02-01", Status: entity.StatusVerzonden, Subtotaal: 877.13, DaanOfWim: entity.PartnerBeiden},
	}

	it := finance.ComputeIncomeTax(invoices, nil, 2024, finance.DefaultTaxFactor)

	assert.InDelta(t, 1234.55+877.13, it.InkDaan+it.InkWim, 1e-9)
}

// Legacy lowercase tags attribute by case-insensitive substring match.
func TestComputeIncomeTax_LowercaseWimTag(t *testing.T) {
	expenses := []entity.Expense{
		{Datum: "2024-05-01", Subtotaal: 40, DaanOfWim: "wim"},
	}

	it := finance.ComputeIncomeTax(nil, expenses, 2024, finance.DefaultTaxFactor)

	assert.Equal(t, 0.0, it.UitDaan)
	assert.Equal(t, 40.0, it.UitWim)
}

func TestComputeIncomeTax_UnknownTagSplits(t *testing.T) {
	expenses := []entity.Expense{
		{Datum: "2024-05-01", Subtotaal: 40, DaanOfWim: "gezamenlijk"},
	}

	it := finance.ComputeIncomeTax(nil, expenses, 2024, finance.DefaultTaxFactor)

	assert.Equal(t, 20.0, it.UitDaan)
	assert.Equal(t, 20.0, it.UitWim)
}

// All expenses count toward the estimate, whatever their status; invoices only
// when earned.
func TestComputeIncomeTax_StatusFilterAsymmetry(t *testing.T) {
	invoices := []entity.Invoice{
		{Factuurdatum: "2024-03-01", Status: entity.StatusConcept, Subtotaal: 500, DaanOfWim: entity.PartnerDaan},
		{Factuurdatum: "2024-03-02", Status: entity.StatusBetaald, Subtotaal: 300, DaanOfWim: entity.PartnerDaan},
	}
	expenses := []entity.Expense{
		{Datum: "2024-04-01", Status: "nieuw", Subtotaal: 100, DaanOfWim: entity.PartnerDaan},
	}

	it := finance.ComputeIncomeTax(invoices, expenses, 2024, finance.DefaultTaxFactor)

	assert.Equal(t, 300.0, it.InkDaan)
	assert.Equal(t, 100.0, it.UitDaan)
	assert.Equal(t, 200.0, it.WinstDaan, "winst = floor(ink) - ceil(uit)")
}

func TestComputeIncomeTax_FloorCeilOnFractionalTotals(t *testing.T) {
	invoices := []entity.Invoice{
		{Factuurdatum: "2024-03-01", Status: entity.StatusBetaald, Subtotaal: 1000.75, DaanOfWim: entity.PartnerDaan},
	}
	expenses := []entity.Expense{
		{Datum: "2024-04-01", Subtotaal: 200.25, DaanOfWim: entity.PartnerDaan},
	}

	it := finance.ComputeIncomeTax(invoices, expenses, 2024, finance.DefaultTaxFactor)

	// floor(1000.75) - ceil(200.25) = 1000 - 201
	assert.Equal(t, 799.0, it.WinstDaan)
}

// The default factor must be exactly 0.86 * (0.495 + 0.0532); the estimate in
// the books depends on it bit for bit.
func TestDefaultTaxFactor_ExactValue(t *testing.T) {
	assert.Equal(t, 0.86*(0.495+0.0532), finance.DefaultTaxFactor)

	invoices := []entity.Invoice{
		{Factuurdatum: "2024-01-01", Status: entity.StatusBetaald, Subtotaal: 10000, DaanOfWim: entity.PartnerDaan},
	}
	it := finance.ComputeIncomeTax(invoices, nil, 2024, finance.DefaultTaxFactor)

	// 10000 * 0.86 * 0.5482 = 4714.52 -> banker's rounding to 4715.
	assert.Equal(t, 4715, it.BelDaan)
	assert.Zero(t, it.BelWim)
}
