package finance_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fixtures
// ──────────────────────────────────────────────────────────────────────────────

func invoice(date, status string, subtotaal, btw float64) entity.Invoice {
	return entity.Invoice{
		Factuurdatum: date,
		Status:       status,
		Subtotaal:    subtotaal,
		BTWTotaal:    btw,
		Totaal:       subtotaal + btw,
	}
}

func expense(date, categorie string, subtotaal, btw float64) entity.Expense {
	return entity.Expense{
		Datum:     date,
		Categorie: categorie,
		Subtotaal: subtotaal,
		BTW:       btw,
		Totaal:    subtotaal + btw,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totals
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_Totals(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2024-01-10", entity.StatusBetaald, 100, 21),
		invoice("2024-02-10", entity.StatusVerzonden, 200, 42),
		invoice("2024-03-10", entity.StatusConcept, 999, 0), // drafts never count
		invoice("2024-04-10", entity.StatusGeannuleerd, 50, 10.5),
	}
	expenses := []entity.Expense{
		expense("2024-01-15", "Hosting & Domein", 40, 8.4),
	}

	s := finance.Summarize(invoices, expenses)

	assert.Equal(t, 300.0, s.TotaalOmzet, "omzet = subtotaal of verzonden+betaald")
	assert.Equal(t, 100.0, s.TotaalBetaald, "betaald = subtotaal of betaald only")
	assert.Equal(t, 242.0, s.TotaalOpenstaand, "openstaand uses the VAT-inclusive totaal")
	assert.Equal(t, 40.0, s.TotaalUitgaven)
	assert.Equal(t, 60.0, s.Winst, "winst = betaald - uitgaven")
	assert.Equal(t, 4, s.AantalFacturen)
}

// totaal_openstaand deliberately sums totaal (incl. BTW) while omzet sums
// subtotaal (excl. BTW); the asymmetry is contract, not a bug.
func TestSummarize_OpenstaandAsymmetry(t *testing.T) {
	invoices := []entity.Invoice{invoice("2024-01-10", entity.StatusVerzonden, 100, 21)}

	s := finance.Summarize(invoices, nil)

	assert.Equal(t, 100.0, s.TotaalOmzet)
	assert.Equal(t, 121.0, s.TotaalOpenstaand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Monthly series
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlySeries_ChronologicalAcrossYears(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2023-12-01", entity.StatusBetaald, 40, 8.4),
		invoice("2024-01-10", entity.StatusBetaald, 60, 12.6),
	}

	s := finance.Summarize(invoices, nil)

	require.Len(t, s.Maandoverzicht, 2)
	assert.Equal(t, "2023-12", s.Maandoverzicht[0].Maand)
	assert.Equal(t, "2024-01", s.Maandoverzicht[1].Maand)
	assert.Equal(t, 40.0, s.Maandoverzicht[0].Omzet)
	assert.Equal(t, 0.0, s.Maandoverzicht[0].Uitgaven, "missing series defaults to 0")
}

func TestMonthlySeries_TrailingTwelveMonths(t *testing.T) {
	var invoices []entity.Invoice
	for m := 1; m <= 12; m++ {
		invoices = append(invoices, invoice(fmt.Sprintf("2023-%02d-01", m), entity.StatusBetaald, 10, 2.1))
	}
	invoices = append(invoices,
		invoice("2024-01-05", entity.StatusBetaald, 10, 2.1),
		invoice("2024-02-05", entity.StatusBetaald, 10, 2.1),
	)

	s := finance.Summarize(invoices, nil)

	require.Len(t, s.Maandoverzicht, 12, "series keeps the last 12 months only")
	assert.Equal(t, "2023-03", s.Maandoverzicht[0].Maand, "oldest months fall off")
	assert.Equal(t, "2024-02", s.Maandoverzicht[11].Maand)
	for i := 1; i < len(s.Maandoverzicht); i++ {
		assert.Less(t, s.Maandoverzicht[i-1].Maand, s.Maandoverzicht[i].Maand,
			"month keys must be strictly ascending")
	}
}

func TestMonthlySeries_SkipsDraftsAndUndated(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2024-01-10", entity.StatusConcept, 100, 21),
		invoice("", entity.StatusBetaald, 100, 21),
	}

	s := finance.Summarize(invoices, nil)

	assert.Empty(t, s.Maandoverzicht)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categories, statuses, recency
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRanking_EmptyFallsBackToOverig(t *testing.T) {
	expenses := []entity.Expense{
		expense("2024-01-15", "", 25, 5.25),
		expense("2024-02-15", "Hosting & Domein", 80, 16.8),
		expense("2024-03-15", "Hosting & Domein", 20, 4.2),
	}

	s := finance.Summarize(nil, expenses)

	require.Len(t, s.Categorieen, 2)
	assert.Equal(t, "Hosting & Domein", s.Categorieen[0].Categorie, "ranking is descending by total")
	assert.Equal(t, 100.0, s.Categorieen[0].Totaal)
	assert.Equal(t, "Overig", s.Categorieen[1].Categorie)
	assert.Equal(t, 25.0, s.Categorieen[1].Totaal)
}

func TestStatusDistribution_MissingStatusCountsAsConcept(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2024-01-10", "", 10, 2.1),
		invoice("2024-02-10", entity.StatusBetaald, 10, 2.1),
		invoice("2024-03-10", entity.StatusBetaald, 10, 2.1),
	}

	s := finance.Summarize(invoices, nil)

	assert.Equal(t, 1, s.StatusVerdeling[entity.StatusConcept])
	assert.Equal(t, 2, s.StatusVerdeling[entity.StatusBetaald])
}

func TestRecentInvoices_TopFiveByCreatedAt(t *testing.T) {
	var invoices []entity.Invoice
	for i := 1; i <= 7; i++ {
		inv := invoice("2024-01-10", entity.StatusBetaald, 10, 2.1)
		inv.ID = fmt.Sprintf("f%d", i)
		inv.CreatedAt = fmt.Sprintf("2024-01-%02dT12:00:00Z", i)
		invoices = append(invoices, inv)
	}

	s := finance.Summarize(invoices, nil)

	require.Len(t, s.RecenteFacturen, 5)
	assert.Equal(t, "f7", s.RecenteFacturen[0].ID)
	for i := 1; i < len(s.RecenteFacturen); i++ {
		assert.GreaterOrEqual(t, s.RecenteFacturen[i-1].CreatedAt, s.RecenteFacturen[i].CreatedAt,
			"recency list must be non-increasing by created_at")
	}
}

func TestDistinctCustomers_IgnoresEmptyID(t *testing.T) {
	invoices := []entity.Invoice{
		{Factuurdatum: "2024-01-10", KlantID: "k1"},
		{Factuurdatum: "2024-02-10", KlantID: "k1"},
		{Factuurdatum: "2024-03-10", KlantID: "k2"},
		{Factuurdatum: "2024-04-10", KlantID: ""},
	}

	s := finance.Summarize(invoices, nil)

	assert.Equal(t, 2, s.AantalKlanten)
}

// ──────────────────────────────────────────────────────────────────────────────
// Year discovery and filtering
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableYears_DescendingNoZeroNoDuplicates(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2023-12-01", entity.StatusBetaald, 10, 2.1),
		invoice("2024-01-10", entity.StatusConcept, 10, 2.1), // status is irrelevant here
		invoice("kapot", entity.StatusBetaald, 10, 2.1),      // sentinel year 0 excluded
	}
	expenses := []entity.Expense{
		expense("2022-05-01", "", 10, 2.1),
		expense("2024-06-01", "", 10, 2.1),
	}

	years := finance.AvailableYears(invoices, expenses)

	assert.Equal(t, []int{2024, 2023, 2022}, years)
}

func TestInvoicesInYear_DropsOtherYearsAndUndated(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("2024-01-10", entity.StatusBetaald, 10, 2.1),
		invoice("2023-01-10", entity.StatusBetaald, 10, 2.1),
		invoice("", entity.StatusBetaald, 10, 2.1),
	}

	filtered := finance.InvoicesInYear(invoices, 2024)

	require.Len(t, filtered, 1)
	assert.Equal(t, "2024-01-10", filtered[0].Factuurdatum)
}
