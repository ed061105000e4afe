package expense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opwolken/facturatie-api/internal/domain/expense"
)

const hostingInvoiceText = `TransIP B.V.
Vondellaan 47
Leiden

Factuurnummer: F-2024-00123
Factuurdatum: 15-03-2024

Webhosting pakket Groot, 1 jaar

Subtotaal: € 120,00
BTW 21%: € 25,20
Totaal: € 145,20
`

func TestExtract_DutchHostingInvoice(t *testing.T) {
	got := expense.Extract(hostingInvoiceText)

	assert.Equal(t, "TransIP B.V.", got.Leverancier)
	assert.Equal(t, "F-2024-00123", got.Factuurnummer)
	assert.Equal(t, "2024-03-15", got.Datum)
	assert.Equal(t, "Hosting & Domein", got.Categorie)
	assert.Equal(t, 120.0, got.Subtotaal)
	assert.Equal(t, 25.2, got.BTW)
	assert.Equal(t, 145.2, got.Totaal)
}

func TestExtract_BackfillsNetFromTotal(t *testing.T) {
	got := expense.Extract("Acme\n\nTotaal: 121,00\n")

	assert.Equal(t, 121.0, got.Totaal)
	assert.Equal(t, 100.0, got.Subtotaal, "net amount assumes the 21% standard rate")
	assert.Equal(t, 21.0, got.BTW)
}

func TestExtract_BackfillsNetFromVAT(t *testing.T) {
	got := expense.Extract("Acme\n\nBTW: 4,20\nTotaal: 25,20\n")

	assert.Equal(t, 21.0, got.Subtotaal)
	assert.Equal(t, 4.2, got.BTW)
}

func TestExtract_EmptyText(t *testing.T) {
	got := expense.Extract("   \n  ")

	assert.Empty(t, got.Leverancier)
	assert.Zero(t, got.Totaal)
}

func TestExtract_DateSpelledOut(t *testing.T) {
	got := expense.Extract("NS Zakelijk\n\nreis 12 februari 2026\nTotaal: 45,00\n")

	assert.Equal(t, "2026-02-12", got.Datum)
	assert.Equal(t, "Reiskosten", got.Categorie)
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-15":       "2024-03-15",
		"2024/3/5":         "2024-03-05",
		"15-03-2024":       "2024-03-15",
		"5/3/2024":         "2024-03-05",
		"12 februari 2026": "2026-02-12",
		"12 Februari 2026": "2026-02-12",
		"gisteren":         "gisteren", // unrecognized comes back unchanged
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, expense.NormalizeDate(in), "input %q", in)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"1.234,56": 1234.56,
		"56,70":    56.7,
		"1234.56":  1234.56,
		"120":      120,
		"n.v.t.":   0,
	}
	for in, want := range cases {
		assert.Equal(t, want, expense.ParseAmount(in), "input %q", in)
	}
}
