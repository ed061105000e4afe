package ubl_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/infrastructure/ubl"
)

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		Factuurnummer: "F0042",
		KlantNaam:     "Bakkerij Jansen",
		Factuurdatum:  "2024-03-15",
		Vervaldatum:   "2024-04-14",
		Regels: []entity.InvoiceLine{
			{Beschrijving: "Advies", Aantal: 4, Tarief: 95, BTWPercentage: 21, Totaal: 380},
		},
		Subtotaal: 380,
		BTWTotaal: 79.8,
		Totaal:    459.8,
	}
}

func testSettings() *entity.CompanySettings {
	return &entity.CompanySettings{
		Bedrijfsnaam: "Opwolken",
		Adres:        "Kerkstraat 1",
		Postcode:     "1234 AB",
		Plaats:       "Utrecht",
		KVKNummer:    "87654321",
		BTWNummer:    "NL001234567B01",
	}
}

func TestExportInvoice_GeldigUBLDocument(t *testing.T) {
	out, err := ubl.NewExporter().ExportInvoice(testInvoice(), testSettings(), nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "F0042", root.FindElement("cbc:ID").Text())
	assert.Equal(t, "2024-03-15", root.FindElement("cbc:IssueDate").Text())
	assert.Equal(t, "EUR", root.FindElement("cbc:DocumentCurrencyCode").Text())
	assert.Equal(t, "380", root.FindElement("cbc:InvoiceTypeCode").Text())
}

func TestExportInvoice_PartijenEnTotalen(t *testing.T) {
	customer := &entity.Customer{
		Bedrijfsnaam: "Bakkerij Jansen BV",
		Adres:        "Dorpsstraat 12",
		Postcode:     "5678 CD",
		Plaats:       "Amersfoort",
		Land:         "Nederland",
		BTWNummer:    "NL009876543B01",
	}
	out, err := ubl.NewExporter().ExportInvoice(testInvoice(), testSettings(), customer)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()

	supplier := root.FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyName/cbc:Name")
	require.NotNil(t, supplier)
	assert.Equal(t, "Opwolken", supplier.Text())

	// The customer record wins over the invoice's free-form klant_naam.
	buyer := root.FindElement("cac:AccountingCustomerParty/cac:Party/cac:PartyName/cbc:Name")
	require.NotNil(t, buyer)
	assert.Equal(t, "Bakkerij Jansen BV", buyer.Text())

	payable := root.FindElement("cac:LegalMonetaryTotal/cbc:PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "459.80", payable.Text())
	assert.Equal(t, "EUR", payable.SelectAttrValue("currencyID", ""))

	tax := root.FindElement("cac:TaxTotal/cbc:TaxAmount")
	require.NotNil(t, tax)
	assert.Equal(t, "79.80", tax.Text())
}

func TestExportInvoice_Regelniveau(t *testing.T) {
	out, err := ubl.NewExporter().ExportInvoice(testInvoice(), testSettings(), nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()

	lines := root.FindElements("cac:InvoiceLine")
	require.Len(t, lines, 1)
	assert.Equal(t, "Advies", lines[0].FindElement("cac:Item/cbc:Name").Text())
	assert.Equal(t, "21", lines[0].FindElement("cac:Item/cac:ClassifiedTaxCategory/cbc:Percent").Text())
	assert.Equal(t, "4", lines[0].FindElement("cbc:InvoicedQuantity").Text())
	assert.Equal(t, "95.00", lines[0].FindElement("cac:Price/cbc:PriceAmount").Text())
}
