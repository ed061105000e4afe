// Package ubl renders invoices as UBL 2.1 XML documents following the Dutch
// NLCIUS customization of EN 16931, so they can be fed to Peppol-capable
// accounting software.
package ubl

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// UBL 2.1 namespaces.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	customizationID = "urn:cen.eu:en16931:2017#compliant#urn:fdc:nen.nl:nlcius:v1.0"
	profileID       = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
)

// Exporter implements usecase.UBLExporter with etree.
type Exporter struct{}

// NewExporter builds the exporter.
func NewExporter() *Exporter { return &Exporter{} }

// ExportInvoice renders the invoice as an indented UBL 2.1 document.
// customer may be nil; the invoice's klant_naam then fills the customer party.
func (e *Exporter) ExportInvoice(inv *entity.Invoice, settings *entity.CompanySettings, customer *entity.Customer) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", nsInvoice)
	root.CreateAttr("xmlns:cac", nsCac)
	root.CreateAttr("xmlns:cbc", nsCbc)

	cbc(root, "CustomizationID", customizationID)
	cbc(root, "ProfileID", profileID)
	cbc(root, "ID", inv.Factuurnummer)
	cbc(root, "IssueDate", inv.Factuurdatum)
	if inv.Vervaldatum != "" {
		cbc(root, "DueDate", inv.Vervaldatum)
	}
	cbc(root, "InvoiceTypeCode", "380") // commercial invoice
	if inv.Notities != "" {
		cbc(root, "Note", inv.Notities)
	}
	cbc(root, "DocumentCurrencyCode", "EUR")

	e.writeSupplierParty(root, settings)
	e.writeCustomerParty(root, inv, customer)
	e.writeTaxTotal(root, inv)
	e.writeMonetaryTotal(root, inv)
	for i, regel := range inv.Regels {
		e.writeInvoiceLine(root, i+1, regel)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serialize invoice %s: %w", inv.Factuurnummer, err)
	}
	return out, nil
}

func (e *Exporter) writeSupplierParty(root *etree.Element, settings *entity.CompanySettings) {
	party := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")

	name := party.CreateElement("cac:PartyName")
	cbc(name, "Name", settings.Bedrijfsnaam)

	address := party.CreateElement("cac:PostalAddress")
	cbc(address, "StreetName", settings.Adres)
	cbc(address, "CityName", settings.Plaats)
	cbc(address, "PostalZone", settings.Postcode)
	cbc(address.CreateElement("cac:Country"), "IdentificationCode", "NL")

	if settings.BTWNummer != "" {
		scheme := party.CreateElement("cac:PartyTaxScheme")
		cbc(scheme, "CompanyID", settings.BTWNummer)
		cbc(scheme.CreateElement("cac:TaxScheme"), "ID", "VAT")
	}
	if settings.KVKNummer != "" {
		legal := party.CreateElement("cac:PartyLegalEntity")
		cbc(legal, "RegistrationName", settings.Bedrijfsnaam)
		cbc(legal, "CompanyID", settings.KVKNummer)
	}
}

func (e *Exporter) writeCustomerParty(root *etree.Element, inv *entity.Invoice, customer *entity.Customer) {
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")

	naam := inv.KlantNaam
	if customer != nil {
		naam = customer.Bedrijfsnaam
	}
	name := party.CreateElement("cac:PartyName")
	cbc(name, "Name", naam)

	if customer != nil {
		address := party.CreateElement("cac:PostalAddress")
		cbc(address, "StreetName", customer.Adres)
		cbc(address, "CityName", customer.Plaats)
		cbc(address, "PostalZone", customer.Postcode)
		cbc(address.CreateElement("cac:Country"), "IdentificationCode", countryCode(customer.Land))

		if customer.BTWNummer != "" {
			scheme := party.CreateElement("cac:PartyTaxScheme")
			cbc(scheme, "CompanyID", customer.BTWNummer)
			cbc(scheme.CreateElement("cac:TaxScheme"), "ID", "VAT")
		}
	}
}

func (e *Exporter) writeTaxTotal(root *etree.Element, inv *entity.Invoice) {
	taxTotal := root.CreateElement("cac:TaxTotal")
	amount(taxTotal, "cbc:TaxAmount", inv.BTWTotaal)

	subtotal := taxTotal.CreateElement("cac:TaxSubtotal")
	amount(subtotal, "cbc:TaxableAmount", inv.Subtotaal)
	amount(subtotal, "cbc:TaxAmount", inv.BTWTotaal)
	category := subtotal.CreateElement("cac:TaxCategory")
	cbc(category, "ID", "S")
	cbc(category.CreateElement("cac:TaxScheme"), "ID", "VAT")
}

func (e *Exporter) writeMonetaryTotal(root *etree.Element, inv *entity.Invoice) {
	total := root.CreateElement("cac:LegalMonetaryTotal")
	amount(total, "cbc:LineExtensionAmount", inv.Subtotaal)
	amount(total, "cbc:TaxExclusiveAmount", inv.Subtotaal)
	amount(total, "cbc:TaxInclusiveAmount", inv.Totaal)
	amount(total, "cbc:PayableAmount", inv.Totaal)
}

func (e *Exporter) writeInvoiceLine(root *etree.Element, n int, regel entity.InvoiceLine) {
	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", fmt.Sprintf("%d", n))

	qty := line.CreateElement("cbc:InvoicedQuantity")
	qty.CreateAttr("unitCode", "C62") // unit
	qty.SetText(fmt.Sprintf("%g", regel.Aantal))

	amount(line, "cbc:LineExtensionAmount", regel.Totaal)

	item := line.CreateElement("cac:Item")
	cbc(item, "Name", regel.Beschrijving)
	tax := item.CreateElement("cac:ClassifiedTaxCategory")
	cbc(tax, "ID", "S")
	cbc(tax, "Percent", fmt.Sprintf("%g", regel.BTWPercentage))
	cbc(tax.CreateElement("cac:TaxScheme"), "ID", "VAT")

	price := line.CreateElement("cac:Price")
	amount(price, "cbc:PriceAmount", regel.Tarief)
}

// cbc appends a cbc:<name> child unless the value is empty.
func cbc(parent *etree.Element, name, value string) {
	if value == "" {
		return
	}
	parent.CreateElement("cbc:" + name).SetText(value)
}

// amount appends a currency-tagged amount element.
func amount(parent *etree.Element, name string, v float64) {
	el := parent.CreateElement(name)
	el.CreateAttr("currencyID", "EUR")
	el.SetText(fmt.Sprintf("%.2f", v))
}

// countryCode maps the free-text land field to an ISO 3166-1 alpha-2 code,
// defaulting to NL.
func countryCode(land string) string {
	switch land {
	case "", "Nederland", "NL":
		return "NL"
	case "België", "Belgie", "BE":
		return "BE"
	case "Duitsland", "DE":
		return "DE"
	default:
		return "NL"
	}
}
