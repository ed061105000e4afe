// Package pdf renders the printable invoice (factuur) with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bedrijfsnaam            │  FACTUUR + nummer/datum  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AFZENDER: adres / KVK / BTW / IBAN                         │
//	│  KLANT: naam + adres                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABEL: Aantal | Omschrijving | Tarief | BTW% | Totaal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALEN: Subtotaal / BTW / TE BETALEN                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: betaalinstructie + notities                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Dutch number formatting: thousands dot, decimal comma.
var dutchPrinter = message.NewPrinter(language.Dutch)

// MarotoPDFGenerator implements usecase.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes.
// customer may be nil; the invoice's klant_naam is used as fallback.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	inv *entity.Invoice,
	settings *entity.CompanySettings,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factuur "+inv.Factuurnummer, true).
		WithAuthor(settings.Bedrijfsnaam, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(senderRow(settings))
	m.AddRows(customerRow(inv, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(inv.Regels) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(inv, settings) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: bedrijfsnaam (left), invoice number and dates (right).
func headerRow(inv *entity.Invoice, settings *entity.CompanySettings) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(settings.Bedrijfsnaam, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("FACTUUR", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.Factuurnummer, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Factuurdatum: "+nonEmpty(inv.Factuurdatum, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Vervaldatum: "+nonEmpty(inv.Vervaldatum, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// senderRow: company details.
func senderRow(settings *entity.CompanySettings) core.Row {
	adres := settings.Adres
	if settings.Postcode != "" || settings.Plaats != "" {
		adres = fmt.Sprintf("%s, %s %s", settings.Adres, settings.Postcode, settings.Plaats)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("AFZENDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(adres, props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("KVK: %s   |   BTW: %s   |   IBAN: %s",
				nonEmpty(settings.KVKNummer, "—"),
				nonEmpty(settings.BTWNummer, "—"),
				nonEmpty(settings.IBAN, "—"),
			), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

// customerRow: customer name plus address when a customer record exists.
func customerRow(inv *entity.Invoice, customer *entity.Customer) core.Row {
	naam := inv.KlantNaam
	adres := ""
	if customer != nil {
		naam = customer.Bedrijfsnaam
		adres = fmt.Sprintf("%s, %s %s", customer.Adres, customer.Postcode, customer.Plaats)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("KLANT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(naam, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(adres, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: header of the line table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Aantal", 1, align.Center),
		h("Omschrijving", 6, align.Left),
		h("Tarief", 2, align.Right),
		h("BTW%", 1, align.Center),
		h("Totaal", 2, align.Right),
	)
}

// tableLineRows: one row per invoice line.
func tableLineRows(regels []entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(regels))
	for _, r := range regels {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				dutchPrinter.Sprintf("%v", r.Aantal),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				r.Beschrijving,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatEuro(r.Tarief),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				dutchPrinter.Sprintf("%v%%", r.BTWPercentage),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatEuro(r.Totaal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totals block aligned right.
func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotaal:"),
			label("BTW:"),
			grandLabel("TE BETALEN:"),
		),
		col.New(4).Add(
			value(formatEuro(inv.Subtotaal)),
			value(formatEuro(inv.BTWTotaal)),
			grandValue(formatEuro(inv.Totaal)),
		),
	)
}

// footerRows: payment instruction plus optional notes.
func footerRows(inv *entity.Invoice, settings *entity.CompanySettings) []core.Row {
	betaling := fmt.Sprintf(
		"Gelieve het bedrag van %s binnen 30 dagen over te maken op %s "+
			"onder vermelding van factuurnummer %s.",
		formatEuro(inv.Totaal), nonEmpty(settings.IBAN, "onze rekening"), inv.Factuurnummer,
	)
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(betaling, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
	}
	if inv.Notities != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Opmerkingen: "+inv.Notities, props.Text{
				Size: 7.5, Top: 2, Color: colorGray,
			}),
		)))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatEuro renders an amount the Dutch way: "€ 1.234,56".
func formatEuro(v float64) string {
	return dutchPrinter.Sprintf("€ %.2f", v)
}
