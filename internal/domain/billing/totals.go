// Package billing derives invoice amounts from line items.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateTotals computes subtotaal, btw_totaal and totaal from the invoice
// lines and stamps each line's own totaal (aantal x tarief, 2 decimals).
//
// The arithmetic runs on decimals to keep line rounding exact; the results are
// stored as float64 because that is the representation the reporting engine
// consumes (see DESIGN.md, O-1).
func CalculateTotals(regels []entity.InvoiceLine) (subtotaal, btwTotaal, totaal float64) {
	sub := decimal.Zero
	btw := decimal.Zero

	for i := range regels {
		regel := &regels[i]
		regelTotaal := decimal.NewFromFloat(regel.Aantal).Mul(decimal.NewFromFloat(regel.Tarief))
		regel.Totaal = regelTotaal.Round(2).InexactFloat64()
		sub = sub.Add(regelTotaal)
		btw = btw.Add(regelTotaal.Mul(decimal.NewFromFloat(regel.BTWPercentage)).Div(oneHundred))
	}

	subtotaal = sub.Round(2).InexactFloat64()
	btwTotaal = btw.Round(2).InexactFloat64()
	totaal = sub.Add(btw).Round(2).InexactFloat64()
	return subtotaal, btwTotaal, totaal
}
