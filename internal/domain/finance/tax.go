package finance

import (
	"math"
	"strings"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// DefaultTaxFactor is the income-tax estimate multiplier: after the
// MKB-winstvrijstelling leaves 86% of profit taxable, the combined income tax
// and Zvw contribution rate applies. The value is configurable but must
// default to exactly this product to stay in parity with the books.
const DefaultTaxFactor = 0.86 * (0.495 + 0.0532)

// ProfitLoss is the winst & verlies block of the financial report.
type ProfitLoss struct {
	Jaar      int     `json:"jaar"`
	Inkomsten float64 `json:"inkomsten"`
	Uitgaven  float64 `json:"uitgaven"`
	Winst     float64 `json:"winst"`
}

// VATReturn is the BTW-aangifte block for one quarter.
type VATReturn struct {
	Jaar      int     `json:"jaar"`
	Kwartaal  int     `json:"kwartaal"`
	Omzet     float64 `json:"omzet"`
	OmzetBTW  float64 `json:"omzet_btw"`
	Inkoop    float64 `json:"inkoop"`
	InkoopBTW float64 `json:"inkoop_btw"`
	Verschil  float64 `json:"verschil"`
}

// IncomeTax is the per-partner income-tax estimate block.
type IncomeTax struct {
	Jaar      int     `json:"jaar"`
	InkDaan   float64 `json:"ink_daan"`
	InkWim    float64 `json:"ink_wim"`
	UitDaan   float64 `json:"uit_daan"`
	UitWim    float64 `json:"uit_wim"`
	WinstDaan float64 `json:"winst_daan"`
	WinstWim  float64 `json:"winst_wim"`
	BelDaan   int     `json:"bel_daan"`
	BelWim    int     `json:"bel_wim"`
}

// ComputeProfitLoss sums earned revenue and expenses for one year.
func ComputeProfitLoss(invoices []entity.Invoice, expenses []entity.Expense, jaar int) ProfitLoss {
	var inkomsten, uitgaven float64
	for _, inv := range invoices {
		if Year(inv.Factuurdatum) == jaar && isEarned(inv.Status) {
			inkomsten += inv.Subtotaal
		}
	}
	for _, exp := range expenses {
		if Year(exp.Datum) == jaar {
			uitgaven += exp.Subtotaal
		}
	}
	return ProfitLoss{
		Jaar:      jaar,
		Inkomsten: Round2(inkomsten),
		Uitgaven:  Round2(uitgaven),
		Winst:     Round2(inkomsten - uitgaven),
	}
}

// ComputeVATReturn sums the VAT figures for one quarter of one year.
//
// Revenue-side figures are floored and cost-side figures are ceiled. The net
// effect of that asymmetry on the balance due is a deliberate convention taken
// over from the reference administration; it must not be normalized to plain
// rounding. A kwartaal outside 1-4 is not rejected: no record resolves to such
// a quarter, so every figure stays zero.
func ComputeVATReturn(invoices []entity.Invoice, expenses []entity.Expense, jaar, kwartaal int) VATReturn {
	var omzet, omzetBTW, inkoop, inkoopBTW float64
	for _, inv := range invoices {
		if Year(inv.Factuurdatum) == jaar && Quarter(inv.Factuurdatum) == kwartaal {
			omzet += inv.Subtotaal
			omzetBTW += inv.BTWTotaal
		}
	}
	for _, exp := range expenses {
		if Year(exp.Datum) == jaar && Quarter(exp.Datum) == kwartaal {
			inkoop += exp.Subtotaal
			inkoopBTW += exp.BTW
		}
	}
	return VATReturn{
		Jaar:      jaar,
		Kwartaal:  kwartaal,
		Omzet:     math.Floor(omzet),
		OmzetBTW:  math.Floor(omzetBTW),
		Inkoop:    math.Ceil(inkoop),
		InkoopBTW: math.Ceil(inkoopBTW),
		Verschil:  math.Floor(omzetBTW) - math.Ceil(inkoopBTW),
	}
}

// ComputeIncomeTax attributes revenue and expenses to the two partners and
// estimates the income tax each owes over one year. Earned invoices only;
// every expense in the year counts regardless of status.
func ComputeIncomeTax(invoices []entity.Invoice, expenses []entity.Expense, jaar int, factor float64) IncomeTax {
	var inkDaan, inkWim, uitDaan, uitWim float64
	for _, inv := range invoices {
		if Year(inv.Factuurdatum) == jaar && isEarned(inv.Status) {
			daan, wim := partnerShare(inv.DaanOfWim)
			inkDaan += inv.Subtotaal * daan
			inkWim += inv.Subtotaal * wim
		}
	}
	for _, exp := range expenses {
		if Year(exp.Datum) == jaar {
			daan, wim := partnerShare(exp.DaanOfWim)
			uitDaan += exp.Subtotaal * daan
			uitWim += exp.Subtotaal * wim
		}
	}

	winstDaan := math.Floor(inkDaan) - math.Ceil(uitDaan)
	winstWim := math.Floor(inkWim) - math.Ceil(uitWim)

	return IncomeTax{
		Jaar:      jaar,
		InkDaan:   Round2(inkDaan),
		InkWim:    Round2(inkWim),
		UitDaan:   Round2(uitDaan),
		UitWim:    Round2(uitWim),
		WinstDaan: winstDaan,
		WinstWim:  winstWim,
		BelDaan:   roundHalfEven(winstDaan * factor),
		BelWim:    roundHalfEven(winstWim * factor),
	}
}

// partnerShare maps a daan_of_wim tag to the (daan, wim) attribution weights.
// Matching is a case-insensitive substring check, so legacy values such as
// "wim" or "daan (zakelijk)" still attribute to the right partner. Anything else,
// including the default "Beiden" and a missing tag, splits 50/50.
func partnerShare(tag string) (daan, wim float64) {
	t := strings.ToLower(tag)
	switch {
	case strings.Contains(t, "daan"):
		return 1, 0
	case strings.Contains(t, "wim"):
		return 0, 1
	default:
		return 0.5, 0.5
	}
}

// roundHalfEven rounds to the nearest integer, ties to even (banker's
// rounding), the numeric semantics of the reference system.
func roundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}
