package dto

import "github.com/opwolken/facturatie-api/internal/domain/finance"

// DashboardResponse is the payload of GET /api/dashboard: the yearly overview
// with totals, the monthly series and the recency lists.
type DashboardResponse struct {
	Jaar             int                     `json:"jaar"`
	BeschikbareJaren []int                   `json:"beschikbare_jaren"`
	TotaalOmzet      float64                 `json:"totaal_omzet"`
	TotaalBetaald    float64                 `json:"totaal_betaald"`
	TotaalOpenstaand float64                 `json:"totaal_openstaand"`
	TotaalUitgaven   float64                 `json:"totaal_uitgaven"`
	Winst            float64                 `json:"winst"`
	AantalFacturen   int                     `json:"aantal_facturen"`
	AantalKlanten    int                     `json:"aantal_klanten"`
	Maandoverzicht   []finance.MonthlyEntry  `json:"maandoverzicht"`
	Categorieen      []finance.CategoryTotal `json:"categorieën"`
	StatusVerdeling  map[string]int          `json:"status_verdeling"`
	RecenteFacturen  []InvoiceResponse       `json:"recente_facturen"`
	RecenteUitgaven  []ExpenseResponse       `json:"recente_uitgaven"`
}

// FinancialResponse is the payload of GET /api/dashboard/financieel: the
// fiscal view of a year plus the VAT return for one quarter.
type FinancialResponse struct {
	Jaar               int                `json:"jaar"`
	Kwartaal           int                `json:"kwartaal"`
	WinstVerlies       finance.ProfitLoss `json:"winst_verlies"`
	BTW                finance.VATReturn  `json:"btw"`
	Inkomstenbelasting finance.IncomeTax  `json:"inkomstenbelasting"`
}
