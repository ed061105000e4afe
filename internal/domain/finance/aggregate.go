package finance

import (
	"math"
	"sort"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

const (
	monthWindow = 12 // trailing months in the maandoverzicht series
	recentCount = 5  // entries in the recency lists
)

// MonthlyEntry is one bucket of the revenue/expense time series.
type MonthlyEntry struct {
	Maand    string  `json:"maand"` // "YYYY-MM"
	Omzet    float64 `json:"omzet"`
	Uitgaven float64 `json:"uitgaven"`
}

// CategoryTotal is one row of the expense category ranking.
type CategoryTotal struct {
	Categorie string  `json:"categorie"`
	Totaal    float64 `json:"totaal"`
}

// Summary holds all dashboard aggregates derived from one snapshot.
// The snapshot is expected to be filtered to the target year already; the
// engine itself applies no period filter here.
type Summary struct {
	TotaalOmzet      float64
	TotaalBetaald    float64
	TotaalOpenstaand float64
	TotaalUitgaven   float64
	Winst            float64
	AantalFacturen   int
	AantalKlanten    int
	Maandoverzicht   []MonthlyEntry
	Categorieen      []CategoryTotal
	StatusVerdeling  map[string]int
	RecenteFacturen  []entity.Invoice
	RecenteUitgaven  []entity.Expense
}

// Summarize computes every dashboard aggregate over the given snapshot.
//
// Revenue recognition is asymmetric on purpose: totaal_omzet and
// totaal_betaald sum the ex-VAT subtotaal, while totaal_openstaand sums the
// VAT-inclusive totaal of sent invoices — the amount the customer still owes
// is the payable figure. Do not "fix" this.
func Summarize(invoices []entity.Invoice, expenses []entity.Expense) Summary {
	var s Summary

	for _, inv := range invoices {
		if isEarned(inv.Status) {
			s.TotaalOmzet += inv.Subtotaal
		}
		switch inv.Status {
		case entity.StatusBetaald:
			s.TotaalBetaald += inv.Subtotaal
		case entity.StatusVerzonden:
			s.TotaalOpenstaand += inv.Totaal
		}
	}
	for _, exp := range expenses {
		s.TotaalUitgaven += exp.Subtotaal
	}
	winst := s.TotaalBetaald - s.TotaalUitgaven

	s.TotaalOmzet = Round2(s.TotaalOmzet)
	s.TotaalBetaald = Round2(s.TotaalBetaald)
	s.TotaalOpenstaand = Round2(s.TotaalOpenstaand)
	s.TotaalUitgaven = Round2(s.TotaalUitgaven)
	s.Winst = Round2(winst)

	s.AantalFacturen = len(invoices)
	s.AantalKlanten = distinctCustomers(invoices)
	s.Maandoverzicht = monthlySeries(invoices, expenses)
	s.Categorieen = categoryRanking(expenses)
	s.StatusVerdeling = statusDistribution(invoices)
	s.RecenteFacturen = recentInvoices(invoices)
	s.RecenteUitgaven = recentExpenses(expenses)
	return s
}

// AvailableYears returns the distinct years seen in the UNFILTERED snapshot,
// newest first. The 0 sentinel (unparsable date) is excluded.
func AvailableYears(invoices []entity.Invoice, expenses []entity.Expense) []int {
	seen := map[int]bool{}
	for _, inv := range invoices {
		if y := Year(inv.Factuurdatum); y != 0 {
			seen[y] = true
		}
	}
	for _, exp := range expenses {
		if y := Year(exp.Datum); y != 0 {
			seen[y] = true
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// InvoicesInYear filters a snapshot down to one year (sentinel 0 never matches
// a real year, so undated invoices drop out).
func InvoicesInYear(invoices []entity.Invoice, jaar int) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if Year(inv.Factuurdatum) == jaar {
			out = append(out, inv)
		}
	}
	return out
}

// ExpensesInYear filters a snapshot down to one year.
func ExpensesInYear(expenses []entity.Expense, jaar int) []entity.Expense {
	out := make([]entity.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if Year(exp.Datum) == jaar {
			out = append(out, exp)
		}
	}
	return out
}

// Round2 rounds to 2 decimals, half to even, matching the reference system.
// Rounding happens at emission only, never while accumulating.
func Round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}

// isEarned reports whether an invoice status counts toward earned revenue.
func isEarned(status string) bool {
	return status == entity.StatusVerzonden || status == entity.StatusBetaald
}

func distinctCustomers(invoices []entity.Invoice) int {
	seen := map[string]bool{}
	for _, inv := range invoices {
		if inv.KlantID != "" {
			seen[inv.KlantID] = true
		}
	}
	return len(seen)
}

// monthKey buckets a date string by its "YYYY-MM" prefix. Shorter malformed
// strings bucket under what is there, same as the reference slicing.
func monthKey(date string) string {
	if len(date) > 7 {
		return date[:7]
	}
	return date
}

func monthlySeries(invoices []entity.Invoice, expenses []entity.Expense) []MonthlyEntry {
	omzet := map[string]float64{}
	uitgaven := map[string]float64{}

	for _, inv := range invoices {
		if isEarned(inv.Status) && inv.Factuurdatum != "" {
			omzet[monthKey(inv.Factuurdatum)] += inv.Subtotaal
		}
	}
	for _, exp := range expenses {
		if exp.Datum != "" {
			uitgaven[monthKey(exp.Datum)] += exp.Subtotaal
		}
	}

	keys := make([]string, 0, len(omzet)+len(uitgaven))
	for k := range omzet {
		keys = append(keys, k)
	}
	for k := range uitgaven {
		if _, ok := omzet[k]; !ok {
			keys = append(keys, k)
		}
	}
	// Lexicographic order equals chronological order for "YYYY-MM" keys.
	sort.Strings(keys)
	if len(keys) > monthWindow {
		keys = keys[len(keys)-monthWindow:]
	}

	series := make([]MonthlyEntry, 0, len(keys))
	for _, k := range keys {
		series = append(series, MonthlyEntry{
			Maand:    k,
			Omzet:    Round2(omzet[k]),
			Uitgaven: Round2(uitgaven[k]),
		})
	}
	return series
}

func categoryRanking(expenses []entity.Expense) []CategoryTotal {
	totals := map[string]float64{}
	for _, exp := range expenses {
		cat := exp.Categorie
		if cat == "" {
			cat = entity.CategorieOverig
		}
		totals[cat] += exp.Subtotaal
	}
	ranking := make([]CategoryTotal, 0, len(totals))
	for cat, totaal := range totals {
		ranking = append(ranking, CategoryTotal{Categorie: cat, Totaal: Round2(totaal)})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Totaal != ranking[j].Totaal {
			return ranking[i].Totaal > ranking[j].Totaal
		}
		return ranking[i].Categorie < ranking[j].Categorie
	})
	return ranking
}

func statusDistribution(invoices []entity.Invoice) map[string]int {
	dist := map[string]int{}
	for _, inv := range invoices {
		status := inv.Status
		if status == "" {
			status = entity.StatusConcept
		}
		dist[status]++
	}
	return dist
}

func recentInvoices(invoices []entity.Invoice) []entity.Invoice {
	recent := append([]entity.Invoice(nil), invoices...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	return recent
}

func recentExpenses(expenses []entity.Expense) []entity.Expense {
	recent := append([]entity.Expense(nil), expenses...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	return recent
}
