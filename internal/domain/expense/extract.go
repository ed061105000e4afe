// Package expense turns raw supplier-invoice text into a pre-filled expense
// record. The text comes from the caller (the PDF was already run through a
// text extractor elsewhere); everything here is regex and keyword matching, so
// a document it cannot read simply produces empty fields, never an error.
package expense

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/opwolken/facturatie-api/internal/domain/finance"
)

// Extraction is the result of scanning one document.
type Extraction struct {
	Leverancier   string
	Factuurnummer string
	Datum         string // normalized to YYYY-MM-DD when recognized
	Categorie     string
	Beschrijving  string
	Subtotaal     float64
	BTW           float64
	Totaal        float64
}

var maanden = map[string]string{
	"januari": "01", "februari": "02", "maart": "03", "april": "04",
	"mei": "05", "juni": "06", "juli": "07", "augustus": "08",
	"september": "09", "oktober": "10", "november": "11", "december": "12",
}

var (
	reISODate   = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	reDutchDate = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	reWordDate  = regexp.MustCompile(`(?i)^(\d{1,2})\s+(\p{L}+)\s+(\d{4})$`)

	reNumericLine = regexp.MustCompile(`^[\d\s\-/\.]+$`)
	reDateLike    = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`)

	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:factuur(?:nummer)?|invoice(?:\s*(?:no|nr|number))?)\s*[:\s#]*\s*([A-Za-z0-9][\w\-/\.]{1,30})`),
		regexp.MustCompile(`(?im)(?:nota|bon|receipt)\s*[:\s#]*\s*([A-Za-z0-9][\w\-/\.]{1,30})`),
		regexp.MustCompile(`\b([A-Z]{1,4}[-_]?\d{4}[-_/]\d{2,6})\b`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{2}[-/]\d{2}[-/]\d{4})`),
		regexp.MustCompile(`(\d{4}[-/]\d{2}[-/]\d{2})`),
		regexp.MustCompile(`(?i)(\d{1,2}\s+(?:januari|februari|maart|april|mei|juni|juli|augustus|september|oktober|november|december)\s+\d{4})`),
	}

	// The rate in "BTW 21%:" is skipped so the amount is captured, and the
	// totaal label must not match inside "Subtotaal".
	reSubtotaal = regexp.MustCompile(`(?i)(?:subtotaal|subtotal|netto|excl\.?\s*btw)[:\s]*[€$]?\s*([\d.,]+)`)
	reBTW       = regexp.MustCompile(`(?i)(?:btw|vat|tax)(?:\s*\d+(?:[.,]\d+)?\s*%)?[:\s]*[€$]?\s*([\d.,]+)`)
	reTotaal    = regexp.MustCompile(`(?im)(?:^|[^a-z])(?:totaal|total|te\s+betalen|incl\.?\s*btw)[:\s]*[€$]?\s*([\d.,]+)`)
)

// categoryKeywords is scanned in order; the first category with any keyword
// present in the document wins.
var categoryKeywords = []struct {
	categorie string
	keywords  []string
}{
	{"Software & Licenties", []string{"software", "license", "licentie", "saas", "subscription", "abonnement"}},
	{"Kantoorkosten", []string{"kantoor", "office", "papier", "printer", "bureau"}},
	{"Hosting & Domein", []string{"hosting", "server", "domein", "domain", "cloud", "aws", "azure"}},
	{"Telefoon & Internet", []string{"telefoon", "internet", "mobiel", "telecom", "provider"}},
	{"Reiskosten", []string{"reis", "trein", "ns", "ov", "benzine", "parkeren", "vlucht"}},
	{"Marketing", []string{"marketing", "advertentie", "google ads", "facebook", "reclame"}},
	{"Verzekering", []string{"verzekering", "insurance", "polis"}},
	{"Accountant", []string{"accountant", "boekhouder", "belasting", "administratie"}},
}

// Extract scans document text for supplier, invoice number, date, amounts and
// a best-guess category.
func Extract(text string) Extraction {
	var result Extraction
	if strings.TrimSpace(text) == "" {
		return result
	}

	lines := strings.Split(text, "\n")
	result.Leverancier = supplierLine(lines)
	result.Factuurnummer = invoiceNumber(text)
	result.Datum = documentDate(text)

	if m := reSubtotaal.FindStringSubmatch(text); m != nil {
		result.Subtotaal = ParseAmount(m[1])
	}
	if m := reBTW.FindStringSubmatch(text); m != nil {
		result.BTW = ParseAmount(m[1])
	}
	if m := reTotaal.FindStringSubmatch(text); m != nil {
		result.Totaal = ParseAmount(m[1])
	}

	// Back-fill the net amount: prefer totaal minus the found VAT, otherwise
	// assume the 21% standard rate.
	if result.Totaal > 0 && result.Subtotaal == 0 {
		if result.BTW > 0 {
			result.Subtotaal = finance.Round2(result.Totaal - result.BTW)
		} else {
			result.Subtotaal = finance.Round2(result.Totaal / 1.21)
			result.BTW = finance.Round2(result.Totaal - result.Subtotaal)
		}
	}

	lower := strings.ToLower(text)
	for _, cat := range categoryKeywords {
		if containsAny(lower, cat.keywords) {
			result.Categorie = cat.categorie
			break
		}
	}
	return result
}

// NormalizeDate converts common Dutch date notations ("12-02-2026",
// "2026/2/3", "12 februari 2026") to YYYY-MM-DD. Unrecognized input is
// returned as-is.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3]))
	}
	if m := reDutchDate.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	}
	if m := reWordDate.FindStringSubmatch(s); m != nil {
		if maand, ok := maanden[strings.ToLower(m[2])]; ok {
			return fmt.Sprintf("%s-%s-%s", m[3], maand, pad2(m[1]))
		}
	}
	return s
}

// pad2 left-pads a one-digit day or month with a zero.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseAmount reads a money string in Dutch notation ("1.234,56", "56,70")
// or plain decimal notation ("1234.56"). Returns 0 when unreadable.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, ",") && strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finance.Round2(v)
}

// supplierLine picks the first early line that looks like a company name
// rather than numbers or separators.
func supplierLine(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) > 2 && !reNumericLine.MatchString(line) {
			return line
		}
	}
	return ""
}

func invoiceNumber(text string) string {
	for _, pattern := range invoiceNumberPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		// A bare date is a frequent false positive after "factuur".
		if len(candidate) >= 3 && !reDateLike.MatchString(candidate) {
			return candidate
		}
	}
	return ""
}

func documentDate(text string) string {
	for _, pattern := range datePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return NormalizeDate(m[1])
		}
	}
	return ""
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
