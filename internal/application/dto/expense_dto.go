package dto

// CreateExpenseRequest body of POST /api/expenses (also used for PUT).
type CreateExpenseRequest struct {
	Leverancier   string  `json:"leverancier"`
	Factuurnummer string  `json:"factuurnummer"`
	Datum         string  `json:"datum"`
	Categorie     string  `json:"categorie"`
	Beschrijving  string  `json:"beschrijving"`
	Subtotaal     float64 `json:"subtotaal"`
	BTW           float64 `json:"btw"`
	Totaal        float64 `json:"totaal"`
	Status        string  `json:"status"`
	DaanOfWim     string  `json:"daan_of_wim"`
}

// ImportExpenseRequest body of POST /api/expenses/import: the plain text of a
// supplier invoice, extracted from the document by the caller.
type ImportExpenseRequest struct {
	Tekst  string `json:"tekst"`
	PDFURL string `json:"pdf_url"`
}

// ExpenseResponse is the wire form of an expense.
type ExpenseResponse struct {
	ID            string  `json:"id"`
	Leverancier   string  `json:"leverancier"`
	Factuurnummer string  `json:"factuurnummer"`
	Datum         string  `json:"datum"`
	Categorie     string  `json:"categorie"`
	Beschrijving  string  `json:"beschrijving"`
	Subtotaal     float64 `json:"subtotaal"`
	BTW           float64 `json:"btw"`
	Totaal        float64 `json:"totaal"`
	Status        string  `json:"status"`
	DaanOfWim     string  `json:"daan_of_wim"`
	PDFURL        string  `json:"pdf_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	Methode       string  `json:"methode,omitempty"` // set on import: "tekst"
}
