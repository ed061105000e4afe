package entity

// CategorieOverig is the bucket for expenses without a category.
const CategorieOverig = "Overig"

// Expense is a purchase/cost record (uitgave), usually created from an
// uploaded supplier invoice. Datum and CreatedAt follow the same string
// conventions as Invoice.
type Expense struct {
	ID            string
	OwnerID       string
	Leverancier   string
	Factuurnummer string
	Datum         string
	Categorie     string
	Beschrijving  string
	Subtotaal     float64 // excl. BTW
	BTW           float64
	Totaal        float64 // incl. BTW
	Status        string
	DaanOfWim     string
	PDFURL        string
	CreatedAt     string
	UpdatedAt     string
}
