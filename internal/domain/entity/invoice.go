package entity

// Invoice statuses. A missing status is treated as concept everywhere.
const (
	StatusConcept     = "concept"
	StatusVerzonden   = "verzonden"
	StatusBetaald     = "betaald"
	StatusVervallen   = "vervallen"
	StatusGeannuleerd = "geannuleerd"
)

// Partner attribution tags (daan_of_wim). Beiden splits amounts 50/50 between
// the two owners for the income-tax estimate.
const (
	PartnerBeiden = "Beiden"
	PartnerDaan   = "Daan"
	PartnerWim    = "Wim"
)

// InvoiceLine is one billed line (regel) on an invoice.
type InvoiceLine struct {
	Beschrijving  string  `json:"beschrijving"`
	Aantal        float64 `json:"aantal"`
	Tarief        float64 `json:"tarief"`
	BTWPercentage float64 `json:"btw_percentage"`
	Totaal        float64 `json:"totaal"`
}

// Invoice is a sales invoice (factuur) of the company.
//
// Factuurdatum and Vervaldatum are date strings ("YYYY-MM-DD"), CreatedAt and
// UpdatedAt are ISO-8601 timestamps. They are kept as strings on purpose: the
// reporting engine derives year/quarter from the string prefix and orders
// recency by lexicographic created_at, both carried over from the system this
// data was migrated from. Malformed values are allowed and degrade to the
// zero period sentinel, never to an error.
type Invoice struct {
	ID            string
	OwnerID       string
	Factuurnummer string
	KlantID       string
	KlantNaam     string
	Factuurdatum  string
	Vervaldatum   string
	Onderwerp     string
	Regels        []InvoiceLine
	Notities      string
	Status        string
	DaanOfWim     string
	Subtotaal     float64 // excl. BTW
	BTWTotaal     float64
	Totaal        float64 // incl. BTW
	PDFURL        string
	VerzondenOp   string
	BetaaldOp     string
	CreatedAt     string
	UpdatedAt     string
}
