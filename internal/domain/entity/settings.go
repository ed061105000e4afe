package entity

// CompanySettings holds the per-owner company profile plus the stored
// dashboard period preference. DashboardJaar/DashboardKwartaal are pointers:
// nil means "not set, fall back to the current date" in the report composer.
type CompanySettings struct {
	OwnerID               string
	Bedrijfsnaam          string
	Adres                 string
	Postcode              string
	Plaats                string
	KVKNummer             string
	BTWNummer             string
	IBAN                  string
	Email                 string
	Telefoon              string
	Website               string
	FactuurPrefix         string // default "F"
	VolgendeFactuurnummer int
	DashboardJaar         *int
	DashboardKwartaal     *int
}
