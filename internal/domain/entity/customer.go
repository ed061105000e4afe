package entity

// Customer is a client (klant) the company invoices.
type Customer struct {
	ID           string
	OwnerID      string
	Bedrijfsnaam string
	Voornaam     string
	Achternaam   string
	Email        string
	Telefoon     string
	Adres        string
	Postcode     string
	Plaats       string
	Land         string
	KVKNummer    string
	BTWNummer    string
	Notities     string
	CreatedAt    string
	UpdatedAt    string
}
