package dto

// CreateCustomerRequest body of POST /api/klanten (also used for PUT).
type CreateCustomerRequest struct {
	Bedrijfsnaam string `json:"bedrijfsnaam"`
	Voornaam     string `json:"voornaam"`
	Achternaam   string `json:"achternaam"`
	Email        string `json:"email"`
	Telefoon     string `json:"telefoon"`
	Adres        string `json:"adres"`
	Postcode     string `json:"postcode"`
	Plaats       string `json:"plaats"`
	Land         string `json:"land"`
	KVKNummer    string `json:"kvk_nummer"`
	BTWNummer    string `json:"btw_nummer"`
	Notities     string `json:"notities"`
}

// CustomerResponse is the wire form of a customer.
type CustomerResponse struct {
	ID           string `json:"id"`
	Bedrijfsnaam string `json:"bedrijfsnaam"`
	Voornaam     string `json:"voornaam"`
	Achternaam   string `json:"achternaam"`
	Email        string `json:"email"`
	Telefoon     string `json:"telefoon"`
	Adres        string `json:"adres"`
	Postcode     string `json:"postcode"`
	Plaats       string `json:"plaats"`
	Land         string `json:"land"`
	KVKNummer    string `json:"kvk_nummer"`
	BTWNummer    string `json:"btw_nummer"`
	Notities     string `json:"notities"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
