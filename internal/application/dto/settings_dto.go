package dto

// SettingsRequest body of PUT /api/settings. The whole document is replaced
// on save; a null dashboard preference clears it.
type SettingsRequest struct {
	Bedrijfsnaam      string `json:"bedrijfsnaam"`
	Adres             string `json:"adres"`
	Postcode          string `json:"postcode"`
	Plaats            string `json:"plaats"`
	KVKNummer         string `json:"kvk_nummer"`
	BTWNummer         string `json:"btw_nummer"`
	IBAN              string `json:"iban"`
	Email             string `json:"email"`
	Telefoon          string `json:"telefoon"`
	Website           string `json:"website"`
	FactuurPrefix     string `json:"factuur_prefix"`
	DashboardJaar     *int   `json:"dashboard_jaar"`
	DashboardKwartaal *int   `json:"dashboard_kwartaal"`
}

// SettingsResponse is the wire form of the settings document.
type SettingsResponse struct {
	Bedrijfsnaam      string `json:"bedrijfsnaam"`
	Adres             string `json:"adres"`
	Postcode          string `json:"postcode"`
	Plaats            string `json:"plaats"`
	KVKNummer         string `json:"kvk_nummer"`
	BTWNummer         string `json:"btw_nummer"`
	IBAN              string `json:"iban"`
	Email             string `json:"email"`
	Telefoon          string `json:"telefoon"`
	Website           string `json:"website"`
	FactuurPrefix     string `json:"factuur_prefix"`
	DashboardJaar     *int   `json:"dashboard_jaar,omitempty"`
	DashboardKwartaal *int   `json:"dashboard_kwartaal,omitempty"`
}
