package dto

import "github.com/opwolken/facturatie-api/internal/domain/entity"

// CreateInvoiceRequest body of POST /api/invoices. Totals are always derived
// server-side from the regels, never taken from the client.
type CreateInvoiceRequest struct {
	KlantID      string               `json:"klant_id"`
	KlantNaam    string               `json:"klant_naam"`
	Factuurdatum string               `json:"factuurdatum"`
	Vervaldatum  string               `json:"vervaldatum"`
	Onderwerp    string               `json:"onderwerp"`
	Regels       []entity.InvoiceLine `json:"regels"`
	Notities     string               `json:"notities"`
	Status       string               `json:"status"`
	DaanOfWim    string               `json:"daan_of_wim"`
}

// UpdateInvoiceRequest body of PUT /api/invoices/:id. Nil fields are left
// untouched (partial update).
type UpdateInvoiceRequest struct {
	KlantID      *string               `json:"klant_id"`
	KlantNaam    *string               `json:"klant_naam"`
	Factuurdatum *string               `json:"factuurdatum"`
	Vervaldatum  *string               `json:"vervaldatum"`
	Onderwerp    *string               `json:"onderwerp"`
	Regels       *[]entity.InvoiceLine `json:"regels"`
	Notities     *string               `json:"notities"`
	Status       *string               `json:"status"`
	DaanOfWim    *string               `json:"daan_of_wim"`
}

// InvoiceResponse is the wire form of an invoice.
type InvoiceResponse struct {
	ID            string               `json:"id"`
	Factuurnummer string               `json:"factuurnummer"`
	KlantID       string               `json:"klant_id"`
	KlantNaam     string               `json:"klant_naam"`
	Factuurdatum  string               `json:"factuurdatum"`
	Vervaldatum   string               `json:"vervaldatum"`
	Onderwerp     string               `json:"onderwerp"`
	Regels        []entity.InvoiceLine `json:"regels"`
	Notities      string               `json:"notities"`
	Status        string               `json:"status"`
	DaanOfWim     string               `json:"daan_of_wim"`
	Subtotaal     float64              `json:"subtotaal"`
	BTWTotaal     float64              `json:"btw_totaal"`
	Totaal        float64              `json:"totaal"`
	PDFURL        string               `json:"pdf_url,omitempty"`
	VerzondenOp   string               `json:"verzonden_op,omitempty"`
	BetaaldOp     string               `json:"betaald_op,omitempty"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}
