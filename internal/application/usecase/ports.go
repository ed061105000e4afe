package usecase

import (
	"context"

	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

// InvoicePDFGenerator renders the graphical representation of an invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, settings *entity.CompanySettings, customer *entity.Customer) ([]byte, error)
}

// InvoiceMailer delivers an invoice PDF to the customer by email.
type InvoiceMailer interface {
	SendInvoice(ctx context.Context, inv *entity.Invoice, settings *entity.CompanySettings, customer *entity.Customer, pdf []byte) error
}

// UBLExporter renders an invoice as a UBL 2.1 XML document.
type UBLExporter interface {
	ExportInvoice(inv *entity.Invoice, settings *entity.CompanySettings, customer *entity.Customer) ([]byte, error)
}
