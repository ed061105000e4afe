package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/billing"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
)

// InvoiceUseCase CRUD plus the send/pdf/ubl flows for sales invoices.
// Totals are always recomputed from the regels; the invoice number comes from
// the owner's sequence and is never client-supplied.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	pdfGen       InvoicePDFGenerator
	mailer       InvoiceMailer
	ubl          UBLExporter
}

// NewInvoiceUseCase builds the use case. mailer may be nil when SMTP is not
// configured; Send then fails with ErrInvalidInput instead of a dial error.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	pdfGen InvoicePDFGenerator,
	mailer InvoiceMailer,
	ubl UBLExporter,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		pdfGen:       pdfGen,
		mailer:       mailer,
		ubl:          ubl,
	}
}

// Create persists a new invoice: claims the next number from the sequence,
// derives the totals from the regels and stamps the timestamps.
func (uc *InvoiceUseCase) Create(ctx context.Context, ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	nummer, err := uc.settingsRepo.NextFactuurnummer(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("factuurnummer claimen: %w", err)
	}

	subtotaal, btwTotaal, totaal := billing.CalculateTotals(in.Regels)

	status := in.Status
	if status == "" {
		status = entity.StatusConcept
	}
	daanOfWim := in.DaanOfWim
	if daanOfWim == "" {
		daanOfWim = entity.PartnerBeiden
	}

	now := nowStamp()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Factuurnummer: nummer,
		KlantID:       in.KlantID,
		KlantNaam:     in.KlantNaam,
		Factuurdatum:  in.Factuurdatum,
		Vervaldatum:   in.Vervaldatum,
		Onderwerp:     in.Onderwerp,
		Regels:        in.Regels,
		Notities:      in.Notities,
		Status:        status,
		DaanOfWim:     daanOfWim,
		Subtotaal:     subtotaal,
		BTWTotaal:     btwTotaal,
		Totaal:        totaal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyStatusStamps(inv, "")

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetByID fetches one invoice. Returns (nil, nil) when it does not exist.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInvoiceResponse(inv), nil
}

// List returns the owner's invoices, newest first.
func (uc *InvoiceUseCase) List(ctx context.Context, ownerID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for i := range list {
		items = append(items, *toInvoiceResponse(&list[i]))
	}
	return items, nil
}

// Update applies a partial update. When the regels change the totals are
// recomputed; a status change stamps verzonden_op/betaald_op.
func (uc *InvoiceUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	prevStatus := inv.Status

	if in.KlantID != nil {
		inv.KlantID = *in.KlantID
	}
	if in.KlantNaam != nil {
		inv.KlantNaam = *in.KlantNaam
	}
	if in.Factuurdatum != nil {
		inv.Factuurdatum = *in.Factuurdatum
	}
	if in.Vervaldatum != nil {
		inv.Vervaldatum = *in.Vervaldatum
	}
	if in.Onderwerp != nil {
		inv.Onderwerp = *in.Onderwerp
	}
	if in.Regels != nil {
		inv.Regels = *in.Regels
		inv.Subtotaal, inv.BTWTotaal, inv.Totaal = billing.CalculateTotals(inv.Regels)
	}
	if in.Notities != nil {
		inv.Notities = *in.Notities
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.DaanOfWim != nil {
		inv.DaanOfWim = *in.DaanOfWim
	}
	inv.UpdatedAt = nowStamp()
	applyStatusStamps(inv, prevStatus)

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Delete removes an invoice by ID.
func (uc *InvoiceUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.invoiceRepo.Delete(ctx, ownerID, id)
}

// Send renders the PDF, mails it to the customer and marks the invoice
// verzonden. Requires a customer with an email address.
func (uc *InvoiceUseCase) Send(ctx context.Context, ownerID, id string) (*dto.InvoiceResponse, error) {
	if uc.mailer == nil {
		return nil, fmt.Errorf("%w: SMTP is niet geconfigureerd", domain.ErrInvalidInput)
	}
	inv, settings, customer, err := uc.loadForDocument(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNoCustomer
	}
	if customer.Email == "" {
		return nil, domain.ErrNoEmail
	}

	pdf, err := uc.pdfGen.GenerateInvoicePDF(ctx, inv, settings, customer)
	if err != nil {
		return nil, fmt.Errorf("factuur %s: pdf genereren: %w", inv.Factuurnummer, err)
	}
	if err := uc.mailer.SendInvoice(ctx, inv, settings, customer, pdf); err != nil {
		return nil, fmt.Errorf("factuur %s: versturen: %w", inv.Factuurnummer, err)
	}

	prevStatus := inv.Status
	inv.Status = entity.StatusVerzonden
	inv.UpdatedAt = nowStamp()
	applyStatusStamps(inv, prevStatus)
	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// DownloadPDF renders the invoice PDF and returns the bytes plus a filename.
func (uc *InvoiceUseCase) DownloadPDF(ctx context.Context, ownerID, id string) ([]byte, string, error) {
	inv, settings, customer, err := uc.loadForDocument(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdfGen.GenerateInvoicePDF(ctx, inv, settings, customer)
	if err != nil {
		return nil, "", fmt.Errorf("factuur %s: pdf genereren: %w", inv.Factuurnummer, err)
	}
	return pdf, fmt.Sprintf("factuur_%s.pdf", inv.Factuurnummer), nil
}

// ExportUBL renders the invoice as UBL 2.1 XML and returns the bytes plus a
// filename.
func (uc *InvoiceUseCase) ExportUBL(ctx context.Context, ownerID, id string) ([]byte, string, error) {
	inv, settings, customer, err := uc.loadForDocument(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}
	xml, err := uc.ubl.ExportInvoice(inv, settings, customer)
	if err != nil {
		return nil, "", fmt.Errorf("factuur %s: ubl exporteren: %w", inv.Factuurnummer, err)
	}
	return xml, fmt.Sprintf("factuur_%s.xml", inv.Factuurnummer), nil
}

// loadForDocument gathers the invoice plus the settings and customer needed
// to render a document. The customer may be nil (a free-form klant_naam).
func (uc *InvoiceUseCase) loadForDocument(ctx context.Context, ownerID, id string) (*entity.Invoice, *entity.CompanySettings, *entity.Customer, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if inv == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	settings, err := uc.settingsRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, err
	}
	if settings == nil {
		settings = &entity.CompanySettings{OwnerID: ownerID}
	}
	var customer *entity.Customer
	if inv.KlantID != "" {
		customer, err = uc.customerRepo.GetByID(ctx, ownerID, inv.KlantID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return inv, settings, customer, nil
}

// applyStatusStamps records when an invoice first reached verzonden/betaald.
// Stamps are set once and kept on later transitions.
func applyStatusStamps(inv *entity.Invoice, prevStatus string) {
	if inv.Status == prevStatus {
		return
	}
	switch inv.Status {
	case entity.StatusVerzonden:
		if inv.VerzondenOp == "" {
			inv.VerzondenOp = today()
		}
	case entity.StatusBetaald:
		if inv.VerzondenOp == "" {
			inv.VerzondenOp = today()
		}
		if inv.BetaaldOp == "" {
			inv.BetaaldOp = today()
		}
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	regels := inv.Regels
	if regels == nil {
		regels = []entity.InvoiceLine{}
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		Factuurnummer: inv.Factuurnummer,
		KlantID:       inv.KlantID,
		KlantNaam:     inv.KlantNaam,
		Factuurdatum:  inv.Factuurdatum,
		Vervaldatum:   inv.Vervaldatum,
		Onderwerp:     inv.Onderwerp,
		Regels:        regels,
		Notities:      inv.Notities,
		Status:        inv.Status,
		DaanOfWim:     inv.DaanOfWim,
		Subtotaal:     inv.Subtotaal,
		BTWTotaal:     inv.BTWTotaal,
		Totaal:        inv.Totaal,
		PDFURL:        inv.PDFURL,
		VerzondenOp:   inv.VerzondenOp,
		BetaaldOp:     inv.BetaaldOp,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
