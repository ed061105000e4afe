package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/application/usecase"
	"github.com/opwolken/facturatie-api/internal/domain"
)

// InvoiceHandler handles sales invoices, including the send/pdf/ubl flows.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create godoc
// @Summary      Factuur aanmaken
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Factuur"
// @Success      201   {object}  dto.InvoiceResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige body"})
	}
	out, err := h.uc.Create(c.UserContext(), GetOwnerID(c), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Facturen ophalen (nieuwste eerst)
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Factuur ophalen
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Factuur-ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factuur niet gevonden"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Factuur bijwerken (partieel)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Factuur-ID"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Te wijzigen velden"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige body"})
	}
	out, err := h.uc.Update(c.UserContext(), GetOwnerID(c), c.Params("id"), in)
	if err != nil {
		return invoiceError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factuur niet gevonden"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Factuur verwijderen
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Factuur-ID"
// @Success      200  {object}  dto.OkResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetOwnerID(c), c.Params("id")); err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true, Message: "factuur verwijderd"})
}

// Send godoc
// @Summary      Factuur per e-mail versturen
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Factuur-ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	out, err := h.uc.Send(c.UserContext(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Factuur als PDF downloaden
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Factuur-ID"
// @Success      200
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadPDF(c.UserContext(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// ExportUBL godoc
// @Summary      Factuur als UBL 2.1 XML exporteren
// @Tags         invoices
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "Factuur-ID"
// @Success      200
// @Router       /api/invoices/{id}/ubl [get]
func (h *InvoiceHandler) ExportUBL(c *fiber.Ctx) error {
	xml, filename, err := h.uc.ExportUBL(c.UserContext(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(xml)
}

// invoiceError maps the domain errors of the invoice flows to HTTP statuses.
func invoiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factuur niet gevonden"})
	case errors.Is(err, domain.ErrNoCustomer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_CUSTOMER", Message: "geen klant gekoppeld aan de factuur"})
	case errors.Is(err, domain.ErrNoEmail):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_EMAIL", Message: "klant heeft geen e-mailadres"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
