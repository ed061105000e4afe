package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/application/usecase"
)

// DashboardHandler serves the yearly overview and the financial report.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Jaaroverzicht dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        jaar  query  int  false  "Jaar (standaard: voorkeur of huidig jaar)"
// @Success      200   {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	out, err := h.uc.GetDashboard(c.UserContext(), ownerID, queryIntPtr(c, "jaar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetFinancial godoc
// @Summary      Financieel rapport: winst & verlies, BTW-aangifte en IB-schatting
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        jaar      query  int  false  "Jaar"
// @Param        kwartaal  query  int  false  "Kwartaal (1-4)"
// @Success      200       {object}  dto.FinancialResponse
// @Router       /api/dashboard/financieel [get]
func (h *DashboardHandler) GetFinancial(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	out, err := h.uc.GetFinancial(c.UserContext(), ownerID, queryIntPtr(c, "jaar"), queryIntPtr(c, "kwartaal"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// queryIntPtr reads an optional integer query param; nil when absent or not a
// number, so the composer falls through to the saved preference.
func queryIntPtr(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
