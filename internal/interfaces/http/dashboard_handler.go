package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/sku-inventory-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint de indicadores.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve totalSKUs, activeInventoryValue, lowStockItems y pendingOrders.
// GET /api/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err, skuResource)
	}
	return c.JSON(summary)
}
