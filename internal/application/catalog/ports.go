package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
)

// LowStockReportRenderer genera el documento imprimible de SKUs bajo punto de reorden.
type LowStockReportRenderer interface {
	RenderLowStock(ctx context.Context, items []dto.SKUResponse, generatedAt time.Time) ([]byte, error)
}
