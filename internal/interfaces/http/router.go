package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/sku-inventory-api/internal/application/analytics"
	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/usecase"
	"github.com/jhoicas/sku-inventory-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SKUUC       *catalog.SKUUseCase
	LowStockUC  *catalog.LowStockUseCase
	WarehouseUC *usecase.WarehouseUseCase
	SupplierUC  *usecase.SupplierUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Metrics     *metrics.HTTPMetrics // nil = sin /metrics
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	// Todo /api requiere Bearer Token.
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// SKUs: las rutas fijas van antes de /:id.
	skus := api.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC, deps.LowStockUC, deps.Metrics)
	skus.Get("/low-stock", skuHandler.LowStock)
	skus.Get("/low-stock/report.pdf", skuHandler.LowStockReport)
	skus.Get("/categories", skuHandler.Categories)
	skus.Post("/", skuHandler.Create)
	skus.Get("/", skuHandler.List)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Put("/:id", skuHandler.Update)
	skus.Delete("/:id", skuHandler.Delete)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)
}
