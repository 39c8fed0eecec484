package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// LowStockUseCase vista de solo lectura de los SKUs con CurrentStock < MinStockLevel.
type LowStockUseCase struct {
	skus     repository.SKURepository
	expander expander
	renderer LowStockReportRenderer
	now      func() time.Time
}

// NewLowStockUseCase construye el caso de uso. renderer puede ser nil si no se sirve el PDF.
func NewLowStockUseCase(
	skus repository.SKURepository,
	warehouses repository.WarehouseRepository,
	suppliers repository.SupplierRepository,
	renderer LowStockReportRenderer,
) *LowStockUseCase {
	return &LowStockUseCase{
		skus:     skus,
		expander: expander{warehouses: warehouses, suppliers: suppliers},
		renderer: renderer,
		now:      time.Now,
	}
}

// List devuelve los SKUs bajo punto de reorden, el más agotado primero, con nombre de bodega
// y proveedor. Devuelve un slice vacío (no nil) si ninguno califica.
func (uc *LowStockUseCase) List(ctx context.Context) ([]dto.SKUResponse, error) {
	list, err := uc.skus.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.expander.responses(ctx, list, expandLowStock)
}

// Report genera el PDF de reposición con la misma lista que List.
func (uc *LowStockUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("low stock: renderer no configurado")
	}
	items, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderLowStock(ctx, items, uc.now())
}
