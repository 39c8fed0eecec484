package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// SKURepository define el puerto de persistencia para SKU (DIP).
//
// GetByID y GetByCode devuelven (nil, nil) si no existe el registro.
// Create devuelve domain.ErrDuplicate si el código SKU ya existe.
// Update escribe solo si la revisión almacenada coincide con sku.Version y la incrementa;
// devuelve domain.ErrNotFound si el registro desapareció y domain.ErrConflict si otra
// escritura ganó la carrera.
// Delete devuelve domain.ErrNotFound si el registro ya no existe.
type SKURepository interface {
	Create(ctx context.Context, sku *entity.SKU) error
	GetByID(ctx context.Context, id string) (*entity.SKU, error)
	GetByCode(ctx context.Context, code string) (*entity.SKU, error)
	Update(ctx context.Context, sku *entity.SKU) error
	Delete(ctx context.Context, id string) error

	// Count cuenta los SKUs que cumplen el filtro, independiente de la paginación.
	Count(ctx context.Context, filter SKUFilter) (int64, error)
	// List devuelve una página de SKUs filtrados, más recientes primero.
	List(ctx context.Context, filter SKUFilter, page Pagination) ([]*entity.SKU, error)
	// ListLowStock devuelve los SKUs con CurrentStock < MinStockLevel, menor stock primero.
	ListLowStock(ctx context.Context) ([]*entity.SKU, error)
	// CountLowStock cuenta los SKUs con CurrentStock < MinStockLevel sin cargarlos.
	CountLowStock(ctx context.Context) (int64, error)
	// DistinctCategories devuelve las categorías distintas (sin orden garantizado).
	DistinctCategories(ctx context.Context) ([]string, error)
	// ActiveStockValue suma CurrentStock × CostPrice de los SKUs activos.
	ActiveStockValue(ctx context.Context) (decimal.Decimal, error)
}
