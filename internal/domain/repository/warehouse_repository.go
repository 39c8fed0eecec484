package repository

import (
	"context"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// GetByID devuelve (nil, nil) si no existe; Create devuelve domain.ErrDuplicate si el código ya existe.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	// GetByIDs devuelve las bodegas encontradas; los IDs inexistentes se omiten.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error)
	Count(ctx context.Context) (int64, error)
}
