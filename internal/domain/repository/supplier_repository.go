package repository

import (
	"context"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	// GetByIDs devuelve los proveedores encontrados; los IDs inexistentes se omiten.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	Count(ctx context.Context) (int64, error)
}
