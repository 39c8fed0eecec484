// Package memory implementa los puertos de persistencia en memoria de proceso.
// Sirve para desarrollo local (STORAGE_DRIVER=memory) y como doble de prueba de los casos de uso.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo almacena SKUs en un mapa protegido por RWMutex. Entradas y salidas se clonan.
type SKURepo struct {
	mu     sync.RWMutex
	byID   map[string]*entity.SKU
	byCode map[string]string // sku -> id
}

// NewSKURepository construye el repositorio vacío.
func NewSKURepository() *SKURepo {
	return &SKURepo{
		byID:   map[string]*entity.SKU{},
		byCode: map[string]string{},
	}
}

// Create persiste un SKU nuevo. Devuelve domain.ErrDuplicate si el código ya existe.
func (r *SKURepo) Create(_ context.Context, sku *entity.SKU) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[sku.SKU]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.byID[sku.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[sku.ID] = sku.Clone()
	r.byCode[sku.SKU] = sku.ID
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SKURepo) GetByID(_ context.Context, id string) (*entity.SKU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id].Clone(), nil
}

// GetByCode devuelve (nil, nil) si no existe.
func (r *SKURepo) GetByCode(_ context.Context, code string) (*entity.SKU, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	return r.byID[id].Clone(), nil
}

// Update reemplaza el SKU si la revisión almacenada coincide con sku.Version.
func (r *SKURepo) Update(_ context.Context, sku *entity.SKU) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[sku.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if current.Version != sku.Version {
		return domain.ErrConflict
	}
	sku.Version++
	stored := sku.Clone()
	// El código es inmutable; se conserva el índice existente.
	stored.SKU = current.SKU
	r.byID[sku.ID] = stored
	return nil
}

// Delete elimina el SKU. Devuelve domain.ErrNotFound si ya no existe.
func (r *SKURepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byCode, current.SKU)
	delete(r.byID, id)
	return nil
}

// Count cuenta los SKUs que cumplen el filtro.
func (r *SKURepo) Count(_ context.Context, filter repository.SKUFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, s := range r.byID {
		if filter.Matches(s) {
			n++
		}
	}
	return n, nil
}

// List devuelve la página pedida, más recientes primero.
func (r *SKURepo) List(_ context.Context, filter repository.SKUFilter, page repository.Pagination) ([]*entity.SKU, error) {
	matched := r.collect(filter.Matches)
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if page.Skip < 0 || page.Skip >= len(matched) {
		return []*entity.SKU{}, nil
	}
	end := len(matched)
	if page.Take > 0 && page.Skip+page.Take < end {
		end = page.Skip + page.Take
	}
	return matched[page.Skip:end], nil
}

// ListLowStock devuelve los SKUs bajo su punto de reorden, menor stock primero.
func (r *SKURepo) ListLowStock(_ context.Context) ([]*entity.SKU, error) {
	low := r.collect((*entity.SKU).IsLowStock)
	sort.SliceStable(low, func(i, j int) bool {
		if low[i].CurrentStock == low[j].CurrentStock {
			return low[i].SKU < low[j].SKU
		}
		return low[i].CurrentStock < low[j].CurrentStock
	})
	return low, nil
}

// CountLowStock cuenta los SKUs bajo su punto de reorden.
func (r *SKURepo) CountLowStock(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, s := range r.byID {
		if s.IsLowStock() {
			n++
		}
	}
	return n, nil
}

// DistinctCategories devuelve cada categoría una vez.
func (r *SKURepo) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, s := range r.byID {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out, nil
}

// ActiveStockValue suma CurrentStock × CostPrice de los SKUs activos.
func (r *SKURepo) ActiveStockValue(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, s := range r.byID {
		if s.IsActive {
			total = total.Add(s.StockValue())
		}
	}
	return total, nil
}

func (r *SKURepo) collect(keep func(*entity.SKU) bool) []*entity.SKU {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.SKU{}
	for _, s := range r.byID {
		if keep(s) {
			out = append(out, s.Clone())
		}
	}
	return out
}
