package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	mu   sync.RWMutex
	byID map[string]entity.Supplier
}

// NewSupplierRepository construye el repositorio vacío.
func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{byID: map[string]entity.Supplier{}}
}

func (r *SupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[s.ID] = copySupplier(s)
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := copySupplier(&s)
	return &out, nil
}

func (r *SupplierRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(ids))
	for _, id := range ids {
		if s, ok := r.byID[id]; ok {
			c := copySupplier(&s)
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *SupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[s.ID] = copySupplier(s)
	return nil
}

func (r *SupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	r.mu.RLock()
	all := make([]*entity.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		c := copySupplier(&s)
		all = append(all, &c)
	}
	r.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return window(all, limit, offset), nil
}

func (r *SupplierRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}

func copySupplier(s *entity.Supplier) entity.Supplier {
	c := *s
	c.Categories = append([]string{}, s.Categories...)
	return c
}
