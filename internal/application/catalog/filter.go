package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// Paginación por defecto de GET /api/skus.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage acota page para que MaxLimit*(page-1) no desborde int.
	MaxPage      = math.MaxInt / MaxLimit
)

// ListCriteria resultado de traducir los parámetros de la URL: filtro + página solicitada.
type ListCriteria struct {
	Filter repository.SKUFilter
	Page   int
	Limit  int
}

// Pagination ventana skip/take equivalente a la página solicitada.
func (c ListCriteria) Pagination() repository.Pagination {
	return repository.Pagination{Skip: c.Limit * (c.Page - 1), Take: c.Limit}
}

// Pages número de páginas para total resultados: ceil(total / limit).
func (c ListCriteria) Pages(total int64) int {
	if total <= 0 || c.Limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(c.Limit)))
}

// BuildListCriteria convierte los parámetros opcionales de la petición en un filtro.
//
//   - search: coincidencia literal sin distinguir mayúsculas en name, sku o barcode.
//   - category, warehouse, supplier: pertenencia; acepta clave repetida o valores separados por coma.
//   - minStock/maxStock: cotas inclusivas sobre currentStock; un valor no numérico es error de validación.
//   - page/limit: no numéricos o < 1 toman el valor por defecto; limit se acota a MaxLimit
//     y page a MaxPage.
func BuildListCriteria(q dto.SKUListQuery) (ListCriteria, error) {
	c := ListCriteria{
		Filter: repository.SKUFilter{
			Search:       strings.TrimSpace(q.Search),
			Categories:   normalizeValues(q.Category),
			WarehouseIDs: normalizeValues(q.Warehouse),
			SupplierIDs:  normalizeValues(q.Supplier),
		},
		Page:  positiveOr(q.Page, DefaultPage),
		Limit: positiveOr(q.Limit, DefaultLimit),
	}
	if c.Limit > MaxLimit {
		c.Limit = MaxLimit
	}
	if c.Page > MaxPage {
		c.Page = MaxPage
	}

	var err error
	if c.Filter.MinStock, err = parseBound("minStock", q.MinStock); err != nil {
		return ListCriteria{}, err
	}
	if c.Filter.MaxStock, err = parseBound("maxStock", q.MaxStock); err != nil {
		return ListCriteria{}, err
	}
	return c, nil
}

// normalizeValues aplana "a,b" y repeticiones en un único conjunto sin vacíos ni duplicados.
func normalizeValues(raw []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			v := strings.TrimSpace(part)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func parseBound(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domain.NewValidationError(field, "numeric", "")
	}
	return &v, nil
}
