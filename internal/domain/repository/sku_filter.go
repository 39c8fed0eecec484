package repository

import (
	"strings"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// SKUFilter criterios de búsqueda de SKUs, neutros respecto al motor de persistencia.
// Los criterios vacíos no restringen; los presentes se combinan con AND.
type SKUFilter struct {
	Search       string   // subcadena sin distinguir mayúsculas en name, sku o barcode
	Categories   []string // pertenencia
	WarehouseIDs []string
	SupplierIDs  []string
	MinStock     *float64 // CurrentStock >= MinStock
	MaxStock     *float64 // CurrentStock <= MaxStock
}

// Pagination ventana de resultados.
type Pagination struct {
	Skip int
	Take int
}

// IsEmpty informa si el filtro no restringe nada.
func (f SKUFilter) IsEmpty() bool {
	return f.Search == "" && len(f.Categories) == 0 && len(f.WarehouseIDs) == 0 &&
		len(f.SupplierIDs) == 0 && f.MinStock == nil && f.MaxStock == nil
}

// Matches evalúa el filtro sobre un SKU en memoria. Es la semántica de referencia
// que los adaptadores SQL y documentales traducen a su propio lenguaje de consulta.
func (f SKUFilter) Matches(s *entity.SKU) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.SKU), term) &&
			!strings.Contains(strings.ToLower(s.Barcode), term) {
			return false
		}
	}
	if len(f.Categories) > 0 && !contains(f.Categories, s.Category) {
		return false
	}
	if len(f.WarehouseIDs) > 0 && !contains(f.WarehouseIDs, s.WarehouseID) {
		return false
	}
	if len(f.SupplierIDs) > 0 && !contains(f.SupplierIDs, s.SupplierID) {
		return false
	}
	stock := float64(s.CurrentStock)
	if f.MinStock != nil && stock < *f.MinStock {
		return false
	}
	if f.MaxStock != nil && stock > *f.MaxStock {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
