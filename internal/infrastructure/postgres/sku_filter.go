package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// whereBuilder acumula condiciones y argumentos posicionales ($1, $2, ...).
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		b.args = append(b.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.conds = append(b.conds, cond)
}

func (b *whereBuilder) sql() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// buildSKUWhere traduce el filtro a una cláusula WHERE y sus argumentos.
// La búsqueda usa ILIKE con los comodines escapados.
func buildSKUWhere(f repository.SKUFilter) (string, []any) {
	var b whereBuilder
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		b.add("(name ILIKE ? OR sku ILIKE ? OR barcode ILIKE ?)", pattern, pattern, pattern)
	}
	if len(f.Categories) > 0 {
		b.add("category = ANY(?)", f.Categories)
	}
	if len(f.WarehouseIDs) > 0 {
		b.add("warehouse_id = ANY(?)", f.WarehouseIDs)
	}
	if len(f.SupplierIDs) > 0 {
		b.add("supplier_id = ANY(?)", f.SupplierIDs)
	}
	if f.MinStock != nil {
		b.add("current_stock >= ?::float8", *f.MinStock)
	}
	if f.MaxStock != nil {
		b.add("current_stock <= ?::float8", *f.MaxStock)
	}
	return b.sql(), b.args
}
