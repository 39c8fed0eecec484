package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

func TestBuildSKUWhere_Empty(t *testing.T) {
	where, args := buildSKUWhere(repository.SKUFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildSKUWhere_AllCriteria(t *testing.T) {
	minStock, maxStock := 5.0, 50.0
	where, args := buildSKUWhere(repository.SKUFilter{
		Search:       "usb",
		Categories:   []string{"Electronics", "Office"},
		WarehouseIDs: []string{"w1"},
		SupplierIDs:  []string{"s1", "s2"},
		MinStock:     &minStock,
		MaxStock:     &maxStock,
	})

	assert.Equal(t,
		" WHERE (name ILIKE $1 OR sku ILIKE $2 OR barcode ILIKE $3)"+
			" AND category = ANY($4) AND warehouse_id = ANY($5) AND supplier_id = ANY($6)"+
			" AND current_stock >= $7::float8 AND current_stock <= $8::float8",
		where)
	assert.Equal(t, []any{
		"%usb%", "%usb%", "%usb%",
		[]string{"Electronics", "Office"}, []string{"w1"}, []string{"s1", "s2"},
		5.0, 50.0,
	}, args)
}

func TestBuildSKUWhere_SearchIsLiteral(t *testing.T) {
	_, args := buildSKUWhere(repository.SKUFilter{Search: `50%_off\`})
	assert.Equal(t, `%50\%\_off\\%`, args[0])
}

func TestBuildSKUWhere_OnlyStockBounds(t *testing.T) {
	zero := 0.0
	where, args := buildSKUWhere(repository.SKUFilter{MinStock: &zero})
	assert.Equal(t, " WHERE current_stock >= $1::float8", where)
	assert.Equal(t, []any{0.0}, args)
}
