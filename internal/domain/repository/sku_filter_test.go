package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

func f64(v float64) *float64 { return &v }

func TestSKUFilter_Matches(t *testing.T) {
	sku := &entity.SKU{
		Name:         "Cordless Drill",
		SKU:          "DR-100",
		Barcode:      "7701234",
		Category:     "Tools",
		WarehouseID:  "w1",
		SupplierID:   "s1",
		CurrentStock: 10,
	}

	cases := []struct {
		name   string
		filter repository.SKUFilter
		want   bool
	}{
		{"empty", repository.SKUFilter{}, true},
		{"search name case insensitive", repository.SKUFilter{Search: "drill"}, true},
		{"search code", repository.SKUFilter{Search: "dr-1"}, true},
		{"search barcode", repository.SKUFilter{Search: "1234"}, true},
		{"search regex chars are literal", repository.SKUFilter{Search: "dr.100"}, false},
		{"category in set", repository.SKUFilter{Categories: []string{"Paint", "Tools"}}, true},
		{"category not in set", repository.SKUFilter{Categories: []string{"Paint"}}, false},
		{"warehouse", repository.SKUFilter{WarehouseIDs: []string{"w2"}}, false},
		{"supplier", repository.SKUFilter{SupplierIDs: []string{"s1"}}, true},
		{"min inclusive", repository.SKUFilter{MinStock: f64(10)}, true},
		{"max inclusive", repository.SKUFilter{MaxStock: f64(10)}, true},
		{"above max", repository.SKUFilter{MaxStock: f64(9.5)}, false},
		{"below min", repository.SKUFilter{MinStock: f64(11)}, false},
		{"criteria combine with and", repository.SKUFilter{Search: "drill", Categories: []string{"Paint"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(sku))
		})
	}
}

func TestSKUFilter_IsEmpty(t *testing.T) {
	assert.True(t, repository.SKUFilter{}.IsEmpty())
	assert.False(t, repository.SKUFilter{MinStock: f64(0)}.IsEmpty())
	assert.False(t, repository.SKUFilter{Categories: []string{"x"}}.IsEmpty())
}
