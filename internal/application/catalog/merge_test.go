package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func storedSKU() *entity.SKU {
	return &entity.SKU{
		ID:            "id-1",
		Name:          "Drill",
		SKU:           "DR-1",
		Barcode:       "123",
		Description:   "cordless",
		Category:      "Tools",
		CostPrice:     decimal.NewFromInt(10),
		SellingPrice:  decimal.NewFromInt(15),
		InitialStock:  20,
		CurrentStock:  8,
		MinStockLevel: 5,
		WarehouseID:   "wh-1",
		SupplierID:    "sp-1",
		Tags:          []string{"power"},
		Notes:         "fragile",
		IsActive:      true,
	}
}

func TestParseMergePolicy(t *testing.T) {
	p, err := catalog.ParseMergePolicy("")
	require.NoError(t, err)
	assert.Equal(t, catalog.MergeExplicit, p)

	p, err = catalog.ParseMergePolicy("skip-empty")
	require.NoError(t, err)
	assert.Equal(t, catalog.MergeSkipEmpty, p)

	_, err = catalog.ParseMergePolicy("overwrite")
	assert.Error(t, err)
}

func TestMergeExplicit_OverwritesPresentFields(t *testing.T) {
	s := storedSKU()
	err := catalog.MergeExplicit.Apply(s, dto.UpdateSKURequest{
		Name:          strPtr("Hammer"),
		Notes:         strPtr(""),
		MinStockLevel: intPtr(0),
		IsActive:      boolPtr(false),
		Tags:          []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hammer", s.Name)
	assert.Equal(t, "", s.Notes)
	assert.Equal(t, 0, s.MinStockLevel)
	assert.False(t, s.IsActive)
	assert.Empty(t, s.Tags)
	assert.Equal(t, "Tools", s.Category, "absent field keeps stored value")
}

func TestMerge_NeverTouchesCodeOrStock(t *testing.T) {
	for _, p := range []catalog.MergePolicy{catalog.MergeExplicit, catalog.MergeSkipEmpty} {
		s := storedSKU()
		require.NoError(t, p.Apply(s, dto.UpdateSKURequest{Name: strPtr("Other")}))
		assert.Equal(t, "DR-1", s.SKU)
		assert.Equal(t, 20, s.InitialStock)
		assert.Equal(t, 8, s.CurrentStock)
	}
}

func TestMergeExplicit_EmptyRequiredFieldIsRejected(t *testing.T) {
	s := storedSKU()
	err := catalog.MergeExplicit.Apply(s, dto.UpdateSKURequest{Category: strPtr("")})
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "category", verr.Fields[0].Field)
}

func TestMergeSkipEmpty_IgnoresEmptyValues(t *testing.T) {
	s := storedSKU()
	zero := decimal.Zero
	err := catalog.MergeSkipEmpty.Apply(s, dto.UpdateSKURequest{
		Name:          strPtr(""),
		Category:      strPtr(""),
		Barcode:       strPtr(""),
		CostPrice:     &zero,
		MinStockLevel: intPtr(0),
		Notes:         strPtr("handle with care"),
		IsActive:      boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Drill", s.Name)
	assert.Equal(t, "Tools", s.Category)
	assert.Equal(t, "123", s.Barcode)
	assert.True(t, s.CostPrice.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 5, s.MinStockLevel)
	assert.Equal(t, "handle with care", s.Notes)
	assert.False(t, s.IsActive, "isActive applies whenever present")
}

func TestMerge_NegativePriceIsRejected(t *testing.T) {
	s := storedSKU()
	neg := decimal.NewFromInt(-1)
	err := catalog.MergeExplicit.Apply(s, dto.UpdateSKURequest{SellingPrice: &neg})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
