package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/pdf"
)

func TestRenderLowStock_ProducesPDF(t *testing.T) {
	items := []dto.SKUResponse{
		{SKU: "A-1", Name: "Cable", CurrentStock: 1, MinStockLevel: 10,
			Warehouse: dto.WarehouseRef{ID: "w1", Name: "Main"}, Supplier: dto.SupplierRef{ID: "s1"}},
		{SKU: "B-2", Name: "Mouse", CurrentStock: 4, MinStockLevel: 5},
	}

	out, err := pdf.NewLowStockReport("test").RenderLowStock(context.Background(), items, time.Now())
	require.NoError(t, err)
	assert.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderLowStock_Empty(t *testing.T) {
	out, err := pdf.NewLowStockReport("test").RenderLowStock(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
