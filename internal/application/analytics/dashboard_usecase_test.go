package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sku-inventory-api/internal/application/analytics"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/memory"
)

func TestDashboardUseCase_GetSummary(t *testing.T) {
	repo := memory.NewSKURepository()
	ctx := context.Background()
	for _, s := range []*entity.SKU{
		{ID: "1", SKU: "A", CurrentStock: 3, MinStockLevel: 5, CostPrice: decimal.RequireFromString("1.115"), IsActive: true},
		{ID: "2", SKU: "B", CurrentStock: 10, MinStockLevel: 2, CostPrice: decimal.NewFromInt(4), IsActive: true},
		{ID: "3", SKU: "C", CurrentStock: 0, MinStockLevel: 1, CostPrice: decimal.NewFromInt(99), IsActive: false},
	} {
		require.NoError(t, repo.Create(ctx, s))
	}

	out, err := analytics.NewDashboardUseCase(repo).GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalSKUs)
	assert.Equal(t, 2, out.LowStockItems)
	assert.Equal(t, 0, out.PendingOrders)
	assert.Equal(t, "43.35", out.ActiveInventoryValue.String())
}

func TestDashboardUseCase_EmptyStore(t *testing.T) {
	out, err := analytics.NewDashboardUseCase(memory.NewSKURepository()).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.TotalSKUs)
	assert.Zero(t, out.LowStockItems)
	assert.True(t, out.ActiveInventoryValue.IsZero())
}

// failingValue envuelve el repositorio en memoria y falla al sumar el valor.
type failingValue struct {
	repository.SKURepository
}

var errBoom = errors.New("boom")

func (failingValue) ActiveStockValue(context.Context) (decimal.Decimal, error) {
	return decimal.Zero, errBoom
}

func TestDashboardUseCase_PropagatesErrors(t *testing.T) {
	uc := analytics.NewDashboardUseCase(failingValue{memory.NewSKURepository()})
	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "dashboard")
}

// failingLowStock falla al contar y no admite cargar la lista completa.
type failingLowStock struct {
	repository.SKURepository
}

func (failingLowStock) CountLowStock(context.Context) (int64, error) {
	return 0, errBoom
}

func (failingLowStock) ListLowStock(context.Context) ([]*entity.SKU, error) {
	panic("dashboard must count low stock, not list it")
}

func TestDashboardUseCase_CountsLowStockWithoutListing(t *testing.T) {
	uc := analytics.NewDashboardUseCase(failingLowStock{memory.NewSKURepository()})
	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
