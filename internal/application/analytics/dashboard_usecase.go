// Package analytics contiene los casos de uso de indicadores para el Dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// DashboardUseCase resume el estado del inventario para la página de inicio.
//
// Fuente de datos: SKURepository (consultas read-only).
// pendingOrders queda en 0 mientras las transacciones no se persistan.
type DashboardUseCase struct {
	skuRepo repository.SKURepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(skuRepo repository.SKURepository) *DashboardUseCase {
	return &DashboardUseCase{skuRepo: skuRepo}
}

// GetSummary construye el DashboardSummary.
//
// Tres lecturas independientes en paralelo:
//  1. Count(sin filtro)     → TotalSKUs
//  2. ActiveStockValue()    → ActiveInventoryValue
//  3. CountLowStock()       → LowStockItems
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}
	type lowResult struct {
		n   int64
		err error
	}

	countCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)
	lowCh := make(chan lowResult, 1)

	go func() {
		n, err := uc.skuRepo.Count(ctx, repository.SKUFilter{})
		countCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.skuRepo.ActiveStockValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		n, err := uc.skuRepo.CountLowStock(ctx)
		lowCh <- lowResult{n, err}
	}()

	count := <-countCh
	value := <-valueCh
	low := <-lowCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: total de SKUs: %w", count.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", value.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	return &dto.DashboardSummary{
		TotalSKUs:            count.n,
		ActiveInventoryValue: value.v.Round(2),
		LowStockItems:        int(low.n),
		PendingOrders:        0,
	}, nil
}
