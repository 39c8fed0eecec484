package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/application/usecase"
	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/memory"
)

func warehouseReq(code string) dto.CreateWarehouseRequest {
	return dto.CreateWarehouseRequest{
		Name:    "Bodega " + code,
		Code:    code,
		Manager: "Ana",
		Phone:   "555",
		Email:   "ana@example.com",
	}
}

func TestWarehouseUseCase_Create(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository())
	ctx := context.Background()

	out, err := uc.Create(ctx, "u-1", warehouseReq("MAIN"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.WarehouseActive, out.Status)
	assert.Equal(t, "u-1", out.User)

	_, err = uc.Create(ctx, "u-1", warehouseReq("MAIN"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestWarehouseUseCase_CreateValidation(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository())

	bad := warehouseReq("X")
	bad.Email = "not-an-email"
	bad.Status = "closed"
	_, err := uc.Create(context.Background(), "u-1", bad)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestWarehouseUseCase_UpdateAndGet(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository())
	ctx := context.Background()
	created, err := uc.Create(ctx, "u-1", warehouseReq("MAIN"))
	require.NoError(t, err)

	status := entity.WarehouseMaintenance
	capacity := 1200.0
	_, err = uc.Update(ctx, created.ID, dto.UpdateWarehouseRequest{Status: &status, Capacity: &capacity})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.WarehouseMaintenance, got.Status)
	assert.Equal(t, 1200.0, got.Capacity)
	assert.Equal(t, "MAIN", got.Code)
	assert.Equal(t, "Bodega MAIN", got.Name)

	_, err = uc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, "missing", dto.UpdateWarehouseRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseUseCase_ListDefaultsPage(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository())
	ctx := context.Background()
	for _, code := range []string{"A", "B", "C"} {
		_, err := uc.Create(ctx, "u-1", warehouseReq(code))
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, dto.PageRequest{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
	assert.Equal(t, int64(3), out.Page.Total)
	assert.Len(t, out.Items, 3)

	out, err = uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "C", out.Items[0].Code)
}
