package dto

import (
	"time"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string         `json:"name" validate:"required,min=1,max=200"`
	Code     string         `json:"code" validate:"required,min=1,max=50"`
	Address  entity.Address `json:"address"`
	Manager  string         `json:"manager" validate:"required"`
	Phone    string         `json:"phone" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Capacity float64        `json:"capacity" validate:"gte=0"`
	Notes    string         `json:"notes"`
	Status   string         `json:"status" validate:"omitempty,oneof=active inactive 'under maintenance'"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega. El código no se modifica.
type UpdateWarehouseRequest struct {
	Name     *string         `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *entity.Address `json:"address"`
	Manager  *string         `json:"manager" validate:"omitempty,min=1"`
	Phone    *string         `json:"phone" validate:"omitempty,min=1"`
	Email    *string         `json:"email" validate:"omitempty,email"`
	Capacity *float64        `json:"capacity" validate:"omitempty,gte=0"`
	Notes    *string         `json:"notes"`
	Status   *string         `json:"status" validate:"omitempty,oneof=active inactive 'under maintenance'"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Address   entity.Address `json:"address"`
	Manager   string         `json:"manager"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Capacity  float64        `json:"capacity"`
	Notes     string         `json:"notes"`
	Status    string         `json:"status"`
	User      string         `json:"user"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
