package dto

import (
	"time"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string         `json:"name" validate:"required,min=1,max=200"`
	ContactPerson string         `json:"contactPerson" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required"`
	Address       entity.Address `json:"address"`
	TaxID         string         `json:"taxId"`
	PaymentTerms  string         `json:"paymentTerms"`
	Notes         string         `json:"notes"`
	Status        string         `json:"status" validate:"omitempty,oneof=active inactive"`
	Categories    []string       `json:"categories"`
	LeadTime      *int           `json:"leadTime" validate:"omitempty,gte=0"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (solo campos presentes).
type UpdateSupplierRequest struct {
	Name          *string         `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string         `json:"contactPerson" validate:"omitempty,min=1"`
	Email         *string         `json:"email" validate:"omitempty,email"`
	Phone         *string         `json:"phone" validate:"omitempty,min=1"`
	Address       *entity.Address `json:"address"`
	TaxID         *string         `json:"taxId"`
	PaymentTerms  *string         `json:"paymentTerms"`
	Notes         *string         `json:"notes"`
	Status        *string         `json:"status" validate:"omitempty,oneof=active inactive"`
	Categories    []string        `json:"categories"`
	LeadTime      *int            `json:"leadTime" validate:"omitempty,gte=0"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ContactPerson string         `json:"contactPerson"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       entity.Address `json:"address"`
	TaxID         string         `json:"taxId"`
	PaymentTerms  string         `json:"paymentTerms"`
	Notes         string         `json:"notes"`
	Status        string         `json:"status"`
	Categories    []string       `json:"categories"`
	LeadTime      int            `json:"leadTime"`
	User          string         `json:"user"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
