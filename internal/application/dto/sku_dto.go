package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSKURequest entrada para crear un SKU. CurrentStock e IsActive los fija el sistema.
// Los precios son punteros para distinguir "ausente" de cero.
type CreateSKURequest struct {
	Name               string           `json:"name" validate:"required,max=200"`
	SKU                string           `json:"sku" validate:"required,max=100"`
	Barcode            string           `json:"barcode" validate:"required,max=100"`
	Description        string           `json:"description"`
	Category           string           `json:"category" validate:"required,max=100"`
	CostPrice          *decimal.Decimal `json:"costPrice"`
	SellingPrice       *decimal.Decimal `json:"sellingPrice"`
	InitialStock       int              `json:"initialStock" validate:"gte=0"`
	MinStockLevel      int              `json:"minStockLevel" validate:"gte=0"`
	ImageURL           string           `json:"imageUrl"`
	WarehouseID        string           `json:"warehouseId" validate:"required,uuid"`
	SupplierID         string           `json:"supplierId" validate:"required,uuid"`
	AlternateSuppliers []string         `json:"alternateSuppliers" validate:"omitempty,dive,uuid"`
	Tags               []string         `json:"tags"`
	Notes              string           `json:"notes"`
	Location           string           `json:"location"`
}

// UpdateSKURequest actualización parcial: nil significa "no enviado".
// sku, initialStock y currentStock no son editables y se ignoran si llegan en el cuerpo.
// Version, si se envía, debe coincidir con la revisión almacenada.
type UpdateSKURequest struct {
	Name               *string          `json:"name" validate:"omitempty,max=200"`
	Barcode            *string          `json:"barcode" validate:"omitempty,max=100"`
	Description        *string          `json:"description"`
	Category           *string          `json:"category" validate:"omitempty,max=100"`
	CostPrice          *decimal.Decimal `json:"costPrice"`
	SellingPrice       *decimal.Decimal `json:"sellingPrice"`
	MinStockLevel      *int             `json:"minStockLevel" validate:"omitempty,gte=0"`
	ImageURL           *string          `json:"imageUrl"`
	WarehouseID        *string          `json:"warehouseId" validate:"omitempty,uuid"`
	SupplierID         *string          `json:"supplierId" validate:"omitempty,uuid"`
	AlternateSuppliers []string         `json:"alternateSuppliers" validate:"omitempty,dive,uuid"`
	Tags               []string         `json:"tags"`
	Notes              *string          `json:"notes"`
	IsActive           *bool            `json:"isActive"`
	Location           *string          `json:"location"`
	Version            *int64           `json:"version"`
}

// SKUListQuery parámetros crudos de GET /api/skus tal como llegan en la URL.
// Los multivaluados conservan cada repetición de la clave.
type SKUListQuery struct {
	Search    string
	Category  []string
	Warehouse []string
	Supplier  []string
	MinStock  string
	MaxStock  string
	Page      string
	Limit     string
}

// WarehouseRef referencia a bodega; sin expandir solo lleva el ID.
type WarehouseRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

// SupplierRef referencia a proveedor; sin expandir solo lleva el ID.
type SupplierRef struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// SKUResponse salida de un SKU.
type SKUResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	SKU                string          `json:"sku"`
	Barcode            string          `json:"barcode"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	CostPrice          decimal.Decimal `json:"costPrice"`
	SellingPrice       decimal.Decimal `json:"sellingPrice"`
	InitialStock       int             `json:"initialStock"`
	CurrentStock       int             `json:"currentStock"`
	MinStockLevel      int             `json:"minStockLevel"`
	ImageURL           string          `json:"imageUrl"`
	Warehouse          WarehouseRef    `json:"warehouseId"`
	Supplier           SupplierRef     `json:"supplierId"`
	AlternateSuppliers []SupplierRef   `json:"alternateSuppliers"`
	Tags               []string        `json:"tags"`
	Notes              string          `json:"notes"`
	IsActive           bool            `json:"isActive"`
	Location           string          `json:"location"`
	User               string          `json:"user"`
	Version            int64           `json:"version"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// SKUListResponse página de SKUs con totales.
type SKUListResponse struct {
	SKUs  []SKUResponse `json:"skus"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Total int64         `json:"total"`
}

// DashboardSummary indicadores de la página de inicio.
type DashboardSummary struct {
	TotalSKUs            int64           `json:"totalSKUs"`
	ActiveInventoryValue decimal.Decimal `json:"activeInventoryValue"`
	LowStockItems        int             `json:"lowStockItems"`
	PendingOrders        int             `json:"pendingOrders"`
}
