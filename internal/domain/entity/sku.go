package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU representa una unidad de inventario (stock-keeping unit).
// CurrentStock arranca en InitialStock y solo lo mueven transacciones y ajustes, nunca una edición.
type SKU struct {
	ID                 string
	Name               string
	SKU                string // código único global
	Barcode            string
	Description        string
	Category           string
	CostPrice          decimal.Decimal
	SellingPrice       decimal.Decimal
	InitialStock       int
	CurrentStock       int
	MinStockLevel      int // punto de reorden
	ImageURL           string
	WarehouseID        string
	SupplierID         string
	AlternateSuppliers []string
	Tags               []string
	Notes              string
	IsActive           bool
	Location           string
	UserID             string // usuario que lo creó
	Version            int64  // revisión para escritura condicional
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsLowStock informa si el stock actual está por debajo del punto de reorden.
func (s *SKU) IsLowStock() bool {
	return s.CurrentStock < s.MinStockLevel
}

// StockValue valor del stock actual a precio de costo.
func (s *SKU) StockValue() decimal.Decimal {
	return s.CostPrice.Mul(decimal.NewFromInt(int64(s.CurrentStock)))
}

// Clone devuelve una copia profunda (los slices no se comparten).
func (s *SKU) Clone() *SKU {
	if s == nil {
		return nil
	}
	c := *s
	c.AlternateSuppliers = append([]string{}, s.AlternateSuppliers...)
	c.Tags = append([]string{}, s.Tags...)
	return &c
}
