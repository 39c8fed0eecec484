package entity

import "time"

// Valores por defecto de un proveedor.
const (
	SupplierActive          = "active"
	SupplierInactive        = "inactive"
	DefaultPaymentTerms     = "Net 30"
	DefaultSupplierLeadTime = 7
)

// Supplier representa un proveedor de SKUs.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       Address
	TaxID         string
	PaymentTerms  string
	Notes         string
	Status        string
	Categories    []string
	LeadTime      int // días
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
