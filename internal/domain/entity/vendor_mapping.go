package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
)

// VendorMapping relaciona un SKU con el código y precio que usa un proveedor.
// El par (SKUID, VendorID) es único.
type VendorMapping struct {
	ID                   string
	SKUID                string
	VendorID             string
	VendorSKU            string
	VendorPrice          decimal.Decimal
	MinimumOrderQuantity int
	LeadTime             int // días
	IsPreferred          bool
	LastPurchaseDate     *time.Time
	Notes                string
	UserID               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewVendorMapping aplica los valores por defecto (pedido mínimo 1, 7 días de entrega).
func NewVendorMapping(skuID, vendorID, vendorSKU string, price decimal.Decimal, userID string, now time.Time) *VendorMapping {
	return &VendorMapping{
		SKUID:                skuID,
		VendorID:             vendorID,
		VendorSKU:            vendorSKU,
		VendorPrice:          price,
		MinimumOrderQuantity: 1,
		LeadTime:             DefaultSupplierLeadTime,
		UserID:               userID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// Key identifica el par único SKU-proveedor.
func (m *VendorMapping) Key() string {
	return m.SKUID + "/" + m.VendorID
}

// Validate revisa campos obligatorios y rangos.
func (m *VendorMapping) Validate() error {
	switch {
	case m.SKUID == "":
		return domain.NewValidationError("sku", "required", "")
	case m.VendorID == "":
		return domain.NewValidationError("vendor", "required", "")
	case m.VendorSKU == "":
		return domain.NewValidationError("vendorSku", "required", "")
	case m.VendorPrice.IsNegative():
		return domain.NewValidationError("vendorPrice", "gte", "0")
	case m.MinimumOrderQuantity < 1:
		return domain.NewValidationError("minimumOrderQuantity", "gte", "1")
	case m.LeadTime < 0:
		return domain.NewValidationError("leadTime", "gte", "0")
	}
	return nil
}
