package entity

import (
	"time"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
)

// Tipos y motivos de ajuste.
const (
	AdjustmentIncrease = "increase"
	AdjustmentDecrease = "decrease"

	ReasonDamaged        = "damaged"
	ReasonExpired        = "expired"
	ReasonLost           = "lost"
	ReasonFound          = "found"
	ReasonInventoryCount = "inventory_count"
	ReasonOther          = "other"

	AdjustmentPending  = "pending"
	AdjustmentApproved = "approved"
	AdjustmentRejected = "rejected"
)

// StockAdjustment corrección manual de stock sujeta a aprobación.
type StockAdjustment struct {
	ID          string
	Type        string
	SKUID       string
	WarehouseID string
	Quantity    int
	Reason      string
	Notes       string
	Status      string
	ApprovedBy  string
	ApprovedAt  *time.Time
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate revisa los enumerados y campos obligatorios del ajuste.
func (a *StockAdjustment) Validate() error {
	if a.Type != AdjustmentIncrease && a.Type != AdjustmentDecrease {
		return domain.NewValidationError("adjustmentType", "oneof", "increase decrease")
	}
	if a.SKUID == "" {
		return domain.NewValidationError("sku", "required", "")
	}
	if a.WarehouseID == "" {
		return domain.NewValidationError("warehouse", "required", "")
	}
	if a.Quantity <= 0 {
		return domain.NewValidationError("quantity", "gt", "0")
	}
	switch a.Reason {
	case ReasonDamaged, ReasonExpired, ReasonLost, ReasonFound, ReasonInventoryCount, ReasonOther:
	default:
		return domain.NewValidationError("reason", "oneof", "damaged expired lost found inventory_count other")
	}
	switch a.Status {
	case "", AdjustmentPending, AdjustmentApproved, AdjustmentRejected:
	default:
		return domain.NewValidationError("status", "oneof", "pending approved rejected")
	}
	return nil
}

// Delta cantidad con signo que el ajuste aplicaría sobre CurrentStock.
func (a *StockAdjustment) Delta() int {
	if a.Type == AdjustmentDecrease {
		return -a.Quantity
	}
	return a.Quantity
}
