package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
)

// Tipos de transacción.
const (
	TransactionPurchase       = "purchase"
	TransactionSale           = "sale"
	TransactionPurchaseReturn = "purchase_return"
	TransactionSalesReturn    = "sales_return"
	TransactionTransfer       = "transfer"
)

// Estados de transacción.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionCancelled = "cancelled"
)

// TransactionItem línea de una transacción.
type TransactionItem struct {
	SKUID      string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Customer datos del cliente en ventas y devoluciones de venta.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// Transaction compra, venta, devolución o traslado entre bodegas.
type Transaction struct {
	ID                     string
	Type                   string
	Date                   time.Time
	ReferenceNumber        string
	Items                  []TransactionItem
	TotalAmount            decimal.Decimal
	Status                 string
	Notes                  string
	SupplierID             string // compras y devoluciones de compra
	Customer               *Customer
	SourceWarehouseID      string // traslados
	DestinationWarehouseID string
	UserID                 string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewTransaction aplica los valores por defecto (fecha actual, estado pending).
func NewTransaction(txType, reference, userID string, items []TransactionItem, now time.Time) *Transaction {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	return &Transaction{
		Type:            txType,
		Date:            now,
		ReferenceNumber: reference,
		Items:           items,
		TotalAmount:     total,
		Status:          TransactionPending,
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate revisa tipo, estado, líneas y los campos exigidos por cada tipo.
func (t *Transaction) Validate() error {
	switch t.Type {
	case TransactionPurchase, TransactionPurchaseReturn:
		if t.SupplierID == "" {
			return domain.NewValidationError("supplier", "required", "")
		}
	case TransactionSale, TransactionSalesReturn:
	case TransactionTransfer:
		if t.SourceWarehouseID == "" {
			return domain.NewValidationError("sourceWarehouse", "required", "")
		}
		if t.DestinationWarehouseID == "" {
			return domain.NewValidationError("destinationWarehouse", "required", "")
		}
	default:
		return domain.NewValidationError("transactionType", "oneof", "purchase sale purchase_return sales_return transfer")
	}
	switch t.Status {
	case TransactionPending, TransactionCompleted, TransactionCancelled:
	default:
		return domain.NewValidationError("status", "oneof", "pending completed cancelled")
	}
	if t.ReferenceNumber == "" {
		return domain.NewValidationError("referenceNumber", "required", "")
	}
	if len(t.Items) == 0 {
		return domain.NewValidationError("items", "min", "1")
	}
	for _, it := range t.Items {
		if it.SKUID == "" {
			return domain.NewValidationError("items.sku", "required", "")
		}
		if it.Quantity <= 0 {
			return domain.NewValidationError("items.quantity", "gt", "0")
		}
	}
	return nil
}
