package entity

import "time"

// Estados posibles de una bodega.
const (
	WarehouseActive      = "active"
	WarehouseInactive    = "inactive"
	WarehouseMaintenance = "under maintenance"
)

// Address dirección postal compartida por bodegas y proveedores.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Warehouse representa una bodega donde se almacenan SKUs.
type Warehouse struct {
	ID        string
	Name      string
	Code      string // único
	Address   Address
	Manager   string
	Phone     string
	Email     string
	Capacity  float64 // metros o pies cuadrados
	Notes     string
	Status    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidWarehouseStatus informa si status es un estado conocido.
func ValidWarehouseStatus(status string) bool {
	switch status {
	case WarehouseActive, WarehouseInactive, WarehouseMaintenance:
		return true
	}
	return false
}
