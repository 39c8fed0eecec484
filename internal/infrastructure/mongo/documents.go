package mongo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

type skuDocument struct {
	ID                 string               `bson:"_id"`
	Name               string               `bson:"name"`
	SKU                string               `bson:"sku"`
	Barcode            string               `bson:"barcode"`
	Description        string               `bson:"description"`
	Category           string               `bson:"category"`
	CostPrice          primitive.Decimal128 `bson:"costPrice"`
	SellingPrice       primitive.Decimal128 `bson:"sellingPrice"`
	InitialStock       int                  `bson:"initialStock"`
	CurrentStock       int                  `bson:"currentStock"`
	MinStockLevel      int                  `bson:"minStockLevel"`
	ImageURL           string               `bson:"imageUrl"`
	WarehouseID        string               `bson:"warehouseId"`
	SupplierID         string               `bson:"supplierId"`
	AlternateSuppliers []string             `bson:"alternateSuppliers"`
	Tags               []string             `bson:"tags"`
	Notes              string               `bson:"notes"`
	IsActive           bool                 `bson:"isActive"`
	Location           string               `bson:"location"`
	UserID             string               `bson:"user"`
	Version            int64                `bson:"version"`
	CreatedAt          time.Time            `bson:"createdAt"`
	UpdatedAt          time.Time            `bson:"updatedAt"`
}

func newSKUDocument(s *entity.SKU) (*skuDocument, error) {
	cost, err := toDecimal128(s.CostPrice)
	if err != nil {
		return nil, fmt.Errorf("costPrice: %w", err)
	}
	selling, err := toDecimal128(s.SellingPrice)
	if err != nil {
		return nil, fmt.Errorf("sellingPrice: %w", err)
	}
	return &skuDocument{
		ID:                 s.ID,
		Name:               s.Name,
		SKU:                s.SKU,
		Barcode:            s.Barcode,
		Description:        s.Description,
		Category:           s.Category,
		CostPrice:          cost,
		SellingPrice:       selling,
		InitialStock:       s.InitialStock,
		CurrentStock:       s.CurrentStock,
		MinStockLevel:      s.MinStockLevel,
		ImageURL:           s.ImageURL,
		WarehouseID:        s.WarehouseID,
		SupplierID:         s.SupplierID,
		AlternateSuppliers: nonNil(s.AlternateSuppliers),
		Tags:               nonNil(s.Tags),
		Notes:              s.Notes,
		IsActive:           s.IsActive,
		Location:           s.Location,
		UserID:             s.UserID,
		Version:            s.Version,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}, nil
}

func (d *skuDocument) entity() (*entity.SKU, error) {
	cost, err := fromDecimal128(d.CostPrice)
	if err != nil {
		return nil, fmt.Errorf("costPrice: %w", err)
	}
	selling, err := fromDecimal128(d.SellingPrice)
	if err != nil {
		return nil, fmt.Errorf("sellingPrice: %w", err)
	}
	return &entity.SKU{
		ID:                 d.ID,
		Name:               d.Name,
		SKU:                d.SKU,
		Barcode:            d.Barcode,
		Description:        d.Description,
		Category:           d.Category,
		CostPrice:          cost,
		SellingPrice:       selling,
		InitialStock:       d.InitialStock,
		CurrentStock:       d.CurrentStock,
		MinStockLevel:      d.MinStockLevel,
		ImageURL:           d.ImageURL,
		WarehouseID:        d.WarehouseID,
		SupplierID:         d.SupplierID,
		AlternateSuppliers: nonNil(d.AlternateSuppliers),
		Tags:               nonNil(d.Tags),
		Notes:              d.Notes,
		IsActive:           d.IsActive,
		Location:           d.Location,
		UserID:             d.UserID,
		Version:            d.Version,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}, nil
}

type addressDocument struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zipCode"`
	Country string `bson:"country"`
}

func newAddressDocument(a entity.Address) addressDocument {
	return addressDocument{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func (a addressDocument) entity() entity.Address {
	return entity.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

type warehouseDocument struct {
	ID        string          `bson:"_id"`
	Name      string          `bson:"name"`
	Code      string          `bson:"code"`
	Address   addressDocument `bson:"address"`
	Manager   string          `bson:"manager"`
	Phone     string          `bson:"phone"`
	Email     string          `bson:"email"`
	Capacity  float64         `bson:"capacity"`
	Notes     string          `bson:"notes"`
	Status    string          `bson:"status"`
	UserID    string          `bson:"user"`
	CreatedAt time.Time       `bson:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

func newWarehouseDocument(w *entity.Warehouse) *warehouseDocument {
	return &warehouseDocument{
		ID:        w.ID,
		Name:      w.Name,
		Code:      w.Code,
		Address:   newAddressDocument(w.Address),
		Manager:   w.Manager,
		Phone:     w.Phone,
		Email:     w.Email,
		Capacity:  w.Capacity,
		Notes:     w.Notes,
		Status:    w.Status,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (d *warehouseDocument) entity() *entity.Warehouse {
	return &entity.Warehouse{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Address:   d.Address.entity(),
		Manager:   d.Manager,
		Phone:     d.Phone,
		Email:     d.Email,
		Capacity:  d.Capacity,
		Notes:     d.Notes,
		Status:    d.Status,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type supplierDocument struct {
	ID            string          `bson:"_id"`
	Name          string          `bson:"name"`
	ContactPerson string          `bson:"contactPerson"`
	Email         string          `bson:"email"`
	Phone         string          `bson:"phone"`
	Address       addressDocument `bson:"address"`
	TaxID         string          `bson:"taxId"`
	PaymentTerms  string          `bson:"paymentTerms"`
	Notes         string          `bson:"notes"`
	Status        string          `bson:"status"`
	Categories    []string        `bson:"categories"`
	LeadTime      int             `bson:"leadTime"`
	UserID        string          `bson:"user"`
	CreatedAt     time.Time       `bson:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt"`
}

func newSupplierDocument(s *entity.Supplier) *supplierDocument {
	return &supplierDocument{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       newAddressDocument(s.Address),
		TaxID:         s.TaxID,
		PaymentTerms:  s.PaymentTerms,
		Notes:         s.Notes,
		Status:        s.Status,
		Categories:    nonNil(s.Categories),
		LeadTime:      s.LeadTime,
		UserID:        s.UserID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (d *supplierDocument) entity() *entity.Supplier {
	return &entity.Supplier{
		ID:            d.ID,
		Name:          d.Name,
		ContactPerson: d.ContactPerson,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address.entity(),
		TaxID:         d.TaxID,
		PaymentTerms:  d.PaymentTerms,
		Notes:         d.Notes,
		Status:        d.Status,
		Categories:    nonNil(d.Categories),
		LeadTime:      d.LeadTime,
		UserID:        d.UserID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
