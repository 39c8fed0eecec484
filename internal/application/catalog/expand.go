package catalog

import (
	"context"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// Campos de bodega y proveedor que se copian al expandir una referencia.
type warehouseFields uint8

const (
	warehouseName warehouseFields = 1 << iota
	warehouseCode
)

type supplierFields uint8

const (
	supplierName    supplierFields = 1 << iota
	supplierContact                // contactPerson, email, phone
)

// expansion indica qué referencias de un SKU se resuelven y con qué campos.
// Un valor cero deja la referencia solo con su ID.
type expansion struct {
	warehouse  warehouseFields
	supplier   supplierFields
	alternates supplierFields
}

var (
	expandNone     = expansion{}
	expandDetail   = expansion{warehouse: warehouseName | warehouseCode, supplier: supplierName | supplierContact, alternates: supplierName}
	expandList     = expansion{warehouse: warehouseName | warehouseCode, supplier: supplierName}
	expandLowStock = expansion{warehouse: warehouseName, supplier: supplierName}
)

// expander resuelve referencias en lote: una consulta de bodegas y una de proveedores por llamada.
type expander struct {
	warehouses repository.WarehouseRepository
	suppliers  repository.SupplierRepository
}

func (e expander) responses(ctx context.Context, skus []*entity.SKU, x expansion) ([]dto.SKUResponse, error) {
	whByID := map[string]*entity.Warehouse{}
	spByID := map[string]*entity.Supplier{}

	if x.warehouse != 0 {
		ids := collect(skus, func(s *entity.SKU) []string { return []string{s.WarehouseID} })
		if len(ids) > 0 {
			list, err := e.warehouses.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			for _, w := range list {
				whByID[w.ID] = w
			}
		}
	}
	if x.supplier != 0 || x.alternates != 0 {
		ids := collect(skus, func(s *entity.SKU) []string {
			var out []string
			if x.supplier != 0 {
				out = append(out, s.SupplierID)
			}
			if x.alternates != 0 {
				out = append(out, s.AlternateSuppliers...)
			}
			return out
		})
		if len(ids) > 0 {
			list, err := e.suppliers.GetByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			for _, sp := range list {
				spByID[sp.ID] = sp
			}
		}
	}

	out := make([]dto.SKUResponse, 0, len(skus))
	for _, s := range skus {
		r := toSKUResponse(s)
		r.Warehouse = warehouseRef(s.WarehouseID, whByID[s.WarehouseID], x.warehouse)
		r.Supplier = supplierRef(s.SupplierID, spByID[s.SupplierID], x.supplier)
		for i, id := range s.AlternateSuppliers {
			r.AlternateSuppliers[i] = supplierRef(id, spByID[id], x.alternates)
		}
		out = append(out, r)
	}
	return out, nil
}

func (e expander) response(ctx context.Context, s *entity.SKU, x expansion) (*dto.SKUResponse, error) {
	list, err := e.responses(ctx, []*entity.SKU{s}, x)
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

func collect(skus []*entity.SKU, ids func(*entity.SKU) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range skus {
		for _, id := range ids(s) {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

func warehouseRef(id string, w *entity.Warehouse, f warehouseFields) dto.WarehouseRef {
	ref := dto.WarehouseRef{ID: id}
	if w == nil {
		return ref
	}
	if f&warehouseName != 0 {
		ref.Name = w.Name
	}
	if f&warehouseCode != 0 {
		ref.Code = w.Code
	}
	return ref
}

func supplierRef(id string, sp *entity.Supplier, f supplierFields) dto.SupplierRef {
	ref := dto.SupplierRef{ID: id}
	if sp == nil {
		return ref
	}
	if f&supplierName != 0 {
		ref.Name = sp.Name
	}
	if f&supplierContact != 0 {
		ref.ContactPerson = sp.ContactPerson
		ref.Email = sp.Email
		ref.Phone = sp.Phone
	}
	return ref
}

func toSKUResponse(s *entity.SKU) dto.SKUResponse {
	alts := make([]dto.SupplierRef, len(s.AlternateSuppliers))
	for i, id := range s.AlternateSuppliers {
		alts[i] = dto.SupplierRef{ID: id}
	}
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.SKUResponse{
		ID:                 s.ID,
		Name:               s.Name,
		SKU:                s.SKU,
		Barcode:            s.Barcode,
		Description:        s.Description,
		Category:           s.Category,
		CostPrice:          s.CostPrice,
		SellingPrice:       s.SellingPrice,
		InitialStock:       s.InitialStock,
		CurrentStock:       s.CurrentStock,
		MinStockLevel:      s.MinStockLevel,
		ImageURL:           s.ImageURL,
		Warehouse:          dto.WarehouseRef{ID: s.WarehouseID},
		Supplier:           dto.SupplierRef{ID: s.SupplierID},
		AlternateSuppliers: alts,
		Tags:               tags,
		Notes:              s.Notes,
		IsActive:           s.IsActive,
		Location:           s.Location,
		User:               s.UserID,
		Version:            s.Version,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
