package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// SKUUseCase ciclo de vida de los SKUs: alta, consulta, listado filtrado, edición y baja.
// No guarda estado propio; cada operación es una secuencia de idas al repositorio.
type SKUUseCase struct {
	skus       repository.SKURepository
	warehouses repository.WarehouseRepository
	suppliers  repository.SupplierRepository
	expander   expander
	merge      MergePolicy
	now        func() time.Time
	newID      func() string
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(
	skus repository.SKURepository,
	warehouses repository.WarehouseRepository,
	suppliers repository.SupplierRepository,
	merge MergePolicy,
) *SKUUseCase {
	return &SKUUseCase{
		skus:       skus,
		warehouses: warehouses,
		suppliers:  suppliers,
		expander:   expander{warehouses: warehouses, suppliers: suppliers},
		merge:      merge,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// Create da de alta un SKU. CurrentStock arranca en InitialStock y el SKU queda activo.
// Devuelve domain.ErrDuplicate si el código ya existe.
func (uc *SKUUseCase) Create(ctx context.Context, userID string, in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := validatePrices(in.CostPrice, in.SellingPrice); err != nil {
		return nil, err
	}

	existing, err := uc.skus.GetByCode(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkReferences(ctx, nil, in.WarehouseID, in.SupplierID, in.AlternateSuppliers); err != nil {
		return nil, err
	}

	now := uc.now()
	sku := &entity.SKU{
		ID:                 uc.newID(),
		Name:               in.Name,
		SKU:                in.SKU,
		Barcode:            in.Barcode,
		Description:        in.Description,
		Category:           in.Category,
		CostPrice:          *in.CostPrice,
		SellingPrice:       *in.SellingPrice,
		InitialStock:       in.InitialStock,
		CurrentStock:       in.InitialStock,
		MinStockLevel:      in.MinStockLevel,
		ImageURL:           in.ImageURL,
		WarehouseID:        in.WarehouseID,
		SupplierID:         in.SupplierID,
		AlternateSuppliers: nonNil(in.AlternateSuppliers),
		Tags:               nonNil(in.Tags),
		Notes:              in.Notes,
		IsActive:           true,
		Location:           in.Location,
		UserID:             userID,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.skus.Create(ctx, sku); err != nil {
		return nil, err
	}
	return uc.expander.response(ctx, sku, expandNone)
}

// GetByID obtiene un SKU con bodega, proveedor y proveedores alternos expandidos.
func (uc *SKUUseCase) GetByID(ctx context.Context, id string) (*dto.SKUResponse, error) {
	sku, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.expander.response(ctx, sku, expandDetail)
}

// List aplica el filtro de la URL y devuelve la página pedida junto con el total.
// El total se cuenta con el mismo filtro pero sin paginar.
func (uc *SKUUseCase) List(ctx context.Context, q dto.SKUListQuery) (*dto.SKUListResponse, error) {
	criteria, err := BuildListCriteria(q)
	if err != nil {
		return nil, err
	}
	total, err := uc.skus.Count(ctx, criteria.Filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.skus.List(ctx, criteria.Filter, criteria.Pagination())
	if err != nil {
		return nil, err
	}
	items, err := uc.expander.responses(ctx, list, expandList)
	if err != nil {
		return nil, err
	}
	return &dto.SKUListResponse{
		SKUs:  items,
		Page:  criteria.Page,
		Pages: criteria.Pages(total),
		Total: total,
	}, nil
}

// Update aplica una actualización parcial según la MergePolicy configurada.
// La escritura es condicional a la revisión leída: si otra petición escribió antes,
// devuelve domain.ErrConflict en lugar de pisar sus cambios.
func (uc *SKUUseCase) Update(ctx context.Context, id string, in dto.UpdateSKURequest) (*dto.SKUResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	sku, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Version != nil && *in.Version != sku.Version {
		return nil, domain.ErrConflict
	}

	before := sku.Clone()
	if err := uc.merge.Apply(sku, in); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, before, sku.WarehouseID, sku.SupplierID, sku.AlternateSuppliers); err != nil {
		return nil, err
	}
	sku.AlternateSuppliers = nonNil(sku.AlternateSuppliers)
	sku.Tags = nonNil(sku.Tags)
	sku.UpdatedAt = uc.now()

	if err := uc.skus.Update(ctx, sku); err != nil {
		return nil, err
	}
	return uc.expander.response(ctx, sku, expandNone)
}

// Delete elimina el SKU de forma definitiva.
func (uc *SKUUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.skus.Delete(ctx, id)
}

// Categories devuelve las categorías distintas ordenadas alfabéticamente.
func (uc *SKUUseCase) Categories(ctx context.Context) ([]string, error) {
	cats, err := uc.skus.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if c != "" {
			out = append(out, c)
		}
	}
	collate.New(language.Und).SortStrings(out)
	return out, nil
}

func (uc *SKUUseCase) find(ctx context.Context, id string) (*entity.SKU, error) {
	sku, err := uc.skus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	return sku, nil
}

// checkReferences verifica que bodega, proveedor y alternos existan. Con before != nil
// solo se consultan las referencias que cambiaron.
func (uc *SKUUseCase) checkReferences(ctx context.Context, before *entity.SKU, warehouseID, supplierID string, alternates []string) error {
	if before == nil || before.WarehouseID != warehouseID {
		w, err := uc.warehouses.GetByID(ctx, warehouseID)
		if err != nil {
			return err
		}
		if w == nil {
			return &domain.ReferenceError{Field: "warehouseId", ID: warehouseID}
		}
	}

	var pending []string
	if before == nil || before.SupplierID != supplierID {
		pending = append(pending, supplierID)
	}
	known := map[string]bool{}
	if before != nil {
		known[before.SupplierID] = true
		for _, id := range before.AlternateSuppliers {
			known[id] = true
		}
	}
	for _, id := range alternates {
		if !known[id] {
			pending = append(pending, id)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	found, err := uc.suppliers.GetByIDs(ctx, pending)
	if err != nil {
		return err
	}
	exists := make(map[string]bool, len(found))
	for _, sp := range found {
		exists[sp.ID] = true
	}
	for _, id := range pending {
		if !exists[id] {
			field := "alternateSuppliers"
			if id == supplierID {
				field = "supplierId"
			}
			return &domain.ReferenceError{Field: field, ID: id}
		}
	}
	return nil
}

func validatePrices(cost, selling *decimal.Decimal) error {
	var fields []domain.FieldError
	for _, p := range []struct {
		name  string
		value *decimal.Decimal
	}{{"costPrice", cost}, {"sellingPrice", selling}} {
		switch {
		case p.value == nil:
			fields = append(fields, domain.FieldError{Field: p.name, Tag: "required"})
		case p.value.IsNegative():
			fields = append(fields, domain.FieldError{Field: p.name, Tag: "gte", Param: "0"})
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
