package catalog

import (
	"fmt"

	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
)

// MergePolicy decide cómo una actualización parcial se combina con el SKU almacenado.
type MergePolicy string

const (
	// MergeExplicit sobrescribe todo campo presente en la petición, incluso vacío, cero o false.
	MergeExplicit MergePolicy = "explicit"
	// MergeSkipEmpty ignora valores vacíos o cero. isActive se aplica siempre que venga;
	// barcode solo si no está vacío. Las listas presentes (aunque vacías) se aplican.
	MergeSkipEmpty MergePolicy = "skip-empty"
)

// ParseMergePolicy interpreta el valor de configuración; vacío equivale a MergeExplicit.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(s) {
	case "", MergeExplicit:
		return MergeExplicit, nil
	case MergeSkipEmpty:
		return MergeSkipEmpty, nil
	}
	return "", fmt.Errorf("merge policy desconocida: %q", s)
}

// Apply mezcla in sobre sku (que se modifica). sku, initialStock y currentStock nunca cambian.
// Devuelve un *domain.ValidationError si el resultado deja un campo obligatorio vacío o un valor negativo.
func (p MergePolicy) Apply(sku *entity.SKU, in dto.UpdateSKURequest) error {
	if p == MergeSkipEmpty {
		applySkipEmpty(sku, in)
	} else {
		applyExplicit(sku, in)
	}
	return validateMutable(sku)
}

func applyExplicit(s *entity.SKU, in dto.UpdateSKURequest) {
	setString(&s.Name, in.Name)
	setString(&s.Barcode, in.Barcode)
	setString(&s.Description, in.Description)
	setString(&s.Category, in.Category)
	if in.CostPrice != nil {
		s.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		s.SellingPrice = *in.SellingPrice
	}
	if in.MinStockLevel != nil {
		s.MinStockLevel = *in.MinStockLevel
	}
	setString(&s.ImageURL, in.ImageURL)
	setString(&s.WarehouseID, in.WarehouseID)
	setString(&s.SupplierID, in.SupplierID)
	if in.AlternateSuppliers != nil {
		s.AlternateSuppliers = in.AlternateSuppliers
	}
	if in.Tags != nil {
		s.Tags = in.Tags
	}
	setString(&s.Notes, in.Notes)
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	setString(&s.Location, in.Location)
}

func applySkipEmpty(s *entity.SKU, in dto.UpdateSKURequest) {
	setNonEmpty(&s.Name, in.Name)
	setNonEmpty(&s.Barcode, in.Barcode)
	setNonEmpty(&s.Description, in.Description)
	setNonEmpty(&s.Category, in.Category)
	if in.CostPrice != nil && !in.CostPrice.IsZero() {
		s.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil && !in.SellingPrice.IsZero() {
		s.SellingPrice = *in.SellingPrice
	}
	if in.MinStockLevel != nil && *in.MinStockLevel != 0 {
		s.MinStockLevel = *in.MinStockLevel
	}
	setNonEmpty(&s.ImageURL, in.ImageURL)
	setNonEmpty(&s.WarehouseID, in.WarehouseID)
	setNonEmpty(&s.SupplierID, in.SupplierID)
	if in.AlternateSuppliers != nil {
		s.AlternateSuppliers = in.AlternateSuppliers
	}
	if in.Tags != nil {
		s.Tags = in.Tags
	}
	setNonEmpty(&s.Notes, in.Notes)
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	setNonEmpty(&s.Location, in.Location)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNonEmpty(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// validateMutable revisa las reglas de los campos editables tras la mezcla.
func validateMutable(s *entity.SKU) error {
	var fields []domain.FieldError
	required := []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"barcode", s.Barcode},
		{"category", s.Category},
		{"warehouseId", s.WarehouseID},
		{"supplierId", s.SupplierID},
	}
	for _, r := range required {
		if r.value == "" {
			fields = append(fields, domain.FieldError{Field: r.name, Tag: "required"})
		}
	}
	if s.CostPrice.IsNegative() {
		fields = append(fields, domain.FieldError{Field: "costPrice", Tag: "gte", Param: "0"})
	}
	if s.SellingPrice.IsNegative() {
		fields = append(fields, domain.FieldError{Field: "sellingPrice", Tag: "gte", Param: "0"})
	}
	if s.MinStockLevel < 0 {
		fields = append(fields, domain.FieldError{Field: "minStockLevel", Tag: "gte", Param: "0"})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
