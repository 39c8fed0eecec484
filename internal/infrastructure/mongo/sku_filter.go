package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

// buildSKUFilter traduce el filtro a un documento de consulta.
// La búsqueda es una expresión regular sin distinguir mayúsculas sobre el término escapado.
func buildSKUFilter(f repository.SKUFilter) bson.M {
	q := bson.M{}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"sku": re},
			bson.M{"barcode": re},
		}
	}
	if len(f.Categories) > 0 {
		q["category"] = bson.M{"$in": f.Categories}
	}
	if len(f.WarehouseIDs) > 0 {
		q["warehouseId"] = bson.M{"$in": f.WarehouseIDs}
	}
	if len(f.SupplierIDs) > 0 {
		q["supplierId"] = bson.M{"$in": f.SupplierIDs}
	}
	if f.MinStock != nil || f.MaxStock != nil {
		bounds := bson.M{}
		if f.MinStock != nil {
			bounds["$gte"] = *f.MinStock
		}
		if f.MaxStock != nil {
			bounds["$lte"] = *f.MaxStock
		}
		q["currentStock"] = bounds
	}
	return q
}

// lowStockFilter compara dos campos del mismo documento.
var lowStockFilter = bson.M{"$expr": bson.M{"$lt": bson.A{"$currentStock", "$minStockLevel"}}}
