package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementación del puerto SKURepository sobre la colección skus.
type SKURepo struct {
	coll *mongo.Collection
}

// NewSKURepository construye el adaptador.
func NewSKURepository(db *mongo.Database) *SKURepo {
	return &SKURepo{coll: db.Collection(SKUCollection)}
}

// Create inserta el SKU. El índice único sobre sku traduce el duplicado a domain.ErrDuplicate.
func (r *SKURepo) Create(ctx context.Context, s *entity.SKU) error {
	doc, err := newSKUDocument(s)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

func (r *SKURepo) GetByID(ctx context.Context, id string) (*entity.SKU, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *SKURepo) GetByCode(ctx context.Context, code string) (*entity.SKU, error) {
	return r.findOne(ctx, bson.M{"sku": code})
}

// Update reemplaza los campos editables si la versión almacenada coincide y la incrementa.
func (r *SKURepo) Update(ctx context.Context, s *entity.SKU) error {
	update, err := skuUpdate(s)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, versionFilter(s.ID, s.Version), update)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": s.ID})
		if err != nil {
			return fmt.Errorf("update sku: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	s.Version++
	return nil
}

// versionFilter selecciona el documento solo si nadie lo escribió desde la lectura.
func versionFilter(id string, version int64) bson.M {
	return bson.M{"_id": id, "version": version}
}

// skuUpdate arma el $set de los campos editables más el $inc de version.
// sku, initialStock y currentStock quedan fuera.
func skuUpdate(s *entity.SKU) (bson.M, error) {
	cost, err := toDecimal128(s.CostPrice)
	if err != nil {
		return nil, fmt.Errorf("costPrice: %w", err)
	}
	selling, err := toDecimal128(s.SellingPrice)
	if err != nil {
		return nil, fmt.Errorf("sellingPrice: %w", err)
	}
	return bson.M{
		"$set": bson.M{
			"name":               s.Name,
			"barcode":            s.Barcode,
			"description":        s.Description,
			"category":           s.Category,
			"costPrice":          cost,
			"sellingPrice":       selling,
			"minStockLevel":      s.MinStockLevel,
			"imageUrl":           s.ImageURL,
			"warehouseId":        s.WarehouseID,
			"supplierId":         s.SupplierID,
			"alternateSuppliers": nonNil(s.AlternateSuppliers),
			"tags":               nonNil(s.Tags),
			"notes":              s.Notes,
			"isActive":           s.IsActive,
			"location":           s.Location,
			"updatedAt":          s.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}, nil
}

// Delete devuelve domain.ErrNotFound si ningún documento coincidió.
func (r *SKURepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SKURepo) Count(ctx context.Context, filter repository.SKUFilter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, buildSKUFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}

// List devuelve la página pedida, más recientes primero.
func (r *SKURepo) List(ctx context.Context, filter repository.SKUFilter, page repository.Pagination) ([]*entity.SKU, error) {
	return r.find(ctx, buildSKUFilter(filter), listOptions(page))
}

// listOptions ordena por createdAt descendente con _id como desempate y aplica la ventana.
func listOptions(page repository.Pagination) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Take))
}

// ListLowStock devuelve los SKUs bajo su punto de reorden, menor stock primero.
func (r *SKURepo) ListLowStock(ctx context.Context) ([]*entity.SKU, error) {
	opts := options.Find().SetSort(bson.D{{Key: "currentStock", Value: 1}, {Key: "sku", Value: 1}})
	return r.find(ctx, lowStockFilter, opts)
}

func (r *SKURepo) CountLowStock(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, lowStockFilter)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

func (r *SKURepo) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "category", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// ActiveStockValue agrega currentStock × costPrice de los SKUs activos en el servidor.
func (r *SKURepo) ActiveStockValue(ctx context.Context) (decimal.Decimal, error) {
	cur, err := r.coll.Aggregate(ctx, activeStockValuePipeline)
	if err != nil {
		return decimal.Zero, fmt.Errorf("active stock value: %w", err)
	}
	defer cur.Close(ctx)

	var out []stockValueResult
	if err := cur.All(ctx, &out); err != nil {
		return decimal.Zero, fmt.Errorf("active stock value: %w", err)
	}
	return sumStockValue(out)
}

// activeStockValuePipeline suma currentStock × costPrice de los SKUs activos en un solo grupo.
var activeStockValuePipeline = mongo.Pipeline{
	{{Key: "$match", Value: bson.M{"isActive": true}}},
	{{Key: "$group", Value: bson.M{
		"_id":   nil,
		"total": bson.M{"$sum": bson.M{"$multiply": bson.A{"$currentStock", "$costPrice"}}},
	}}},
}

type stockValueResult struct {
	Total primitive.Decimal128 `bson:"total"`
}

// sumStockValue interpreta la salida del grupo; sin SKUs activos no hay documento.
func sumStockValue(out []stockValueResult) (decimal.Decimal, error) {
	if len(out) == 0 {
		return decimal.Zero, nil
	}
	return fromDecimal128(out[0].Total)
}

func (r *SKURepo) findOne(ctx context.Context, filter bson.M) (*entity.SKU, error) {
	var doc skuDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return doc.entity()
}

func (r *SKURepo) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]*entity.SKU, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer cur.Close(ctx)

	var docs []skuDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode skus: %w", err)
	}
	list := make([]*entity.SKU, 0, len(docs))
	for i := range docs {
		s, err := docs[i].entity()
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
