package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo bodegas sobre la colección warehouses.
type WarehouseRepo struct {
	coll *mongo.Collection
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(db *mongo.Database) *WarehouseRepo {
	return &WarehouseRepo{coll: db.Collection(WarehouseCollection)}
}

func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	if _, err := r.coll.InsertOne(ctx, newWarehouseDocument(w)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	var doc warehouseDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return doc.entity(), nil
}

func (r *WarehouseRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Warehouse, error) {
	if len(ids) == 0 {
		return []*entity.Warehouse{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

// Update reemplaza la bodega conservando su código.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	doc := newWarehouseDocument(w)
	update := bson.M{"$set": bson.M{
		"name":      doc.Name,
		"address":   doc.Address,
		"manager":   doc.Manager,
		"phone":     doc.Phone,
		"email":     doc.Email,
		"capacity":  doc.Capacity,
		"notes":     doc.Notes,
		"status":    doc.Status,
		"updatedAt": doc.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": w.ID}, update)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *WarehouseRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count warehouses: %w", err)
	}
	return n, nil
}

func (r *WarehouseRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Warehouse, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer cur.Close(ctx)
	var docs []warehouseDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode warehouses: %w", err)
	}
	list := make([]*entity.Warehouse, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}
