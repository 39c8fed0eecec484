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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores sobre la colección suppliers.
type SupplierRepo struct {
	coll *mongo.Collection
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(db *mongo.Database) *SupplierRepo {
	return &SupplierRepo{coll: db.Collection(SupplierCollection)}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if _, err := r.coll.InsertOne(ctx, newSupplierDocument(s)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var doc supplierDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return doc.entity(), nil
}

func (r *SupplierRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error) {
	if len(ids) == 0 {
		return []*entity.Supplier{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, newSupplierDocument(s))
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *SupplierRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

func (r *SupplierRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Supplier, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer cur.Close(ctx)
	var docs []supplierDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode suppliers: %w", err)
	}
	list := make([]*entity.Supplier, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}
