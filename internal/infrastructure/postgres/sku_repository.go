package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

const skuColumns = `id, name, sku, barcode, description, category, cost_price, selling_price,
	initial_stock, current_stock, min_stock_level, image_url, warehouse_id, supplier_id,
	alternate_suppliers, tags, notes, is_active, location, user_id, version, created_at, updated_at`

// SKURepo implementación del puerto SKURepository sobre PostgreSQL (usable con pool o tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador. Pasar pool o tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// Create persiste un nuevo SKU.
func (r *SKURepo) Create(ctx context.Context, s *entity.SKU) error {
	query := `INSERT INTO skus (` + skuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.SKU, s.Barcode, s.Description, s.Category, s.CostPrice, s.SellingPrice,
		s.InitialStock, s.CurrentStock, s.MinStockLevel, s.ImageURL, s.WarehouseID, s.SupplierID,
		s.AlternateSuppliers, s.Tags, s.Notes, s.IsActive, s.Location, s.UserID, s.Version, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID.
func (r *SKURepo) GetByID(ctx context.Context, id string) (*entity.SKU, error) {
	s, err := scanSKU(r.q.QueryRow(ctx, `SELECT `+skuColumns+` FROM skus WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return s, nil
}

// GetByCode obtiene un SKU por su código.
func (r *SKURepo) GetByCode(ctx context.Context, code string) (*entity.SKU, error) {
	s, err := scanSKU(r.q.QueryRow(ctx, `SELECT `+skuColumns+` FROM skus WHERE sku = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku by code: %w", err)
	}
	return s, nil
}

// Update escribe los campos editables si version coincide y la incrementa.
// sku, initial_stock y current_stock no se tocan.
func (r *SKURepo) Update(ctx context.Context, s *entity.SKU) error {
	query := `
		UPDATE skus SET name = $2, barcode = $3, description = $4, category = $5, cost_price = $6,
			selling_price = $7, min_stock_level = $8, image_url = $9, warehouse_id = $10, supplier_id = $11,
			alternate_suppliers = $12, tags = $13, notes = $14, is_active = $15, location = $16,
			updated_at = $17, version = version + 1
		WHERE id = $1 AND version = $18`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Barcode, s.Description, s.Category, s.CostPrice,
		s.SellingPrice, s.MinStockLevel, s.ImageURL, s.WarehouseID, s.SupplierID,
		s.AlternateSuppliers, s.Tags, s.Notes, s.IsActive, s.Location,
		s.UpdatedAt, s.Version,
	)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM skus WHERE id = $1)`, s.ID).Scan(&exists); err != nil {
			return fmt.Errorf("update sku: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	s.Version++
	return nil
}

// Delete elimina un SKU por ID. Devuelve domain.ErrNotFound si no había fila.
func (r *SKURepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count cuenta los SKUs que cumplen el filtro.
func (r *SKURepo) Count(ctx context.Context, filter repository.SKUFilter) (int64, error) {
	where, args := buildSKUWhere(filter)
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM skus`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}

// List lista SKUs filtrados, más recientes primero.
func (r *SKURepo) List(ctx context.Context, filter repository.SKUFilter, page repository.Pagination) ([]*entity.SKU, error) {
	where, args := buildSKUWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM skus%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		skuColumns, where, len(args)+1, len(args)+2)
	args = append(args, page.Take, page.Skip)
	return r.list(ctx, query, args...)
}

// ListLowStock lista los SKUs con current_stock < min_stock_level, menor stock primero.
func (r *SKURepo) ListLowStock(ctx context.Context) ([]*entity.SKU, error) {
	return r.list(ctx, `SELECT `+skuColumns+` FROM skus
		WHERE current_stock < min_stock_level ORDER BY current_stock ASC, sku ASC`)
}

// CountLowStock cuenta los SKUs con current_stock < min_stock_level.
func (r *SKURepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM skus WHERE current_stock < min_stock_level`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// DistinctCategories devuelve las categorías distintas.
func (r *SKURepo) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT category FROM skus`)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	cats, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return cats, nil
}

// ActiveStockValue suma current_stock × cost_price de los SKUs activos.
func (r *SKURepo) ActiveStockValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_stock * cost_price), 0) FROM skus WHERE is_active`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("active stock value: %w", err)
	}
	return total, nil
}

func (r *SKURepo) list(ctx context.Context, query string, args ...any) ([]*entity.SKU, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	list := []*entity.SKU{}
	for rows.Next() {
		s, err := scanSKU(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSKU(row pgx.Row) (*entity.SKU, error) {
	var s entity.SKU
	err := row.Scan(
		&s.ID, &s.Name, &s.SKU, &s.Barcode, &s.Description, &s.Category, &s.CostPrice, &s.SellingPrice,
		&s.InitialStock, &s.CurrentStock, &s.MinStockLevel, &s.ImageURL, &s.WarehouseID, &s.SupplierID,
		&s.AlternateSuppliers, &s.Tags, &s.Notes, &s.IsActive, &s.Location, &s.UserID, &s.Version, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
