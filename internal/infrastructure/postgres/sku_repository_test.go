package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/entity"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

type call struct {
	sql  string
	args []any
}

// fakeQuerier registra cada sentencia y responde con lo configurado.
type fakeQuerier struct {
	calls   []call
	execTag string
	scan    func(dest ...any) error
}

var errStop = errors.New("stop")

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	return pgconn.NewCommandTag(f.execTag), nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	return nil, errStop
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{sql, args})
	return fakeRow{scan: f.scan}
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

func existsRow(exists bool) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*bool) = exists
		return nil
	}
}

func sampleSKU() *entity.SKU {
	return &entity.SKU{ID: "id-1", SKU: "A-1", Name: "Drill", Version: 3}
}

func TestSKURepo_UpdateIsConditionalOnVersion(t *testing.T) {
	q := &fakeQuerier{execTag: "UPDATE 1"}
	s := sampleSKU()

	require.NoError(t, NewSKURepository(q).Update(context.Background(), s))
	assert.Equal(t, int64(4), s.Version)

	require.Len(t, q.calls, 1)
	upd := q.calls[0]
	assert.Contains(t, upd.sql, "version = version + 1")
	assert.Contains(t, upd.sql, "WHERE id = $1 AND version = $18")
	assert.NotContains(t, upd.sql, "current_stock =")
	assert.Equal(t, "id-1", upd.args[0])
	assert.Equal(t, int64(3), upd.args[17])
}

func TestSKURepo_UpdateNoRowsTellsConflictFromMissing(t *testing.T) {
	q := &fakeQuerier{execTag: "UPDATE 0", scan: existsRow(true)}
	s := sampleSKU()
	assert.ErrorIs(t, NewSKURepository(q).Update(context.Background(), s), domain.ErrConflict)
	assert.Equal(t, int64(3), s.Version, "version untouched on conflict")

	q = &fakeQuerier{execTag: "UPDATE 0", scan: existsRow(false)}
	assert.ErrorIs(t, NewSKURepository(q).Update(context.Background(), sampleSKU()), domain.ErrNotFound)
}

func TestSKURepo_DeleteReportsMissingRow(t *testing.T) {
	q := &fakeQuerier{execTag: "DELETE 1"}
	require.NoError(t, NewSKURepository(q).Delete(context.Background(), "id-1"))
	assert.Equal(t, []any{"id-1"}, q.calls[0].args)

	q = &fakeQuerier{execTag: "DELETE 0"}
	assert.ErrorIs(t, NewSKURepository(q).Delete(context.Background(), "id-1"), domain.ErrNotFound)
}

func TestSKURepo_ListOrdersAndWindows(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewSKURepository(q).List(context.Background(),
		repository.SKUFilter{Categories: []string{"Tools"}},
		repository.Pagination{Skip: 20, Take: 10})
	require.ErrorIs(t, err, errStop)

	require.Len(t, q.calls, 1)
	sql := q.calls[0].sql
	assert.True(t, strings.HasSuffix(strings.TrimSpace(sql), "ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3"), sql)
	assert.Equal(t, []any{[]string{"Tools"}, 10, 20}, q.calls[0].args)
}

func TestSKURepo_CountLowStock(t *testing.T) {
	q := &fakeQuerier{scan: func(dest ...any) error {
		*dest[0].(*int64) = 4
		return nil
	}}
	n, err := NewSKURepository(q).CountLowStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Contains(t, q.calls[0].sql, "current_stock < min_stock_level")
}

func TestSKURepo_ActiveStockValue(t *testing.T) {
	q := &fakeQuerier{scan: func(dest ...any) error {
		*dest[0].(*decimal.Decimal) = decimal.RequireFromString("43.345")
		return nil
	}}
	v, err := NewSKURepository(q).ActiveStockValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "43.345", v.String())
	assert.Contains(t, q.calls[0].sql, "WHERE is_active")
}
