package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/domain"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
)

func TestBuildListCriteria_Defaults(t *testing.T) {
	c, err := catalog.BuildListCriteria(dto.SKUListQuery{})
	require.NoError(t, err)
	assert.True(t, c.Filter.IsEmpty())
	assert.Equal(t, catalog.DefaultPage, c.Page)
	assert.Equal(t, catalog.DefaultLimit, c.Limit)
	assert.Equal(t, repository.Pagination{Skip: 0, Take: 10}, c.Pagination())
}

func TestBuildListCriteria_PageAndLimit(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
	}{
		{"numeric", "3", "25", 3, 25},
		{"non numeric falls back", "abc", "x", 1, 10},
		{"zero falls back", "0", "0", 1, 10},
		{"negative falls back", "-2", "-5", 1, 10},
		{"limit capped", "1", "1000", 1, catalog.MaxLimit},
		{"huge page capped", "1000000000000000000", "10", catalog.MaxPage, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := catalog.BuildListCriteria(dto.SKUListQuery{Page: tc.page, Limit: tc.limit})
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, c.Page)
			assert.Equal(t, tc.wantLimit, c.Limit)
		})
	}
}

func TestBuildListCriteria_SkipIsLimitTimesPreviousPages(t *testing.T) {
	c, err := catalog.BuildListCriteria(dto.SKUListQuery{Page: "4", Limit: "7"})
	require.NoError(t, err)
	assert.Equal(t, repository.Pagination{Skip: 21, Take: 7}, c.Pagination())
}

func TestBuildListCriteria_MultiValueParams(t *testing.T) {
	c, err := catalog.BuildListCriteria(dto.SKUListQuery{
		Category:  []string{"Tools", "Paint,Tools", " "},
		Warehouse: []string{"w1,w2"},
		Supplier:  []string{"s1", "s2"},
		Search:    "  drill ",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tools", "Paint"}, c.Filter.Categories)
	assert.Equal(t, []string{"w1", "w2"}, c.Filter.WarehouseIDs)
	assert.Equal(t, []string{"s1", "s2"}, c.Filter.SupplierIDs)
	assert.Equal(t, "drill", c.Filter.Search)
}

func TestBuildListCriteria_StockBounds(t *testing.T) {
	c, err := catalog.BuildListCriteria(dto.SKUListQuery{MinStock: "5", MaxStock: "12.5"})
	require.NoError(t, err)
	require.NotNil(t, c.Filter.MinStock)
	require.NotNil(t, c.Filter.MaxStock)
	assert.Equal(t, 5.0, *c.Filter.MinStock)
	assert.Equal(t, 12.5, *c.Filter.MaxStock)

	for _, bad := range []dto.SKUListQuery{{MinStock: "five"}, {MaxStock: "NaN"}, {MaxStock: "Inf"}} {
		_, err := catalog.BuildListCriteria(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}
}

func TestListCriteria_Pages(t *testing.T) {
	c := catalog.ListCriteria{Page: 1, Limit: 10}
	assert.Equal(t, 0, c.Pages(0))
	assert.Equal(t, 1, c.Pages(1))
	assert.Equal(t, 1, c.Pages(10))
	assert.Equal(t, 2, c.Pages(11))
	assert.Equal(t, 10, c.Pages(100))
}

func TestBuildListCriteria_HugePageKeepsSkipNonNegative(t *testing.T) {
	for _, limit := range []string{"1", "10", "100", "5000"} {
		c, err := catalog.BuildListCriteria(dto.SKUListQuery{Page: "9223372036854775807", Limit: limit})
		require.NoError(t, err)
		p := c.Pagination()
		assert.GreaterOrEqual(t, p.Skip, 0, "limit %s", limit)
		assert.Equal(t, c.Limit, p.Take)
	}
}
