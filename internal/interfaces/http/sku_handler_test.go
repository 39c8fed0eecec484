package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/sku-inventory-api/internal/application/analytics"
	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
	"github.com/jhoicas/sku-inventory-api/internal/application/usecase"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/memory"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/sku-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/sku-inventory-api/pkg/logger"
	"github.com/jhoicas/sku-inventory-api/pkg/metrics"
)

type testServer struct {
	app         *fiber.App
	warehouseID string
	supplierID  string
	auth        string
}

// newTestServer arma la app completa sobre el almacenamiento en memoria,
// con una bodega y un proveedor ya creados.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	skus := memory.NewSKURepository()
	warehouses := memory.NewWarehouseRepository()
	suppliers := memory.NewSupplierRepository()

	warehouseUC := usecase.NewWarehouseUseCase(warehouses)
	supplierUC := usecase.NewSupplierUseCase(suppliers)

	wh, err := warehouseUC.Create(ctx, testUserID, dto.CreateWarehouseRequest{
		Name: "Main", Code: "MAIN", Manager: "Ana", Phone: "555", Email: "main@example.com",
	})
	require.NoError(t, err)
	sp, err := supplierUC.Create(ctx, testUserID, dto.CreateSupplierRequest{
		Name: "Acme", ContactPerson: "Bob", Email: "bob@acme.com", Phone: "777",
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		SKUUC:       catalog.NewSKUUseCase(skus, warehouses, suppliers, catalog.MergeExplicit),
		LowStockUC:  catalog.NewLowStockUseCase(skus, warehouses, suppliers, pdf.NewLowStockReport("test")),
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		DashboardUC: appanalytics.NewDashboardUseCase(skus),
		Metrics:     metrics.NewHTTPMetrics("test"),
		JWTSecret:   testJWTSecret,
	})

	return &testServer{app: app, warehouseID: wh.ID, supplierID: sp.ID, auth: bearer(t)}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", s.auth)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func (s *testServer) skuBody(code, category string, initial, min int) map[string]interface{} {
	return map[string]interface{}{
		"name":          "Item " + code,
		"sku":           code,
		"barcode":       "BC-" + code,
		"category":      category,
		"costPrice":     10.5,
		"sellingPrice":  15,
		"initialStock":  initial,
		"minStockLevel": min,
		"warehouseId":   s.warehouseID,
		"supplierId":    s.supplierID,
	}
}

func (s *testServer) create(t *testing.T, code, category string, initial, min int) dto.SKUResponse {
	t.Helper()
	status, body := s.do(t, http.MethodPost, "/api/skus", s.skuBody(code, category, initial, min))
	require.Equal(t, http.StatusCreated, status, string(body))
	var out dto.SKUResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	return e
}

func TestSKU_Create(t *testing.T) {
	s := newTestServer(t)

	out := s.create(t, "A-1", "Electronics", 25, 5)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 25, out.CurrentStock)
	assert.Equal(t, 25, out.InitialStock)
	assert.True(t, out.IsActive)
	assert.Equal(t, testUserID, out.User)
	assert.Equal(t, int64(1), out.Version)
	assert.Equal(t, s.warehouseID, out.Warehouse.ID)
	assert.Equal(t, []string{}, out.Tags)
}

func TestSKU_Create_DuplicateCode(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "A-1", "Electronics", 1, 0)

	status, body := s.do(t, http.MethodPost, "/api/skus", s.skuBody("A-1", "Other", 1, 0))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "SKU code already exists", decodeError(t, body).Message)

	status, body = s.do(t, http.MethodGet, "/api/skus", nil)
	require.Equal(t, http.StatusOK, status)
	var list dto.SKUListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestSKU_Create_Validation(t *testing.T) {
	s := newTestServer(t)
	payload := s.skuBody("A-1", "", -1, 0)
	delete(payload, "costPrice")

	status, body := s.do(t, http.MethodPost, "/api/skus", payload)

	assert.Equal(t, http.StatusBadRequest, status)
	e := decodeError(t, body)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "category is required")
}

func TestSKU_Create_UnknownWarehouse(t *testing.T) {
	s := newTestServer(t)
	payload := s.skuBody("A-1", "Electronics", 1, 0)
	payload["warehouseId"] = "7d3c6b1e-9a0f-4a55-8c39-2f9a5b1c0d11"

	status, body := s.do(t, http.MethodPost, "/api/skus", payload)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decodeError(t, body).Message, "warehouseId")
}

func TestSKU_GetByID_Expanded(t *testing.T) {
	s := newTestServer(t)
	created := s.create(t, "A-1", "Electronics", 1, 0)

	status, body := s.do(t, http.MethodGet, "/api/skus/"+created.ID, nil)

	require.Equal(t, http.StatusOK, status)
	var out dto.SKUResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.WarehouseRef{ID: s.warehouseID, Name: "Main", Code: "MAIN"}, out.Warehouse)
	assert.Equal(t, dto.SupplierRef{ID: s.supplierID, Name: "Acme", ContactPerson: "Bob", Email: "bob@acme.com", Phone: "777"}, out.Supplier)
}

func TestSKU_GetByID_NotFound(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/skus/missing", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "SKU not found", decodeError(t, body).Message)
}

func TestSKU_List_FiltersAndPagination(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "E-1", "Electronics", 5, 0)
	s.create(t, "E-2", "Electronics", 50, 0)
	s.create(t, "O-1", "Office", 8, 0)
	s.create(t, "G-1", "Garden", 3, 0)

	status, body := s.do(t, http.MethodGet, "/api/skus?category=Electronics&category=Office&minStock=5&maxStock=10", nil)
	require.Equal(t, http.StatusOK, status)
	var list dto.SKUListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, int64(2), list.Total)

	status, body = s.do(t, http.MethodGet, "/api/skus?category=Electronics,Garden&limit=2&page=2", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, 2, list.Pages)
	assert.Equal(t, 2, list.Page)
	assert.Len(t, list.SKUs, 1)
}

func TestSKU_List_InvalidBound(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, http.MethodGet, "/api/skus?minStock=abc", nil)

	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSKU_Update(t *testing.T) {
	s := newTestServer(t)
	created := s.create(t, "A-1", "Electronics", 10, 0)

	status, body := s.do(t, http.MethodPut, "/api/skus/"+created.ID, map[string]interface{}{
		"name":         "Renamed",
		"isActive":     false,
		"currentStock": 999,
	})

	require.Equal(t, http.StatusOK, status, string(body))
	var out dto.SKUResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Renamed", out.Name)
	assert.Equal(t, "Electronics", out.Category)
	assert.False(t, out.IsActive)
	assert.Equal(t, 10, out.CurrentStock)
	assert.Equal(t, int64(2), out.Version)
}

func TestSKU_Update_StaleVersion(t *testing.T) {
	s := newTestServer(t)
	created := s.create(t, "A-1", "Electronics", 10, 0)

	status, _ := s.do(t, http.MethodPut, "/api/skus/"+created.ID, map[string]interface{}{"name": "v2", "version": 1})
	require.Equal(t, http.StatusOK, status)

	status, body := s.do(t, http.MethodPut, "/api/skus/"+created.ID, map[string]interface{}{"name": "v3", "version": 1})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decodeError(t, body).Code)
}

func TestSKU_Delete(t *testing.T) {
	s := newTestServer(t)
	created := s.create(t, "A-1", "Electronics", 10, 0)

	status, body := s.do(t, http.MethodDelete, "/api/skus/"+created.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"SKU removed"}`, string(body))

	status, _ = s.do(t, http.MethodGet, "/api/skus/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodDelete, "/api/skus/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSKU_LowStock(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "A", "X", 2, 5)
	s.create(t, "B", "X", 10, 5)
	s.create(t, "C", "X", 0, 1)

	status, body := s.do(t, http.MethodGet, "/api/skus/low-stock", nil)

	require.Equal(t, http.StatusOK, status)
	var out []dto.SKUResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "C", out[0].SKU)
	assert.Equal(t, "A", out[1].SKU)
	assert.Equal(t, "Main", out[0].Warehouse.Name)
	assert.Empty(t, out[0].Warehouse.Code)
}

func TestSKU_LowStock_Empty(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodGet, "/api/skus/low-stock", nil)

	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestSKU_LowStockReport(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "A", "X", 2, 5)

	req := httptest.NewRequest(http.MethodGet, "/api/skus/low-stock/report.pdf", nil)
	req.Header.Set("Authorization", s.auth)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestSKU_Categories(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "A", "office", 1, 0)
	s.create(t, "B", "Electronics", 1, 0)
	s.create(t, "C", "Office", 1, 0)
	s.create(t, "D", "Electronics", 1, 0)

	status, body := s.do(t, http.MethodGet, "/api/skus/categories", nil)

	require.Equal(t, http.StatusOK, status)
	var out []string
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, []string{"Electronics", "office", "Office"}, out)
}

func TestSKU_RequiresToken(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/skus", nil)

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "A", "X", 2, 5)
	s.create(t, "B", "X", 10, 5)

	status, body := s.do(t, http.MethodGet, "/api/dashboard", nil)

	require.Equal(t, http.StatusOK, status)
	var out dto.DashboardSummary
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, int64(2), out.TotalSKUs)
	assert.Equal(t, 1, out.LowStockItems)
	assert.Equal(t, "126", out.ActiveInventoryValue.String())
	assert.Equal(t, 0, out.PendingOrders)
}

func TestWarehouse_DuplicateCode(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodPost, "/api/warehouses", map[string]interface{}{
		"name": "Other", "code": "MAIN", "manager": "Z", "phone": "1", "email": "z@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Warehouse code already exists", decodeError(t, body).Message)
}

func TestSupplier_CreateDefaults(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, http.MethodPost, "/api/suppliers", map[string]interface{}{
		"name": "Globex", "contactPerson": "Hank", "email": "hank@globex.com", "phone": "1",
	})

	require.Equal(t, http.StatusCreated, status, string(body))
	var out dto.SupplierResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Net 30", out.PaymentTerms)
	assert.Equal(t, 7, out.LeadTime)
	assert.Equal(t, "active", out.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.create(t, "A", "X", 1, 0)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `test_sku_operations_total{operation="create",outcome="ok"} 1`)
}
