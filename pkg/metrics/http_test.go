package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sku-inventory-api/pkg/metrics"
)

func TestObserveRequest(t *testing.T) {
	m := metrics.NewHTTPMetrics("test")

	m.ObserveRequest("GET", "/api/skus", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "/api/skus", 200, 20*time.Millisecond)
	m.ObserveRequest("GET", "/api/skus", 500, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCount("GET", "/api/skus", 200)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCount("GET", "/api/skus", 500)))
}

func TestObserveSKUOperation(t *testing.T) {
	m := metrics.NewHTTPMetrics("test")

	m.ObserveSKUOperation("create", nil)
	m.ObserveSKUOperation("create", errors.New("boom"))
	m.ObserveSKUOperation("create", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SKUOperationCount("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SKUOperationCount("create", "error")))
}

func TestRegistryGathers(t *testing.T) {
	m := metrics.NewHTTPMetrics("test")
	m.ObserveRequest("POST", "/api/skus", 201, time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "test_http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
