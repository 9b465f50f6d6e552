package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusCategory(t *testing.T) {
	assert.Equal(t, "2xx", StatusCategory(200))
	assert.Equal(t, "4xx", StatusCategory(404))
	assert.Equal(t, "5xx", StatusCategory(503))
	assert.Equal(t, "unknown", StatusCategory(0))
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(ItemsSoldCounter)
	RecordSale(3)
	assert.Equal(t, before+3, testutil.ToFloat64(ItemsSoldCounter))

	op := StoreOperationsCounter.WithLabelValues("products", "test")
	before = testutil.ToFloat64(op)
	RecordStoreOperation("products", "test")
	assert.Equal(t, before+1, testutil.ToFloat64(op))

	UpdateLowStockProducts(4)
	assert.Equal(t, 4.0, testutil.ToFloat64(LowStockProductsGauge))

	TrackPersistence("test")(time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(PersistenceDuration, "inventory_persistence_duration_seconds"))
}
