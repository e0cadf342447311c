package metrics

import (
	"testing"

	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRefresh(t *testing.T) {
	m := CreateCatalogMetrics(prometheus.NewRegistry())

	st := state.Defaults()
	st.Discounts["p-1"] = 10
	st.Products[1].Quantity = 0
	st.Categories = st.Categories[1:]

	m.Refresh(st)

	assert.Equal(t, 12.0, testutil.ToFloat64(m.productCount))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.categoryCount))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.adminCount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.discountCount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outOfStockCount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orphanedCount))
	assert.InDelta(t, st.InventoryValue(), testutil.ToFloat64(m.inventoryValue), 1e-9)
}

func TestCountEvent(t *testing.T) {
	m := CreateCatalogMetrics(prometheus.NewRegistry())

	m.CountEvent("login")
	m.CountEvent("login")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("login")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *CatalogMetrics
	assert.NotPanics(t, func() {
		m.Refresh(state.Defaults())
		m.CountEvent("logout")
	})
}
