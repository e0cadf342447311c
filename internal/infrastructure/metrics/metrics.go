package metrics

import (
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CatalogMetrics are the storefront gauges and the event counter. A nil
// *CatalogMetrics records nothing.
type CatalogMetrics struct {
	productCount    prometheus.Gauge
	categoryCount   prometheus.Gauge
	adminCount      prometheus.Gauge
	discountCount   prometheus.Gauge
	orphanedCount   prometheus.Gauge
	outOfStockCount prometheus.Gauge
	inventoryValue  prometheus.Gauge
	events          *prometheus.CounterVec
}

func CreateCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	factory := promauto.With(reg)
	gauge := func(name, help string) prometheus.Gauge {
		return factory.NewGauge(prometheus.GaugeOpts{Namespace: "sr_shopping", Name: name, Help: help})
	}

	return &CatalogMetrics{
		productCount:    gauge("products", "Number of products in the catalog."),
		categoryCount:   gauge("categories", "Number of categories."),
		adminCount:      gauge("admins", "Number of admin accounts."),
		discountCount:   gauge("active_discounts", "Number of products with an active discount."),
		orphanedCount:   gauge("orphaned_products", "Number of products whose category no longer exists."),
		outOfStockCount: gauge("out_of_stock_products", "Number of products with zero quantity."),
		inventoryValue:  gauge("inventory_value", "Sum of price times quantity over all products."),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sr_shopping",
			Name:      "events_total",
			Help:      "Committed state changes and order handoffs by event type.",
		}, []string{"event_type"}),
	}
}

// Refresh sets every gauge from a state snapshot.
func (m *CatalogMetrics) Refresh(st state.State) {
	if m == nil {
		return
	}

	m.productCount.Set(float64(len(st.Products)))
	m.categoryCount.Set(float64(len(st.Categories)))
	m.adminCount.Set(float64(len(st.Admins)))
	m.orphanedCount.Set(float64(len(st.OrphanedProducts())))
	m.inventoryValue.Set(st.InventoryValue())

	var discounted, outOfStock int
	for _, p := range st.Products {
		if st.Discounts.Has(p.ID) {
			discounted++
		}
		if !p.InStock() {
			outOfStock++
		}
	}
	m.discountCount.Set(float64(discounted))
	m.outOfStockCount.Set(float64(outOfStock))
}

func (m *CatalogMetrics) CountEvent(eventType string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(eventType).Inc()
}
