package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var (
	placedAt  = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	shippedAt = placedAt.Add(26 * time.Hour)
)

func newOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	customer, err := kernel.NewAddress("customer address", "12 Harbour Road, Cork")
	require.NoError(t, err)
	warehouse, err := kernel.NewAddress("warehouse address", "Unit 7, Dublin Port")
	require.NoError(t, err)
	seller, err := kernel.NewAddress("seller address", "Kaffeehaus GmbH, Berlin")
	require.NoError(t, err)
	p, err := order.NewProduct("Espresso machine", "40 x 30 x 35 cm", "9.5 kg", 1)
	require.NoError(t, err)

	o, err := order.NewOrder(id, placedAt, p, order.Addresses{Customer: customer, Warehouse: warehouse, Seller: seller})
	require.NoError(t, err)
	return o
}

func newSeeder() services.Seeder {
	return services.NewSeeder(carrier.NewCatalog(""), services.NewTrackingNumberIssuer(), "https://docs.example.com")
}

func newPropagator() services.LifecyclePropagator {
	return services.NewLifecyclePropagator(carrier.NewCatalog(""), services.NewTrackingNumberIssuer(), "https://docs.example.com")
}

func seeded(t *testing.T, id string) (*order.Order, *shipment.Shipment, []*document.Document) {
	t.Helper()
	o := newOrder(t, id)
	s, docs, err := newSeeder().Seed(o)
	require.NoError(t, err)
	return o, s, docs
}
