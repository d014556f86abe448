package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Seed(t *testing.T) {
	t.Run("derives shipment and seed documents", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")

		assert.Equal(t, kernel.ShipmentID("O1"), s.ID())
		assert.Equal(t, shipment.OrderReceived, s.Status())
		assert.Equal(t, 20, s.Progress())
		assert.Equal(t, "DHL Express", s.Carrier())
		assert.Equal(t, "Express Worldwide", s.ServiceType())
		assert.Equal(t, placedAt.AddDate(0, 0, 3), s.EstimatedArrival())
		assert.Equal(t, o.WarehouseAddress(), s.Origin())
		assert.Equal(t, o.CustomerAddress(), s.Destination())
		assert.Regexp(t, `^JD\d{10}$`, s.TrackingNumber())

		events := s.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Order Placed", events[0].Status)
		assert.Equal(t, shipment.EventReceived, events[0].Type)
		assert.Equal(t, "Kaffeehaus GmbH, Berlin", events[0].Location)
		assert.Equal(t, "Order Received", events[1].Status)
		assert.Equal(t, shipment.EventProcessing, events[1].Type)
		assert.Equal(t, "Unit 7, Dublin Port", events[1].Location)
		for _, e := range events {
			assert.Equal(t, placedAt, e.Timestamp)
		}

		require.Len(t, docs, 3)
		for i, kind := range document.SeedKinds() {
			assert.Equal(t, kind, docs[i].Kind())
			assert.Equal(t, document.Final, docs[i].Status())
			assert.Equal(t, placedAt, docs[i].IssuedAt())
			assert.False(t, docs[i].IsLabel())
		}

		require.NoError(t, services.CheckConsistency(o, s, docs))
	})

	t.Run("is deterministic", func(t *testing.T) {
		_, s1, d1 := seeded(t, "O1")
		_, s2, d2 := seeded(t, "O1")
		assert.Equal(t, s1.Record(), s2.Record())
		for i := range d1 {
			assert.Equal(t, d1[i].Record(), d2[i].Record())
		}
	})

	t.Run("rejects orders that are not open", func(t *testing.T) {
		o := newOrder(t, "O1")
		require.NoError(t, o.Ship())

		_, _, err := newSeeder().Seed(o)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
