package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecyclePropagator_Propagate(t *testing.T) {
	t.Run("shipped issues exactly one label", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")

		tr, err := newPropagator().Propagate(o, s, docs, order.Shipped, "DHL Express", shippedAt)
		require.NoError(t, err)

		assert.True(t, tr.Applied)
		assert.Equal(t, order.Open, tr.From)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.Equal(t, 60, s.Progress())
		assert.Equal(t, "Handed over to DHL Express", s.LastUpdate())

		events := s.Events()
		require.Len(t, events, 3)
		assert.Equal(t, shipment.EventTransit, events[2].Type)
		assert.Equal(t, "Unit 7, Dublin Port", events[2].Location)
		assert.Equal(t, shippedAt, events[2].Timestamp)

		require.NotNil(t, tr.Label)
		assert.Equal(t, document.Label, tr.Label.Kind())
		assert.Equal(t, "DHL Express", tr.Label.Carrier())
		assert.Equal(t, s.TrackingNumber(), tr.Label.TrackingNumber())
		assert.Len(t, docs, 3, "caller's slice is not modified")
	})

	t.Run("shipped with another carrier", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")

		tr, err := newPropagator().Propagate(o, s, docs, order.Shipped, "FedEx", shippedAt)
		require.NoError(t, err)
		assert.Equal(t, "FedEx", s.Carrier())
		assert.Equal(t, "International Priority", s.ServiceType())
		assert.Regexp(t, `^FX\d{10}$`, s.TrackingNumber())
		assert.Equal(t, shippedAt.AddDate(0, 0, 4), s.EstimatedArrival())
		assert.Equal(t, s.TrackingNumber(), tr.Label.TrackingNumber())
	})

	t.Run("delivered records arrival without documents", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		tr, err := newPropagator().Propagate(o, s, docs, order.Shipped, "", shippedAt)
		require.NoError(t, err)
		docs = append(docs, tr.Label)

		deliveredAt := shippedAt.Add(48 * time.Hour)
		tr, err = newPropagator().Propagate(o, s, docs, order.Delivered, "", deliveredAt)
		require.NoError(t, err)

		assert.True(t, tr.Applied)
		assert.Nil(t, tr.Label)
		assert.Equal(t, shipment.ReachedDestination, s.Status())
		assert.Equal(t, 100, s.Progress())
		events := s.Events()
		require.Len(t, events, 4)
		assert.Equal(t, shipment.EventDelivered, events[3].Type)
		assert.Equal(t, "12 Harbour Road, Cork", events[3].Location)
	})

	t.Run("replaying the current status changes nothing", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		tr, err := newPropagator().Propagate(o, s, docs, order.Shipped, "DHL Express", shippedAt)
		require.NoError(t, err)
		docs = append(docs, tr.Label)
		before := s.Record()

		tr, err = newPropagator().Propagate(o, s, docs, order.Shipped, "UPS", shippedAt.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, tr.Applied)
		assert.Nil(t, tr.Label)
		assert.Equal(t, before, s.Record())
	})

	t.Run("skipping a step is an invalid transition", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		before := s.Record()

		_, err := newPropagator().Propagate(o, s, docs, order.Delivered, "", shippedAt)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Open, o.Status())
		assert.Equal(t, before, s.Record())
	})

	t.Run("open to open is an invalid transition", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		_, err := newPropagator().Propagate(o, s, docs, order.Open, "", shippedAt)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("replay over an inconsistent state fails", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		_, err := newPropagator().Propagate(o, s, docs, order.Shipped, "", shippedAt)
		require.NoError(t, err)

		// label never stored
		_, err = newPropagator().Propagate(o, s, docs, order.Shipped, "", shippedAt)
		require.ErrorIs(t, err, errs.ErrPartialCommit)
	})

	t.Run("advancing over a stray label fails", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		stray, err := document.NewLabel("O1", placedAt, "", "UPS", "1Z0000000000")
		require.NoError(t, err)

		_, err = newPropagator().Propagate(o, s, append(docs, stray), order.Shipped, "", shippedAt)
		require.ErrorIs(t, err, errs.ErrPartialCommit)
	})
}

func TestCheckConsistency(t *testing.T) {
	t.Run("missing seed document", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		err := services.CheckConsistency(o, s, docs[:2])
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Certificate of Origin")
	})

	t.Run("shipment of another order", func(t *testing.T) {
		o, _, docs := seeded(t, "O1")
		_, other, _ := seeded(t, "O2")
		require.ErrorIs(t, services.CheckConsistency(o, other, docs), errs.ErrValueIsInvalid)
	})

	t.Run("history without the current status", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		rec := s.Record()
		rec.Events = rec.Events[:len(rec.Events)-1]
		trimmed, err := shipment.FromRecord(rec)
		require.NoError(t, err)

		err = services.CheckConsistency(o, trimmed, docs)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Order Received")
	})

	t.Run("shipped order with its label", func(t *testing.T) {
		o, s, docs := seeded(t, "O1")
		tr, err := newPropagator().Propagate(o, s, docs, order.Shipped, "DHL Express", shippedAt)
		require.NoError(t, err)
		require.NoError(t, services.CheckConsistency(o, s, append(docs, tr.Label)))
	})
}

func TestTrackingNumberIssuer_Issue(t *testing.T) {
	issuer := services.NewTrackingNumberIssuer()
	catalog := carrier.NewCatalog("")
	dhl := catalog.Default()
	fedex, err := catalog.Resolve("FedEx")
	require.NoError(t, err)
	require.Equal(t, "FX", fedex.TrackingPrefix())

	a := issuer.Issue("O1", dhl)
	assert.Equal(t, a, issuer.Issue("O1", dhl))
	assert.NotEqual(t, a, issuer.Issue("O2", dhl))
	assert.NotEqual(t, a[2:], issuer.Issue("O1", fedex)[2:])
	assert.Len(t, a, 12)
}
