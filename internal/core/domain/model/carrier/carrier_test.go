package carrier_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarrier(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := carrier.NewCarrier("Acme Freight", "Economy", "af", 5)
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "AF", c.TrackingPrefix())
		assert.Equal(t, 5, c.TransitDays())
	})

	t.Run("all errors are joined", func(t *testing.T) {
		_, err := carrier.NewCarrier("", "", "a-b", 0)
		require.ErrorIs(t, err, carrier.ErrNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value", func(t *testing.T) {
		var c carrier.Carrier
		require.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})

	t.Run("estimate arrival", func(t *testing.T) {
		c, err := carrier.NewCarrier("UPS", "Worldwide Saver", "1Z", 5)
		require.NoError(t, err)
		from := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC), c.EstimateArrival(from))
	})
}

func TestCatalog(t *testing.T) {
	t.Run("default carrier", func(t *testing.T) {
		catalog := carrier.NewCatalog("")
		assert.Equal(t, carrier.DefaultCarrierName, catalog.Default().Name())

		resolved, err := catalog.Resolve("  ")
		require.NoError(t, err)
		assert.True(t, resolved.IsEqual(catalog.Default()))
	})

	t.Run("configured default", func(t *testing.T) {
		catalog := carrier.NewCatalog("fedex")
		assert.Equal(t, "FedEx", catalog.Default().Name())
	})

	t.Run("unknown configured default falls back", func(t *testing.T) {
		catalog := carrier.NewCatalog("Pigeon Post")
		assert.Equal(t, carrier.DefaultCarrierName, catalog.Default().Name())
	})

	t.Run("known carriers resolve case-insensitively", func(t *testing.T) {
		catalog := carrier.NewCatalog("")
		c, err := catalog.Resolve("dhl express")
		require.NoError(t, err)
		assert.Equal(t, "DHL Express", c.Name())
		assert.Equal(t, "Express Worldwide", c.ServiceType())
		assert.Equal(t, "JD", c.TrackingPrefix())
	})

	t.Run("unknown carriers get a derived prefix", func(t *testing.T) {
		catalog := carrier.NewCatalog("")

		testCases := map[string]string{
			"Acme Freight": "AF",
			"Posti":        "PO",
			"Z":            "ZX",
			"An Post Ltd":  "APL",
		}
		for name, prefix := range testCases {
			c, err := catalog.Resolve(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, c.Name())
			assert.Equal(t, prefix, c.TrackingPrefix(), name)
			assert.Equal(t, "Standard", c.ServiceType())
			assert.Equal(t, 6, c.TransitDays())
		}
	})
}
