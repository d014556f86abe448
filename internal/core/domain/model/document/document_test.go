package document_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func TestNewDocument(t *testing.T) {
	testCases := []struct {
		kind document.Kind
		name string
		url  string
		size string
	}{
		{document.Invoice, "Invoice-O1.pdf", "https://docs.example.com/orders/O1/invoice.pdf", "124 KB"},
		{document.PackingList, "Packing-List-O1.pdf", "https://docs.example.com/orders/O1/packing-list.pdf", "86 KB"},
		{document.CertificateOfOrigin, "Certificate-of-Origin-O1.pdf", "https://docs.example.com/orders/O1/certificate-of-origin.pdf", "210 KB"},
	}
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			d, err := document.NewDocument("O1", tc.kind, issuedAt, "https://docs.example.com/")
			require.NoError(t, err)
			require.NoError(t, d.Validate())

			assert.Equal(t, kernel.DocumentID("O1", tc.kind.String()), d.ID())
			assert.Equal(t, tc.name, d.Name())
			assert.Equal(t, tc.url, d.URL())
			assert.Equal(t, tc.size, d.Size())
			assert.Equal(t, document.Final, d.Status())
			assert.Equal(t, issuedAt, d.IssuedAt())
			assert.False(t, d.IsLabel())
			assert.Empty(t, d.Carrier())
		})
	}

	t.Run("label kind is refused", func(t *testing.T) {
		_, err := document.NewDocument("O1", document.Label, issuedAt, "")
		require.ErrorIs(t, err, document.ErrLabelNeedsDispatch)
	})

	t.Run("missing order id and issue time", func(t *testing.T) {
		_, err := document.NewDocument(" ", document.Invoice, time.Time{}, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("order id is escaped in the url", func(t *testing.T) {
		d, err := document.NewDocument("O 1/2", document.Invoice, issuedAt, "")
		require.NoError(t, err)
		assert.Equal(t, "/orders/O%201%2F2/invoice.pdf", d.URL())
	})
}

func TestNewLabel(t *testing.T) {
	l, err := document.NewLabel("O1", issuedAt, "", "DHL Express", "JD0123456789")
	require.NoError(t, err)
	assert.True(t, l.IsLabel())
	assert.Equal(t, "Label-O1.pdf", l.Name())
	assert.Equal(t, "DHL Express", l.Carrier())
	assert.Equal(t, "JD0123456789", l.TrackingNumber())
	assert.Equal(t, "48 KB", l.Size())

	_, err = document.NewLabel("O1", issuedAt, "", "DHL Express", "")
	require.ErrorIs(t, err, document.ErrLabelNeedsDispatch)
}

func TestDocument_Record(t *testing.T) {
	l, err := document.NewLabel("O1", issuedAt, "", "DHL Express", "JD0123456789")
	require.NoError(t, err)

	r := l.Record()
	assert.Equal(t, "Label", r.Kind)
	assert.Equal(t, "Final", r.Status)

	back, err := document.FromRecord(r)
	require.NoError(t, err)
	assert.Equal(t, r, back.Record())

	t.Run("unknown kind", func(t *testing.T) {
		bad := r
		bad.Kind = "Receipt"
		_, err := document.FromRecord(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("id of another kind", func(t *testing.T) {
		bad := r
		bad.ID = kernel.DocumentID("O1", "Invoice")
		_, err := document.FromRecord(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("tracking data on a non-label", func(t *testing.T) {
		inv, err := document.NewDocument("O1", document.Invoice, issuedAt, "")
		require.NoError(t, err)
		bad := inv.Record()
		bad.TrackingNumber = "JD1"
		_, err = document.FromRecord(bad)
		require.ErrorIs(t, err, document.ErrLabelNeedsDispatch)
	})
}

func TestParseKind(t *testing.T) {
	k, err := document.ParseKind("packing list")
	require.NoError(t, err)
	assert.Equal(t, document.PackingList, k)
	assert.Equal(t, "packing-list", k.Slug())
	assert.Equal(t, []document.Kind{document.Invoice, document.PackingList, document.CertificateOfOrigin}, document.SeedKinds())
}
