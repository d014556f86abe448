package document

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrDocumentIsNotConstructed is returned when a Document instance was not created
	// through one of the constructors.
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or NewLabel constructor")

	// ErrLabelNeedsDispatch is returned when a Label is built without carrier data, or
	// carrier data is supplied for any other kind.
	ErrLabelNeedsDispatch = errs.NewValueIsInvalidErrorWithCause("label",
		errors.New("carrier and tracking number are required on labels and only on labels"))
)

// Document is one piece of paperwork of an order. Documents are immutable once issued.
type Document struct {
	id             string
	orderID        string
	name           string
	kind           Kind
	issuedAt       time.Time
	size           string
	status         Status
	url            string
	carrier        string
	trackingNumber string

	isConstructed bool
}

// NewDocument issues a Final document of a non-Label kind. baseURL prefixes the
// opaque document reference and may be empty.
func NewDocument(orderID string, kind Kind, issuedAt time.Time, baseURL string) (*Document, error) {
	if kind == Label {
		return nil, ErrLabelNeedsDispatch
	}
	return issue(orderID, kind, issuedAt, baseURL, "", "")
}

// NewLabel issues the Final shipping label of an order with the carrier and tracking
// number of its shipment.
func NewLabel(orderID string, issuedAt time.Time, baseURL, carrierName, trackingNumber string) (*Document, error) {
	return issue(orderID, Label, issuedAt, baseURL, carrierName, trackingNumber)
}

func issue(orderID string, kind Kind, issuedAt time.Time, baseURL, carrierName, trackingNumber string) (*Document, error) {
	orderID = strings.TrimSpace(orderID)
	return RestoreDocument(RestoreParams{
		ID:             kernel.DocumentID(orderID, kind.String()),
		OrderID:        orderID,
		Name:           fileName(orderID, kind),
		Kind:           kind,
		IssuedAt:       issuedAt,
		Size:           kind.size(),
		Status:         Final,
		URL:            documentURL(baseURL, orderID, kind),
		Carrier:        carrierName,
		TrackingNumber: trackingNumber,
	})
}

// RestoreParams carries the full state of a persisted document.
type RestoreParams struct {
	ID             string
	OrderID        string
	Name           string
	Kind           Kind
	IssuedAt       time.Time
	Size           string
	Status         Status
	URL            string
	Carrier        string
	TrackingNumber string
}

// RestoreDocument rebuilds a document from persisted state, re-validating it.
func RestoreDocument(p RestoreParams) (*Document, error) {
	d := &Document{
		orderID:        strings.TrimSpace(p.OrderID),
		name:           strings.TrimSpace(p.Name),
		kind:           p.Kind,
		issuedAt:       p.IssuedAt,
		size:           p.Size,
		status:         p.Status,
		url:            p.URL,
		carrier:        strings.TrimSpace(p.Carrier),
		trackingNumber: strings.TrimSpace(p.TrackingNumber),
		isConstructed:  true,
	}

	var orderErr, idErr, nameErr, issuedErr, dispatchErr error
	if d.orderID == "" {
		orderErr = errs.NewValueIsRequiredError("order id")
	} else if p.ID != kernel.DocumentID(d.orderID, p.Kind.String()) {
		idErr = errs.NewValueIsInvalidErrorWithCause("document id",
			fmt.Errorf("%q is not derived from order %q and kind %q", p.ID, d.orderID, p.Kind))
	}
	if d.name == "" {
		nameErr = errs.NewValueIsRequiredError("document name")
	}
	if d.issuedAt.IsZero() {
		issuedErr = errs.NewValueIsRequiredError("issued at")
	}
	hasDispatch := d.carrier != "" && d.trackingNumber != ""
	hasAnyDispatch := d.carrier != "" || d.trackingNumber != ""
	if (p.Kind == Label && !hasDispatch) || (p.Kind != Label && hasAnyDispatch) {
		dispatchErr = ErrLabelNeedsDispatch
	}

	if err := errors.Join(orderErr, idErr, nameErr, issuedErr, p.Kind.Validate(), p.Status.Validate(), dispatchErr); err != nil {
		return nil, err
	}

	d.id = p.ID
	return d, nil
}

// Validate ensures the Document was built through its constructors.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

func (d *Document) ID() string             { return d.id }
func (d *Document) OrderID() string        { return d.orderID }
func (d *Document) Name() string           { return d.name }
func (d *Document) Kind() Kind             { return d.kind }
func (d *Document) IssuedAt() time.Time    { return d.issuedAt }
func (d *Document) Size() string           { return d.size }
func (d *Document) Status() Status         { return d.status }
func (d *Document) URL() string            { return d.url }
func (d *Document) Carrier() string        { return d.carrier }
func (d *Document) TrackingNumber() string { return d.trackingNumber }

// IsLabel reports whether the document is a shipping label.
func (d *Document) IsLabel() bool {
	return d.kind == Label
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func fileName(orderID string, kind Kind) string {
	return strings.ReplaceAll(kind.String(), " ", "-") + "-" + orderID + ".pdf"
}

func documentURL(baseURL, orderID string, kind Kind) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") +
		"/orders/" + url.PathEscape(orderID) + "/" + kind.Slug() + ".pdf"
}
