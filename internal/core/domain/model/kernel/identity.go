package kernel

import (
	"strings"

	"github.com/google/uuid"
)

// identityNamespace scopes every derived identifier of this service. Changing it
// changes every shipment and document id, so it is fixed.
var identityNamespace = uuid.MustParse("6f1c2a54-3d0b-5c1e-9a77-0e5b8d2f4c11")

// ShipmentID derives the identifier of the single shipment that belongs to an order.
// The same order id always yields the same shipment id.
func ShipmentID(orderID string) string {
	return uuid.NewSHA1(identityNamespace, []byte("shipment:"+orderID)).String()
}

// DocumentID derives the identifier of the document of the given kind that belongs
// to an order. Kind names are compared case-insensitively.
func DocumentID(orderID, kind string) string {
	return uuid.NewSHA1(identityNamespace, []byte("document:"+orderID+":"+strings.ToLower(kind))).String()
}
