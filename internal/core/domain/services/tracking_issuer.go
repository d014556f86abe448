package services

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/carrier"
)

const trackingDigits = 10

// TrackingNumberIssuer issues tracking numbers. The number is a function of the order
// id and the carrier name, so re-issuing for the same pair always yields the same
// number.
type TrackingNumberIssuer struct{}

// NewTrackingNumberIssuer creates a new TrackingNumberIssuer instance.
func NewTrackingNumberIssuer() TrackingNumberIssuer {
	return TrackingNumberIssuer{}
}

// Issue returns the carrier's tracking prefix followed by ten digits.
//
// Example:
//
//	issuer.Issue("O1", dhl) // "JD" + 10 digits, stable across calls
func (TrackingNumberIssuer) Issue(orderID string, c carrier.Carrier) string {
	sum := sha256.Sum256([]byte(orderID + "|" + strings.ToLower(c.Name())))
	n := binary.BigEndian.Uint64(sum[:8]) % 10_000_000_000
	return fmt.Sprintf("%s%0*d", c.TrackingPrefix(), trackingDigits, n)
}
