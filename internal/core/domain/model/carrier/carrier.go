package carrier

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	fallbackServiceType = "Standard"
	fallbackTransitDays = 6
)

// Domain errors for carrier operations.
var (
	// ErrNameIsRequired is returned when a carrier is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("carrier name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier is an immutable description of a shipping carrier and the service used
// with it.
type Carrier struct {
	name           string
	serviceType    string
	trackingPrefix string
	transitDays    int
	guard          guard.ConstructorGuard
}

// NewCarrier validates and builds a Carrier. transitDays must be positive and the
// tracking prefix must be non-empty alphanumeric.
func NewCarrier(name, serviceType, trackingPrefix string, transitDays int) (Carrier, error) {
	name = strings.TrimSpace(name)
	serviceType = strings.TrimSpace(serviceType)
	trackingPrefix = strings.ToUpper(strings.TrimSpace(trackingPrefix))

	var nameErr, serviceErr, prefixErr, daysErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if serviceType == "" {
		serviceErr = errs.NewValueIsRequiredError("service type")
	}
	if trackingPrefix == "" || strings.IndexFunc(trackingPrefix, notAlphanumeric) >= 0 {
		prefixErr = errs.NewValueIsInvalidErrorWithCause("tracking prefix",
			fmt.Errorf("%q must be non-empty and alphanumeric", trackingPrefix))
	}
	if transitDays <= 0 {
		daysErr = errs.NewValueIsOutOfRangeError("transit days", transitDays, 1, "unbounded")
	}
	if err := errors.Join(nameErr, serviceErr, prefixErr, daysErr); err != nil {
		return Carrier{}, err
	}

	return Carrier{
		name:           name,
		serviceType:    serviceType,
		trackingPrefix: trackingPrefix,
		transitDays:    transitDays,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Carrier was built through NewCarrier.
func (c Carrier) Validate() error {
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// Name returns the carrier's display name, e.g. "DHL Express".
func (c Carrier) Name() string { return c.name }

// ServiceType returns the service level used with the carrier.
func (c Carrier) ServiceType() string { return c.serviceType }

// TrackingPrefix returns the prefix of tracking numbers this carrier issues.
func (c Carrier) TrackingPrefix() string { return c.trackingPrefix }

// TransitDays returns the nominal door-to-door time in days.
func (c Carrier) TransitDays() int { return c.transitDays }

// EstimateArrival returns the expected arrival for a shipment that leaves at from.
func (c Carrier) EstimateArrival(from time.Time) time.Time {
	return from.AddDate(0, 0, c.transitDays)
}

// IsEqual compares carriers by name, ignoring case.
func (c Carrier) IsEqual(other Carrier) bool {
	return strings.EqualFold(c.name, other.name)
}

func notAlphanumeric(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// derivePrefix builds a two-letter prefix from the initials of a carrier name,
// padding with the next letters of the first word when the name is a single word.
func derivePrefix(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
	}
	prefix := b.String()
	if len(prefix) >= 2 {
		return prefix
	}

	letters := strings.Map(func(r rune) rune {
		if notAlphanumeric(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, name)
	switch {
	case len(letters) >= 2:
		return letters[:2]
	case len(letters) == 1:
		return letters + "X"
	default:
		return "XX"
	}
}
