package carrier

import (
	"strings"
)

// Catalog resolves carrier names to Carriers. Known carriers carry their real
// service level and prefix; unknown names are accepted with a derived prefix and a
// standard service so that an external carrier choice is never rejected.
type Catalog struct {
	known          []Carrier
	defaultCarrier Carrier
}

// DefaultCarrierName is used when no carrier is chosen for a shipment.
const DefaultCarrierName = "DHL Express"

func mustCarrier(name, serviceType, prefix string, transitDays int) Carrier {
	c, err := NewCarrier(name, serviceType, prefix, transitDays)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog returns the built-in catalog with defaultName as the default carrier.
// An empty or unknown defaultName falls back to DefaultCarrierName.
func NewCatalog(defaultName string) *Catalog {
	c := &Catalog{
		known: []Carrier{
			mustCarrier("DHL Express", "Express Worldwide", "JD", 3),
			mustCarrier("FedEx", "International Priority", "FX", 4),
			mustCarrier("UPS", "Worldwide Saver", "1Z", 5),
			mustCarrier("USPS", "Priority Mail International", "94", 7),
		},
	}

	c.defaultCarrier = c.known[0]
	if known, ok := c.find(defaultName); ok {
		c.defaultCarrier = known
	}
	return c
}

// Default returns the carrier assigned when none was chosen.
func (c *Catalog) Default() Carrier {
	return c.defaultCarrier
}

// Resolve returns the carrier for name. A blank name resolves to the default carrier.
func (c *Catalog) Resolve(name string) (Carrier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.defaultCarrier, nil
	}
	if known, ok := c.find(name); ok {
		return known, nil
	}
	return NewCarrier(name, fallbackServiceType, derivePrefix(name), fallbackTransitDays)
}

func (c *Catalog) find(name string) (Carrier, bool) {
	for _, known := range c.known {
		if strings.EqualFold(known.name, strings.TrimSpace(name)) {
			return known, true
		}
	}
	return Carrier{}, false
}
