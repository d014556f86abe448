package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is an immutable, free-form postal address. The only rule is that it is
// not blank; surrounding whitespace is trimmed.
//
// Example:
//
//	addr, err := kernel.NewAddress("221B Baker Street, London")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(addr) // 221B Baker Street, London
type Address struct {
	value string
	guard guard.ConstructorGuard
}

// NewAddress validates and builds an Address. paramName names the address in the
// returned error (e.g. "customer address").
func NewAddress(paramName, value string) (Address, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Address{}, errs.NewValueIsRequiredError(paramName)
	}
	return Address{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the Address was built through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// String returns the address text.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses by their text.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}
