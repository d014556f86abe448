package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Product describes what was ordered. Dimensions and weight are display
// descriptors (e.g. "30 x 20 x 10 cm", "2.4 kg").
type Product struct {
	name       string
	dimensions string
	weight     string
	quantity   int
}

// NewProduct validates and builds a Product. All text fields are required and
// quantity must be at least 1.
func NewProduct(name, dimensions, weight string, quantity int) (Product, error) {
	p := Product{
		name:       strings.TrimSpace(name),
		dimensions: strings.TrimSpace(dimensions),
		weight:     strings.TrimSpace(weight),
		quantity:   quantity,
	}

	var nameErr, dimErr, weightErr, qtyErr error
	if p.name == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if p.dimensions == "" {
		dimErr = errs.NewValueIsRequiredError("product dimensions")
	}
	if p.weight == "" {
		weightErr = errs.NewValueIsRequiredError("product weight")
	}
	if quantity < 1 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("product quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if err := errors.Join(nameErr, dimErr, weightErr, qtyErr); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) Name() string       { return p.name }
func (p Product) Dimensions() string { return p.dimensions }
func (p Product) Weight() string     { return p.weight }
func (p Product) Quantity() int      { return p.quantity }
