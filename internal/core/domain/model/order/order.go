package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a retail order. It owns the lifecycle status;
// shipments and documents are derived from it and never change it.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Must have a valid product descriptor and three non-blank addresses
//   - Status only moves forward one step at a time
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id       string
	placedAt time.Time
	status   Status
	product  Product

	customerAddress  kernel.Address
	warehouseAddress kernel.Address
	sellerAddress    kernel.Address

	isConstructed bool
}

// Addresses groups the fixed address triple of an order.
type Addresses struct {
	Customer  kernel.Address
	Warehouse kernel.Address
	Seller    kernel.Address
}

// NewOrder creates a freshly placed order in Open status.
//
// Example:
//
//	product, _ := order.NewProduct("Espresso machine", "40 x 30 x 35 cm", "9.5 kg", 1)
//	customer, _ := kernel.NewAddress("customer address", "12 Harbour Road, Cork")
//	warehouse, _ := kernel.NewAddress("warehouse address", "Unit 7, Dublin Port")
//	seller, _ := kernel.NewAddress("seller address", "Kaffeehaus GmbH, Berlin")
//	o, err := order.NewOrder("O1", time.Now(), product, order.Addresses{
//	    Customer: customer, Warehouse: warehouse, Seller: seller,
//	})
func NewOrder(id string, placedAt time.Time, product Product, addresses Addresses) (*Order, error) {
	return RestoreOrder(id, placedAt, Open, product, addresses)
}

// RestoreOrder rebuilds an order in any valid status, e.g. from a snapshot.
// All invariants are re-validated.
func RestoreOrder(id string, placedAt time.Time, status Status, product Product, addresses Addresses) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setProduct(product),
		o.setPlacedAt(placedAt),
		o.setAddresses(addresses),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// PlacedAt returns when the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Product returns the product descriptor.
func (o *Order) Product() Product {
	return o.product
}

// CustomerAddress returns the delivery address.
func (o *Order) CustomerAddress() kernel.Address {
	return o.customerAddress
}

// WarehouseAddress returns the address the order ships from.
func (o *Order) WarehouseAddress() kernel.Address {
	return o.warehouseAddress
}

// SellerAddress returns the seller's address.
func (o *Order) SellerAddress() kernel.Address {
	return o.sellerAddress
}

// AdvanceTo moves the order to next, which must be the immediate successor of the
// current status. On failure the order is left untouched.
func (o *Order) AdvanceTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		var transitionErr *errs.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			return errs.NewInvalidTransitionError("order", o.id, transitionErr.From, transitionErr.To)
		}
		return err
	}

	o.status = newStatus
	return nil
}

// Ship moves an Open order to Shipped.
func (o *Order) Ship() error {
	return o.AdvanceTo(Shipped)
}

// Deliver moves a Shipped order to Delivered.
func (o *Order) Deliver() error {
	return o.AdvanceTo(Delivered)
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (o *Order) setID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = trimmed
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setProduct(product Product) error {
	if product.Name() == "" || product.Quantity() < 1 {
		return errs.NewValueIsRequiredError("product")
	}
	o.product = product
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setAddresses(addresses Addresses) error {
	if err := errors.Join(
		addresses.Customer.Validate(),
		addresses.Warehouse.Validate(),
		addresses.Seller.Validate(),
	); err != nil {
		return err
	}
	o.customerAddress = addresses.Customer
	o.warehouseAddress = addresses.Warehouse
	o.sellerAddress = addresses.Seller
	return nil
}
