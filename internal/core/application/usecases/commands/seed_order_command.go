package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSeedOrderCommandIsNotConstructed = errors.New(
	"SeedOrderCommand must be created via NewSeedOrderCommand constructor",
)

// SeedOrderCommand represents a request to register a newly placed order and derive
// its shipment and documents.
//
// Example:
//
//	cmd, err := NewSeedOrderCommand(order.Record{
//	    ID:       "O1",
//	    PlacedAt: time.Now(),
//	    Product:  order.ProductRecord{Name: "Espresso machine", Dimensions: "40 x 30 x 35 cm", Weight: "9.5 kg", Quantity: 1},
//	    CustomerAddress:  "12 Harbour Road, Cork",
//	    WarehouseAddress: "Unit 7, Dublin Port",
//	    SellerAddress:    "Kaffeehaus GmbH, Berlin",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type SeedOrderCommand struct {
	order *order.Order

	guard guard.ConstructorGuard
}

// NewSeedOrderCommand validates the order record. The record status may be empty
// and is read as OPEN.
func NewSeedOrderCommand(record order.Record) (SeedOrderCommand, error) {
	o, err := order.FromRecord(record)
	if err != nil {
		return SeedOrderCommand{}, err
	}

	return SeedOrderCommand{
		order: o,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedOrderCommand) Validate() error {
	return c.guard.Validate(ErrSeedOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to seed.
func (c SeedOrderCommand) OrderID() string {
	return c.order.ID()
}

// Order returns a copy of the order to seed.
func (c SeedOrderCommand) Order() *order.Order {
	return c.order.Clone()
}
