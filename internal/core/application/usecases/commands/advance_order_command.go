package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand requests moving an order to its next status.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand("O1", "SHIPPED", "DHL Express")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type AdvanceOrderCommand struct {
	orderID string
	status  order.Status
	carrier string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand validates the order id and parses the target status.
// carrier may be empty, in which case the default carrier is used on dispatch.
func NewAdvanceOrderCommand(orderID, status, carrier string) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		carrier: strings.TrimSpace(carrier),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() string { return c.orderID }

func (c AdvanceOrderCommand) Status() order.Status { return c.status }

func (c AdvanceOrderCommand) Carrier() string { return c.carrier }

func (c *AdvanceOrderCommand) setOrderID(orderID string) error {
	trimmed := strings.TrimSpace(orderID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = trimmed
	return nil
}

func (c *AdvanceOrderCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("target status")
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
