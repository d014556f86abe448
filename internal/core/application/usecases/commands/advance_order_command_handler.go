package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AdvanceOrderResult is the outcome of an advance.
type AdvanceOrderResult struct {
	// Applied is false when the order already had the requested status and nothing
	// was written.
	Applied bool `json:"applied"`
	OrderLifecycle
	// Label is the label issued by this call.
	Label *document.Record `json:"label,omitempty"`
}

// AdvanceOrderCommandHandler moves an order to its next status and propagates the
// change to its shipment and documents in one transaction.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, locks, propagator, WithPublisher(publisher))
//	cmd, _ := NewAdvanceOrderCommand("O1", "SHIPPED", "DHL Express")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // not the next status
//	case err == nil && !result.Applied:
//	    // replay, state already current
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      KeyLocker
	propagator services.LifecyclePropagator
	options    handlerOptions
}

// NewAdvanceOrderCommandHandler creates a handler for order transitions. locks must
// be shared with every other handler that writes orders.
func NewAdvanceOrderCommandHandler(
	uowFactory UoWFactory,
	locks KeyLocker,
	propagator services.LifecyclePropagator,
	opts ...Option,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		propagator: propagator,
		options:    newHandlerOptions("advance-order-handler", opts),
	}
}

// Handle reads the order, its shipment and documents, propagates the transition and
// commits all changes at once. A replay of the current status commits nothing.
// The order's key lock is held for the whole sequence.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (AdvanceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderResult{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()
	documentRepo := uow.DocumentRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	s, err := shipmentRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return AdvanceOrderResult{}, errs.NewPartialCommitError(o.ID(), err)
	}

	docs, err := documentRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	at := h.options.now()
	transition, err := h.propagator.Propagate(o, s, docs, cmd.Status(), cmd.Carrier(), at)
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	if !transition.Applied {
		h.options.logger.InfoContext(ctx, "order already in requested status",
			"order_id", o.ID(), "status", o.Status().String())
		return AdvanceOrderResult{Applied: false, OrderLifecycle: newOrderLifecycle(o, s, docs)}, nil
	}

	if err = orderRepo.Put(ctx, o); err != nil {
		return AdvanceOrderResult{}, err
	}

	if err = shipmentRepo.Put(ctx, s); err != nil {
		return AdvanceOrderResult{}, err
	}

	result := AdvanceOrderResult{Applied: true}
	if transition.Label != nil {
		if err = documentRepo.Put(ctx, transition.Label); err != nil {
			return AdvanceOrderResult{}, err
		}
		docs = append(docs, transition.Label)
		label := transition.Label.Record()
		result.Label = &label
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	h.options.logger.InfoContext(ctx, "order advanced",
		"order_id", o.ID(), "from", transition.From.String(), "to", o.Status().String(),
		"carrier", s.Carrier(), "tracking_number", s.TrackingNumber())
	h.options.publish(ctx, ports.OrderStatusChanged{
		OrderID:        o.ID(),
		From:           transition.From.String(),
		To:             o.Status().String(),
		Carrier:        s.Carrier(),
		TrackingNumber: s.TrackingNumber(),
		OccurredAt:     at,
	})

	result.OrderLifecycle = newOrderLifecycle(o, s, docs)
	return result, nil
}
