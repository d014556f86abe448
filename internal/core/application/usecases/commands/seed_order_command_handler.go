package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// SeedOrderCommandHandler registers a placed order together with its derived
// shipment and documents.
//
// Example:
//
//	handler := NewSeedOrderCommandHandler(uowFactory, locks, seeder, WithPublisher(publisher))
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    // order was seeded before
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is not OPEN
//	}
type SeedOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      KeyLocker
	seeder     services.Seeder
	options    handlerOptions
}

// NewSeedOrderCommandHandler creates a handler for order seeding. locks must be
// shared with every other handler that writes orders.
func NewSeedOrderCommandHandler(
	uowFactory UoWFactory,
	locks KeyLocker,
	seeder services.Seeder,
	opts ...Option,
) SeedOrderCommandHandler {
	return SeedOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		seeder:     seeder,
		options:    newHandlerOptions("seed-order-handler", opts),
	}
}

// Handle derives the shipment and the three seed documents and writes them with
// the order in one transaction. Nothing is written if the order id already exists.
func (h SeedOrderCommandHandler) Handle(ctx context.Context, cmd SeedOrderCommand) (OrderLifecycle, error) {
	if err := cmd.Validate(); err != nil {
		return OrderLifecycle{}, err
	}

	unlock := h.locks.Lock(cmd.OrderID())
	defer unlock()

	o := cmd.Order()
	s, docs, err := h.seeder.Seed(o)
	if err != nil {
		return OrderLifecycle{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OrderLifecycle{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return OrderLifecycle{}, err
	}

	if err = uow.ShipmentRepository().Put(ctx, s); err != nil {
		return OrderLifecycle{}, err
	}

	documentRepo := uow.DocumentRepository()
	for _, d := range docs {
		if err = documentRepo.Put(ctx, d); err != nil {
			return OrderLifecycle{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderLifecycle{}, err
	}

	h.options.logger.InfoContext(ctx, "order seeded",
		"order_id", o.ID(), "shipment_id", s.ID(), "documents", len(docs))
	h.options.publish(ctx, ports.OrderStatusChanged{
		OrderID:        o.ID(),
		To:             o.Status().String(),
		Carrier:        s.Carrier(),
		TrackingNumber: s.TrackingNumber(),
		OccurredAt:     o.PlacedAt(),
	})

	return newOrderLifecycle(o, s, docs), nil
}
