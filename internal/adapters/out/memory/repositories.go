package memory

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r orderRepository) staged() *table[*order.Order] { return r.uow.orders }
func (r orderRepository) stored() *table[*order.Order] { return r.uow.store.orders }

func (r orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, ok := lookup(r.uow, r.staged, r.stored, aggregate.ID()); ok {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
	}
	if !r.uow.active {
		// direct writes re-check under the write lock
		u := r.uow
		u.store.mu.Lock()
		defer u.store.mu.Unlock()
		if u.store.orders.has(aggregate.ID()) {
			return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
		}
		u.store.orders.put(aggregate.ID(), aggregate)
		return nil
	}

	r.uow.inserted[aggregate.ID()] = struct{}{}
	r.uow.orders.put(aggregate.ID(), aggregate)
	return nil
}

func (r orderRepository) Put(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	write(r.uow, r.staged, r.stored, aggregate.ID(), aggregate)
	return nil
}

func (r orderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o, ok := lookup(r.uow, r.staged, r.stored, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (r orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return listAll(r.uow, r.staged, r.stored), nil
}

type shipmentRepository struct {
	uow *UnitOfWork
}

func (r shipmentRepository) staged() *table[*shipment.Shipment] { return r.uow.shipments }
func (r shipmentRepository) stored() *table[*shipment.Shipment] { return r.uow.store.shipments }

func (r shipmentRepository) Put(ctx context.Context, s *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	write(r.uow, r.staged, r.stored, s.ID(), s)
	return nil
}

func (r shipmentRepository) Get(ctx context.Context, id string) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, ok := lookup(r.uow, r.staged, r.stored, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment", id)
	}
	return s, nil
}

func (r shipmentRepository) GetByOrder(ctx context.Context, orderID string) (*shipment.Shipment, error) {
	s, err := r.Get(ctx, kernel.ShipmentID(orderID))
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("shipment of order", orderID, err)
	}
	return s, nil
}

func (r shipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return listAll(r.uow, r.staged, r.stored), nil
}

type documentRepository struct {
	uow *UnitOfWork
}

func (r documentRepository) staged() *table[*document.Document] { return r.uow.documents }
func (r documentRepository) stored() *table[*document.Document] { return r.uow.store.documents }

func (r documentRepository) Put(ctx context.Context, d *document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	write(r.uow, r.staged, r.stored, d.ID(), d)
	return nil
}

func (r documentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, ok := lookup(r.uow, r.staged, r.stored, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("document", id)
	}
	return d, nil
}

func (r documentRepository) ListByOrder(ctx context.Context, orderID string) ([]*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return listByGroup(r.uow, r.staged, r.stored, orderID), nil
}

func (r documentRepository) List(ctx context.Context) ([]*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return listAll(r.uow, r.staged, r.stored), nil
}
