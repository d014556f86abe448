package memory

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.LifecycleReader = (*Store)(nil)

// GetLifecycle returns one order with its shipment and documents under a single
// read lock.
func (s *Store) GetLifecycle(ctx context.Context, orderID string) (ports.OrderView, error) {
	if err := ctx.Err(); err != nil {
		return ports.OrderView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders.get(orderID)
	if !ok {
		return ports.OrderView{}, errs.NewObjectNotFoundError("order", orderID)
	}
	sh, _ := s.shipments.get(kernel.ShipmentID(o.ID()))
	return ports.OrderView{Order: o, Shipment: sh, Documents: s.documents.listGroup(o.ID())}, nil
}

// ListLifecycles returns every order with its shipment and documents under a single
// read lock.
func (s *Store) ListLifecycles(ctx context.Context) ([]ports.OrderView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]ports.OrderView, 0, s.orders.size())
	for _, o := range s.orders.list() {
		sh, _ := s.shipments.get(kernel.ShipmentID(o.ID()))
		views = append(views, ports.OrderView{Order: o, Shipment: sh, Documents: s.documents.listGroup(o.ID())})
	}
	return views, nil
}
