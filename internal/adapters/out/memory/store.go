// Package memory provides the in-process snapshot store: orders, shipments and
// documents held in memory behind a single read/write lock, with a staged unit of
// work on top.
//
// Readers take the read lock and never observe half of a commit. Writers stage
// their changes in a UnitOfWork; Commit applies them all under one write lock.
// Entities are cloned on the way in and on the way out.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.SnapshotStore = (*Store)(nil)

// LifecycleValidator checks one order together with its shipment and documents.
type LifecycleValidator func(o *order.Order, s *shipment.Shipment, docs []*document.Document) error

// Option configures a Store.
type Option func(*Store)

// WithLifecycleValidator makes Import run v on every imported order.
func WithLifecycleValidator(v LifecycleValidator) Option {
	return func(s *Store) {
		s.validate = v
	}
}

// Store holds the current state of every order, shipment and document.
type Store struct {
	mu        sync.RWMutex
	orders    *table[*order.Order]
	shipments *table[*shipment.Shipment]
	documents *table[*document.Document]

	validate LifecycleValidator
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		orders:    newTable[*order.Order](),
		shipments: newTable[*shipment.Shipment](),
		documents: newDocumentTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newDocumentTable returns a document table indexed by order id.
func newDocumentTable() *table[*document.Document] {
	return newGroupedTable((*document.Document).OrderID)
}

// Create returns a new unit of work bound to the store.
func (s *Store) Create() ports.UnitOfWork {
	return newUnitOfWork(s)
}

// OrderRepository returns a repository that reads and writes the store directly.
func (s *Store) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: newUnitOfWork(s)}
}

// ShipmentRepository returns a repository that reads and writes the store directly.
func (s *Store) ShipmentRepository() ports.ShipmentRepository {
	return shipmentRepository{uow: newUnitOfWork(s)}
}

// DocumentRepository returns a repository that reads and writes the store directly.
func (s *Store) DocumentRepository() ports.DocumentRepository {
	return documentRepository{uow: newUnitOfWork(s)}
}

// Export returns a consistent copy of the whole store.
func (s *Store) Export(ctx context.Context) (ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return ports.Snapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := ports.NewSnapshot()
	for id, o := range s.orders.rows {
		snap.Orders[id] = o.Record()
	}
	for id, sh := range s.shipments.rows {
		snap.Shipments[id] = sh.Record()
	}
	for id, d := range s.documents.rows {
		snap.Documents[id] = d.Record()
	}
	return snap, nil
}

// Import replaces the store content with snapshot. All records are validated
// before anything is replaced; entities are inserted in ascending id order.
//
// The snapshot must hold whole lifecycles: every order has its shipment and no
// shipment or document belongs to a missing order. With a LifecycleValidator every
// order is also checked against its shipment and documents. Any violation rejects
// the whole snapshot with errs.ErrValueIsInvalid.
func (s *Store) Import(ctx context.Context, snapshot ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	orders, err := rehydrate(newTable[*order.Order](), snapshot.Orders, order.FromRecord, (*order.Order).ID)
	if err != nil {
		return fmt.Errorf("import orders: %w", err)
	}
	shipments, err := rehydrate(newTable[*shipment.Shipment](), snapshot.Shipments, shipment.FromRecord, (*shipment.Shipment).ID)
	if err != nil {
		return fmt.Errorf("import shipments: %w", err)
	}
	documents, err := rehydrate(newDocumentTable(), snapshot.Documents, document.FromRecord, (*document.Document).ID)
	if err != nil {
		return fmt.Errorf("import documents: %w", err)
	}
	if err := s.checkLifecycles(orders, shipments, documents); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.shipments = shipments
	s.documents = documents
	return nil
}

// ReplaceOrders replaces every stored order with the given ones. Keys must match
// the order ids.
func (s *Store) ReplaceOrders(ctx context.Context, orders map[string]*order.Order) error {
	t, err := replacement(ctx, newTable[*order.Order](), orders, (*order.Order).ID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = t
	return nil
}

// ReplaceShipments replaces every stored shipment with the given ones.
func (s *Store) ReplaceShipments(ctx context.Context, shipments map[string]*shipment.Shipment) error {
	t, err := replacement(ctx, newTable[*shipment.Shipment](), shipments, (*shipment.Shipment).ID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments = t
	return nil
}

// ReplaceDocuments replaces every stored document with the given ones.
func (s *Store) ReplaceDocuments(ctx context.Context, documents map[string]*document.Document) error {
	t, err := replacement(ctx, newDocumentTable(), documents, (*document.Document).ID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = t
	return nil
}

func rehydrate[R any, T cloner[T]](t *table[T], records map[string]R, fromRecord func(R) (T, error), idOf func(T) string) (*table[T], error) {
	entities := make(map[string]T, len(records))
	for key, r := range records {
		e, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", key, err)
		}
		entities[key] = e
	}
	return replacement(context.Background(), t, entities, idOf)
}

// replacement fills the empty table t with entities in ascending key order.
func replacement[T cloner[T]](ctx context.Context, t *table[T], entities map[string]T, idOf func(T) string) (*table[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, key := range slices.Sorted(maps.Keys(entities)) {
		e := entities[key]
		if id := idOf(e); id != key {
			return nil, errs.NewValueIsInvalidErrorWithCause("snapshot key",
				fmt.Errorf("key %q holds entity %q", key, id))
		}
		t.put(key, e)
	}
	return t, nil
}

func (s *Store) checkLifecycles(
	orders *table[*order.Order],
	shipments *table[*shipment.Shipment],
	documents *table[*document.Document],
) error {
	var problems []error
	for _, id := range orders.ids {
		sh, ok := shipments.rows[kernel.ShipmentID(id)]
		if !ok {
			problems = append(problems, fmt.Errorf("order %s has no shipment", id))
			continue
		}
		if s.validate == nil {
			continue
		}
		if err := s.validate(orders.rows[id], sh, documents.listGroup(id)); err != nil {
			problems = append(problems, fmt.Errorf("order %s: %w", id, err))
		}
	}
	for _, id := range shipments.ids {
		if orderID := shipments.rows[id].OrderID(); !orders.has(orderID) {
			problems = append(problems, fmt.Errorf("shipment %s belongs to unknown order %s", id, orderID))
		}
	}
	for _, orderID := range slices.Sorted(maps.Keys(documents.groups)) {
		if !orders.has(orderID) {
			problems = append(problems, fmt.Errorf("documents %v belong to unknown order %s", documents.groups[orderID], orderID))
		}
	}

	if len(problems) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("snapshot", errors.Join(problems...))
	}
	return nil
}
