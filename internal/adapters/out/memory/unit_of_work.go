package memory

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork stages writes against a Store. Its repositories read their own staged
// writes first and fall back to the store. Outside Begin/Commit the repositories
// work on the store directly.
//
// A UnitOfWork is not safe for concurrent use; create one per operation.
//
// Example:
//
//	uow := store.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.ShipmentRepository().Put(ctx, s); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store  *Store
	active bool

	orders    *table[*order.Order]
	shipments *table[*shipment.Shipment]
	documents *table[*document.Document]
	inserted  map[string]struct{}
}

func newUnitOfWork(store *Store) *UnitOfWork {
	uow := &UnitOfWork{store: store}
	uow.reset()
	return uow
}

// Begin starts staging. Calling Begin on an active unit of work is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.active {
		return nil
	}
	u.reset()
	u.active = true
	return nil
}

// Commit applies every staged write under one write lock of the store. If an order
// staged with Add already exists in the store, nothing is applied.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range u.inserted {
		if s.orders.has(id) {
			return errs.NewObjectAlreadyExistsError("order", id)
		}
	}

	for _, id := range u.orders.ids {
		s.orders.put(id, u.orders.rows[id])
	}
	for _, id := range u.shipments.ids {
		s.shipments.put(id, u.shipments.rows[id])
	}
	for _, id := range u.documents.ids {
		s.documents.put(id, u.documents.rows[id])
	}

	u.active = false
	u.reset()
	return nil
}

// Rollback discards every staged write.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	u.reset()
	return nil
}

// OrderRepository returns an OrderRepository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: u}
}

// ShipmentRepository returns a ShipmentRepository bound to this unit of work.
func (u *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentRepository{uow: u}
}

// DocumentRepository returns a DocumentRepository bound to this unit of work.
func (u *UnitOfWork) DocumentRepository() ports.DocumentRepository {
	return documentRepository{uow: u}
}

func (u *UnitOfWork) reset() {
	u.orders = newTable[*order.Order]()
	u.shipments = newTable[*shipment.Shipment]()
	u.documents = newDocumentTable()
	u.inserted = make(map[string]struct{})
}

// lookup reads id from the staged table first and from the store otherwise.
func lookup[T cloner[T]](u *UnitOfWork, staged, stored func() *table[T], id string) (T, bool) {
	if u.active {
		if v, ok := staged().get(id); ok {
			return v, true
		}
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	return stored().get(id)
}

// listAll returns the store rows with the staged ones laid over them.
func listAll[T cloner[T]](u *UnitOfWork, staged, stored func() *table[T]) []T {
	u.store.mu.RLock()
	t := stored()
	base, ids := t.list(), append([]string(nil), t.ids...)
	u.store.mu.RUnlock()

	if !u.active {
		return base
	}
	return merge(base, ids, staged(), staged().ids)
}

// listByGroup returns the store rows of group key with the staged rows of the same
// group laid over them. Both tables must be grouped.
func listByGroup[T cloner[T]](u *UnitOfWork, staged, stored func() *table[T], key string) []T {
	u.store.mu.RLock()
	t := stored()
	base, ids := t.listGroup(key), t.groupIDs(key)
	u.store.mu.RUnlock()

	if !u.active {
		return base
	}
	return merge(base, ids, staged(), staged().groupIDs(key))
}

// write stages v, or writes it to the store directly outside a transaction.
func write[T cloner[T]](u *UnitOfWork, staged, stored func() *table[T], id string, v T) {
	if u.active {
		staged().put(id, v)
		return
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	stored().put(id, v)
}
