package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/memory"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/keylock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	placedAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	now      = placedAt.Add(26 * time.Hour)
)

func clock() time.Time { return now }

func orderRecord(id string) order.Record {
	return order.Record{
		ID:       id,
		PlacedAt: placedAt,
		Product: order.ProductRecord{
			Name:       "Espresso machine",
			Dimensions: "40 x 30 x 35 cm",
			Weight:     "9.5 kg",
			Quantity:   1,
		},
		CustomerAddress:  "12 Harbour Road, Cork",
		WarehouseAddress: "Unit 7, Dublin Port",
		SellerAddress:    "Kaffeehaus GmbH, Berlin",
	}
}

func seedCommand(t *testing.T, id string) commands.SeedOrderCommand {
	t.Helper()
	cmd, err := commands.NewSeedOrderCommand(orderRecord(id))
	require.NoError(t, err)
	return cmd
}

func advanceCommand(t *testing.T, id, status, carrierName string) commands.AdvanceOrderCommand {
	t.Helper()
	cmd, err := commands.NewAdvanceOrderCommand(id, status, carrierName)
	require.NoError(t, err)
	return cmd
}

func newSeeder() services.Seeder {
	return services.NewSeeder(carrier.NewCatalog(""), services.NewTrackingNumberIssuer(), "")
}

func newPropagator() services.LifecyclePropagator {
	return services.NewLifecyclePropagator(carrier.NewCatalog(""), services.NewTrackingNumberIssuer(), "")
}

// storeFactory adapts the in-memory store to the handlers' factory interface.
type storeFactory struct{ store *memory.Store }

func (f storeFactory) Create() commands.UoW { return f.store.Create() }

// engine wires both handlers to one store and one key lock.
type engine struct {
	store     *memory.Store
	seed      commands.SeedOrderCommandHandler
	advance   commands.AdvanceOrderCommandHandler
	publisher *MockPublisher
}

func newEngine(t *testing.T) engine {
	t.Helper()
	store := memory.NewStore()
	locks := keylock.New()
	publisher := new(MockPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil).Maybe()

	return engine{
		store:     store,
		seed:      commands.NewSeedOrderCommandHandler(storeFactory{store}, locks, newSeeder(), commands.WithPublisher(publisher)),
		advance:   commands.NewAdvanceOrderCommandHandler(storeFactory{store}, locks, newPropagator(), commands.WithClock(clock), commands.WithPublisher(publisher)),
		publisher: publisher,
	}
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Put(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Put(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id string) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) GetByOrder(ctx context.Context, orderID string) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*shipment.Shipment)
	return s, args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Put(ctx context.Context, d *document.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*document.Document)
	return d, args.Error(1)
}

func (m *MockDocumentRepository) ListByOrder(ctx context.Context, orderID string) ([]*document.Document, error) {
	args := m.Called(ctx, orderID)
	d, _ := args.Get(0).([]*document.Document)
	return d, args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context) ([]*document.Document, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*document.Document)
	return d, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) Export(ctx context.Context) (ports.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Snapshot), args.Error(1)
}

func (m *MockSnapshotStore) Import(ctx context.Context, snapshot ports.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockSnapshotArchive struct{ mock.Mock }

func (m *MockSnapshotArchive) Save(ctx context.Context, snapshot ports.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotArchive) Load(ctx context.Context) (ports.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Snapshot), args.Error(1)
}

func mockSnapshotWithOrders(n int) any {
	return mock.MatchedBy(func(s ports.Snapshot) bool {
		return len(s.Orders) == n && len(s.Shipments) == n && len(s.Documents) == 3*n
	})
}
