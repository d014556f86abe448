package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var placedAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// SnapshotArchiveIntegrationTestSuite runs the GORM snapshot archive against a real
// PostgreSQL database.
type SnapshotArchiveIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	archive   ports.SnapshotArchive
}

// SetupSuite starts PostgreSQL and migrates the archive tables.
func (suite *SnapshotArchiveIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.archive = postgres_adapter.NewGormSnapshotArchive(db)
}

// SetupTest truncates the archive tables before each test.
func (suite *SnapshotArchiveIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, shipments, documents").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *SnapshotArchiveIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SnapshotArchiveIntegrationTestSuite) newOrder(id string) *order.Order {
	customer, err := kernel.NewAddress("customer address", "12 Harbour Road, Cork")
	suite.Require().NoError(err)
	warehouse, err := kernel.NewAddress("warehouse address", "Unit 7, Dublin Port")
	suite.Require().NoError(err)
	seller, err := kernel.NewAddress("seller address", "Kaffeehaus GmbH, Berlin")
	suite.Require().NoError(err)
	product, err := order.NewProduct("Espresso machine", "40 x 30 x 35 cm", "9.5 kg", 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(id, placedAt, product, order.Addresses{Customer: customer, Warehouse: warehouse, Seller: seller})
	suite.Require().NoError(err)
	return o
}

// snapshotOf seeds each order and ships the ones listed in shipped.
func (suite *SnapshotArchiveIntegrationTestSuite) snapshotOf(ids []string, shipped map[string]string) ports.Snapshot {
	catalog := carrier.NewCatalog("")
	issuer := services.NewTrackingNumberIssuer()
	seeder := services.NewSeeder(catalog, issuer, "https://docs.example.com")
	propagator := services.NewLifecyclePropagator(catalog, issuer, "https://docs.example.com")

	snapshot := ports.NewSnapshot()
	for _, id := range ids {
		o := suite.newOrder(id)
		s, docs, err := seeder.Seed(o)
		suite.Require().NoError(err)

		if carrierName, ok := shipped[id]; ok {
			transition, err := propagator.Propagate(o, s, docs, order.Shipped, carrierName, placedAt.Add(26*time.Hour))
			suite.Require().NoError(err)
			suite.Require().NotNil(transition.Label)
			docs = append(docs, transition.Label)
		}

		snapshot.Orders[o.ID()] = o.Record()
		snapshot.Shipments[s.ID()] = s.Record()
		for _, d := range docs {
			snapshot.Documents[d.ID()] = d.Record()
		}
	}
	return snapshot
}

// TestLoad_EmptyArchive verifies an empty archive loads as an empty snapshot.
func (suite *SnapshotArchiveIntegrationTestSuite) TestLoad_EmptyArchive() {
	snapshot, err := suite.archive.Load(context.Background())

	suite.Require().NoError(err)
	suite.True(snapshot.IsEmpty())
	suite.NotNil(snapshot.Orders)
	suite.NotNil(snapshot.Shipments)
	suite.NotNil(snapshot.Documents)
}

// TestSaveLoad_RoundTrip verifies every field survives the archive, including the
// tracking history and the label's carrier.
func (suite *SnapshotArchiveIntegrationTestSuite) TestSaveLoad_RoundTrip() {
	ctx := context.Background()
	want := suite.snapshotOf([]string{"ORD-1001", "ORD-1002"}, map[string]string{"ORD-1002": "FedEx"})

	suite.Require().NoError(suite.archive.Save(ctx, want))
	got, err := suite.archive.Load(ctx)

	suite.Require().NoError(err)
	suite.Equal(want, got)
	suite.Len(got.Orders, 2)
	suite.Len(got.Shipments, 2)
	suite.Len(got.Documents, 7)
}

// TestSave_ReplacesPreviousSnapshot verifies Save does not merge with older rows.
func (suite *SnapshotArchiveIntegrationTestSuite) TestSave_ReplacesPreviousSnapshot() {
	ctx := context.Background()
	suite.Require().NoError(suite.archive.Save(ctx, suite.snapshotOf([]string{"ORD-1", "ORD-2"}, nil)))

	latest := suite.snapshotOf([]string{"ORD-3"}, nil)
	suite.Require().NoError(suite.archive.Save(ctx, latest))

	got, err := suite.archive.Load(ctx)
	suite.Require().NoError(err)
	suite.Equal(latest, got)
}

// TestSave_EmptySnapshotClearsArchive verifies an empty snapshot wipes the archive.
func (suite *SnapshotArchiveIntegrationTestSuite) TestSave_EmptySnapshotClearsArchive() {
	ctx := context.Background()
	suite.Require().NoError(suite.archive.Save(ctx, suite.snapshotOf([]string{"ORD-1"}, nil)))

	suite.Require().NoError(suite.archive.Save(ctx, ports.NewSnapshot()))

	got, err := suite.archive.Load(ctx)
	suite.Require().NoError(err)
	suite.True(got.IsEmpty())
}

// TestSave_FailureKeepsPreviousSnapshot verifies a failed Save rolls back entirely.
func (suite *SnapshotArchiveIntegrationTestSuite) TestSave_FailureKeepsPreviousSnapshot() {
	ctx := context.Background()
	previous := suite.snapshotOf([]string{"ORD-1"}, nil)
	suite.Require().NoError(suite.archive.Save(ctx, previous))

	broken := suite.snapshotOf([]string{"ORD-2", "ORD-3"}, nil)
	// Two shipments for one order violate the unique order index.
	for id, rec := range broken.Shipments {
		rec.OrderID = "ORD-2"
		broken.Shipments[id] = rec
	}
	suite.Error(suite.archive.Save(ctx, broken))

	got, err := suite.archive.Load(ctx)
	suite.Require().NoError(err)
	suite.Equal(previous, got)
}

// TestSave_CancelledContext verifies nothing is written once the context is done.
func (suite *SnapshotArchiveIntegrationTestSuite) TestSave_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.Error(suite.archive.Save(ctx, suite.snapshotOf([]string{"ORD-1"}, nil)))

	got, err := suite.archive.Load(context.Background())
	suite.Require().NoError(err)
	suite.True(got.IsEmpty())
}

func TestSnapshotArchiveIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SnapshotArchiveIntegrationTestSuite))
}
