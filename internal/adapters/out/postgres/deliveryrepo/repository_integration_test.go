package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/deliveryrepo"
	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddGet_CODDelivery_RoundTrips() {
	ctx := context.Background()

	original := suite.createCODDelivery()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.True(original.OrderID().IsEqual(retrieved.OrderID()))
	suite.Equal(delivery.StatusPending, retrieved.Status())
	suite.True(retrieved.IsCOD())
	suite.True(suite.money("250").IsEqual(retrieved.CODAmount()))
	suite.False(retrieved.CODCollected())
	suite.Nil(retrieved.DeliveredAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondDeliveryForSameOrder_Fails() {
	ctx := context.Background()

	first := suite.createCODDelivery()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := delivery.NewDelivery(kernel.NewUUID(), first.OrderID(), false, kernel.ZeroMoney())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var writeErr *errs.RemoteWriteFailureError
	suite.Require().ErrorAs(err, &writeErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID_ExistingDelivery_Success() {
	ctx := context.Background()

	original := suite.createCODDelivery()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByOrderID(ctx, original.OrderID())
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(retrieved.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID_NoDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByOrderID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_ProgressionPersists() {
	ctx := context.Background()

	testDelivery := suite.createCODDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	suite.Require().NoError(testDelivery.AssignPartner("SwiftShip", "TRK-1001", "https://swiftship.example/t/TRK-1001"))
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	deliveredAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(testDelivery.ChangeStatus(delivery.StatusDelivered, deliveredAt))
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusDelivered, retrieved.Status())
	suite.Equal("SwiftShip", retrieved.PartnerName())
	suite.Equal("TRK-1001", retrieved.TrackingNumber())
	suite.Require().NotNil(retrieved.DeliveredAt())
	suite.True(deliveredAt.Equal(retrieved.DeliveredAt().UTC()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_CODCollectionPersists() {
	ctx := context.Background()

	testDelivery := suite.createCODDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	suite.Require().NoError(testDelivery.ChangeStatus(delivery.StatusDelivered, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	suite.Require().NoError(testDelivery.MarkCODCollected())
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.CODCollected())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistentDelivery_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.createCODDelivery()

	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) money(value string) kernel.Money {
	m, err := kernel.NewMoneyFromString(value)
	suite.Require().NoError(err)
	return m
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createCODDelivery() *delivery.Delivery {
	testDelivery, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), true, suite.money("250"))
	suite.Require().NoError(err)
	return testDelivery
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
