package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"commerce/internal/adapters/out/postgres/paymentrepo"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/payment"

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

// PaymentRepositoryIntegrationTestSuite provides integration tests for the
// append-only payment ledger using PostgreSQL containers.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAddGetAllForOrder_CaptureAndRefunds_PreservesAppendOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	capture, err := payment.NewCapture(kernel.NewUUID(), orderID, order.MethodOnline, suite.money("250"))
	suite.Require().NoError(err)
	firstRefund, err := payment.NewRefund(kernel.NewUUID(), orderID, order.MethodOnline, suite.money("100"), "damaged item")
	suite.Require().NoError(err)
	secondRefund, err := payment.NewRefund(kernel.NewUUID(), orderID, order.MethodOnline, suite.money("150"), "order cancelled")
	suite.Require().NoError(err)

	for _, entry := range []*payment.Payment{capture, firstRefund, secondRefund} {
		suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()
		suite.Require().NoError(suite.repository.Add(ctx, entry))
	}

	entries, err := suite.repository.GetAllForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	suite.Equal(payment.EntryReceived, entries[0].Status())
	suite.True(suite.money("250").Amount().Equal(entries[0].Amount()))

	suite.Equal(payment.EntryRefunded, entries[1].Status())
	suite.True(suite.money("100").IsEqual(entries[1].RefundAmount()))
	suite.Equal("damaged item", entries[1].RefundReason())

	suite.Equal(payment.EntryRefunded, entries[2].Status())
	suite.True(suite.money("150").IsEqual(entries[2].RefundAmount()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllForOrder_FiltersByOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	otherOrderID := kernel.NewUUID()

	mine, err := payment.NewCapture(kernel.NewUUID(), orderID, order.MethodCOD, suite.money("250"))
	suite.Require().NoError(err)
	other, err := payment.NewCapture(kernel.NewUUID(), otherOrderID, order.MethodOnline, suite.money("400"))
	suite.Require().NoError(err)

	for _, entry := range []*payment.Payment{mine, other} {
		suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()
		suite.Require().NoError(suite.repository.Add(ctx, entry))
	}

	entries, err := suite.repository.GetAllForOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(mine.ID().IsEqual(entries[0].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllForOrder_NoEntries_ReturnsEmpty() {
	entries, err := suite.repository.GetAllForOrder(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *PaymentRepositoryIntegrationTestSuite) money(value string) kernel.Money {
	m, err := kernel.NewMoneyFromString(value)
	suite.Require().NoError(err)
	return m
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
