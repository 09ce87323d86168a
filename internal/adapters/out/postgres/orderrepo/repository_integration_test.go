package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-000001-AAAAAA")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsOrderNumberTaken() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-424242-DUPNUM")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same order number, different order and user
	second := suite.createTestOrder("ORD-424242-DUPNUM")

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrOrderNumberTaken)

	// Only the first order made it in
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder("ORD-100200-ROUND1")
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.OrderNumber(), retrievedOrder.OrderNumber())
	suite.Equal(originalOrder.UserID(), retrievedOrder.UserID())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.True(originalOrder.Totals().Subtotal.IsEqual(retrievedOrder.Totals().Subtotal))
	suite.True(originalOrder.Totals().TaxAmount.IsEqual(retrievedOrder.Totals().TaxAmount))
	suite.True(originalOrder.Totals().TotalAmount.IsEqual(retrievedOrder.Totals().TotalAmount))
	suite.Equal(originalOrder.Billing(), retrievedOrder.Billing())
	suite.Equal(originalOrder.Shipping(), retrievedOrder.Shipping())
	suite.Equal(payment.BrandVisa, retrievedOrder.Card().Brand)
	suite.Equal("1111", retrievedOrder.Card().LastFour)
	suite.Nil(retrievedOrder.ProcessedAt())
	suite.Nil(retrievedOrder.ShippedAt())
	suite.Nil(retrievedOrder.DeliveredAt())

	suite.Require().Len(retrievedOrder.Items(), 1)
	item := retrievedOrder.Items()[0]
	suite.Equal("Toyota", item.VehicleBrand())
	suite.Equal("Corolla", item.VehicleModel())
	suite.Equal(2024, item.VehicleYear())
	suite.Equal(2, item.Quantity())
	suite.Equal("25000.00", item.UnitPrice().String())
	suite.Equal("50000.00", item.TotalPrice().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions_PersistTimestampsAndNotes() {
	testCases := []struct {
		name      string
		newStatus order.Status
		notes     string
		verify    func(*order.Order)
	}{
		{
			name:      "pending to processing stamps processed_at",
			newStatus: order.Processing,
			verify: func(o *order.Order) {
				suite.Equal(order.Processing, o.Status())
				suite.NotNil(o.ProcessedAt())
				suite.Nil(o.ShippedAt())
			},
		},
		{
			name:      "pending to shipped stamps shipped_at",
			newStatus: order.Shipped,
			notes:     "expedited by support",
			verify: func(o *order.Order) {
				suite.Equal(order.Shipped, o.Status())
				suite.NotNil(o.ShippedAt())
				suite.Equal("expedited by support", o.AdminNotes())
			},
		},
		{
			name:      "pending to cancelled leaves timestamps empty",
			newStatus: order.Cancelled,
			verify: func(o *order.Order) {
				suite.Equal(order.Cancelled, o.Status())
				suite.Nil(o.ProcessedAt())
				suite.Nil(o.ShippedAt())
				suite.Nil(o.DeliveredAt())
			},
		},
	}

	ctx := context.Background()
	for i, tc := range testCases {
		suite.Run(tc.name, func() {
			testOrder := suite.createTestOrder(suite.orderNumber(i))
			suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
			suite.Require().NoError(suite.repository.Add(ctx, testOrder))

			suite.Require().NoError(testOrder.ChangeStatus(tc.newStatus, time.Now()))
			testOrder.AttachAdminNotes(tc.notes)

			suite.Require().NoError(suite.repository.Update(ctx, testOrder))

			retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
			suite.Require().NoError(err)
			tc.verify(retrievedOrder)

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder("ORD-999999-GHOSTS")

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestOrderNumberExists() {
	ctx := context.Background()

	exists, err := suite.repository.OrderNumberExists(ctx, "ORD-777777-EXISTS")
	suite.Require().NoError(err)
	suite.False(exists)

	testOrder := suite.createTestOrder("ORD-777777-EXISTS")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	exists, err = suite.repository.OrderNumberExists(ctx, "ORD-777777-EXISTS")
	suite.Require().NoError(err)
	suite.True(exists)

	suite.tracker.AssertExpectations(suite.T())
}

// orderNumber builds a distinct order number per subtest index.
func (suite *OrderRepositoryIntegrationTestSuite) orderNumber(i int) string {
	return "ORD-55500" + string(rune('0'+i)) + "-STATUS"
}

// createTestOrder creates a pending order with one Corolla line and HST totals.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderNumber string) *order.Order {
	unitPrice, err := kernel.NewMoneyFromString("25000.00")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Toyota", "Corolla", 2024, 2, unitPrice)
	suite.Require().NoError(err)

	subtotal, err := kernel.NewMoneyFromString("50000.00")
	suite.Require().NoError(err)
	tax, err := kernel.NewMoneyFromString("6500.00")
	suite.Require().NoError(err)
	total, err := kernel.NewMoneyFromString("56500.00")
	suite.Require().NoError(err)

	address := order.Address{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "dana@example.com",
		Phone:     "416-555-0193",
		Street:    "12 Queen St W",
		City:      "Toronto",
		Province:  "ON",
		Country:   "Canada",
		Zip:       "M5H 2M9",
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		kernel.NewUUID(),
		[]order.Item{item},
		order.Totals{Subtotal: subtotal, TaxAmount: tax, TotalAmount: total},
		address, address,
		order.CardSummary{Brand: payment.BrandVisa, LastFour: "1111"},
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
