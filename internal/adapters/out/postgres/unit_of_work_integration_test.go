package postgres_test

import (
	"context"
	"testing"
	"time"

	"dealership/internal/adapters/out/postgres"
	"dealership/internal/adapters/out/postgres/cartrepo"
	"dealership/internal/adapters/out/postgres/orderrepo"
	"dealership/internal/adapters/out/postgres/vehiclerepo"
	"dealership/internal/core/domain/model/cart"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/order"
	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/domain/model/vehicle"
	"dealership/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that a unit of work makes the
// checkout writes (order insert, stock decrement, cart clear) atomic.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&vehiclerepo.VehicleDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, vehicles, carts, cart_items").Error,
	)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAllWrites() {
	ctx := context.Background()

	testVehicle := suite.seedVehicle(3)
	testCart := suite.seedCart(testVehicle.ID(), 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.VehicleRepository().ReserveStock(ctx, testVehicle.ID(), 2))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.buildOrder(testCart.UserID(), testVehicle)))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, testCart.ID()))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertQuantity(testVehicle.ID(), 1)
	suite.assertCount(&cartrepo.CartItemDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	testVehicle := suite.seedVehicle(3)
	testCart := suite.seedCart(testVehicle.ID(), 2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.VehicleRepository().ReserveStock(ctx, testVehicle.ID(), 2))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.buildOrder(testCart.UserID(), testVehicle)))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, testCart.ID()))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertQuantity(testVehicle.ID(), 3)
	suite.assertCount(&cartrepo.CartItemDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesOutsideTransaction_UseMainConnection() {
	ctx := context.Background()

	testVehicle := suite.seedVehicle(2)

	// No Begin: repository calls go straight to the pool and auto-commit.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.VehicleRepository().ReserveStock(ctx, testVehicle.ID(), 1))

	suite.assertQuantity(testVehicle.ID(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedVehicle(quantity int) *vehicle.Vehicle {
	price, err := kernel.NewMoneyFromString("42000.00")
	suite.Require().NoError(err)

	testVehicle, err := vehicle.NewVehicle(kernel.NewUUID(), "Toyota", "RAV4", 2024, price, quantity)
	suite.Require().NoError(err)

	repo := vehiclerepo.NewGormVehicleRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), testVehicle))
	return testVehicle
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCart(vehicleID kernel.UUID, quantity int) *cart.Cart {
	testCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), []cart.Item{
		{VehicleID: vehicleID, Quantity: quantity},
	})
	suite.Require().NoError(err)

	repo := cartrepo.NewGormCartRepository(suite.db)
	suite.Require().NoError(repo.Add(context.Background(), testCart))
	return testCart
}

func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(userID kernel.UUID, v *vehicle.Vehicle) *order.Order {
	item, err := order.NewItem(v.ID(), v.Brand(), v.Model(), v.Year(), 2, v.Price())
	suite.Require().NoError(err)

	subtotal := item.TotalPrice().Round2()
	tax, err := kernel.NewMoneyFromString("10920.00")
	suite.Require().NoError(err)

	address := order.Address{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "dana@example.com",
		Street:    "12 Queen St W",
		City:      "Toronto",
	}

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-654321-UOWTST",
		userID,
		[]order.Item{item},
		order.Totals{Subtotal: subtotal, TaxAmount: tax, TotalAmount: subtotal.Add(tax)},
		address, address,
		order.CardSummary{Brand: payment.BrandVisa, LastFour: "1111"},
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertQuantity(id kernel.UUID, expected int) {
	var dto vehiclerepo.VehicleDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", id.Bytes()).Error)
	suite.Equal(expected, dto.Quantity)
}

var _ ports.UnitOfWork = (*postgres.GormUnitOfWork)(nil)

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
