package queries_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/deliveryrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderFulfillmentQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetOrderFulfillmentQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryItemDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderFulfillmentQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, noopTracker{})
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, delivery_items, deliveries").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetOrderFulfillmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) TestHandle_NoDeliveries_AllLinesPending() {
	ctx := context.Background()

	aggregate := suite.addOrder(ctx)

	query, err := queries.NewGetOrderFulfillmentQuery(aggregate.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), response.OrderID)
	suite.Equal(order.Pending, response.Status)
	suite.True(response.TotalOrdered.IsEqual(suite.mustQuantity("12.5")))
	suite.True(response.TotalDelivered.IsZero())
	suite.Zero(response.PercentComplete)
	suite.Require().Len(response.Items, 2)

	for _, item := range response.Items {
		suite.True(item.Delivered.IsZero())
	}
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) TestHandle_PartialDeliveries_ComputesProgress() {
	ctx := context.Background()

	aggregate := suite.addOrder(ctx)

	// Two delivered deliveries and one still pending; the pending one must
	// not count toward progress.
	suite.addDelivery(ctx, aggregate.ID(), true, suite.line("Cement", "bags", "4"))
	suite.addDelivery(ctx, aggregate.ID(), true,
		suite.line("Cement", "bags", "3"),
		suite.line("Rebar 12mm", "tons", "2.5"),
	)
	suite.addDelivery(ctx, aggregate.ID(), false, suite.line("Cement", "bags", "3"))

	query, err := queries.NewGetOrderFulfillmentQuery(aggregate.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(order.Partial, response.Status)
	suite.True(response.TotalOrdered.IsEqual(suite.mustQuantity("12.5")))
	suite.True(response.TotalDelivered.IsEqual(suite.mustQuantity("9.5")))
	suite.InDelta(76.0, response.PercentComplete, 0.001)

	byProduct := make(map[string]queries.OrderFulfillmentItemResponse, len(response.Items))
	for _, item := range response.Items {
		byProduct[item.ProductName] = item
	}

	cement := byProduct["Cement"]
	suite.True(cement.Ordered.IsEqual(suite.mustQuantity("10")))
	suite.True(cement.Delivered.IsEqual(suite.mustQuantity("7")))

	rebar := byProduct["Rebar 12mm"]
	suite.True(rebar.Ordered.IsEqual(suite.mustQuantity("2.5")))
	suite.True(rebar.Delivered.IsEqual(suite.mustQuantity("2.5")))
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) TestHandle_OverDelivery_ReportsRawCapsTotals() {
	ctx := context.Background()

	aggregate := suite.addOrder(ctx)

	suite.addDelivery(ctx, aggregate.ID(), true,
		suite.line("Cement", "bags", "15"),
		suite.line("Rebar 12mm", "tons", "2.5"),
		suite.line("Sand", "bags", "5"), // no matching order line, ignored
	)

	query, err := queries.NewGetOrderFulfillmentQuery(aggregate.ID())
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(order.Completed, response.Status)
	suite.True(response.TotalDelivered.IsEqual(suite.mustQuantity("12.5")))
	suite.InDelta(100.0, response.PercentComplete, 0.001)
	suite.Require().Len(response.Items, 2)

	byProduct := make(map[string]queries.OrderFulfillmentItemResponse, len(response.Items))
	for _, item := range response.Items {
		byProduct[item.ProductName] = item
	}

	// Raw delivered quantity stays visible even though the totals cap it.
	cement := byProduct["Cement"]
	suite.True(cement.Delivered.IsEqual(suite.mustQuantity("15")))
}

// addOrder persists a two-line order: 10 bags of cement and 2.5 tons of rebar.
func (suite *GetOrderFulfillmentQueryHandlerTestSuite) addOrder(ctx context.Context) *order.Order {
	items := []order.Item{
		suite.orderLine("Cement", "bags", "10"),
		suite.orderLine("Rebar 12mm", "tons", "2.5"),
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
	return aggregate
}

// addDelivery persists a delivery for the order, optionally marked delivered.
func (suite *GetOrderFulfillmentQueryHandlerTestSuite) addDelivery(
	ctx context.Context, orderID kernel.UUID, delivered bool, items ...delivery.Item,
) *delivery.Delivery {
	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), orderID, items)
	suite.Require().NoError(err)

	if delivered {
		suite.Require().NoError(aggregate.MarkDelivered(time.Now().UTC()))
	}

	suite.Require().NoError(suite.deliveryRepo.Add(ctx, aggregate))
	return aggregate
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) orderLine(productName, unit, quantity string) order.Item {
	item, err := order.NewItem(productName, unit, suite.mustQuantity(quantity))
	suite.Require().NoError(err)
	return item
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) line(productName, unit, quantity string) delivery.Item {
	item, err := delivery.NewItem(productName, unit, suite.mustQuantity(quantity))
	suite.Require().NoError(err)
	return item
}

func (suite *GetOrderFulfillmentQueryHandlerTestSuite) mustQuantity(s string) kernel.Quantity {
	q, err := kernel.QuantityFromString(s)
	suite.Require().NoError(err)
	return q
}

func TestGetOrderFulfillmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderFulfillmentQueryHandlerTestSuite))
}
