package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OwnOrder_ReturnsOrder() {
	saved := suite.saveOrder(1, "wireless mouse", 2)

	query, err := queries.NewGetOrderQuery(saved.ID(), 1)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(saved.ID(), result.ID)
	suite.Equal("wireless mouse", result.ItemName)
	suite.Equal(2, result.Quantity)
	suite.Equal("PENDING", result.Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ForeignOrder_NotFound() {
	saved := suite.saveOrder(1, "wireless mouse", 2)

	// User 2 asks for user 1's order
	query, err := queries.NewGetOrderQuery(saved.ID(), 2)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_AbsentOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(424242, 1)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ForeignAndAbsent_SameError() {
	saved := suite.saveOrder(1, "wireless mouse", 2)

	foreignQuery, err := queries.NewGetOrderQuery(saved.ID(), 2)
	suite.Require().NoError(err)
	_, foreignErr := suite.handler.Handle(context.Background(), foreignQuery)
	suite.Require().Error(foreignErr)

	absentQuery, err := queries.NewGetOrderQuery(saved.ID()+1000, 2)
	suite.Require().NoError(err)
	_, absentErr := suite.handler.Handle(context.Background(), absentQuery)
	suite.Require().Error(absentErr)

	// Existence of a foreign order must not leak through the error
	suite.ErrorIs(foreignErr, errs.ErrObjectNotFound)
	suite.ErrorIs(absentErr, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_StatusWireFormat() {
	pending := suite.saveOrder(1, "first item", 1)

	processing := suite.saveOrder(1, "second item", 1)
	suite.Require().NoError(processing.StartProcessing())
	suite.updateOrder(processing)

	completed := suite.saveOrder(1, "third item", 1)
	suite.Require().NoError(completed.StartProcessing())
	suite.Require().NoError(completed.Complete())
	suite.updateOrder(completed)

	expectations := map[int64]string{
		pending.ID():    "PENDING",
		processing.ID(): "PROCESSING",
		completed.ID():  "COMPLETED",
	}

	for orderID, expected := range expectations {
		query, err := queries.NewGetOrderQuery(orderID, 1)
		suite.Require().NoError(err)

		result, err := suite.handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.Equal(expected, result.Status)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *GetOrderQueryHandlerTestSuite) saveOrder(ownerID int64, itemName string, quantity int) *order.Order {
	testOrder, err := order.NewOrder(ownerID, itemName, quantity)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))
	return testOrder
}

func (suite *GetOrderQueryHandlerTestSuite) updateOrder(testOrder *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), testOrder))
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
