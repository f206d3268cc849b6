package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"lytefood/internal/adapters/out/postgres/orderrepo"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite exercises order persistence against a
// real PostgreSQL instance, including the version-checked update.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderHistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	price, err := kernel.NewMoneyFromString("10.00")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(1, 2, price)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		7, []order.LineItem{item}, "12 rue des Lilas, Cotonou",
		order.EnAttente, "client@example.com")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderItemsAndHistory() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NotZero(aggregate.ID())

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.EnAttente, loaded.Status())
	suite.Len(loaded.Items(), 1)
	suite.True(loaded.Total().IsEqual(aggregate.Total()))
	suite.Equal("client@example.com", loaded.UpdatedBy())

	var historyCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderHistoryDTO{}).
		Where("order_id = ?", aggregate.ID()).Count(&historyCount).Error)
	suite.Equal(int64(1), historyCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 424242)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndHistory() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkPaid())
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paye, reloaded.Status())
	suite.Equal(loaded.Version()+1, reloaded.Version())

	var historyCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderHistoryDTO{}).
		Where("order_id = ?", aggregate.ID()).Count(&historyCount).Error)
	suite.Equal(int64(2), historyCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyConflict() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.MarkPaid())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel(7, "client@example.com", false))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paye, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStalePending_FiltersByStatusAndAge() {
	ctx := context.Background()

	stale := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", stale.ID()).
		Update("created_at", time.Now().UTC().Add(-2*time.Hour)).Error)

	fresh := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	paid := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, paid))
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", paid.ID()).
		Updates(map[string]any{
			"status":     order.Paye.String(),
			"created_at": time.Now().UTC().Add(-2 * time.Hour),
		}).Error)

	results, err := suite.repository.GetStalePending(ctx,
		time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(stale.ID(), results[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
