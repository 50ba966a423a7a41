package postgres_test

import (
	"context"
	"testing"
	"time"

	pgadapter "faithcafe/internal/adapters/out/postgres"
	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/menu"
	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// storefront repositories against a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(pgadapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE users, menu_items, orders, order_items, client_state").Error)
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsUser() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	account, err := user.NewUser("maria", "secret", "maria@faithcafe.ph",
		"12 Mabini St", "+63 912 000 1111")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, account))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	restored, err := fresh.UserRepository().Get(ctx, "maria")
	suite.Require().NoError(err)
	suite.Equal("maria@faithcafe.ph", restored.Email())
	suite.Equal(user.RoleCustomer, restored.Role())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	account, err := user.NewUser("maria", "secret", "maria@faithcafe.ph", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, account))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.UserRepository().Get(ctx, "maria")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUniqueEmail_Enforced() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	first, err := user.NewUser("maria", "secret", "maria@faithcafe.ph", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := user.NewUser("jose", "secret", "maria@faithcafe.ph", "", "")
	suite.Require().NoError(err)

	other := suite.factory.Create()
	suite.Require().NoError(other.Begin(ctx))
	suite.Require().Error(other.UserRepository().Add(ctx, second))
	suite.Require().NoError(other.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMenu_RenameKeepsSingleRow() {
	ctx := context.Background()

	price, err := kernel.NewMoney(120)
	suite.Require().NoError(err)
	item, err := menu.NewItem("Latte", price, "Espresso with milk", "coffee", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.MenuRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))

	renamed, err := menu.NewItem("Iced Latte", price, "Cold version", "coffee", "")
	suite.Require().NoError(err)

	other := suite.factory.Create()
	suite.Require().NoError(other.Begin(ctx))
	suite.Require().NoError(other.MenuRepository().Update(ctx, "Latte", renamed))
	suite.Require().NoError(other.Commit(ctx))

	items, err := suite.factory.MenuReader().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Iced Latte", items[0].Name())

	_, err = suite.factory.MenuReader().Get(ctx, "Latte")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCartAndSession_RoundTrip() {
	ctx := context.Background()

	price, err := kernel.NewMoney(120)
	suite.Require().NoError(err)
	line, err := cart.NewLine("Latte", price, 2)
	suite.Require().NoError(err)
	basket, err := cart.RestoreCart([]cart.Line{line})
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Save(ctx, basket))
	suite.Require().NoError(uow.SessionRepository().SetCurrentUser(ctx, user.Session{
		Username: "maria", Email: "maria@faithcafe.ph", Role: "customer",
	}))
	suite.Require().NoError(uow.SessionRepository().SetTheme(ctx, "dark"))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.CartReader().Get(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(restored.Lines(), 1)
	suite.Equal("Latte", restored.Lines()[0].Name())
	suite.Equal(2, restored.Lines()[0].Quantity())

	session, err := suite.factory.SessionReader().CurrentUser(ctx)
	suite.Require().NoError(err)
	suite.Equal("maria", session.Username)

	theme, err := suite.factory.SessionReader().Theme(ctx)
	suite.Require().NoError(err)
	suite.Equal("dark", theme)

	other := suite.factory.Create()
	suite.Require().NoError(other.Begin(ctx))
	suite.Require().NoError(other.SessionRepository().ClearCurrentUser(ctx))
	suite.Require().NoError(other.Commit(ctx))

	_, err = suite.factory.SessionReader().CurrentUser(ctx)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
