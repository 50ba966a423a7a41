package cmd

import (
	"fmt"
	"log/slog"

	inhttp "faithcafe/internal/adapters/in/http"
	"faithcafe/internal/adapters/out/localstore"
	"faithcafe/internal/adapters/out/postgres"
	"faithcafe/internal/core/application/usecases/commands"
	"faithcafe/internal/core/application/usecases/queries"
	"faithcafe/internal/core/domain/model/rider"
	"faithcafe/internal/core/domain/services"
	"faithcafe/internal/core/ports"
	"faithcafe/internal/jobs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// storage is what the composition root needs from a persistence adapter:
// transactional units of work for commands and standalone readers for
// queries. Both the localstore and the postgres factories satisfy it.
type storage interface {
	ports.UnitOfWorkFactory
	UserReader() ports.UserRepository
	MenuReader() ports.MenuRepository
	OrderReader() ports.OrderRepository
	CartReader() ports.CartRepository
	SessionReader() ports.SessionRepository
}

type CompositionRoot struct {
	storage   storage
	riderPool *rider.Pool
	pricing   services.PricingService
}

// NewCompositionRoot wires the storage adapter selected by the config and
// the process-wide singletons.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	store, err := newStorage(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		storage:   store,
		riderPool: rider.NewPool(),
		pricing:   services.NewPricingService(),
	}, nil
}

func newStorage(config Config) (storage, error) {
	switch config.StorageDriver {
	case StorageDriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
			config.DBName, config.DBSslMode)

		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return postgres.NewGormUnitOfWorkFactory(db), nil

	case StorageDriverLocal, "":
		store, err := localstore.NewFileStore(config.StateDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open state dir: %w", err)
		}
		return localstore.NewUnitOfWorkFactory(store, localstore.NewFixtures(config.DataDir)), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.storage.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.storage.Create()
	})
	return commands.NewLoginUserCommandHandler(f)
}

func (c *CompositionRoot) CreateLogoutUserCommandHandler() commands.LogoutUserCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.storage.Create()
	})
	return commands.NewLogoutUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.storage.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.storage.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.storage.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.storage.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.storage.Create()
	})
	return commands.NewAddCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCartQuantityCommandHandler() commands.ChangeCartQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.storage.Create()
	})
	return commands.NewChangeCartQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.storage.Create()
	})
	return commands.NewRemoveCartLineCommandHandler(f)
}

func (c *CompositionRoot) CreateStageCheckoutCommandHandler() commands.StageCheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.storage.Create()
	})
	return commands.NewStageCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateSetThemeCommandHandler() commands.SetThemeCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.storage.Create()
	})
	return commands.NewSetThemeCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.storage.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.pricing)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.storage.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.riderPool)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.storage.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.riderPool)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.storage.MenuReader())
}

func (c *CompositionRoot) CreateGetCartSummaryQueryHandler() queries.GetCartSummaryQueryHandler {
	return queries.NewGetCartSummaryQueryHandler(c.storage.CartReader(), c.storage.SessionReader())
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.storage.OrderReader())
}

func (c *CompositionRoot) CreateGetCustomerTrackingQueryHandler() queries.GetCustomerTrackingQueryHandler {
	return queries.NewGetCustomerTrackingQueryHandler(c.storage.OrderReader())
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.riderPool)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.storage.SessionReader())
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.storage.UserReader())
}

// CreateServer assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *inhttp.Server {
	return inhttp.NewServer(
		inhttp.Commands{
			RegisterUser:       c.CreateRegisterUserCommandHandler(),
			LoginUser:          c.CreateLoginUserCommandHandler(),
			LogoutUser:         c.CreateLogoutUserCommandHandler(),
			DeleteUser:         c.CreateDeleteUserCommandHandler(),
			AddMenuItem:        c.CreateAddMenuItemCommandHandler(),
			UpdateMenuItem:     c.CreateUpdateMenuItemCommandHandler(),
			DeleteMenuItem:     c.CreateDeleteMenuItemCommandHandler(),
			AddCartLine:        c.CreateAddCartLineCommandHandler(),
			ChangeCartQuantity: c.CreateChangeCartQuantityCommandHandler(),
			RemoveCartLine:     c.CreateRemoveCartLineCommandHandler(),
			StageCheckout:      c.CreateStageCheckoutCommandHandler(),
			SetTheme:           c.CreateSetThemeCommandHandler(),
			PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
			UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
			AssignRider:        c.CreateAssignRiderCommandHandler(),
		},
		inhttp.Queries{
			GetMenu:             c.CreateGetMenuQueryHandler(),
			GetCartSummary:      c.CreateGetCartSummaryQueryHandler(),
			GetOrderBoard:       c.CreateGetOrderBoardQueryHandler(),
			GetCustomerTracking: c.CreateGetCustomerTrackingQueryHandler(),
			GetAvailableRiders:  c.CreateGetAvailableRidersQueryHandler(),
			GetSession:          c.CreateGetSessionQueryHandler(),
			GetUsers:            c.CreateGetUsersQueryHandler(),
		},
	)
}

// CreateJobManager assembles the background refresh jobs.
func (c *CompositionRoot) CreateJobManager(config Config, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderBoardQueryHandler(),
		c.CreateGetCustomerTrackingQueryHandler(),
		c.CreateGetSessionQueryHandler(),
		jobs.Intervals{
			Board:    config.BoardRefreshInterval,
			Tracking: config.TrackingRefreshInterval,
		},
		logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
