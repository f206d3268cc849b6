package cmd

import (
	"log/slog"

	"lytefood/internal/adapters/out/fedapay"
	"lytefood/internal/adapters/out/mail"
	"lytefood/internal/adapters/out/postgres"
	"lytefood/internal/adapters/out/security"
	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot builds every handler from the shared infrastructure:
// one database connection, one unit of work factory, and the outbound
// adapters.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     ports.CredentialHasher
	tokens     ports.TokenService
	gateway    ports.PaymentGateway
	mailer     ports.ResetCodeMailer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     security.NewBcryptHasher(),
		tokens:     security.NewJWTTokenService(config.JWTSecret, config.JWTExpiry),
		gateway:    fedapay.NewClient(config.FedaPayAPIBaseURL, config.FedaPaySecretKey),
		mailer:     mail.NewLogMailer(logger),
	}
}

func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokens
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

// UserUoWFactory is exported for the authentication middleware, which loads
// the account behind each token.
func (c *CompositionRoot) UserUoWFactory() commands.UserUoWFactory {
	return c.userUoWFactory()
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	return commands.NewRequestPasswordResetCommandHandler(c.userUoWFactory(), c.mailer)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	return commands.NewResetPasswordCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateSetUserRoleCommandHandler() commands.SetUserRoleCommandHandler {
	return commands.NewSetUserRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderMenuUoWFactory = FuncOrderMenuUoWFactory(func() commands.OrderMenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignLivreurCommandHandler() commands.AssignLivreurCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignLivreurCommandHandler(f)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	return commands.NewFailDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	return commands.NewExpireStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderPaymentUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	return commands.NewRefundOrderCommandHandler(c.orderPaymentUoWFactory(), c.gateway)
}

func (c *CompositionRoot) orderPaymentUoWFactory() commands.OrderPaymentUoWFactory {
	return FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuCommandHandler() commands.UpdateMenuCommandHandler {
	return commands.NewUpdateMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuCommandHandler() commands.DeleteMenuCommandHandler {
	return commands.NewDeleteMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRenameCategoryCommandHandler() commands.RenameCategoryCommandHandler {
	return commands.NewRenameCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyOrdersQueryHandler() queries.GetMyOrdersQueryHandler {
	return queries.NewGetMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupOrdersQueryHandler() queries.GetPickupOrdersQueryHandler {
	return queries.NewGetPickupOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLivreurOrdersQueryHandler() queries.GetLivreurOrdersQueryHandler {
	return queries.NewGetLivreurOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenusQueryHandler() queries.GetMenusQueryHandler {
	return queries.NewGetMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderMenuUoWFactory func() commands.OrderMenuUoW

func (f FuncOrderMenuUoWFactory) Create() commands.OrderMenuUoW {
	return f()
}

type FuncOrderUserUoWFactory func() commands.OrderUserUoW

func (f FuncOrderUserUoWFactory) Create() commands.OrderUserUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
