// Package http exposes the application over a REST API built on echo.
// Handlers translate requests into commands and queries, authentication and
// role gates live in the middleware, and domain errors are mapped to HTTP
// statuses in one place.
package http

import (
	nethttp "net/http"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the API serves.
type Handlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	AuthenticateUser     commands.AuthenticateUserCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	ResetPassword        commands.ResetPasswordCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler

	CreateOrder       commands.CreateOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	AdvanceOrder      commands.AdvanceOrderCommandHandler
	AssignLivreur     commands.AssignLivreurCommandHandler
	RefundOrder       commands.RefundOrderCommandHandler

	TakeOrder      commands.TakeOrderCommandHandler
	DeliverOrder   commands.DeliverOrderCommandHandler
	FailDelivery   commands.FailDeliveryCommandHandler
	ConfirmPayment commands.ConfirmPaymentCommandHandler

	CreateUser     commands.CreateUserCommandHandler
	SetUserRole    commands.SetUserRoleCommandHandler
	CreateMenu     commands.CreateMenuCommandHandler
	UpdateMenu     commands.UpdateMenuCommandHandler
	DeleteMenu     commands.DeleteMenuCommandHandler
	CreateCategory commands.CreateCategoryCommandHandler
	RenameCategory commands.RenameCategoryCommandHandler
	DeleteCategory commands.DeleteCategoryCommandHandler
	UpdateSettings commands.UpdateSettingsCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetMyOrders        queries.GetMyOrdersQueryHandler
	GetOrders          queries.GetOrdersQueryHandler
	GetAvailableOrders queries.GetAvailableOrdersQueryHandler
	GetPickupOrders    queries.GetPickupOrdersQueryHandler
	GetLivreurOrders   queries.GetLivreurOrdersQueryHandler
	GetDashboardStats  queries.GetDashboardStatsQueryHandler
	GetUsers           queries.GetUsersQueryHandler
	GetMenus           queries.GetMenusQueryHandler
	GetCategories      queries.GetCategoriesQueryHandler
	GetSettings        queries.GetSettingsQueryHandler
}

// Server wires the handlers into echo routes.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo, auth AuthMiddleware) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(nethttp.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	// Public surface.
	v1.POST("/auth/register", s.Register)
	v1.POST("/auth/login", s.Login)
	v1.POST("/auth/forgot-password", s.ForgotPassword)
	v1.POST("/auth/reset-password", s.ResetPassword)
	v1.POST("/payments/callback", s.PaymentCallback)
	v1.GET("/menus", s.ListMenus)
	v1.GET("/categories", s.ListCategories)
	v1.GET("/settings", s.GetSettings)

	// Authenticated surface.
	authed := v1.Group("", auth.RequireAuth)
	authed.GET("/users/me", s.GetProfile)
	authed.PUT("/users/me", s.UpdateProfile)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/my", s.GetMyOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.POST("/orders/:id/cancel", s.CancelOrder)

	// Livreur surface.
	livreur := v1.Group("/livreur", auth.RequireAuth, RequireLivreur)
	livreur.GET("/orders", s.GetLivreurOrders)
	livreur.GET("/orders/available", s.GetPickupOrders)
	livreur.POST("/orders/:id/take", s.TakeOrder)
	livreur.POST("/orders/:id/deliver", s.DeliverOrder)
	livreur.POST("/orders/:id/fail", s.FailDelivery)

	// Admin surface.
	admin := v1.Group("", auth.RequireAuth, RequireAdmin)
	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/available", s.GetAvailableOrders)
	admin.PUT("/orders/:id/status", s.ChangeOrderStatus)
	admin.POST("/orders/:id/advance", s.AdvanceOrder)
	admin.PUT("/orders/:id/assign", s.AssignLivreur)
	admin.POST("/orders/:id/refund", s.RefundOrder)
	admin.GET("/admin/dashboard", s.GetDashboardStats)
	admin.POST("/menus", s.CreateMenu)
	admin.PUT("/menus/:id", s.UpdateMenu)
	admin.DELETE("/menus/:id", s.DeleteMenu)
	admin.POST("/categories", s.CreateCategory)
	admin.PUT("/categories/:id", s.RenameCategory)
	admin.DELETE("/categories/:id", s.DeleteCategory)
	admin.PUT("/settings", s.UpdateSettings)

	// Super-admin surface.
	superAdmin := v1.Group("/admin/users", auth.RequireAuth, RequireSuperAdmin)
	superAdmin.GET("", s.ListUsers)
	superAdmin.POST("", s.CreateUser)
	superAdmin.PUT("/:id/roles", s.SetUserRole)
}
