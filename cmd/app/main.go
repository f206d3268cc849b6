package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"lytefood/cmd"
	lytehttp "lytefood/internal/adapters/in/http"
	"lytefood/internal/adapters/out/postgres/menurepo"
	"lytefood/internal/adapters/out/postgres/orderrepo"
	"lytefood/internal/adapters/out/postgres/paymentrepo"
	"lytefood/internal/adapters/out/postgres/settingsrepo"
	"lytefood/internal/adapters/out/postgres/userrepo"
	"lytefood/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultJWTExpiry   = 24 * time.Hour
	defaultOrderMaxAge = time.Hour
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config := getConfig(logger)

	db, err := openDatabase(config)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db, logger)

	jobManager := jobs.NewJobManager(
		root.CreateExpireStaleOrdersCommandHandler(),
		config.OrderMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config, logger)
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, reading environment directly")
	}

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTExpiry:         durationOrDefault("JWT_EXPIRY", defaultJWTExpiry),
		FedaPaySecretKey:  os.Getenv("FEDAPAY_SECRET_KEY"),
		FedaPayAPIBaseURL: envOrDefault("FEDAPAY_API_BASE_URL", "https://sandbox-api.fedapay.com"),
		OrderMaxAge:       durationOrDefault("ORDER_MAX_AGE", defaultOrderMaxAge),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	// TranslateError maps driver unique violations to gorm.ErrDuplicatedKey,
	// which the repositories classify as state conflicts.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderHistoryDTO{},
		&userrepo.UserDTO{},
		&userrepo.ResetTokenDTO{},
		&menurepo.MenuDTO{},
		&menurepo.CategoryDTO{},
		&paymentrepo.PaymentDTO{},
		&settingsrepo.SettingsDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	server := lytehttp.NewServer(lytehttp.Handlers{
		RegisterUser:         root.CreateRegisterUserCommandHandler(),
		AuthenticateUser:     root.CreateAuthenticateUserCommandHandler(),
		RequestPasswordReset: root.CreateRequestPasswordResetCommandHandler(),
		ResetPassword:        root.CreateResetPasswordCommandHandler(),
		UpdateProfile:        root.CreateUpdateProfileCommandHandler(),

		CreateOrder:       root.CreateCreateOrderCommandHandler(),
		CancelOrder:       root.CreateCancelOrderCommandHandler(),
		ChangeOrderStatus: root.CreateChangeOrderStatusCommandHandler(),
		AdvanceOrder:      root.CreateAdvanceOrderCommandHandler(),
		AssignLivreur:     root.CreateAssignLivreurCommandHandler(),
		RefundOrder:       root.CreateRefundOrderCommandHandler(),

		TakeOrder:      root.CreateTakeOrderCommandHandler(),
		DeliverOrder:   root.CreateDeliverOrderCommandHandler(),
		FailDelivery:   root.CreateFailDeliveryCommandHandler(),
		ConfirmPayment: root.CreateConfirmPaymentCommandHandler(),

		CreateUser:     root.CreateCreateUserCommandHandler(),
		SetUserRole:    root.CreateSetUserRoleCommandHandler(),
		CreateMenu:     root.CreateCreateMenuCommandHandler(),
		UpdateMenu:     root.CreateUpdateMenuCommandHandler(),
		DeleteMenu:     root.CreateDeleteMenuCommandHandler(),
		CreateCategory: root.CreateCreateCategoryCommandHandler(),
		RenameCategory: root.CreateRenameCategoryCommandHandler(),
		DeleteCategory: root.CreateDeleteCategoryCommandHandler(),
		UpdateSettings: root.CreateUpdateSettingsCommandHandler(),

		GetOrder:           root.CreateGetOrderQueryHandler(),
		GetMyOrders:        root.CreateGetMyOrdersQueryHandler(),
		GetOrders:          root.CreateGetOrdersQueryHandler(),
		GetAvailableOrders: root.CreateGetAvailableOrdersQueryHandler(),
		GetPickupOrders:    root.CreateGetPickupOrdersQueryHandler(),
		GetLivreurOrders:   root.CreateGetLivreurOrdersQueryHandler(),
		GetDashboardStats:  root.CreateGetDashboardStatsQueryHandler(),
		GetUsers:           root.CreateGetUsersQueryHandler(),
		GetMenus:           root.CreateGetMenusQueryHandler(),
		GetCategories:      root.CreateGetCategoriesQueryHandler(),
		GetSettings:        root.CreateGetSettingsQueryHandler(),
	})

	auth := lytehttp.NewAuthMiddleware(root.TokenService(), root.UserUoWFactory())

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	server.RegisterRoutes(e, auth)

	logger.Info("starting HTTP server", "port", config.HTTPPort)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
