package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"

	"github.com/Galang0304/kasir-pos-capstone/config"
	"github.com/Galang0304/kasir-pos-capstone/controllers"
	"github.com/Galang0304/kasir-pos-capstone/middleware"
	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/routes"
	"github.com/Galang0304/kasir-pos-capstone/services"
)

var log = logging.MustGetLogger("main")

// initLogger configures go-logging with a leveled stdout backend. An invalid
// level string is an error so typos in LOG_LEVEL fail loudly.
func initLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s} %{module}: %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func main() {
	// A missing .env file is fine; env vars may come from the platform.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	if err := initLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	client, db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %s", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	store := repository.NewMongoStore(client, db)

	// Index creation is best-effort at startup; a failure is logged but does
	// not prevent the server from serving.
	if err := store.EnsureUserIndexes(); err != nil {
		log.Warningf("could not create user indexes: %s", err)
	}
	if err := store.EnsureProductIndexes(); err != nil {
		log.Warningf("could not create product indexes: %s", err)
	}
	if err := store.EnsureCategoryIndexes(); err != nil {
		log.Warningf("could not create category indexes: %s", err)
	}
	if err := store.EnsureCustomerIndexes(); err != nil {
		log.Warningf("could not create customer indexes: %s", err)
	}
	if err := store.EnsureTransactionIndexes(); err != nil {
		log.Warningf("could not create transaction indexes: %s", err)
	}
	if err := store.EnsureAdminUser(); err != nil {
		log.Warningf("could not seed admin user: %s", err)
	}

	loyalty := services.NewLoyaltyService(store, cfg.PointsDivisor)
	checkout := services.NewCheckoutService(store, loyalty)
	auth := services.NewAuthService(store, []byte(cfg.JWTSecret), cfg.TokenTTL)
	stock := services.NewStockService(store)

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(middleware.CorsMiddleware())

	routes.SetupRoutes(app, &routes.Deps{
		Auth:         auth,
		AuthCtl:      controllers.NewAuthController(auth),
		ProductCtl:   controllers.NewProductController(store),
		CategoryCtl:  controllers.NewCategoryController(store),
		CustomerCtl:  controllers.NewCustomerController(store),
		EmployeeCtl:  controllers.NewEmployeeController(store),
		UserCtl:      controllers.NewUserController(store),
		TxCtl:        controllers.NewTransactionController(checkout, store),
		ReportCtl:    controllers.NewReportController(store),
		InventoryCtl: controllers.NewInventoryController(store, stock),
	})

	log.Infof("server listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
