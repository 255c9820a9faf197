package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/pos-cloud/internal/application/auth"
	"github.com/tu-usuario/pos-cloud/internal/application/catalog"
	"github.com/tu-usuario/pos-cloud/internal/application/dashboard"
	"github.com/tu-usuario/pos-cloud/internal/application/onboarding"
	"github.com/tu-usuario/pos-cloud/internal/application/sales"
	infrapdf "github.com/tu-usuario/pos-cloud/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-cloud/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pos-cloud/internal/interfaces/http"
	"github.com/tu-usuario/pos-cloud/pkg/config"
	"github.com/tu-usuario/pos-cloud/pkg/logger"
	"github.com/tu-usuario/pos-cloud/pkg/metrics"
)

// swaggerHandler devuelve el middleware de Swagger UI, o nil si el JSON
// generado no está junto al binario: la API debe arrancar igual sin la
// documentación.
func swaggerHandler(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "POS Cloud API",
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tenantRepo := postgres.NewTenantRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userLocationRepo := postgres.NewUserLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	bootstrapUC := onboarding.NewBootstrapUseCase(
		tenantRepo, roleRepo, locationRepo, userRepo, userLocationRepo,
	)
	overviewUC := dashboard.NewOverviewUseCase(dashboardRepo, userLocationRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner)
	receiptUC := sales.NewReceiptUseCase(
		saleRepo, productRepo, tenantRepo, locationRepo, customerRepo,
		infrapdf.NewMarotoReceiptGenerator(),
	)
	catalogUC := catalog.NewCatalogUseCase(productRepo, customerRepo, locationRepo, roleRepo, inventoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpMetrics := metrics.NewHTTPMetrics(cfg.App.Name)
	app.Use(httpMetrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	if h := swaggerHandler("./docs/swagger.json"); h != nil {
		app.Use(h)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BootstrapUC: bootstrapUC,
		OverviewUC:  overviewUC,
		CreateSale:  createSaleUC,
		ReceiptUC:   receiptUC,
		CatalogUC:   catalogUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
