package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pos-cloud/internal/application/auth"
	"github.com/tu-usuario/pos-cloud/internal/application/catalog"
	"github.com/tu-usuario/pos-cloud/internal/application/dashboard"
	"github.com/tu-usuario/pos-cloud/internal/application/onboarding"
	"github.com/tu-usuario/pos-cloud/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BootstrapUC *onboarding.BootstrapUseCase
	OverviewUC  *dashboard.OverviewUseCase
	CreateSale  *sales.CreateSaleUseCase
	ReceiptUC   *sales.ReceiptUseCase
	CatalogUC   *catalog.CatalogUseCase
	JWTSecret   string
}

// Router registra las rutas de la API y el guard de páginas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Onboarding (requiere sesión y que el usuario no tenga tenant todavía)
	onboardingHandler := NewOnboardingHandler(deps.BootstrapUC, deps.AuthUC)
	api.Post("/onboarding", AuthMiddleware(deps.JWTSecret), RequireTenantless(), onboardingHandler.Bootstrap)

	// Rutas del negocio (requieren sesión y tenant)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireTenant())

	dashboardHandler := NewDashboardHandler(deps.OverviewUC)
	protected.Get("/dashboard/overview", dashboardHandler.GetOverview)

	salesHandler := NewSalesHandler(deps.CreateSale, deps.ReceiptUC)
	protected.Post("/sales", salesHandler.Create)
	protected.Get("/sales/:id/receipt", salesHandler.Receipt)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/products", catalogHandler.Products)
	protected.Get("/customers", catalogHandler.Customers)
	protected.Get("/locations", catalogHandler.Locations)
	protected.Get("/roles", catalogHandler.Roles)
	protected.Get("/inventory/stock", catalogHandler.Stock)

	// Guard de páginas: todo lo que no sea /api pasa por la decisión de
	// enrutamiento (login / onboarding / dashboard).
	app.Use(AccessGuard(deps.JWTSecret, deps.AuthUC))
}
