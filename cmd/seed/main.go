// seed puebla la base con datos de demostración: un usuario admin, su
// negocio con sucursal principal, productos con inventario, un cliente y
// una venta de ejemplo. Idempotente a nivel de email/slug: si el usuario
// demo ya existe, no hace nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-cloud/internal/application/auth"
	"github.com/tu-usuario/pos-cloud/internal/application/dto"
	"github.com/tu-usuario/pos-cloud/internal/application/onboarding"
	"github.com/tu-usuario/pos-cloud/internal/application/sales"
	"github.com/tu-usuario/pos-cloud/internal/domain/entity"
	"github.com/tu-usuario/pos-cloud/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-cloud/pkg/config"
)

const (
	demoEmail    = "demo@pos.cloud"
	demoPassword = "demo-password-123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
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
	txRunner := postgres.NewTxRunner(pool)

	existing, err := userRepo.GetByEmail(demoEmail)
	if err != nil {
		fail("consultar usuario demo: %v", err)
	}
	if existing != nil {
		fmt.Println("los datos de demostración ya existen, nada que hacer")
		return
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
	})
	session, err := authUC.Register(dto.RegisterRequest{
		Email:     demoEmail,
		Password:  demoPassword,
		FirstName: "Demo",
		LastName:  "Admin",
	})
	if err != nil {
		fail("registrar usuario demo: %v", err)
	}
	userID := session.User.ID

	bootstrapUC := onboarding.NewBootstrapUseCase(
		tenantRepo, roleRepo, locationRepo, userRepo, userLocationRepo,
	)
	if err := bootstrapUC.Bootstrap(userID, dto.BusinessProfile{
		BusinessName: "Tienda Demo",
		BusinessSlug: onboarding.DeriveSlug("Tienda Demo"),
		Address:      "Calle Falsa 123",
		City:         "Bogotá",
		PostalCode:   "110111",
		Country:      "Colombia",
		Phone:        "+57 300 000 0000",
		Email:        demoEmail,
		TaxID:        "900123456",
		TaxRate:      "19",
		Currency:     "USD",
	}); err != nil {
		fail("bootstrap del negocio demo: %v", err)
	}

	user, err := userRepo.GetByID(userID)
	if err != nil || user == nil {
		fail("recargar usuario demo: %v", err)
	}
	tenantID := user.TenantID

	location, err := userLocationRepo.GetDefaultLocation(userID)
	if err != nil || location == nil {
		fail("sucursal principal del demo: %v", err)
	}

	now := time.Now()
	products := []*entity.Product{
		{ID: uuid.New().String(), TenantID: tenantID, Name: "Café molido 500g", SKU: "CAF-500",
			SellingPrice: dec("12.50"), CostPrice: dec("7.00"), TaxRate: dec("19")},
		{ID: uuid.New().String(), TenantID: tenantID, Name: "Filtros de papel x40", SKU: "FIL-040",
			SellingPrice: dec("3.90"), CostPrice: dec("1.80"), TaxRate: dec("19")},
		{ID: uuid.New().String(), TenantID: tenantID, Name: "Taza cerámica", SKU: "TAZ-001",
			SellingPrice: dec("8.00"), CostPrice: dec("3.50"), TaxRate: dec("0")},
	}
	quantities := []int{40, 6, 15} // los filtros quedan bajo el umbral de stock
	for i, p := range products {
		p.Active = true
		p.CreatedAt, p.UpdatedAt = now, now
		if err := productRepo.Create(p); err != nil {
			fail("crear producto %s: %v", p.Name, err)
		}
		if err := inventoryRepo.Upsert(&entity.InventoryItem{
			LocationID:  location.ID,
			ProductID:   p.ID,
			Quantity:    quantities[i],
			MinQuantity: 5,
			MaxQuantity: 100,
		}); err != nil {
			fail("inventario de %s: %v", p.Name, err)
		}
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@example.com",
		Phone:     "+57 311 111 1111",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := customerRepo.Create(customer); err != nil {
		fail("crear cliente demo: %v", err)
	}

	createSaleUC := sales.NewCreateSaleUseCase(txRunner)
	sale, err := createSaleUC.Create(ctx, tenantID, userID, dto.CreateSaleRequest{
		LocationID:    location.ID,
		CustomerID:    customer.ID,
		PaymentMethod: "cash",
		Items: []dto.SaleItemInput{
			{ProductID: products[0].ID, Quantity: 2},
			{ProductID: products[2].ID, Quantity: 1},
		},
	})
	if err != nil {
		fail("venta de ejemplo: %v", err)
	}

	fmt.Printf("datos de demostración listos:\n")
	fmt.Printf("  usuario: %s / %s\n", demoEmail, demoPassword)
	fmt.Printf("  tenant:  %s\n", tenantID)
	fmt.Printf("  venta:   %s (total %s)\n", sale.SaleNumber, sale.TotalAmount.StringFixed(2))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		fail("decimal inválido %q: %v", s, err)
	}
	return d
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
