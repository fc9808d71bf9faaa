// seed_demo puebla la base con datos de demostración del taller: un dueño y
// un técnico, clientes con sus equipos, repuestos con stock inicial y una
// orden de reparación de ejemplo con líneas.
//
// Uso: go run ./cmd/seed_demo
// Idempotencia simple: si el email del dueño ya existe, aborta sin tocar nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/infrastructure/postgres"
	"github.com/malarguetech/taller-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderPartRepo := postgres.NewOrderPartRepository(pool)

	const ownerEmail = "dueno@taller.local"
	if existing, err := userRepo.FindByEmail(ownerEmail); err != nil {
		fail("verificar dueño: %v", err)
	} else if existing != nil {
		fmt.Println("los datos de demo ya existen, nada que hacer")
		return
	}

	now := time.Now()

	owner := newUser(ownerEmail, "Mariana López", entity.RoleDueno, now)
	tech := newUser("tecnico@taller.local", "Julián Pérez", entity.RoleTecnico, now)
	for _, u := range []*entity.User{owner, tech} {
		if err := userRepo.Create(u); err != nil {
			fail("crear usuario %s: %v", u.Email, err)
		}
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      "Carlos Giménez",
		Phone:     "+54 260 4123456",
		Email:     "carlos.gimenez@example.com",
		Address:   "San Martín 450, Malargüe",
		CreatedAt: now,
	}
	if err := customerRepo.Create(customer); err != nil {
		fail("crear cliente: %v", err)
	}

	device := &entity.Device{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		Type:         "Notebook",
		Brand:        "Lenovo",
		Model:        "ThinkPad E14",
		SerialNumber: "PF-3XK2L9",
		IntakeNotes:  "No enciende. Marcas de uso en la tapa.",
		CreatedAt:    now,
	}
	if err := deviceRepo.Create(device); err != nil {
		fail("crear equipo: %v", err)
	}

	parts := []*entity.Part{
		newPart("SSD-240", "SSD 240GB SATA", 8, 2, "32000", now),
		newPart("RAM-8GB-DDR4", "Memoria RAM 8GB DDR4 2666", 12, 3, "28000", now),
		newPart("FTE-NB-65W", "Fuente notebook 65W universal", 5, 1, "18500", now),
		newPart("PASTA-TERM", "Pasta térmica 4g", 20, 5, "4500", now),
	}
	for _, p := range parts {
		if err := partRepo.Create(p); err != nil {
			fail("crear repuesto %s: %v", p.SKU, err)
		}
	}

	order := &entity.RepairOrder{
		ID:              uuid.New().String(),
		DeviceID:        device.ID,
		TechnicianID:    &tech.ID,
		ReportedProblem: "No enciende",
		Diagnosis:       "Fuente quemada, disco con sectores dañados",
		EstimatedPrice:  decimal.RequireFromString("68000"),
		Status:          entity.StatusPresupuestado,
		TrackingToken:   uuid.New().String(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := orderRepo.Create(order); err != nil {
		fail("crear orden: %v", err)
	}
	for _, p := range []*entity.Part{parts[0], parts[2]} {
		item := &entity.OrderPart{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			PartID:    p.ID,
			Quantity:  1,
			UnitPrice: p.UnitPrice,
		}
		if err := orderPartRepo.Create(item); err != nil {
			fail("crear línea de orden: %v", err)
		}
	}

	fmt.Println("datos de demo creados:")
	fmt.Printf("  dueño:   %s / demo1234\n", owner.Email)
	fmt.Printf("  técnico: %s / demo1234\n", tech.Email)
	fmt.Printf("  orden:   %s (seguimiento: %s)\n",
		order.ID, cfg.Site.TrackingURL(order.TrackingToken))
}

func newUser(email, name, role string, now time.Time) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	return &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newPart(sku, name string, qty, minQty int64, price string, now time.Time) *entity.Part {
	return &entity.Part{
		ID:          uuid.New().String(),
		SKU:         sku,
		Name:        name,
		Quantity:    qty,
		MinQuantity: minQty,
		UnitPrice:   decimal.RequireFromString(price),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
