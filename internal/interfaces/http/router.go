package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/malarguetech/taller-api/internal/application/auth"
	"github.com/malarguetech/taller-api/internal/application/inventory"
	"github.com/malarguetech/taller-api/internal/application/taller"
	"github.com/malarguetech/taller-api/internal/application/usecase"
	"github.com/malarguetech/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	DeviceUC    *usecase.DeviceUseCase
	PartUC      *usecase.PartUseCase
	DashboardUC *usecase.DashboardUseCase
	Ledger      *inventory.StockLedger
	OrderUC     *taller.OrderUseCase
	ReceiptUC   *taller.ReceiptUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Seguimiento público por token (sin auth)
	trackingHandler := NewTrackingHandler(deps.OrderUC)
	app.Get("/seguimiento/:token", trackingHandler.Track)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	ownerOnly := RequireRole(entity.RoleDueno)

	// Clientes
	customers := protected.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", ownerOnly, customerHandler.Delete)

	// Equipos
	devices := protected.Group("/equipos")
	deviceHandler := NewDeviceHandler(deps.DeviceUC)
	devices.Post("/", deviceHandler.Create)
	devices.Get("/", deviceHandler.List)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Put("/:id", deviceHandler.Update)
	devices.Delete("/:id", ownerOnly, deviceHandler.Delete)

	// Repuestos
	parts := protected.Group("/repuestos")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", ownerOnly, partHandler.Delete)
	parts.Get("/:id/movimientos", partHandler.ListMovements)

	// Inventario (movimientos manuales)
	invGroup := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.PartUC)
	invGroup.Post("/movimientos", inventoryHandler.RegisterMovement)
	invGroup.Get("/movimientos", inventoryHandler.ListMovements)

	// Órdenes de reparación
	orders := protected.Group("/ordenes")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", ownerOnly, orderHandler.Delete)
	orders.Post("/:id/estado", orderHandler.ChangeStatus)
	orders.Post("/:id/repuestos", orderHandler.AddPart)
	orders.Delete("/:id/repuestos/:itemId", orderHandler.RemovePart)
	orders.Get("/:id/qr", orderHandler.TrackingQR)
	orders.Get("/:id/comprobante", orderHandler.Receipt)

	// Dashboard (solo DUENO)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", ownerOnly, dashboardHandler.Get)
}
