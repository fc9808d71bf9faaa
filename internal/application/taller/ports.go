package taller

import (
	"context"

	"github.com/malarguetech/taller-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del flujo de órdenes atados a esa tx. El guardado de la orden
// y el descuento de stock comparten la misma transacción: o se persiste todo
// o no se persiste nada.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderPartRepository,
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// Ledger es el contrato mínimo que el flujo de órdenes necesita del libro de
// inventario. Lo implementa *inventory.StockLedger; la interfaz evita el
// acoplamiento directo entre paquetes de aplicación.
type Ledger interface {
	DebitInTx(
		partRepo repository.PartRepository,
		movRepo repository.StockMovementRepository,
		partID string,
		quantity int64,
		reason string,
	) error
}

// StatusNotification es el mensaje que se entrega al transporte de correo
// cuando una orden cambia de estado. El núcleo no sabe nada de SMTP: arma el
// mensaje y lo entrega; el éxito o fracaso del envío no afecta la transición.
type StatusNotification struct {
	RecipientEmail    string
	CustomerName      string
	OrderID           string
	DeviceDescription string
	StatusLabel       string
	TrackingURL       string
}

// Notifier define la frontera de notificaciones (transporte externo).
type Notifier interface {
	StatusChanged(ctx context.Context, msg StatusNotification) error
}

// SiteURLs arma las URLs públicas del taller (seguimiento por token).
// Lo satisface config.SiteConfig.
type SiteURLs interface {
	TrackingURL(token string) string
}
