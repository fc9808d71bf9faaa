// Package mail implementa el envío de notificaciones por correo vía SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/malarguetech/taller-api/internal/application/taller"
	"github.com/malarguetech/taller-api/pkg/config"
)

var _ taller.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier implementa taller.Notifier sobre SMTP (gomail).
// Con host vacío queda deshabilitado: StatusChanged no envía nada y retorna
// nil, así el flujo de órdenes funciona igual en entornos sin correo.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

// NewSMTPNotifier construye el notificador con la configuración SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Enabled indica si hay un servidor SMTP configurado.
func (n *SMTPNotifier) Enabled() bool {
	return n.cfg.Host != ""
}

// StatusChanged envía al cliente el aviso de cambio de estado de su orden.
func (n *SMTPNotifier) StatusChanged(_ context.Context, msg taller.StatusNotification) error {
	if !n.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", msg.RecipientEmail)
	m.SetHeader("Subject", fmt.Sprintf("Actualización de tu equipo - Orden #%s", msg.OrderID))
	m.SetBody("text/plain", body(msg))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}

func body(msg taller.StatusNotification) string {
	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"Tu equipo (%s) cambió de estado: %s.\n\n"+
			"Podés seguir el avance de la reparación en:\n%s\n\n"+
			"Gracias por confiar en nosotros.",
		msg.CustomerName, msg.DeviceDescription, msg.StatusLabel, msg.TrackingURL,
	)
}
