package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de reparación.
const (
	StatusIngresado     = "INGRESADO"
	StatusEnRevision    = "EN_REVISION"
	StatusPresupuestado = "PRESUPUESTADO"
	StatusReparando     = "REPARANDO"
	StatusReparado      = "REPARADO"
	StatusEntregado     = "ENTREGADO"
	StatusCancelado     = "CANCELADO"
)

// statusLabels etiquetas legibles por estado, para notificaciones y comprobantes.
var statusLabels = map[string]string{
	StatusIngresado:     "Ingresado",
	StatusEnRevision:    "En revisión",
	StatusPresupuestado: "Presupuestado",
	StatusReparando:     "Reparando",
	StatusReparado:      "Reparado",
	StatusEntregado:     "Entregado",
	StatusCancelado:     "Cancelado",
}

// ValidStatus verifica que el valor sea uno de los estados conocidos.
func ValidStatus(s string) bool {
	_, ok := statusLabels[s]
	return ok
}

// StatusLabel devuelve la etiqueta legible de un estado; el estado crudo si no se conoce.
func StatusLabel(s string) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return s
}

// TerminalStatus indica si un estado no admite más transiciones.
func TerminalStatus(s string) bool {
	return s == StatusEntregado || s == StatusCancelado
}

// RepairOrder representa una orden de reparación de un equipo.
//
// StockDeducted pasa de false a true exactamente una vez por orden (al llegar
// a REPARADO) y nunca vuelve atrás. TrackingToken es un identificador opaco
// de 128 bits, asignado al crear la orden e inmutable, que habilita el
// seguimiento público sin autenticación.
type RepairOrder struct {
	ID              string
	DeviceID        string
	TechnicianID    *string // asignación opcional
	ReportedProblem string
	Diagnosis       string
	EstimatedPrice  decimal.Decimal
	Status          string
	StockDeducted   bool
	TrackingToken   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
