package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de repuesto al crear una orden o agregarla después.
// UnitPrice nil o cero captura el precio vigente del repuesto.
type OrderItemInput struct {
	PartID    string           `json:"part_id" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateOrderRequest entrada para crear una orden de reparación.
type CreateOrderRequest struct {
	DeviceID        string           `json:"device_id" validate:"required"`
	TechnicianID    *string          `json:"technician_id,omitempty"`
	ReportedProblem string           `json:"reported_problem" validate:"required"`
	Diagnosis       string           `json:"diagnosis"`
	EstimatedPrice  decimal.Decimal  `json:"estimated_price"`
	Items           []OrderItemInput `json:"items"`
}

// UpdateOrderRequest entrada para editar una orden (cualquier camino de edición
// que toque Status pasa por el mismo manejador de transiciones).
type UpdateOrderRequest struct {
	TechnicianID    *string          `json:"technician_id,omitempty"`
	ReportedProblem *string          `json:"reported_problem,omitempty"`
	Diagnosis       *string          `json:"diagnosis,omitempty"`
	EstimatedPrice  *decimal.Decimal `json:"estimated_price,omitempty"`
	Status          *string          `json:"status,omitempty"`
}

// ChangeStatusRequest body para POST /api/ordenes/:id/estado.
type ChangeStatusRequest struct {
	Status         string           `json:"status" validate:"required"`
	Diagnosis      *string          `json:"diagnosis,omitempty"`
	EstimatedPrice *decimal.Decimal `json:"estimated_price,omitempty"`
	TechnicianID   *string          `json:"technician_id,omitempty"`
}

// OrderItemResponse línea de la orden con el precio capturado.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	PartID    string          `json:"part_id"`
	PartName  string          `json:"part_name,omitempty"`
	SKU       string          `json:"sku,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden de reparación.
type OrderResponse struct {
	ID              string              `json:"id"`
	DeviceID        string              `json:"device_id"`
	TechnicianID    *string             `json:"technician_id,omitempty"`
	ReportedProblem string              `json:"reported_problem"`
	Diagnosis       string              `json:"diagnosis,omitempty"`
	EstimatedPrice  decimal.Decimal     `json:"estimated_price"`
	Status          string              `json:"status"`
	StatusLabel     string              `json:"status_label"`
	StockDeducted   bool                `json:"stock_deducted"`
	TrackingURL     string              `json:"tracking_url"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// TransitionResponse resultado estructurado de un cambio de estado.
type TransitionResponse struct {
	Order            OrderResponse `json:"order"`
	PreviousStatus   string        `json:"previous_status"`
	StatusChanged    bool          `json:"status_changed"`
	StockDeducted    bool          `json:"stock_deducted"`    // true si ESTA transición descontó stock
	NotificationSent bool          `json:"notification_sent"` // entrega best-effort
}

// TrackingResponse vista pública de una orden por token (sin datos sensibles).
type TrackingResponse struct {
	OrderID           string              `json:"order_id"`
	Status            string              `json:"status"`
	StatusLabel       string              `json:"status_label"`
	CustomerName      string              `json:"customer_name"`
	DeviceDescription string              `json:"device_description"`
	Items             []OrderItemResponse `json:"items,omitempty"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// DashboardResponse métricas del tablero del taller.
type DashboardResponse struct {
	OrdersByStatus   map[string]int64 `json:"orders_by_status"`
	LowStockParts    []PartResponse   `json:"low_stock_parts"`
	EstimatedBilling decimal.Decimal  `json:"estimated_billing"` // REPARADO + ENTREGADO
}
