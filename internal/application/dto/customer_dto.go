package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=180"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=120"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=180"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDeviceRequest entrada para registrar un equipo.
type CreateDeviceRequest struct {
	CustomerID   string `json:"customer_id" validate:"required"`
	Type         string `json:"type" validate:"omitempty,max=60"`
	Brand        string `json:"brand" validate:"required,max=80"`
	Model        string `json:"model" validate:"required,max=80"`
	SerialNumber string `json:"serial_number" validate:"omitempty,max=120"`
	IntakeNotes  string `json:"intake_notes"`
}

// UpdateDeviceRequest entrada para actualizar un equipo.
type UpdateDeviceRequest struct {
	Type         *string `json:"type" validate:"omitempty,max=60"`
	Brand        *string `json:"brand" validate:"omitempty,max=80"`
	Model        *string `json:"model" validate:"omitempty,max=80"`
	SerialNumber *string `json:"serial_number" validate:"omitempty,max=120"`
	IntakeNotes  *string `json:"intake_notes"`
}

// DeviceResponse salida de un equipo.
type DeviceResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Type         string    `json:"type"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serial_number,omitempty"`
	IntakeNotes  string    `json:"intake_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
