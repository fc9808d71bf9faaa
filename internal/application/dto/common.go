package dto

// ErrorResponse cuerpo de error HTTP: código estable para el cliente y
// mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
