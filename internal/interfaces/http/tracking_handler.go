package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/application/taller"
	"github.com/malarguetech/taller-api/internal/domain"
)

// TrackingHandler maneja el seguimiento público por token (sin autenticación).
type TrackingHandler struct {
	uc *taller.OrderUseCase
}

// NewTrackingHandler construye el handler.
func NewTrackingHandler(uc *taller.OrderUseCase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

// Track godoc
// @Summary      Consultar estado de una reparación por token
// @Description  Vista pública: estado, equipo y repuestos presupuestados. Token desconocido responde 404 sin más detalle.
// @Tags         seguimiento
// @Produce      json
// @Param        token  path  string  true  "Token de seguimiento"
// @Success      200    {object}  dto.TrackingResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /seguimiento/{token} [get]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	out, err := h.uc.Track(c.UserContext(), c.Params("token"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
