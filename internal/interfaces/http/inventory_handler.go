package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/application/inventory"
	"github.com/malarguetech/taller-api/internal/application/usecase"
	"github.com/malarguetech/taller-api/internal/domain"
)

// InventoryHandler maneja movimientos de stock manuales (protegido).
type InventoryHandler struct {
	ledger *inventory.StockLedger
	parts  *usecase.PartUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.StockLedger, parts *usecase.PartUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, parts: parts}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (reposición, rotura, ajuste)
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.PartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledger.RegisterMovement(c.UserContext(), in.PartID, in.Type, in.Quantity, in.Reason)
	if err != nil {
		switch {
		case err == domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "part_id, type (ENTRADA|SALIDA) y quantity > 0 son requeridos"})
		case err == domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
		case isInsufficientStock(err):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	// Devolver el repuesto con el stock ya actualizado
	out, err := h.parts.GetByID(in.PartID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos de stock del taller
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/inventario/movimientos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.parts.ListAllMovements(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// isInsufficientStock detecta el sentinel aunque venga envuelto con el
// detalle del repuesto (disponible vs requerido).
func isInsufficientStock(err error) bool {
	return errors.Is(err, domain.ErrInsufficientStock)
}
