package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/application/taller"
	"github.com/malarguetech/taller-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para órdenes de reparación (protegido).
type OrderHandler struct {
	uc      *taller.OrderUseCase
	receipt *taller.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *taller.OrderUseCase, receipt *taller.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Crear orden de reparación
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateOrder(c.UserContext(), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden con sus líneas
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.OrderResponse
// @Router       /api/ordenes [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListOrders(c.UserContext(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar orden (si cambia el estado, aplica la transición completa)
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.UpdateOrder(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(h.toTransitionResponse(res))
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la orden
// @Description  Al pasar a REPARADO descuenta el stock de las líneas en la misma transacción (una sola vez por orden).
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.ChangeStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.TransitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/estado [post]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(h.toTransitionResponse(res))
}

// Delete godoc
// @Summary      Eliminar orden (los movimientos de stock generados quedan)
// @Tags         ordenes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPart godoc
// @Summary      Agregar línea de repuesto a la orden
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.OrderItemInput  true  "Repuesto y cantidad"
// @Success      201   {object}  dto.OrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/repuestos [post]
func (h *OrderHandler) AddPart(c *fiber.Ctx) error {
	var in dto.OrderItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddPart(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemovePart godoc
// @Summary      Quitar línea de repuesto de la orden
// @Tags         ordenes
// @Security     Bearer
// @Param        id      path  string  true  "ID de la orden"
// @Param        itemId  path  string  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/repuestos/{itemId} [delete]
func (h *OrderHandler) RemovePart(c *fiber.Ctx) error {
	if err := h.uc.RemovePart(c.UserContext(), c.Params("id"), c.Params("itemId")); err != nil {
		return orderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TrackingQR godoc
// @Summary      QR con la URL pública de seguimiento (PNG)
// @Tags         ordenes
// @Security     Bearer
// @Produce      png
// @Param        id    path   string  true   "ID de la orden"
// @Param        size  query  int     false  "Tamaño en píxeles"  default(256)
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/qr [get]
func (h *OrderHandler) TrackingQR(c *fiber.Ctx) error {
	size := c.QueryInt("size", 256)
	if size < 64 || size > 1024 {
		size = 256
	}
	png, err := h.receipt.TrackingQR(c.UserContext(), c.Params("id"), size)
	if err != nil {
		return orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Receipt godoc
// @Summary      Comprobante de ingreso en PDF (con QR de seguimiento)
// @Tags         ordenes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/comprobante [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipt.ReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *OrderHandler) toTransitionResponse(res *taller.TransitionResult) dto.TransitionResponse {
	return dto.TransitionResponse{
		Order:            *h.uc.ToResponse(res.Order, res.Items),
		PreviousStatus:   res.PreviousStatus,
		StatusChanged:    res.StatusChanged,
		StockDeducted:    res.StockDeducted,
		NotificationSent: res.NotificationSent,
	}
}

// orderError mapea errores de dominio del flujo de órdenes a HTTP.
func orderError(c *fiber.Ctx, err error) error {
	switch {
	case err == domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case err == domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case err == domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TERMINAL_STATUS", Message: "la orden está en un estado final"})
	case isInsufficientStock(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
