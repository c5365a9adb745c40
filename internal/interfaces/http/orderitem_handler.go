package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/usecase"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

// OrderItemHandler maneja las peticiones HTTP para OrderItem (protegido).
type OrderItemHandler struct {
	uc *usecase.OrderItemUseCase
}

// NewOrderItemHandler construye el handler.
func NewOrderItemHandler(uc *usecase.OrderItemUseCase) *OrderItemHandler {
	return &OrderItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar líneas de orden de la empresa
// @Tags         order-items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderItemResponse
// @Router       /api/order-items [get]
func (h *OrderItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea de orden por ID
// @Tags         order-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la línea"
// @Success      200  {object}  dto.OrderItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-items/{id} [get]
func (h *OrderItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar línea a una orden (valida tipo producto vs bodega)
// @Tags         order-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderItemRequest  true  "Datos de la línea"
// @Success      201   {object}  dto.OrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/order-items [post]
func (h *OrderItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID == "" || in.ProductID == "" || in.Price == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderId, productId y price son requeridos"})
	}
	out, err := h.uc.Create(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cantidad/precio de una línea
// @Tags         order-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea"
// @Param        body  body  dto.UpdateOrderItemRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/order-items/{id} [put]
func (h *OrderItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar línea (owner: físico; operator: lógico)
// @Tags         order-items
// @Security     Bearer
// @Param        id   path  string  true  "ID de la línea"
// @Success      204  "sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/order-items/{id} [delete]
func (h *OrderItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetCompanyID(c), entity.UserRole(GetRole(c))); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
