package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido, solo lectura).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// BestSellingProducts godoc
// @Summary      Productos más vendidos (solo órdenes de venta)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {object}  dto.BestSellingProductsReport
// @Router       /api/reports/best-selling-products [get]
func (h *ReportHandler) BestSellingProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.BestSellingProducts(c.UserContext(), GetCompanyID(c), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AvailableStock godoc
// @Summary      Stock disponible por bodega
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  query  string  false  "Limitar a una bodega"
// @Success      200  {array}  dto.AvailableStockReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/available-stock [get]
func (h *ReportHandler) AvailableStock(c *fiber.Ctx) error {
	out, err := h.uc.AvailableStock(c.UserContext(), GetCompanyID(c), c.Query("warehouseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HighestStockPerWarehouse godoc
// @Summary      Stock por producto agrupado por bodega (descendente)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseProductStockItem
// @Router       /api/reports/highest-stock-per-warehouse [get]
func (h *ReportHandler) HighestStockPerWarehouse(c *fiber.Ctx) error {
	out, err := h.uc.HighestStockPerWarehouse(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ClientWithMostOrders godoc
// @Summary      Cliente con más órdenes (null si no hay órdenes)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TopCustomerResponse
// @Router       /api/reports/client-with-most-orders [get]
func (h *ReportHandler) ClientWithMostOrders(c *fiber.Ctx) error {
	out, err := h.uc.ClientWithMostOrders(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
