package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockdesk/inventory-system/internal/api/metrics"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// OrderHandler handles read and search requests over order records.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List returns all orders, newest order date first.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  listOrdersResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listOrdersResponse{
		Success: true,
		Orders:  toOrderResponses(orders),
	})
}

// Search filters orders by customer name, status, order id or date.
//
// @Summary      Search orders
// @Tags         orders
// @Produce      json
// @Param        q  query  string  false  "Search term; blank returns all orders"
// @Success      200  {object}  listOrdersResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/orders/search [get]
func (h *OrderHandler) Search(c echo.Context) error {
	orders, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	metrics.OrderSearchesTotal.Inc()
	return c.JSON(http.StatusOK, listOrdersResponse{
		Success: true,
		Orders:  toOrderResponses(orders),
	})
}
