package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stockdesk/inventory-system/internal/api/metrics"
	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

// InventoryHandler handles HTTP requests for inventory items.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// itemID parses the :id path parameter. A non-numeric id cannot address any
// item, so it maps to the same not-found outcome as an unknown numeric id.
func itemID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrItemNotFound
	}
	return id, nil
}

// List returns all inventory items, most recently created first.
//
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  listItemsResponse
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listItemsResponse{
		Success: true,
		Items:   toItemResponses(items),
	})
}

// Create adds a new inventory item.
//
// @Summary      Create an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body      itemRequest  true  "Item fields"
// @Success      201   {object}  createItemResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Create(c.Request().Context(), ports.ItemInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ItemMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, createItemResponse{
		Success: true,
		Item:    toItemResponse(*item),
	})
}

// Update replaces every field of an existing item.
//
// @Summary      Update an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Item id"
// @Param        body  body      itemRequest  true  "Item fields"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.service.Update(c.Request().Context(), id, ports.ItemInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Quantity: req.Quantity,
		Price:    req.Price,
	}); err != nil {
		return err
	}

	metrics.ItemMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Item updated successfully",
	})
}

// Delete removes an item.
//
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Param        id  path      int  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ItemMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Item deleted successfully",
	})
}
