package handler

import (
	"net/http"
	"strconv"

	"eato/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /inventory のAPI。/menu と同じCRUD形。
type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

type InventoryItemRequest struct {
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit"`
	Threshold *float64 `json:"threshold"`
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/inventory")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

func (h *InventoryHandler) create(c echo.Context) error {
	var req InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	item, err := h.uc.CreateInventoryItem(c.Request().Context(), usecase.InventoryItemInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Threshold: req.Threshold,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) list(c echo.Context) error {
	skip, limit, err := parsePagination(c)
	if err != nil {
		return writeError(c, err)
	}

	items, err := h.uc.ListInventoryItems(c.Request().Context(), skip, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	item, err := h.uc.GetInventoryItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req InventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	item, err := h.uc.UpdateInventoryItem(c.Request().Context(), id, usecase.InventoryItemInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Threshold: req.Threshold,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteInventoryItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
