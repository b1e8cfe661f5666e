package server

import (
	"eato/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, menuH *handler.MenuHandler, orderH *handler.OrderHandler, invH *handler.InventoryHandler) {
	menuH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	invH.RegisterRoutes(e)
}
