package server

import (
	"eato/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Start(addr string, menuH *handler.MenuHandler, orderH *handler.OrderHandler, invH *handler.InventoryHandler) error {
	e := echo.New()
	e.HideBanner = true

	// /menu/ と /menu を同じ扱いにする
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, menuH, orderH, invH)

	return e.Start(addr)
}
