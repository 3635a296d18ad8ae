package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendaweb/tienda/internal/logging"
	"github.com/tiendaweb/tienda/internal/service"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) Home(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.home")

	products, err := h.Svc.ListAll(ctx)
	if err != nil {
		l.Error("home_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
		"notice":   TakeFlash(c),
	})
}

func (h *CatalogHTTP) SeedProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.seed")

	inserted, err := h.Svc.SeedIfEmpty(ctx)
	if err != nil {
		l.Error("seed_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal server error")
	}

	if inserted == 0 {
		return c.String(http.StatusOK, "Los productos ya existen")
	}
	return c.String(http.StatusOK, "Productos creados")
}
