package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tiendaweb/tienda/internal/logging"
	"github.com/tiendaweb/tienda/internal/service"
	"github.com/tiendaweb/tienda/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := UserID(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 401, "error", err)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	if _, err := h.Svc.AddItem(ctx, userID, uint(productID)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal server error")
	}

	SetFlash(c, "Producto agregado al carrito 🛒")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := UserID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "error", err)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	items, err := h.Svc.ListItems(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, transport.CartResponse{
		Items: items,
		Total: h.Svc.ComputeTotal(items),
	})
}

func (h *CartHTTP) DeleteFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete")

	userID, err := UserID(c)
	if err != nil {
		l.Warn("delete_from_cart_error", "status", 401, "error", err)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_from_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid item id")
	}

	if err := h.Svc.RemoveItem(ctx, uint(itemID), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		case errors.Is(err, service.ErrForbidden):
			SetFlash(c, "Acceso no permitido")
			return c.Redirect(http.StatusSeeOther, "/carrito")
		default:
			l.Error("delete_from_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, "internal server error")
		}
	}

	SetFlash(c, "Producto eliminado del carrito")
	return c.Redirect(http.StatusSeeOther, "/carrito")
}
