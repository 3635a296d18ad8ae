package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendaweb/tienda/internal/logging"
	"github.com/tiendaweb/tienda/internal/service"
	"github.com/tiendaweb/tienda/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"page":   "register",
		"notice": TakeFlash(c),
	})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if _, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			SetFlash(c, "El correo ya está registrado.")
			return c.Redirect(http.StatusSeeOther, "/register")
		case errors.Is(err, service.ErrValidation):
			SetFlash(c, "Todos los campos son obligatorios.")
			return c.Redirect(http.StatusSeeOther, "/register")
		default:
			l.Error("register_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, "internal server error")
		}
	}

	SetFlash(c, "Registro exitoso. Inicia sesión ahora.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHTTP) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"page":   "login",
		"notice": TakeFlash(c),
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrValidation) {
			SetFlash(c, "Correo o contraseña incorrectos.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal server error")
	}

	c.SetCookie(CreateCookie(SessionCookie, res.Token, "/", res.SessionExp))
	SetFlash(c, "Inicio de sesión exitoso.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session unconditionally; a request without an active
// session still succeeds.
func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(DeleteCookie(SessionCookie, "/"))
	SetFlash(c, "Sesión cerrada correctamente.")
	return c.Redirect(http.StatusSeeOther, "/")
}
