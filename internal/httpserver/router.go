package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CartHandler    *CartHTTP
	CatalogHandler *CatalogHTTP
	RequireLogin   echo.MiddlewareFunc
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", d.CatalogHandler.Home)
	e.GET("/crear_productos", d.CatalogHandler.SeedProducts)

	e.GET("/register", d.AuthHandler.RegisterPage)
	e.POST("/register", d.AuthHandler.Register)
	e.GET("/login", d.AuthHandler.LoginPage)
	e.POST("/login", d.AuthHandler.Login)

	authed := e.Group("", d.RequireLogin)
	authed.GET("/agregar_carrito/:id", d.CartHandler.AddToCart)
	authed.GET("/carrito", d.CartHandler.GetCart)
	authed.GET("/eliminar_carrito/:id", d.CartHandler.DeleteFromCart)
	authed.GET("/logout", d.AuthHandler.Logout)
}
