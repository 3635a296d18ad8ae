package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendaweb/tienda/internal/httpserver"
	"github.com/tiendaweb/tienda/internal/service"
	"github.com/tiendaweb/tienda/internal/tokens"
)

// RequireLogin resolves the session cookie into a user and threads the
// identity into the request context. The user row is fetched fresh on every
// request, so a deleted account stops authenticating immediately.
func RequireLogin(svc *service.AuthService, secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(httpserver.SessionCookie)
			if err != nil || ck.Value == "" {
				return redirectToLogin(c)
			}

			claims, err := tokens.SessionClaimsFromToken(ck.Value, secret)
			if err != nil {
				return redirectToLogin(c)
			}

			userID, err := claims.UserID()
			if err != nil {
				return redirectToLogin(c)
			}

			user, err := svc.CurrentUser(c.Request().Context(), userID)
			if err != nil {
				return redirectToLogin(c)
			}

			c.Set(httpserver.ContextUserKey, user.ID)
			c.Set("user", user)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context) error {
	httpserver.SetFlash(c, "Inicia sesión para continuar.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
