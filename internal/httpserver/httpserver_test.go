package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tiendaweb/tienda/internal/httpserver"
	authmw "github.com/tiendaweb/tienda/internal/middleware/auth"
	"github.com/tiendaweb/tienda/internal/models"
	"github.com/tiendaweb/tienda/internal/repo"
	"github.com/tiendaweb/tienda/internal/service"
)

var testSecret = []byte("test-session-secret")

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))

	store := repo.New(db)
	authSvc := &service.AuthService{Repo: store, SessionSecret: testSecret}
	cartSvc := &service.CartService{Repo: store}
	catalogSvc := &service.CatalogService{Repo: store}

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		RequireLogin:   authmw.RequireLogin(authSvc, testSecret),
	})

	return &testEnv{T: t, E: e, DB: db, Repo: store}
}

func (env *testEnv) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func (env *testEnv) register(name, email, password string) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(env.T, http.StatusSeeOther, rec.Code)
	require.Equal(env.T, "/login", rec.Header().Get(echo.HeaderLocation))
}

func (env *testEnv) login(email, password string) *http.Cookie {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(env.T, http.StatusSeeOther, rec.Code)
	require.Equal(env.T, "/", rec.Header().Get(echo.HeaderLocation))

	ck := cookieByName(rec, httpserver.SessionCookie)
	require.NotNil(env.T, ck)
	require.NotEmpty(env.T, ck.Value)
	return ck
}

func (env *testEnv) seedCatalog() []models.Product {
	env.T.Helper()

	rec := env.do(http.MethodGet, "/crear_productos", nil)
	require.Equal(env.T, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(env.T, env.DB.Order("id ASC").Find(&products).Error)
	require.NotEmpty(env.T, products)
	return products
}
