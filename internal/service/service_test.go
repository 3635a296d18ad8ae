package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tiendaweb/tienda/internal/hash"
	"github.com/tiendaweb/tienda/internal/models"
	"github.com/tiendaweb/tienda/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))

	return repo.New(db)
}

func createTestUser(t *testing.T, r *repo.GormRepo, name, email string) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("pw123")
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, PasswordHash: pwHash}
	require.NoError(t, r.DB.Create(&user).Error)
	return &user
}

func createTestProduct(t *testing.T, r *repo.GormRepo, name string, price float64) *models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: price, Image: "test.jpg"}
	require.NoError(t, r.DB.Create(&product).Error)
	return &product
}
