package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendaweb/tienda/internal/repo"
)

func TestCatalogService_SeedIfEmpty_Idempotent(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	inserted, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, inserted)

	inserted, err = svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, inserted)

	products, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_ListAll_InsertionOrder(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)

	products, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse Gamer", products[0].Name)
	assert.Equal(t, "Teclado Gamer", products[1].Name)
	assert.Less(t, products[0].ID, products[1].ID)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
