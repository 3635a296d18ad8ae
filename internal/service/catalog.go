package service

import (
	"context"

	"github.com/tiendaweb/tienda/internal/logging"
	"github.com/tiendaweb/tienda/internal/models"
	"github.com/tiendaweb/tienda/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

// DemoCatalog is the fixed catalog inserted by the one-time seeding route.
func DemoCatalog() []models.Product {
	return []models.Product{
		{
			Name:        "Mouse Gamer",
			Description: "Mouse RGB para gaming",
			Price:       10.00,
			Image:       "producto1.jpg",
		},
		{
			Name:        "Teclado Gamer",
			Description: "Teclado mecánico RGB",
			Price:       20.00,
			Image:       "producto2.jpg",
		},
	}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

// SeedIfEmpty populates the catalog with the demo products when the store
// has zero rows. Running it again is a no-op.
func (s *CatalogService) SeedIfEmpty(ctx context.Context) (int64, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.seed")

	inserted, err := s.Repo.SeedProducts(ctx, DemoCatalog())
	if err != nil {
		l.Error("seed_error", "error", err)
		return 0, err
	}

	if inserted > 0 {
		l.Info("catalog seeded", "inserted", inserted)
	}
	return inserted, nil
}
