package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tiendaweb/tienda/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// SeedProducts inserts the given catalog only when the products table is
// empty. Returns the number of rows inserted, zero on the no-op path.
func (r *GormRepo) SeedProducts(ctx context.Context, products []models.Product) (int64, error) {
	var inserted int64

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.Product{}).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 {
			return nil
		}
		res := tx.Create(&products)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
