package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiendaweb/tienda/internal/models"
	"github.com/tiendaweb/tienda/internal/transport"
)

// GetCartView returns the user's cart rows joined with their products, in
// insertion order. The join is explicit so callers get plain flattened
// records instead of lazily loaded associations.
func (r *GormRepo) GetCartView(ctx context.Context, userID uint) ([]transport.CartView, error) {
	views := make([]transport.CartView, 0)
	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id AS item_id, cart_items.product_id, products.name, products.price, products.image, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// AddToCart increments the quantity of the (user, product) row, creating it
// with quantity 1 when absent. The insert and the increment are one
// ON CONFLICT statement on the (user_id, product_id) uniqueIndex, so a
// concurrent first add lands on the increment instead of a duplicate row.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", item.Quantity),
			}),
		}).Create(item).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(item).Error
	})
}

func (r *GormRepo) GetCartItem(ctx context.Context, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, itemID uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.CartItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
