package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tiendaweb/tienda/internal/logging"
	"github.com/tiendaweb/tienda/internal/models"
	"github.com/tiendaweb/tienda/internal/mykafka"
	"github.com/tiendaweb/tienda/internal/repo"
	"github.com/tiendaweb/tienda/internal/transport"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotFound        = errors.New("cart item not found")
	ErrForbidden       = errors.New("not permitted")
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// AddItem puts one unit of the product into the user's cart. A repeat add
// for the same product increments the existing row instead of duplicating it.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add", "user_id", userID)

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("add_item_failed", "reason", "unknown product", "product_id", productID)
			return nil, ErrProductNotFound
		}
		l.Error("add_item_error", "error", err)
		return nil, err
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		l.Error("add_item_error", "error", err)
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(userID), map[string]any{
		"type":      "cart_item_added",
		"userID":    userID,
		"productID": productID,
		"quantity":  item.Quantity,
	})

	l.Info("item added to cart", "product_id", productID, "quantity", item.Quantity)
	return &item, nil
}

// ListItems returns the user's cart joined with product data, oldest first.
// An empty cart yields an empty slice, not nil.
func (s *CartService) ListItems(ctx context.Context, userID uint) ([]transport.CartView, error) {
	return s.Repo.GetCartView(ctx, userID)
}

// ComputeTotal sums price × quantity over the given rows.
func (s *CartService) ComputeTotal(items []transport.CartView) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// RemoveItem deletes the row when it belongs to the requester. A row owned
// by someone else yields ErrForbidden without confirming its existence.
func (s *CartService) RemoveItem(ctx context.Context, itemID, requesterID uint) error {
	l := logging.FromContext(ctx).With("svc", "cart.remove", "user_id", requesterID)

	item, err := s.Repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("remove_item_failed", "reason", "unknown item", "item_id", itemID)
			return ErrNotFound
		}
		l.Error("remove_item_error", "error", err)
		return err
	}

	if item.UserID != requesterID {
		l.Warn("remove_item_forbidden", "item_id", itemID)
		return ErrForbidden
	}

	if err := s.Repo.DeleteCartItem(ctx, itemID); err != nil {
		l.Error("remove_item_error", "error", err)
		return err
	}

	s.publish(ctx, fmt.Sprint(requesterID), map[string]any{
		"type":      "cart_item_removed",
		"userID":    requesterID,
		"productID": item.ProductID,
	})

	l.Info("item removed from cart", "item_id", itemID)
	return nil
}

func (s *CartService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, "cart_events", key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", "cart_events", "error", err)
	}
}
