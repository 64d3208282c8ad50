package cart

import (
	"context"

	"sareeMarket/domain"
)

// Store contract interface
type Store interface {
	View(ctx context.Context, fn func(*domain.Document) error) error
	Update(ctx context.Context, fn func(*domain.Document) error) error
}

type CartService struct {
	store Store
}

func NewCartService(store Store) *CartService {
	return &CartService{store: store}
}

// AddItem puts qty of a product into the user's cart, creating the
// cart on first use and accumulating quantity on an existing line.
// An invalid quantity falls back to 1. The product id is not checked
// against the catalog; dangling lines resolve lazily on read.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		qty = 1
	}

	var cart domain.Cart

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		idx := -1
		for i := range doc.Carts {
			if doc.Carts[i].UserID == userID {
				idx = i
				break
			}
		}

		if idx == -1 {
			doc.Carts = append(doc.Carts, domain.Cart{UserID: userID, Items: []domain.CartItem{}})
			idx = len(doc.Carts) - 1
		}

		c := &doc.Carts[idx]
		found := false
		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				c.Items[i].Qty += qty
				found = true
				break
			}
		}

		if !found {
			c.Items = append(c.Items, domain.CartItem{ProductID: productID, Qty: qty})
		}

		cart = *c
		return nil
	})

	return cart, err
}

// GetCart joins the cart lines with current product data. A line
// whose product no longer exists keeps an empty placeholder product.
// A user without a cart gets an empty one.
func (s *CartService) GetCart(ctx context.Context, userID string) (domain.CartView, error) {
	view := domain.CartView{UserID: userID, Items: []domain.CartViewItem{}}

	err := s.store.View(ctx, func(doc *domain.Document) error {
		var cart *domain.Cart
		for i := range doc.Carts {
			if doc.Carts[i].UserID == userID {
				cart = &doc.Carts[i]
				break
			}
		}

		if cart == nil {
			return nil
		}

		for _, item := range cart.Items {
			var product domain.Product
			for _, p := range doc.Products {
				if p.ID == item.ProductID {
					product = p
					break
				}
			}

			view.Items = append(view.Items, domain.CartViewItem{Product: product, Qty: item.Qty})
		}

		return nil
	})

	return view, err
}

// RemoveItem drops a product line from the user's cart. A missing
// cart or line is a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (domain.Cart, error) {
	cart := domain.Cart{UserID: userID, Items: []domain.CartItem{}}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		for i := range doc.Carts {
			if doc.Carts[i].UserID != userID {
				continue
			}

			c := &doc.Carts[i]
			kept := c.Items[:0]
			for _, item := range c.Items {
				if item.ProductID != productID {
					kept = append(kept, item)
				}
			}

			c.Items = kept
			cart = *c
			return nil
		}

		return nil
	})

	return cart, err
}
