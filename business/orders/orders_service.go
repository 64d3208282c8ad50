package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sareeMarket/domain"
)

// Store contract interface
type Store interface {
	View(ctx context.Context, fn func(*domain.Document) error) error
	Update(ctx context.Context, fn func(*domain.Document) error) error
}

type OrdersService struct {
	store    Store
	validate *validator.Validate
}

func NewOrdersService(store Store, validate *validator.Validate) *OrdersService {
	return &OrdersService{store: store, validate: validate}
}

// PlaceOrder converts the user's cart into an immutable cash-on-delivery
// order. Line items snapshot the current product name and price; a
// product deleted since it was carted contributes an empty name and a
// zero price. The cart record is removed in the same document rewrite.
// Stock is not decremented.
func (s *OrdersService) PlaceOrder(ctx context.Context, userID string, shipping domain.Shipping) (domain.Order, error) {
	if err := s.validate.Struct(shipping); err != nil {
		return domain.Order{}, fmt.Errorf("%w: complete shipping info required (name,mobile,address,city,pincode)", domain.ErrValidation)
	}

	var order domain.Order

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		var cart *domain.Cart
		for i := range doc.Carts {
			if doc.Carts[i].UserID == userID {
				cart = &doc.Carts[i]
				break
			}
		}

		if cart == nil || len(cart.Items) == 0 {
			return fmt.Errorf("%w: cart empty", domain.ErrValidation)
		}

		var total float64
		items := make([]domain.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			var product domain.Product
			for _, p := range doc.Products {
				if p.ID == line.ProductID {
					product = p
					break
				}
			}

			total += product.Price * float64(line.Qty)
			items = append(items, domain.OrderItem{
				ProductID: line.ProductID,
				Name:      product.Name,
				Price:     product.Price,
				Qty:       line.Qty,
			})
		}

		order = domain.Order{
			ID:          uuid.NewString(),
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			PaymentMode: domain.PaymentModeCOD,
			OrderStatus: domain.OrderStatusPlaced,
			Shipping:    shipping,
			CreatedAt:   time.Now().UTC(),
		}
		doc.Orders = append(doc.Orders, order)

		kept := doc.Carts[:0]
		for _, c := range doc.Carts {
			if c.UserID != userID {
				kept = append(kept, c)
			}
		}
		doc.Carts = kept

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

// ListForUser returns the user's orders in store order.
func (s *OrdersService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var list []domain.Order

	err := s.store.View(ctx, func(doc *domain.Document) error {
		list = make([]domain.Order, 0)
		for _, o := range doc.Orders {
			if o.UserID == userID {
				list = append(list, o)
			}
		}

		return nil
	})

	return list, err
}

// ListAll returns every order.
func (s *OrdersService) ListAll(ctx context.Context) ([]domain.Order, error) {
	var list []domain.Order

	err := s.store.View(ctx, func(doc *domain.Document) error {
		list = make([]domain.Order, 0, len(doc.Orders))
		list = append(list, doc.Orders...)
		return nil
	})

	return list, err
}
