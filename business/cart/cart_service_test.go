package cart

import (
	"context"
	"testing"

	"sareeMarket/domain"
	"sareeMarket/internal/repository/memory"
)

func storeWithProduct(t *testing.T, p domain.Product) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	err := store.Update(context.Background(), func(doc *domain.Document) error {
		doc.Products = append(doc.Products, p)
		return nil
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	return store
}

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	svc := NewCartService(memory.NewStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	cart, err := svc.AddItem(ctx, "u1", "p1", 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart.Items))
	}
	if cart.Items[0].Qty != 5 {
		t.Fatalf("qty = %d, want 5", cart.Items[0].Qty)
	}
}

func TestAddItem_InvalidQtyDefaultsToOne(t *testing.T) {
	svc := NewCartService(memory.NewStore())
	ctx := context.Background()

	for _, qty := range []int{0, -3} {
		cart, err := svc.AddItem(ctx, "u1", "p-new", qty)
		if err != nil {
			t.Fatalf("add with qty %d failed: %v", qty, err)
		}

		line := cart.Items[len(cart.Items)-1]
		if line.ProductID == "p-new" && line.Qty < 1 {
			t.Fatalf("qty %d stored for invalid input %d", line.Qty, qty)
		}

		// fresh cart per case
		svc = NewCartService(memory.NewStore())
	}
}

func TestAddItem_SeparateLinesPerProduct(t *testing.T) {
	svc := NewCartService(memory.NewStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.AddItem(ctx, "u1", "p2", 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(cart.Items))
	}
}

func TestGetCart_JoinsCurrentProductData(t *testing.T) {
	product := domain.Product{ID: "p1", Name: "Soft Silk Saree", Price: 3499, Images: []string{}}
	store := storeWithProduct(t, product)
	svc := NewCartService(store)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("view has %d lines, want 1", len(view.Items))
	}
	if view.Items[0].Product.Name != "Soft Silk Saree" || view.Items[0].Product.Price != 3499 {
		t.Fatalf("joined product = %+v", view.Items[0].Product)
	}
	if view.Items[0].Qty != 2 {
		t.Fatalf("qty = %d, want 2", view.Items[0].Qty)
	}
}

func TestGetCart_DanglingProductResolvesToPlaceholder(t *testing.T) {
	svc := NewCartService(memory.NewStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "u1", "deleted-product", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("view has %d lines, want 1", len(view.Items))
	}
	if view.Items[0].Product.ID != "" || view.Items[0].Product.Price != 0 {
		t.Fatalf("expected empty placeholder product, got %+v", view.Items[0].Product)
	}
}

func TestGetCart_AbsentCartIsEmpty(t *testing.T) {
	svc := NewCartService(memory.NewStore())

	view, err := svc.GetCart(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.UserID != "nobody" || len(view.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", view)
	}
}

func TestRemoveItem_NoOpWhenAbsent(t *testing.T) {
	svc := NewCartService(memory.NewStore())
	ctx := context.Background()

	// no cart at all
	if _, err := svc.RemoveItem(ctx, "u1", "p1"); err != nil {
		t.Fatalf("remove from missing cart failed: %v", err)
	}

	// cart exists, line does not
	if _, err := svc.AddItem(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart, err := svc.RemoveItem(ctx, "u1", "other")
	if err != nil {
		t.Fatalf("remove of missing line failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("remove of missing line changed the cart: %+v", cart)
	}
}

func TestRemoveItem_DropsLine(t *testing.T) {
	svc := NewCartService(memory.NewStore())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddItem(ctx, "u1", "p2", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart, err := svc.RemoveItem(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if len(cart.Items) != 1 || cart.Items[0].ProductID != "p2" {
		t.Fatalf("cart after remove = %+v", cart)
	}
}
