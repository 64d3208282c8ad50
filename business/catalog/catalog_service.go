package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"sareeMarket/domain"
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Store contract interface
type Store interface {
	View(ctx context.Context, fn func(*domain.Document) error) error
	Update(ctx context.Context, fn func(*domain.Document) error) error
}

// Filter holds the independently optional catalog query parameters.
// Zero values mean "not supplied"; supplied filters compose with AND.
type Filter struct {
	Q        string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

// CreateInput carries the admin-supplied fields for a new product.
// Name and price are required; everything else defaults.
type CreateInput struct {
	Name     string
	Price    float64
	HasPrice bool
	Category string
	Color    string
	Desc     string
	Images   []string
	Stock    int
}

// Patch applies only the fields present in an update request.
type Patch struct {
	Name     *string
	Price    *float64
	Category *string
	Color    *string
	Desc     *string
	Images   *[]string
	Stock    *int
}

type CatalogService struct {
	store Store
}

func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{store: store}
}

// List returns the products matching every supplied filter, in store
// order unless a price sort is requested.
func (s *CatalogService) List(ctx context.Context, filter Filter) ([]domain.Product, error) {
	var list []domain.Product

	err := s.store.View(ctx, func(doc *domain.Document) error {
		list = make([]domain.Product, 0, len(doc.Products))
		q := strings.ToLower(filter.Q)

		for _, p := range doc.Products {
			if q != "" &&
				!strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.Desc), q) {
				continue
			}
			if filter.Category != "" && p.Category != filter.Category {
				continue
			}
			if filter.MinPrice != nil && p.Price < *filter.MinPrice {
				continue
			}
			if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
				continue
			}

			list = append(list, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	switch filter.SortBy {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	}

	return list, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product

	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, p := range doc.Products {
			if p.ID == id {
				product = p
				return nil
			}
		}

		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	})

	return product, err
}

// Create adds a product with defaulted optional fields and a fresh id.
func (s *CatalogService) Create(ctx context.Context, input CreateInput) (domain.Product, error) {
	if input.Name == "" || !input.HasPrice {
		return domain.Product{}, fmt.Errorf("%w: name & price required", domain.ErrValidation)
	}

	product := domain.Product{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Color:    input.Color,
		Desc:     input.Desc,
		Images:   input.Images,
		Stock:    input.Stock,
	}
	if product.Category == "" {
		product.Category = domain.DefaultCategory
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Products = append(doc.Products, product)
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

// Update applies the supplied fields to an existing product.
func (s *CatalogService) Update(ctx context.Context, id string, patch Patch) (domain.Product, error) {
	var updated domain.Product

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != id {
				continue
			}

			p := &doc.Products[i]
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Price != nil {
				p.Price = *patch.Price
			}
			if patch.Category != nil {
				p.Category = *patch.Category
			}
			if patch.Color != nil {
				p.Color = *patch.Color
			}
			if patch.Desc != nil {
				p.Desc = *patch.Desc
			}
			if patch.Images != nil {
				p.Images = *patch.Images
			}
			if patch.Stock != nil {
				p.Stock = *patch.Stock
			}

			updated = *p
			return nil
		}

		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	})

	return updated, err
}

// Delete removes a product. Deleting an absent product is not an error.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(doc *domain.Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}

		doc.Products = kept
		return nil
	})
}
