package main

import (
	"context"

	"github.com/google/uuid"

	"sareeMarket/domain"
	"sareeMarket/internal/repository/jsonfile"
	"sareeMarket/pkg/logger"
)

// seedProducts fills an empty catalog with sample products so a fresh
// install has something to browse.
func seedProducts(store *jsonfile.Store) error {
	seeded := false

	err := store.Update(context.Background(), func(doc *domain.Document) error {
		if len(doc.Products) > 0 {
			return nil
		}

		doc.Products = []domain.Product{
			{
				ID:       uuid.NewString(),
				Name:     "Kanchipuram Pattu Saree - Maroon",
				Price:    8999,
				Category: "Pattu",
				Color:    "Maroon",
				Desc:     "Traditional Kanchipuram pattu saree with zari border.",
				Images:   []string{"https://via.placeholder.com/800x800?text=Kanchipuram+Maroon"},
				Stock:    5,
			},
			{
				ID:       uuid.NewString(),
				Name:     "Soft Silk Saree - Pastel Pink",
				Price:    3499,
				Category: "Silk",
				Color:    "Pink",
				Desc:     "Soft silk saree for parties and weddings.",
				Images:   []string{"https://via.placeholder.com/800x800?text=Soft+Silk+Pink"},
				Stock:    8,
			},
			{
				ID:       uuid.NewString(),
				Name:     "Banarasi Saree - Gold Zari",
				Price:    12999,
				Category: "Banarasi",
				Color:    "Gold",
				Desc:     "Rich Banarasi with intricate floral patterns.",
				Images:   []string{"https://via.placeholder.com/800x800?text=Banarasi+Gold"},
				Stock:    3,
			},
			{
				ID:       uuid.NewString(),
				Name:     "Cotton Daily Wear Saree - Blue",
				Price:    1199,
				Category: "Cotton",
				Color:    "Blue",
				Desc:     "Comfortable cotton saree for daily wear.",
				Images:   []string{"https://via.placeholder.com/800x800?text=Cotton+Blue"},
				Stock:    20,
			},
		}

		seeded = true
		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		logger.Info("Seeded sample products")
	}

	return nil
}
