package domain

// DefaultCategory is applied when a product is created without one.
const DefaultCategory = "Sarees"

type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Desc     string   `json:"desc"`
	Images   []string `json:"images"`
	Stock    int      `json:"stock"`
}
