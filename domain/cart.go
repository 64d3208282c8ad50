package domain

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// CartView is a cart joined with current product data. A line whose
// product was deleted keeps a zero-value Product placeholder.
type CartView struct {
	UserID string         `json:"userId"`
	Items  []CartViewItem `json:"items"`
}

type CartViewItem struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}
