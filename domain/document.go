package domain

// Document is the whole persisted state. Every operation reads it,
// mutates an in-memory copy and writes it back in full.
type Document struct {
	Users    []User    `json:"users"`
	Products []Product `json:"products"`
	Carts    []Cart    `json:"carts"`
	Orders   []Order   `json:"orders"`
}

// NewDocument returns an empty document with all collections allocated,
// so the persisted JSON always carries the four top-level arrays.
func NewDocument() *Document {
	return &Document{
		Users:    []User{},
		Products: []Product{},
		Carts:    []Cart{},
		Orders:   []Order{},
	}
}
