package models

// OrderLine adalah snapshot item menu saat ditambahkan ke pesanan.
// Perubahan menu setelahnya tidak mengubah baris yang sudah ada.
type OrderLine struct {
	MenuItemID string  `json:"menuItemId,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Normalize clamps quantity to at least 1 and price to at least 0.
func (l OrderLine) Normalize() OrderLine {
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	if l.Price < 0 {
		l.Price = 0
	}
	return l
}
