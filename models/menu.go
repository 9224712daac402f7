package models

// MenuItem is one entry of the catalog. ImageURL is stored as given.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// MenuItemPatch carries the fields to change; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
}

// Apply merges the patch into item.
func (p MenuItemPatch) Apply(item MenuItem) MenuItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Price != nil {
		item.Price = *p.Price
		if item.Price < 0 {
			item.Price = 0
		}
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	return item
}

// DefaultMenu dipakai hanya jika belum ada menu tersimpan
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Cerveja 600ml",
			Category:    "Bebida",
			Price:       12.9,
			Description: "Cerveja Pilsen bem gelada.",
		},
		{
			ID:          "2",
			Name:        "Porção de Batata Frita",
			Category:    "Comida",
			Price:       29.9,
			Description: "800g de batata frita crocante.",
		},
	}
}
