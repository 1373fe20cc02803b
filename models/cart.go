package models

// CartItem is a single selected line. Price is captured from the catalog at
// add time and never re-fetched; adding the same product twice yields two
// independent lines.
type CartItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Image        string   `json:"image,omitempty"`
	Observations string   `json:"observations,omitempty"`
	Extras       []string `json:"extras,omitempty"`
}
