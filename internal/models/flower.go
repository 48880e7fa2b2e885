package models

// DefaultImageURL is stored when the operator skips the image step.
const DefaultImageURL = "https://images.unsplash.com/photo-1518895949257-7621c3c786d7?w=400"

// Flower represents a catalog entry. The catalog file holds an ordered JSON
// array of these records.
type Flower struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Latin         string  `json:"latin"`
	SupplierPrice int     `json:"supplierPrice"`
	PackSize      int     `json:"packSize"`
	Markup        float64 `json:"markup"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`

	// PricePerPiece is the full-pack per-piece price, computed for list
	// responses and never persisted.
	PricePerPiece int `json:"pricePerPiece,omitempty"`
}
