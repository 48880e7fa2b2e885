package service

import (
	"fmt"

	"github.com/bloomlavka/bloom_api/pkg/pricing"
)

// Quote is the live pricing view the storefront binds its quantity input to.
// Quantity below the minimum is clamped for pricing and reported via Valid so
// the UI can gate order submission.
type Quote struct {
	FlowerID      int          `json:"flowerId"`
	Quantity      int          `json:"quantity"`
	MinQuantity   int          `json:"minQuantity"`
	Valid         bool         `json:"valid"`
	TotalPrice    int          `json:"totalPrice"`
	PricePerPiece int          `json:"pricePerPiece"`
	PackOptions   []PackOption `json:"packOptions"`
}

// PackOption is a shortcut for ordering whole packs.
type PackOption struct {
	Label         string `json:"label"`
	Quantity      int    `json:"quantity"`
	TotalPrice    int    `json:"totalPrice"`
	PricePerPiece int    `json:"pricePerPiece"`
}

// QuoteFlower prices the requested quantity of a flower with the same formula
// the order total is built from.
func (s *CatalogService) QuoteFlower(id, quantity int) (*Quote, error) {
	flower, err := s.GetFlower(id)
	if err != nil {
		return nil, err
	}
	it := pricingItem(*flower)

	valid := quantity >= s.minQuantity
	priced := quantity
	if priced < s.minQuantity {
		priced = s.minQuantity
	}

	quote := &Quote{
		FlowerID:      flower.ID,
		Quantity:      priced,
		MinQuantity:   s.minQuantity,
		Valid:         valid,
		TotalPrice:    pricing.Total(it, priced),
		PricePerPiece: pricing.PerPiece(it, priced),
	}
	for _, packs := range []int{1, 2, 3} {
		q := flower.PackSize * packs
		quote.PackOptions = append(quote.PackOptions, PackOption{
			Label:         fmt.Sprintf("%d pack", packs),
			Quantity:      q,
			TotalPrice:    pricing.Total(it, q),
			PricePerPiece: pricing.PerPiece(it, q),
		})
	}
	return quote, nil
}
