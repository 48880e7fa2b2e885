// Package pricing implements the pack-based price calculation used by both
// the storefront quote endpoint and order display. The merchant buys whole
// packs from the supplier, so an order smaller than a pack still pays the
// supplier cost of the leftover pieces, without markup.
package pricing

import "math"

// Item carries the pricing parameters of a catalog entry.
type Item struct {
	SupplierPrice int
	PackSize      int
	Markup        float64
}

// Total returns the total price for the requested quantity, rounded up to the
// next whole currency unit.
//
// Within a single pack the customer pays markup on the ordered pieces plus raw
// supplier cost for the leftover of that pack. Orders spanning multiple packs
// pay full markup on each whole pack; a partial final pack is priced like a
// single-pack order.
func Total(it Item, quantity int) int {
	if quantity <= it.PackSize {
		return singlePackTotal(it, quantity)
	}

	fullPacks := quantity / it.PackSize
	remainder := quantity % it.PackSize

	fullPacksCost := float64(fullPacks) * float64(it.PackSize) * float64(it.SupplierPrice) * (1 + it.Markup)
	if remainder == 0 {
		return int(math.Ceil(fullPacksCost))
	}

	leftover := it.PackSize - remainder
	remainderCost := float64(remainder)*float64(it.SupplierPrice)*(1+it.Markup) + float64(leftover)*float64(it.SupplierPrice)
	return int(math.Ceil(fullPacksCost + remainderCost))
}

// PerPiece returns the display price per piece: the total divided by the
// quantity, rounded up. Rounding happens on the total first, never on
// intermediate per-piece figures.
func PerPiece(it Item, quantity int) int {
	total := Total(it, quantity)
	return int(math.Ceil(float64(total) / float64(quantity)))
}

// CardPrice returns the per-piece price of exactly one pack, used on catalog
// cards where no quantity has been chosen yet.
func CardPrice(it Item) int {
	packCost := float64(it.SupplierPrice) * float64(it.PackSize) * (1 + it.Markup)
	return int(math.Ceil(packCost / float64(it.PackSize)))
}

func singlePackTotal(it Item, quantity int) int {
	leftover := it.PackSize - quantity
	if leftover < 0 {
		leftover = 0
	}
	ordered := float64(quantity) * float64(it.SupplierPrice) * (1 + it.Markup)
	leftoverCost := float64(leftover) * float64(it.SupplierPrice)
	return int(math.Ceil(ordered + leftoverCost))
}
