package pricing

import "testing"

// The reference item: 350 per piece from the supplier, packs of 25, 30% markup.
var rose = Item{SupplierPrice: 350, PackSize: 25, Markup: 0.30}

func TestTotalExactPack(t *testing.T) {
	// One exact pack has no leftover: ceil(25 * 350 * 1.3).
	if got := Total(rose, 25); got != 11375 {
		t.Errorf("Total(25) = %d, want 11375", got)
	}
	if got := PerPiece(rose, 25); got != 455 {
		t.Errorf("PerPiece(25) = %d, want 455", got)
	}
}

func TestTotalPartialPack(t *testing.T) {
	// 10 ordered with markup, 15 leftover at raw cost.
	if got := Total(rose, 10); got != 9800 {
		t.Errorf("Total(10) = %d, want 9800", got)
	}
	if got := PerPiece(rose, 10); got != 980 {
		t.Errorf("PerPiece(10) = %d, want 980", got)
	}
}

func TestTotalMultiPackWithRemainder(t *testing.T) {
	// 30 = 1 full pack (11375) + 5 with markup and 20 leftover (9275).
	if got := Total(rose, 30); got != 20650 {
		t.Errorf("Total(30) = %d, want 20650", got)
	}
	if got := PerPiece(rose, 30); got != 689 {
		t.Errorf("PerPiece(30) = %d, want 689", got)
	}
}

func TestTotalFullPackMultiples(t *testing.T) {
	// Positive multiples of the pack size carry no leftover term.
	packTotal := Total(rose, rose.PackSize)
	for _, packs := range []int{2, 3, 4} {
		got := Total(rose, rose.PackSize*packs)
		if got != packTotal*packs {
			t.Errorf("Total(%d packs) = %d, want %d", packs, got, packTotal*packs)
		}
	}
}

func TestPerPieceNonIncreasingTowardPackBoundary(t *testing.T) {
	// Just past a full pack the leftover charge makes the per-piece price jump;
	// from there it must fall monotonically toward the next boundary, where it
	// lands back on the full-pack rate.
	prev := PerPiece(rose, rose.PackSize+1)
	for q := rose.PackSize + 2; q <= rose.PackSize*2; q++ {
		got := PerPiece(rose, q)
		if got > prev {
			t.Fatalf("PerPiece(%d) = %d, above PerPiece(%d) = %d", q, got, q-1, prev)
		}
		prev = got
	}
	if boundary := PerPiece(rose, rose.PackSize*2); boundary != PerPiece(rose, rose.PackSize) {
		t.Errorf("two exact packs per-piece = %d, want the full-pack rate %d", boundary, PerPiece(rose, rose.PackSize))
	}
}

func TestCardPrice(t *testing.T) {
	// ceil(350 * 1.3) per piece at full-pack rate.
	if got := CardPrice(rose); got != 455 {
		t.Errorf("CardPrice = %d, want 455", got)
	}
}

func TestZeroMarkup(t *testing.T) {
	it := Item{SupplierPrice: 100, PackSize: 10, Markup: 0}
	// With no markup a partial pack still pays the whole pack at cost.
	if got := Total(it, 4); got != 1000 {
		t.Errorf("Total(4) = %d, want 1000", got)
	}
	if got := Total(it, 10); got != 1000 {
		t.Errorf("Total(10) = %d, want 1000", got)
	}
}
