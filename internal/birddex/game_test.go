package birddex

import (
	"testing"

	"github.com/phanxgames/holocard"
	"github.com/phanxgames/holocard/cardview"
	"github.com/phanxgames/holocard/collection"
)

func TestDefaultCatalogParses(t *testing.T) {
	birds, err := loadCatalog("")
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if len(birds) < 10 {
		t.Fatalf("default catalog has %d birds", len(birds))
	}
	rarities := map[collection.Rarity]bool{}
	for _, b := range birds {
		rarities[b.Rarity] = true
	}
	if !rarities[collection.Common] || !rarities[collection.Rare] {
		t.Errorf("default catalog rarities = %v", rarities)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := loadCatalog("does-not-exist.yaml"); err == nil {
		t.Error("expected error")
	}
}

func TestLayoutGrid(t *testing.T) {
	tests := []struct {
		width    int
		wantCols int
	}{
		{390, 1},
		{700, 3},
		{1280, 6},
	}
	for _, tt := range tests {
		cards := make([]*cardview.Card, 7)
		for i := range cards {
			cards[i] = cardview.NewCard("c", nil, holocard.Rect{}, holocard.DefaultConfig(), holocard.Environment{})
		}
		layoutGrid(cards, tt.width)

		cols := 0
		for _, c := range cards {
			if c.Rect.Y == cards[0].Rect.Y {
				cols++
			}
		}
		if cols != tt.wantCols {
			t.Errorf("width %d: %d columns, want %d", tt.width, cols, tt.wantCols)
		}
		for i, c := range cards {
			if c.Rect.Width != cardWidth || c.Rect.Height != cardHeight {
				t.Errorf("card %d size = %vx%v", i, c.Rect.Width, c.Rect.Height)
			}
			if c.Rect.X < 0 || c.Rect.X+c.Rect.Width > float64(max(tt.width, cardWidth+2*gridMargin)) {
				t.Errorf("width %d: card %d at x=%v spills off screen", tt.width, i, c.Rect.X)
			}
		}
	}
}

func TestPlaceholderArt(t *testing.T) {
	img := placeholderArt(collection.Bird{ID: "x", Rarity: collection.Legendary}, 40, 60)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 60 {
		t.Fatalf("bounds = %v", b)
	}
	if got, want := img.RGBAAt(0, 0), rarityColors[collection.Legendary]; got != want {
		t.Errorf("frame colour = %v, want %v", got, want)
	}
	if top, bottom := img.RGBAAt(20, 10), img.RGBAAt(20, 50); bottom.R <= top.R {
		t.Errorf("inner shade does not brighten downwards: top %v bottom %v", top, bottom)
	}
}
