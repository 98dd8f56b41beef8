// Package birddex is a small card collection game built on cardview: a grid
// of holographic bird cards that tilt under the pointer, finger or device,
// and join the collection when clicked.
package birddex

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/quasilyte/gdata/v2"

	"github.com/phanxgames/holocard"
	"github.com/phanxgames/holocard/cardview"
	"github.com/phanxgames/holocard/collection"
)

// Grid metrics in logical pixels.
const (
	cardWidth   = 180
	cardHeight  = 250
	cardGap     = 24
	gridMargin  = 32
	headerSpace = 40
)

// Config selects the game's data files. Empty paths fall back to built-in
// defaults.
type Config struct {
	CardConfigPath string // holocard YAML
	CatalogPath    string // bird catalog YAML
	ArtDir         string // <id>.png card art
	AppName        string // gdata application name
	Environment    holocard.Environment
	Verbose        bool
}

// Game implements ebiten.Game.
type Game struct {
	host    *cardview.Host
	store   *collection.Store
	catalog []collection.Bird
	byName  map[string]collection.Bird
	width   int
	height  int
}

// NewGame loads configuration, catalog and saved collection and lays out one
// card per bird.
func NewGame(cfg Config) (*Game, error) {
	cardCfg := holocard.DefaultConfig()
	if cfg.CardConfigPath != "" {
		loaded, err := holocard.LoadConfig(cfg.CardConfigPath)
		if err != nil {
			return nil, fmt.Errorf("card config: %w", err)
		}
		cardCfg = loaded
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	if cfg.AppName == "" {
		cfg.AppName = "birddex"
	}
	manager, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
	if err != nil {
		log.Printf("[BirdDex] Warning: storage unavailable: %v (collection will not be saved)", err)
		manager = nil
	}

	env := cfg.Environment
	if env.UserAgent == "" {
		env = PlatformEnvironment(env.ViewportWidth)
	}

	g := &Game{
		host:    cardview.NewHost(env, &cardview.EbitenInput{}),
		store:   collection.NewStore(manager),
		catalog: catalog,
		byName:  make(map[string]collection.Bird, len(catalog)),
	}
	for _, b := range catalog {
		art := loadArt(cfg.ArtDir, b)
		card := cardview.NewCard(b.ID, art, holocard.Rect{}, cardCfg, env)
		card.Engine().SetDebugMode(cfg.Verbose)
		card.OnClick = g.toggle
		g.byName[b.ID] = b
		g.host.AddCard(card)
	}
	return g, nil
}

// Host returns the card host, for platform glue that pushes orientation.
func (g *Game) Host() *cardview.Host {
	return g.host
}

// Store returns the collection store.
func (g *Game) Store() *collection.Store {
	return g.store
}

func (g *Game) toggle(c *cardview.Card) {
	b := g.byName[c.Name]
	if g.store.Contains(b.ID) {
		g.store.Remove(b.ID)
		log.Printf("[BirdDex] released %s", b.Name)
		return
	}
	if g.store.Add(b.ID) {
		log.Printf("[BirdDex] collected %s (%s)", b.Name, b.Rarity)
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.host.Update(1 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x18, B: 0x24, A: 0xff})
	g.host.Draw(screen)

	st := g.store.Stats(g.catalog)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Collected %d/%d  common %d  rare %d  legendary %d  habitats %d",
		st.Total, len(g.catalog), st.Common, st.Rare, st.Legendary, len(st.Habitats),
	), gridMargin, 12)
	for _, c := range g.host.Cards() {
		if g.store.Contains(c.Name) {
			ebitenutil.DebugPrintAt(screen, "*", int(c.Rect.X)+6, int(c.Rect.Y)+4)
		}
	}
}

// Layout implements ebiten.Game. It reflows the grid and reclassifies the
// device when the width changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.host.Resize(outsideWidth)
		layoutGrid(g.host.Cards(), outsideWidth)
	}
	return outsideWidth, outsideHeight
}

// layoutGrid places cards row by row, centred horizontally.
func layoutGrid(cards []*cardview.Card, width int) {
	usable := float64(width - 2*gridMargin)
	cols := int(math.Max(1, math.Floor((usable+cardGap)/(cardWidth+cardGap))))
	rowWidth := float64(cols)*cardWidth + float64(cols-1)*cardGap
	left := (float64(width) - rowWidth) / 2
	for i, c := range cards {
		col, row := i%cols, i/cols
		c.Rect = holocard.Rect{
			X:      left + float64(col)*(cardWidth+cardGap),
			Y:      gridMargin + headerSpace + float64(row)*(cardHeight+cardGap),
			Width:  cardWidth,
			Height: cardHeight,
		}
	}
}

func loadCatalog(path string) ([]collection.Bird, error) {
	if path == "" {
		return collection.ParseCatalog([]byte(defaultCatalog))
	}
	birds, err := collection.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return birds, nil
}

// loadArt reads <dir>/<id>.png, falling back to a generated placeholder.
func loadArt(dir string, b collection.Bird) *ebiten.Image {
	if dir != "" {
		path := filepath.Join(dir, b.ID+".png")
		if _, err := os.Stat(path); err == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				return img
			}
			log.Printf("[BirdDex] Warning: art %s: %v", path, err)
		}
	}
	return ebiten.NewImageFromImage(placeholderArt(b, cardWidth, cardHeight))
}

// rarityColors are the card frame colours per rarity.
var rarityColors = map[collection.Rarity]color.RGBA{
	collection.Common:    {R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
	collection.Rare:      {R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff},
	collection.Legendary: {R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
}

// placeholderArt paints a rarity-coloured card with a vertical sheen so the
// lighting has something to work on.
func placeholderArt(b collection.Bird, w, h int) *image.RGBA {
	frame, ok := rarityColors[b.Rarity]
	if !ok {
		frame = rarityColors[collection.Common]
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	const border = 8
	for y := 0; y < h; y++ {
		shade := 0.55 + 0.35*float64(y)/float64(h)
		for x := 0; x < w; x++ {
			c := frame
			if x >= border && x < w-border && y >= border && y < h-border {
				c = color.RGBA{
					R: uint8(float64(frame.R) * shade * 0.6),
					G: uint8(float64(frame.G) * shade * 0.6),
					B: uint8(float64(frame.B) * shade * 0.6),
					A: 0xff,
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
