package cardview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"

	"github.com/phanxgames/holocard"
)

// Card is one interactive card: a piece of art placed on screen, driven by
// its own engine.
type Card struct {
	Name string
	// Rect is the on-screen box in logical pixels. Hit testing and tilt
	// sampling both use it.
	Rect holocard.Rect
	// Image is the card art. Nil art is hit-testable but not drawn.
	Image *ebiten.Image
	// Hidden detaches the card: it is skipped by hit tests and its engine
	// ignores input.
	Hidden bool
	// OnClick fires on a mouse click or a touch tap that starts and ends on
	// the card.
	OnClick func(c *Card)

	engine    *holocard.Engine
	presenter *Presenter
	handle    holocard.CallbackHandle
	disposed  bool

	face     *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCard creates a card at rect with its own engine.
func NewCard(name string, art *ebiten.Image, rect holocard.Rect, cfg holocard.Config, env holocard.Environment) *Card {
	c := &Card{Name: name, Rect: rect, Image: art}
	c.engine = holocard.NewEngine(cfg, env, c)
	c.engine.Name = name
	c.presenter = NewPresenter(c.engine.Snapshot().Effect)
	c.handle = c.engine.Subscribe(func(s holocard.Snapshot) {
		c.presenter.Apply(s.Effect)
	})
	return c
}

// Bounds implements holocard.Surface.
func (c *Card) Bounds() (holocard.Rect, bool) {
	if c.disposed || c.Hidden {
		return holocard.Rect{}, false
	}
	return c.Rect, !c.Rect.Empty()
}

// Engine returns the card's engine.
func (c *Card) Engine() *holocard.Engine {
	return c.engine
}

// Presenter returns the card's presenter.
func (c *Card) Presenter() *Presenter {
	return c.presenter
}

// Dispose tears down the engine and frees GPU resources.
func (c *Card) Dispose() {
	if c.disposed {
		return
	}
	c.handle.Remove()
	c.engine.Dispose()
	if c.face != nil {
		c.face.Deallocate()
		c.face = nil
	}
	c.disposed = true
}

func (c *Card) update(dt float64) {
	if c.disposed {
		return
	}
	c.engine.Update(dt)
	c.presenter.Update(float32(dt))
}

func (c *Card) click() {
	if c.OnClick != nil {
		c.OnClick(c)
	}
}

// Draw renders the card into screen: filtered art, lighting overlays, then
// the perspective mesh.
func (c *Card) Draw(screen *ebiten.Image) {
	if c.disposed || c.Hidden || c.Image == nil || c.Rect.Empty() {
		return
	}
	pose := c.presenter.Pose()
	effect := c.presenter.Effect()

	sb := c.Image.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if c.face == nil || c.face.Bounds().Dx() != w || c.face.Bounds().Dy() != h {
		if c.face != nil {
			c.face.Deallocate()
		}
		c.face = ebiten.NewImage(w, h)
	}
	c.face.Clear()

	var op colorm.DrawImageOptions
	op.GeoM.Translate(float64(-sb.Min.X), float64(-sb.Min.Y))
	colorm.DrawImage(c.face, c.Image, filterMatrix(pose), &op)
	drawOverlays(c.face, effect, pose)

	c.vertices, c.indices = appendMesh(c.vertices[:0], c.indices[:0],
		c.Rect, float64(w), float64(h), pose, effect.Transform.Perspective)
	screen.DrawTriangles(c.vertices, c.indices, c.face, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterLinear,
	})
}

// Draw renders every visible card in registration order, then flushes any
// queued captures.
func (h *Host) Draw(screen *ebiten.Image) {
	for _, c := range h.cards {
		c.Draw(screen)
	}
	h.flushCaptures(screen)
}
