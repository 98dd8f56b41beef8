package cardview

import (
	"math"
	"sync"

	"github.com/phanxgames/holocard"
)

// --- Constants ---

const (
	maxPointers        = 10  // pointer 0 = mouse, 1-8 = touch, 9 = injected touch
	defaultTapDeadZone = 8.0 // pixels a finger may travel and still count as a tap
)

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitCard   *Card // card under the pointer at press time
	hoverCard *Card // mouse only: card currently hovered
	moved     bool  // travelled beyond the tap dead zone
}

// orientationFeed is the latest reading pushed by the platform layer. The
// platform may call in from its own thread.
type orientationFeed struct {
	mu          sync.Mutex
	beta, gamma float64
	seq         uint64
	delivered   uint64
}

func (f *orientationFeed) set(beta, gamma float64) {
	f.mu.Lock()
	f.beta, f.gamma = beta, gamma
	f.seq++
	f.mu.Unlock()
}

// take returns the reading if one arrived since the last call.
func (f *orientationFeed) take() (beta, gamma float64, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seq == f.delivered {
		return 0, 0, false
	}
	f.delivered = f.seq
	return f.beta, f.gamma, true
}

// Host owns the cards of one screen and routes input to their engines.
type Host struct {
	env    holocard.Environment
	cards  []*Card
	source InputSource

	requester holocard.PermissionRequester

	pointers  [maxPointers]pointerState
	touchMap  [maxPointers]int
	touchUsed [maxPointers]bool
	touchBuf  []Touch

	tapDeadZone float64
	orientation orientationFeed

	injectQueue []syntheticEvent
	testRunner  *TestRunner

	// CaptureDir is where queued captures are written.
	CaptureDir string
	// CaptureScale downsamples captures when in (0, 1).
	CaptureScale float64
	captureQueue []string
}

// NewHost creates a host for env that polls source. A nil source means
// input only arrives through injection and SetOrientation.
func NewHost(env holocard.Environment, source InputSource) *Host {
	return &Host{
		env:         env,
		source:      source,
		tapDeadZone: defaultTapDeadZone,
		CaptureDir:  "captures",
	}
}

// Environment returns the environment new cards are classified with.
func (h *Host) Environment() holocard.Environment {
	return h.env
}

// SetPermissionRequester sets the orientation permission requester for every
// current and future card.
func (h *Host) SetPermissionRequester(r holocard.PermissionRequester) {
	h.requester = r
	for _, c := range h.cards {
		c.engine.SetPermissionRequester(r)
	}
}

// SetTapDeadZone sets how far a finger may travel and still count as a tap.
func (h *Host) SetTapDeadZone(pixels float64) {
	h.tapDeadZone = pixels
}

// AddCard registers c. Cards added later are drawn on top and win hit tests.
func (h *Host) AddCard(c *Card) {
	if h.requester != nil {
		c.engine.SetPermissionRequester(h.requester)
	}
	h.cards = append(h.cards, c)
}

// RemoveCard unregisters c and disposes it.
func (h *Host) RemoveCard(c *Card) {
	for i, existing := range h.cards {
		if existing != c {
			continue
		}
		h.cards = append(h.cards[:i], h.cards[i+1:]...)
		for p := range h.pointers {
			ps := &h.pointers[p]
			if ps.hitCard == c {
				ps.hitCard = nil
			}
			if ps.hoverCard == c {
				ps.hoverCard = nil
			}
		}
		c.Dispose()
		return
	}
}

// Cards returns the registered cards. The returned slice MUST NOT be mutated.
func (h *Host) Cards() []*Card {
	return h.cards
}

// Resize forwards a viewport width change to every engine.
func (h *Host) Resize(viewportWidth int) {
	if viewportWidth == h.env.ViewportWidth {
		return
	}
	h.env.ViewportWidth = viewportWidth
	for _, c := range h.cards {
		c.engine.Resize(viewportWidth)
	}
}

// SetOrientation pushes a device orientation reading in degrees. Safe to
// call from any goroutine; the latest reading is delivered on the next
// Update.
func (h *Host) SetOrientation(beta, gamma float64) {
	h.orientation.set(beta, gamma)
}

// Update processes one tick of input, then advances every engine and
// presenter by dt seconds.
func (h *Host) Update(dt float64) {
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()
	if beta, gamma, ok := h.orientation.take(); ok {
		h.feedOrientation(beta, gamma)
	}
	for _, c := range h.cards {
		c.update(dt)
	}
}

// --- Hit testing ---

// hitTest finds the topmost visible card containing (x, y).
func (h *Host) hitTest(x, y float64) *Card {
	for i := len(h.cards) - 1; i >= 0; i-- {
		c := h.cards[i]
		if c.Hidden {
			continue
		}
		if c.Rect.Contains(x, y) {
			return c
		}
	}
	return nil
}

// --- Input processing ---

func (h *Host) processInput() {
	if h.processInjectedInput() {
		return
	}
	if h.source == nil {
		return
	}
	if x, y, pressed, ok := h.source.Cursor(); ok {
		h.processMouse(x, y, pressed)
	}
	h.processTouches()
}

func (h *Host) processTouches() {
	h.touchBuf = h.source.AppendTouches(h.touchBuf[:0])

	var active [maxPointers]bool
	for _, t := range h.touchBuf {
		slot := h.touchSlot(t.ID)
		if slot < 0 {
			continue
		}
		active[slot] = true
		h.processTouch(slot, t.X, t.Y, true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !active[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processTouch(i, ps.lastX, ps.lastY, false)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps a touch ID to a pointer slot (1-8). Returns the existing
// slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(id int) int {
	for i := 1; i < injectTouchSlot; i++ {
		if h.touchUsed[i] && h.touchMap[i] == id {
			return i
		}
	}
	for i := 1; i < injectTouchSlot; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = id
			return i
		}
	}
	return -1
}

// processMouse runs hover and click tracking for pointer 0.
func (h *Host) processMouse(x, y float64, pressed bool) {
	ps := &h.pointers[0]
	target := h.hitTest(x, y)

	if target != ps.hoverCard {
		if ps.hoverCard != nil {
			ps.hoverCard.engine.PointerLeave()
		}
		if target != nil {
			target.engine.PointerEnter()
			target.engine.PointerMove(x, y)
		}
		ps.hoverCard = target
	} else if target != nil && (x != ps.lastX || y != ps.lastY) {
		target.engine.PointerMove(x, y)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitCard = target
	case !pressed && ps.down:
		if ps.hitCard != nil && ps.hitCard == target {
			target.click()
		}
		ps.down = false
		ps.hitCard = nil
	}
	ps.lastX = x
	ps.lastY = y
}

// processTouch runs the touch state machine for one slot. A touch belongs to
// the card it started on for its whole life.
func (h *Host) processTouch(slot int, x, y float64, pressed bool) {
	ps := &h.pointers[slot]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.moved = false
		ps.hitCard = h.hitTest(x, y)

		for _, c := range h.cards {
			c.engine.DocumentTouch()
		}
		if ps.hitCard != nil {
			ps.hitCard.engine.TouchStart(x, y)
		}

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.moved {
			dx, dy := x-ps.startX, y-ps.startY
			ps.moved = math.Sqrt(dx*dx+dy*dy) > h.tapDeadZone
		}
		if ps.hitCard != nil {
			ps.hitCard.engine.TouchMove(x, y)
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		card := ps.hitCard
		if card != nil {
			card.engine.TouchEnd()
			if !ps.moved && h.hitTest(x, y) == card {
				card.click()
			}
		}
		ps.down = false
		ps.hitCard = nil
		ps.moved = false
	}
}

func (h *Host) feedOrientation(beta, gamma float64) {
	for _, c := range h.cards {
		c.engine.Orientation(beta, gamma)
	}
}
