package cardview

type syntheticKind uint8

const (
	syntheticMouse syntheticKind = iota
	syntheticTouch
	syntheticOrientation
)

// injectTouchSlot is the pointer slot synthetic touches use. touchSlot never
// hands it to a real touch.
const injectTouchSlot = maxPointers - 1

// syntheticEvent is a single injected input event in screen coordinates.
// For orientation events X and Y carry beta and gamma.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	pressed bool
}

// InjectMove queues a mouse move with no button held.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticMouse, x: x, y: y})
}

// InjectPress queues a left button press at (x, y).
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticMouse, x: x, y: y, pressed: true})
}

// InjectRelease queues a left button release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticMouse, x: x, y: y})
}

// InjectClick queues a press followed by a release. Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectTap queues a finger down and up at (x, y). Consumes two frames.
func (h *Host) InjectTap(x, y float64) {
	h.InjectSwipe(x, y, x, y, 2)
}

// InjectSwipe queues a touch that lands at (fromX, fromY), moves in a
// straight line over frames-2 intermediate frames and lifts at (toX, toY).
// Minimum frames is 2.
func (h *Host) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticTouch, x: fromX, y: fromY, pressed: true})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.injectQueue = append(h.injectQueue, syntheticEvent{
			kind:    syntheticTouch,
			x:       fromX + (toX-fromX)*t,
			y:       fromY + (toY-fromY)*t,
			pressed: true,
		})
	}
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticTouch, x: toX, y: toY})
}

// InjectOrientation queues a device orientation reading.
func (h *Host) InjectOrientation(beta, gamma float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{kind: syntheticOrientation, x: beta, y: gamma})
}

// Pending reports how many injected events have not been consumed yet.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

// processInjectedInput pops one event and feeds it through the same paths
// as real input. Returns true if an event was consumed, in which case real
// input is skipped this frame.
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch evt.kind {
	case syntheticMouse:
		h.processMouse(evt.x, evt.y, evt.pressed)
	case syntheticTouch:
		h.processTouch(injectTouchSlot, evt.x, evt.y, evt.pressed)
	case syntheticOrientation:
		h.feedOrientation(evt.x, evt.y)
	}
	return true
}
