package holocard

// Snapshot is what an engine publishes to its card.
type Snapshot struct {
	Effect     EffectDescriptor
	Tilt       TiltState
	Engaged    bool
	Source     SourceKind
	Permission PermissionState
}

// Engine is the interaction state machine of one card. It is idle or engaged
// by exactly one source; a sample from another source takes over at once.
//
// All methods must be called from the goroutine that runs the game or UI
// loop. The only exception is the resolve callback handed to the
// PermissionRequester.
type Engine struct {
	// Name labels the engine in log lines.
	Name string

	cfg     Config
	env     Environment
	caps    Capabilities
	surface Surface

	state  SourceKind // SourceNone while idle
	tilt   TiltState
	effect EffectDescriptor
	last   Snapshot
	dirty  bool

	requester        PermissionRequester
	permission       PermissionState
	docListenerArmed bool
	permResults      chan bool

	releasing bool
	releaseIn float64 // seconds left before a touch release takes effect

	subs     subscriberRegistry
	disposed bool
	debug    bool
}

// NewEngine creates an idle engine for the card behind surface.
//
// On platforms that deliver orientation readings freely the permission is
// granted up front; on gated platforms the one-shot document touch listener
// is armed. A configuration that fails Validate is logged and replaced by
// DefaultConfig.
func NewEngine(cfg Config, env Environment, surface Surface) *Engine {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		logf("[holocard] NewEngine: %v (using defaults)", err)
		cfg = DefaultConfig()
	}
	e := &Engine{
		cfg:         cfg,
		env:         env,
		caps:        Classify(env),
		surface:     surface,
		tilt:        NeutralTilt(),
		permResults: make(chan bool, 1),
	}
	if cfg.EnableOrientationTilt {
		switch e.caps.Orientation {
		case OrientationAvailable:
			e.permission = PermissionGranted
		case OrientationGated:
			e.docListenerArmed = true
		}
	}
	e.effect = Compose(e.tilt, false, cfg)
	e.last = e.snapshot()
	return e
}

// Config returns the configuration the engine was built with, after
// defaults were applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Capabilities returns the current device classification.
func (e *Engine) Capabilities() Capabilities {
	return e.caps
}

// Engaged reports whether a live source drives the card.
func (e *Engine) Engaged() bool {
	return e.state != SourceNone
}

// Source returns the owning source, or SourceNone while idle.
func (e *Engine) Source() SourceKind {
	return e.state
}

// Tilt returns the current tilt.
func (e *Engine) Tilt() TiltState {
	return e.tilt
}

// Snapshot returns the latest published state. With FrameAligned set, it
// reflects the last Update.
func (e *Engine) Snapshot() Snapshot {
	return e.last
}

// Subscribe registers fn to receive every changed snapshot. Remove the
// handle when the card is torn down.
func (e *Engine) Subscribe(fn func(Snapshot)) CallbackHandle {
	return e.subs.add(fn)
}

// Resize reclassifies the device after a viewport change. A source that is
// no longer usable releases the card.
func (e *Engine) Resize(viewportWidth int) {
	if !e.checkAlive("Resize") {
		return
	}
	e.env.ViewportWidth = viewportWidth
	prev := e.caps
	e.caps = Classify(e.env)
	if prev.TouchPrimary == e.caps.TouchPrimary {
		return
	}
	e.debugf("reclassified touchPrimary=%v at width %d", e.caps.TouchPrimary, viewportWidth)
	if (e.state == SourcePointer && !e.pointerEnabled()) || (e.state == SourceTouch && !e.touchEnabled()) {
		e.disengage()
	}
}

// PointerEnter engages the card for hover input. Ignored on touch-primary
// devices.
func (e *Engine) PointerEnter() {
	if !e.checkAlive("PointerEnter") || !e.pointerEnabled() || e.state == SourcePointer {
		return
	}
	if _, ok := e.bounds(); !ok {
		return
	}
	tilt := NeutralTilt()
	tilt.Source = SourcePointer
	e.engage(tilt)
}

// PointerMove tilts the card toward the pointer at viewport position (x, y).
// Ignored on touch-primary devices.
func (e *Engine) PointerMove(x, y float64) {
	if !e.checkAlive("PointerMove") || !e.pointerEnabled() {
		return
	}
	e.accept(PointerSample(x, y))
}

// PointerLeave returns a hover-engaged card to rest.
func (e *Engine) PointerLeave() {
	if !e.checkAlive("PointerLeave") || e.state != SourcePointer {
		return
	}
	e.disengage()
}

// TouchStart engages the card for touch input at (x, y).
func (e *Engine) TouchStart(x, y float64) {
	if !e.checkAlive("TouchStart") || !e.touchEnabled() {
		return
	}
	e.accept(TouchSample(x, y))
}

// TouchMove follows a finger on the card.
func (e *Engine) TouchMove(x, y float64) {
	if !e.checkAlive("TouchMove") || !e.touchEnabled() {
		return
	}
	e.accept(TouchSample(x, y))
}

// TouchEnd schedules the return to rest after the release grace delay, so an
// orientation reading arriving in the same frame can take over without a
// flicker.
func (e *Engine) TouchEnd() {
	if !e.checkAlive("TouchEnd") || e.state != SourceTouch {
		return
	}
	if e.cfg.TouchReleaseDelay <= 0 {
		e.disengage()
		return
	}
	e.releasing = true
	e.releaseIn = e.cfg.TouchReleaseDelay / 1000
}

// Orientation feeds a device orientation reading in degrees. Pass
// MissingAngle for an angle the platform did not report. Readings are
// ignored until permission is granted.
func (e *Engine) Orientation(beta, gamma float64) {
	if !e.checkAlive("Orientation") || !e.orientationEnabled() {
		return
	}
	e.accept(OrientationSample(beta, gamma))
}

// Update advances time by dt seconds: it applies a resolved permission,
// completes a pending touch release and, in frame-aligned mode, composes and
// publishes the latest state. Call it once per frame.
func (e *Engine) Update(dt float64) {
	if e.disposed {
		return
	}
	e.drainPermission()

	if e.releasing {
		e.releaseIn -= dt
		if e.releaseIn <= 0 {
			e.releasing = false
			if e.state == SourceTouch {
				e.disengage()
			}
		}
	}

	if e.dirty {
		e.dirty = false
		e.recompose()
	}
}

// Dispose detaches every subscriber and disarms the document listener. The
// engine must not be used afterwards.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.subs.reset()
	e.docListenerArmed = false
	e.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (e *Engine) IsDisposed() bool {
	return e.disposed
}

func (e *Engine) pointerEnabled() bool {
	return !e.caps.TouchPrimary
}

func (e *Engine) touchEnabled() bool {
	return e.caps.TouchPrimary && e.cfg.EnableTouchTilt
}

func (e *Engine) orientationEnabled() bool {
	return e.cfg.EnableOrientationTilt && e.permission == PermissionGranted
}

func (e *Engine) bounds() (Rect, bool) {
	if e.surface == nil {
		return Rect{}, false
	}
	r, ok := e.surface.Bounds()
	if !ok || r.Empty() {
		return Rect{}, false
	}
	return r, true
}

// accept samples in against the live surface rectangle. Malformed readings
// and detached surfaces leave the state untouched.
func (e *Engine) accept(in InputSample) {
	rect, ok := e.bounds()
	if !ok {
		return
	}
	tilt, ok := Sample(in, rect, e.cfg)
	if !ok {
		e.debugf("dropped malformed %s sample", in.Source)
		return
	}
	e.engage(tilt)
}

func (e *Engine) engage(tilt TiltState) {
	e.releasing = false
	if e.state != tilt.Source {
		e.debugf("%s -> %s", e.state, tilt.Source)
	}
	e.state = tilt.Source
	e.tilt = tilt
	e.invalidate()
}

func (e *Engine) disengage() {
	if e.state != SourceNone {
		e.debugf("%s -> idle", e.state)
	}
	e.releasing = false
	e.state = SourceNone
	e.tilt = NeutralTilt()
	e.invalidate()
}

// invalidate recomposes now, or at the next Update in frame-aligned mode.
func (e *Engine) invalidate() {
	if e.cfg.FrameAligned {
		e.dirty = true
		return
	}
	e.recompose()
}

func (e *Engine) recompose() {
	e.effect = Compose(e.tilt, e.Engaged(), e.cfg)
	s := e.snapshot()
	if s == e.last {
		return
	}
	e.last = s
	e.subs.publish(s)
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Effect:     e.effect,
		Tilt:       e.tilt,
		Engaged:    e.Engaged(),
		Source:     e.state,
		Permission: e.permission,
	}
}
