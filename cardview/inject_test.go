package cardview

import (
	"testing"

	"github.com/phanxgames/holocard"
)

func TestInjectClick(t *testing.T) {
	h, cards := newTestHost(desktopEnv, nil, holocard.Rect{Width: 100, Height: 100})
	var clicked *Card
	cards[0].OnClick = func(c *Card) { clicked = c }

	h.InjectClick(50, 50)
	if h.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", h.Pending())
	}

	// Frame 1: press
	h.Update(frame)
	if h.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", h.Pending())
	}
	if clicked != nil {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release
	h.Update(frame)
	if clicked != cards[0] {
		t.Error("click should fire on release frame")
	}
}

func TestInjectMoveHovers(t *testing.T) {
	h, cards := newTestHost(desktopEnv, nil, holocard.Rect{Width: 100, Height: 100})
	h.InjectMove(100, 0)
	h.Update(frame)

	eng := cards[0].Engine()
	if !eng.Engaged() || eng.Source() != holocard.SourcePointer {
		t.Fatalf("engaged=%v source=%s", eng.Engaged(), eng.Source())
	}
	if tilt := eng.Tilt(); tilt.RotateY != 20 || tilt.RotateX != 20 {
		t.Errorf("corner tilt = %+v, want RotateX=20 RotateY=20", tilt)
	}
}

func TestInjectSwipe(t *testing.T) {
	h, cards := newTestHost(androidEnv, nil, holocard.Rect{Width: 200, Height: 200})
	taps := 0
	cards[0].OnClick = func(*Card) { taps++ }

	// Press at x=0, moves at 50, 100, 150, release at 200.
	h.InjectSwipe(0, 100, 200, 100, 5)
	if h.Pending() != 5 {
		t.Fatalf("queued %d events, want 5", h.Pending())
	}
	var hot []float64
	cards[0].Engine().Subscribe(func(s holocard.Snapshot) { hot = append(hot, s.Tilt.HotX) })
	for h.Pending() > 0 {
		h.Update(frame)
	}
	want := []float64{0, 25, 50, 75}
	if len(hot) < len(want) {
		t.Fatalf("hot points = %v, want at least %v", hot, want)
	}
	for i, w := range want {
		if hot[i] != w {
			t.Errorf("hot[%d] = %v, want %v", i, hot[i], w)
		}
	}
	if taps != 0 {
		t.Error("swipe counted as a tap")
	}
}

func TestInjectSwipeMinimumFrames(t *testing.T) {
	h := NewHost(androidEnv, nil)
	h.InjectSwipe(0, 0, 10, 10, 0)
	if h.Pending() != 2 {
		t.Errorf("queued %d events, want 2", h.Pending())
	}
}

func TestInjectTap(t *testing.T) {
	h, cards := newTestHost(androidEnv, nil, holocard.Rect{Width: 100, Height: 100})
	taps := 0
	cards[0].OnClick = func(*Card) { taps++ }
	h.InjectTap(50, 50)
	h.Update(frame)
	h.Update(frame)
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestInjectOrientation(t *testing.T) {
	h, cards := newTestHost(androidEnv, nil, holocard.Rect{Width: 100, Height: 100})
	h.InjectOrientation(-45, 0)
	h.Update(frame)
	if got := cards[0].Engine().Tilt().HotY; got != 10 {
		t.Errorf("HotY = %v, want 10", got)
	}
}

func TestInjectedInputPreemptsRealInput(t *testing.T) {
	in := &fakeInput{hasMouse: true, x: 500, y: 500}
	h, cards := newTestHost(desktopEnv, in, holocard.Rect{Width: 100, Height: 100})
	h.InjectMove(50, 50)
	h.Update(frame)
	if !cards[0].Engine().Engaged() {
		t.Fatal("injected move ignored")
	}
	h.Update(frame) // queue empty: the real cursor is outside
	if cards[0].Engine().Engaged() {
		t.Error("real input not resumed after the queue drained")
	}
}

func TestInjectTapWithEveryFingerDown(t *testing.T) {
	in := &fakeInput{}
	h, cards := newTestHost(androidEnv, in,
		holocard.Rect{Width: 100, Height: 100},
		holocard.Rect{X: 200, Width: 100, Height: 100})
	clicks := map[*Card]int{}
	for _, c := range cards {
		c.OnClick = func(c *Card) { clicks[c]++ }
	}

	// One finger on the first card, the rest of the hand on empty space.
	in.touches = []Touch{{ID: 1, X: 50, Y: 50}}
	for id := 2; id <= maxPointers; id++ {
		in.touches = append(in.touches, Touch{ID: id, X: 500 + float64(id), Y: 500})
	}
	h.Update(frame)
	if h.touchUsed[injectTouchSlot] {
		t.Fatal("real touch allocated the injection slot")
	}

	h.InjectTap(250, 50)
	for h.Pending() > 0 {
		h.Update(frame)
	}
	if clicks[cards[1]] != 1 {
		t.Errorf("injected tap clicked the second card %d times, want 1", clicks[cards[1]])
	}
	if clicks[cards[0]] != 0 {
		t.Errorf("held card clicked %d times during injection", clicks[cards[0]])
	}

	// Lifting the real finger still completes its own tap.
	in.touches = nil
	h.Update(frame)
	if clicks[cards[0]] != 1 {
		t.Errorf("held card clicked %d times after release, want 1", clicks[cards[0]])
	}
}
