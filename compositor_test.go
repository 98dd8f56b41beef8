package holocard

import "testing"

func TestComposeIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	tilts := []TiltState{
		NeutralTilt(),
		{RotateX: 7.5, RotateY: -12, HotX: 20, HotY: 80, Source: SourcePointer},
		{RotateX: -16, RotateY: 16, HotX: 90, HotY: 10, Source: SourceOrientation},
	}
	for _, tilt := range tilts {
		for _, engaged := range []bool{true, false} {
			a := Compose(tilt, engaged, cfg)
			b := Compose(tilt, engaged, cfg)
			if a != b {
				t.Errorf("Compose(%+v, %v) not deterministic: %+v vs %+v", tilt, engaged, a, b)
			}
		}
	}
}

func TestComposeEngagedPointer(t *testing.T) {
	cfg := DefaultConfig()
	tilt := TiltState{RotateX: 10, RotateY: 10, HotX: 30, HotY: 60, Source: SourcePointer}
	got := Compose(tilt, true, cfg)

	if got.Transform.Scale != cfg.Scale {
		t.Errorf("Scale = %v, want %v", got.Transform.Scale, cfg.Scale)
	}
	if got.Transform.RotateX != 10 || got.Transform.RotateY != 10 {
		t.Errorf("rotation = (%v, %v), want (10, 10)", got.Transform.RotateX, got.Transform.RotateY)
	}
	if got.Transform.Perspective != 1000 {
		t.Errorf("Perspective = %v, want 1000", got.Transform.Perspective)
	}
	if got.Glare.Kind != OverlayRadial || got.Glare.CenterX != 30 || got.Glare.CenterY != 60 {
		t.Errorf("glare = %+v, want radial at (30, 60)", got.Glare)
	}
	if got.Glare.Intensity != cfg.GlareIntensity || got.Glare.Opacity != 1 {
		t.Errorf("glare intensity/opacity = %v/%v, want %v/1", got.Glare.Intensity, got.Glare.Opacity, cfg.GlareIntensity)
	}
	// atan2(10, 10) = 45 degrees, plus the pointer offset.
	if !approx(got.Shine.Angle, 90) {
		t.Errorf("shine angle = %v, want 90", got.Shine.Angle)
	}
	if got.Shine.Intensity != cfg.ShineIntensity || got.Shine.Opacity != 1 {
		t.Errorf("shine intensity/opacity = %v/%v", got.Shine.Intensity, got.Shine.Opacity)
	}
	if got.Transition != (Transition{}) {
		t.Errorf("Transition = %+v, want direct tracking", got.Transition)
	}
	if got.Filter.Identity() {
		t.Error("engaged holographic card should carry a filter")
	}
}

func TestComposeOrientationBoost(t *testing.T) {
	cfg := DefaultConfig()
	tilt := TiltState{RotateX: 10, RotateY: 10, HotX: 50, HotY: 50, Source: SourceOrientation}
	got := Compose(tilt, true, cfg)

	if !approx(got.Glare.Intensity, cfg.GlareIntensity*1.3) {
		t.Errorf("glare intensity = %v, want %v", got.Glare.Intensity, cfg.GlareIntensity*1.3)
	}
	if !approx(got.Shine.Intensity, cfg.ShineIntensity*1.2) {
		t.Errorf("shine intensity = %v, want %v", got.Shine.Intensity, cfg.ShineIntensity*1.2)
	}
	if !approx(got.Shine.Angle, 135) {
		t.Errorf("shine angle = %v, want 135", got.Shine.Angle)
	}
}

func TestComposeDisengaged(t *testing.T) {
	cfg := DefaultConfig()
	got := Compose(NeutralTilt(), false, cfg)

	if got.Transform.Scale != 1 {
		t.Errorf("Scale = %v, want 1", got.Transform.Scale)
	}
	if got.Glare.Opacity != 0 || got.Shine.Opacity != 0 {
		t.Errorf("overlay opacity = %v/%v, want 0/0", got.Glare.Opacity, got.Shine.Opacity)
	}
	if got.Glare.Visible() || got.Shine.Visible() {
		t.Error("overlays should be invisible at rest")
	}
	want := Transition{Duration: cfg.Speed, Ease: EaseOut}
	if got.Transition != want {
		t.Errorf("Transition = %+v, want %+v", got.Transition, want)
	}
	if !got.Filter.Identity() {
		t.Errorf("Filter = %+v, want identity", got.Filter)
	}
}

func TestComposeOverlayToggles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableGlare = false
	tilt := TiltState{RotateY: 5, HotX: 60, HotY: 50, Source: SourcePointer}

	got := Compose(tilt, true, cfg)
	if got.Glare.Opacity != 0 {
		t.Errorf("glare opacity = %v with glare disabled", got.Glare.Opacity)
	}
	if got.Shine.Opacity != 1 {
		t.Errorf("shine opacity = %v, want 1", got.Shine.Opacity)
	}

	hover := Compose(tilt, true, PresetHover())
	if hover.Glare.Visible() || hover.Shine.Visible() {
		t.Error("hover preset should not light the card")
	}
	if !hover.Filter.Identity() {
		t.Error("hover preset should not filter the card")
	}
}
