package holocard

import "testing"

func TestTransformCSS(t *testing.T) {
	tr := Transform3D{Perspective: 1000, RotateX: -12.5, RotateY: 20, Scale: 1.08}
	want := "perspective(1000px) rotateX(-12.5deg) rotateY(20deg) scale(1.08)"
	if got := tr.CSS(); got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}

	neutral := Compose(NeutralTilt(), false, DefaultConfig()).Transform
	want = "perspective(1000px) rotateX(0deg) rotateY(0deg) scale(1)"
	if got := neutral.CSS(); got != want {
		t.Errorf("neutral CSS() = %q, want %q", got, want)
	}
}

func TestOverlayCSS(t *testing.T) {
	glare := OverlaySpec{Kind: OverlayRadial, CenterX: 25, CenterY: 75, Intensity: 0.4}
	want := "radial-gradient(circle at 25% 75%, rgba(255, 255, 255, 0.4) 0%, rgba(255, 255, 255, 0.12) 25%, transparent 50%)"
	if got := glare.CSS(); got != want {
		t.Errorf("glare CSS() = %q, want %q", got, want)
	}

	shine := OverlaySpec{Kind: OverlayLinear, Blend: BlendSoftLight, Angle: 90, Intensity: 0.6}
	want = "linear-gradient(90deg, rgba(255, 255, 255, 0) 0%, rgba(255, 255, 255, 0.06) 25%, " +
		"rgba(255, 255, 255, 0.18) 50%, rgba(255, 255, 255, 0.06) 75%, rgba(255, 255, 255, 0) 100%)"
	if got := shine.CSS(); got != want {
		t.Errorf("shine CSS() = %q, want %q", got, want)
	}
	if shine.Blend.CSS() != "soft-light" || glare.Blend.CSS() != "overlay" {
		t.Errorf("blend modes = %q/%q", glare.Blend.CSS(), shine.Blend.CSS())
	}
}

func TestFilterAndTransitionCSS(t *testing.T) {
	if got := (Filter{Brightness: 1, Contrast: 1, Saturate: 1}).CSS(); got != "none" {
		t.Errorf("identity filter = %q, want none", got)
	}
	want := "brightness(1.1) contrast(1.15) saturate(1.2)"
	if got := (Filter{Brightness: 1.1, Contrast: 1.15, Saturate: 1.2}).CSS(); got != want {
		t.Errorf("filter = %q, want %q", got, want)
	}
	if got := (Transition{}).CSS("transform"); got != "none" {
		t.Errorf("zero transition = %q, want none", got)
	}
	if got := (Transition{Duration: 300, Ease: EaseOut}).CSS("transform"); got != "transform 300ms ease-out" {
		t.Errorf("transition = %q", got)
	}
}

func TestCSSNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.00001, "0"},
		{1e-12, "0"},
		{15.999999999999998, "16"},
		{-3.14159, "-3.1416"},
	}
	for _, tt := range tests {
		if got := cssNum(tt.in); got != tt.want {
			t.Errorf("cssNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
