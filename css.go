package holocard

import (
	"math"
	"strconv"
	"strings"
)

// GradientStop is a white stop along an overlay gradient. Offset is in [0, 1]
// (radius for radial overlays, band position for linear ones).
type GradientStop struct {
	Offset float64
	Alpha  float64
}

// Stops returns the white gradient stops of the overlay, scaled by its
// intensity.
func (o OverlaySpec) Stops() []GradientStop {
	i := o.Intensity
	if o.Kind == OverlayRadial {
		return []GradientStop{
			{Offset: 0, Alpha: i},
			{Offset: 0.25, Alpha: i * 0.3},
			{Offset: 0.5, Alpha: 0},
		}
	}
	return []GradientStop{
		{Offset: 0, Alpha: 0},
		{Offset: 0.25, Alpha: i * 0.1},
		{Offset: 0.5, Alpha: i * 0.3},
		{Offset: 0.75, Alpha: i * 0.1},
		{Offset: 1, Alpha: 0},
	}
}

// CSS renders the transform as a CSS transform value.
func (t Transform3D) CSS() string {
	var b strings.Builder
	b.WriteString("perspective(")
	b.WriteString(cssNum(t.Perspective))
	b.WriteString("px) rotateX(")
	b.WriteString(cssNum(t.RotateX))
	b.WriteString("deg) rotateY(")
	b.WriteString(cssNum(t.RotateY))
	b.WriteString("deg) scale(")
	b.WriteString(cssNum(t.Scale))
	b.WriteString(")")
	return b.String()
}

// CSS renders the overlay as a CSS background value.
func (o OverlaySpec) CSS() string {
	var b strings.Builder
	if o.Kind == OverlayRadial {
		b.WriteString("radial-gradient(circle at ")
		b.WriteString(cssNum(o.CenterX))
		b.WriteString("% ")
		b.WriteString(cssNum(o.CenterY))
		b.WriteString("%")
	} else {
		b.WriteString("linear-gradient(")
		b.WriteString(cssNum(o.Angle))
		b.WriteString("deg")
	}
	for _, st := range o.Stops() {
		b.WriteString(", ")
		if st.Alpha == 0 && o.Kind == OverlayRadial {
			b.WriteString("transparent")
		} else {
			b.WriteString("rgba(255, 255, 255, ")
			b.WriteString(cssNum(st.Alpha))
			b.WriteString(")")
		}
		b.WriteString(" ")
		b.WriteString(cssNum(st.Offset * 100))
		b.WriteString("%")
	}
	b.WriteString(")")
	return b.String()
}

// CSS returns the mix-blend-mode keyword.
func (m OverlayBlend) CSS() string {
	if m == BlendSoftLight {
		return "soft-light"
	}
	return "overlay"
}

// CSS renders the filter as a CSS filter value.
func (f Filter) CSS() string {
	if f.Identity() {
		return "none"
	}
	return "brightness(" + cssNum(f.Brightness) + ") contrast(" + cssNum(f.Contrast) +
		") saturate(" + cssNum(f.Saturate) + ")"
}

// CSS renders the transition for the given property, e.g. "transform".
func (t Transition) CSS(property string) string {
	if t.Duration <= 0 || t.Ease == EaseNone {
		return "none"
	}
	return property + " " + cssNum(t.Duration) + "ms ease-out"
}

// cssNum formats v with at most four decimals and no exponent.
func cssNum(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
