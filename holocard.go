package holocard

import "fmt"

// Rect is an axis-aligned rectangle in viewport coordinates. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Width > 0 && r.Height > 0)
}

// Surface is the interactive element an engine drives. Bounds is queried at
// every sample because layout may shift between samples; ok is false once
// the element is detached or hidden.
type Surface interface {
	Bounds() (r Rect, ok bool)
}

// StaticSurface is a Surface with a fixed rectangle. The zero value is
// detached.
type StaticSurface struct {
	Rect     Rect
	Detached bool
}

// Bounds implements Surface.
func (s *StaticSurface) Bounds() (Rect, bool) {
	if s == nil || s.Detached {
		return Rect{}, false
	}
	return s.Rect, !s.Rect.Empty()
}

// SourceKind identifies the input source that owns the current tilt.
type SourceKind uint8

const (
	SourceNone        SourceKind = iota // no source; the engine is idle
	SourcePointer                       // mouse or pen hover
	SourceTouch                         // finger on the card
	SourceOrientation                   // device orientation sensor
)

func (k SourceKind) String() string {
	switch k {
	case SourceNone:
		return "none"
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	case SourceOrientation:
		return "orientation"
	default:
		return fmt.Sprintf("SourceKind(%d)", uint8(k))
	}
}

// PermissionState is the orientation permission life cycle of one engine.
type PermissionState uint8

const (
	PermissionPending PermissionState = iota // not asked yet, or asked and waiting
	PermissionGranted                        // orientation readings are accepted
	PermissionDenied                         // orientation disabled for the session
)

func (p PermissionState) String() string {
	switch p {
	case PermissionPending:
		return "pending"
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return fmt.Sprintf("PermissionState(%d)", uint8(p))
	}
}
