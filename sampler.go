package holocard

import "math"

// MissingAngle marks an orientation angle the platform did not report.
// Samples carrying it are dropped.
var MissingAngle = math.NaN()

// InputSample is one raw reading. Pointer and touch samples use X and Y in
// viewport coordinates; orientation samples use Beta (front-back, degrees in
// [-180, 180]) and Gamma (left-right, degrees in [-90, 90]).
type InputSample struct {
	Source      SourceKind
	X, Y        float64
	Beta, Gamma float64
}

// PointerSample returns a pointer reading at (x, y).
func PointerSample(x, y float64) InputSample {
	return InputSample{Source: SourcePointer, X: x, Y: y}
}

// TouchSample returns a touch reading at (x, y).
func TouchSample(x, y float64) InputSample {
	return InputSample{Source: SourceTouch, X: x, Y: y}
}

// OrientationSample returns a device orientation reading.
func OrientationSample(beta, gamma float64) InputSample {
	return InputSample{Source: SourceOrientation, Beta: beta, Gamma: gamma}
}

// TiltState is the derived tilt of a card. It is replaced wholesale on every
// accepted sample.
type TiltState struct {
	RotateX float64 // degrees, [-MaxTilt, MaxTilt]
	RotateY float64 // degrees, [-MaxTilt, MaxTilt]
	HotX    float64 // percent, [0, 100]
	HotY    float64 // percent, [0, 100]
	Source  SourceKind
}

// NeutralTilt is the resting state: flat, light centred.
func NeutralTilt() TiltState {
	return TiltState{HotX: 50, HotY: 50}
}

// Sample converts a raw reading into a tilt. ok is false when the reading or
// the rectangle is unusable (non-finite values, empty rect, unknown source);
// the caller keeps its previous state in that case.
func Sample(in InputSample, rect Rect, cfg Config) (TiltState, bool) {
	if rect.Empty() || !finite(rect.X, rect.Y, rect.Width, rect.Height) {
		return TiltState{}, false
	}
	switch in.Source {
	case SourcePointer, SourceTouch:
		if !finite(in.X, in.Y) {
			return TiltState{}, false
		}
		return samplePosition(in, rect, cfg), true
	case SourceOrientation:
		if !finite(in.Beta, in.Gamma) {
			return TiltState{}, false
		}
		return sampleOrientation(in, cfg), true
	}
	return TiltState{}, false
}

func samplePosition(in InputSample, rect Rect, cfg Config) TiltState {
	cx, cy := rect.Center()
	dx := (in.X - cx) / (rect.Width / 2)
	dy := (in.Y - cy) / (rect.Height / 2)

	return TiltState{
		RotateX: unsigned(clamp(-dy*cfg.MaxTilt, -cfg.MaxTilt, cfg.MaxTilt)),
		RotateY: clamp(dx*cfg.MaxTilt, -cfg.MaxTilt, cfg.MaxTilt),
		HotX:    clamp((in.X-rect.X)/rect.Width*100, 0, 100),
		HotY:    clamp((in.Y-rect.Y)/rect.Height*100, 0, 100),
		Source:  in.Source,
	}
}

func sampleOrientation(in InputSample, cfg Config) TiltState {
	w := cfg.OrientationWindow
	nb := clamp(in.Beta, -w, w) / w
	ng := clamp(in.Gamma, -w, w) / w
	gain := cfg.MaxTilt * cfg.OrientationGain

	return TiltState{
		RotateX: clamp(nb*gain, -cfg.MaxTilt, cfg.MaxTilt),
		RotateY: clamp(ng*gain, -cfg.MaxTilt, cfg.MaxTilt),
		HotX:    clamp(50+ng*40, 0, 100),
		HotY:    clamp(50+nb*40, 0, 100),
		Source:  SourceOrientation,
	}
}

// OrientationFromGravity derives beta and gamma, in degrees, from a gravity
// vector measured in device axes (x right, y up, z out of the screen, +z when
// lying flat). Useful for hosts that expose an accelerometer but no fused
// orientation sensor.
func OrientationFromGravity(ax, ay, az float64) (beta, gamma float64) {
	beta = math.Atan2(ay, az) * 180 / math.Pi
	gamma = math.Atan2(-ax, math.Sqrt(ay*ay+az*az)) * 180 / math.Pi
	return beta, gamma
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// unsigned folds negative zero into zero.
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
