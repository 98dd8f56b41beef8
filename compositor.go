package holocard

import "math"

// Intensity and angle adjustments for orientation-driven samples. Phone
// screens outdoors show less contrast, so the lighting is pushed harder.
const (
	orientationGlareBoost  = 1.3
	orientationShineBoost  = 1.2
	pointerShineOffset     = 45
	orientationShineOffset = 90
)

// Engaged filter values.
const (
	engagedBrightness = 1.1
	engagedContrast   = 1.15
	engagedSaturate   = 1.2
)

// Transform3D is a perspective projection followed by X and Y rotations and a
// uniform scale.
type Transform3D struct {
	Perspective float64 // pixels
	RotateX     float64 // degrees
	RotateY     float64 // degrees
	Scale       float64
}

// OverlayKind selects the gradient shape of an overlay.
type OverlayKind uint8

const (
	OverlayRadial OverlayKind = iota // circle centred on the hot point
	OverlayLinear                    // band swept across the card at an angle
)

// OverlayBlend is how an overlay combines with the card art.
type OverlayBlend uint8

const (
	BlendOverlay   OverlayBlend = iota // contrast-preserving highlight
	BlendSoftLight                     // gentle dodge/burn
)

// OverlaySpec describes one lighting overlay.
type OverlaySpec struct {
	Kind      OverlayKind
	Blend     OverlayBlend
	CenterX   float64 // percent, radial only
	CenterY   float64 // percent, radial only
	Angle     float64 // degrees, linear only
	Intensity float64 // peak white alpha
	Opacity   float64 // 0 hides the overlay
}

// Visible reports whether the overlay contributes anything.
func (o OverlaySpec) Visible() bool {
	return o.Opacity > 0 && o.Intensity > 0
}

// Filter is a colour adjustment applied to the whole card.
type Filter struct {
	Brightness, Contrast, Saturate float64
}

// Identity reports whether the filter leaves colours untouched.
func (f Filter) Identity() bool {
	return f.Brightness == 1 && f.Contrast == 1 && f.Saturate == 1
}

// Easing names a transition curve.
type Easing uint8

const (
	EaseNone Easing = iota // jump straight to the target
	EaseOut                // decelerating curve
)

// Transition is how the host should move from the previous descriptor to
// this one. A zero Transition means direct tracking.
type Transition struct {
	Duration float64 // milliseconds
	Ease     Easing
}

// EffectDescriptor is everything a card needs to render one frame of the
// effect. It is a value; compose a new one instead of mutating.
type EffectDescriptor struct {
	Transform  Transform3D
	Glare      OverlaySpec
	Shine      OverlaySpec
	Filter     Filter
	Transition Transition
}

// Compose maps a tilt to an effect descriptor. It is deterministic and has
// no side effects.
func Compose(tilt TiltState, engaged bool, cfg Config) EffectDescriptor {
	scale := 1.0
	if engaged {
		scale = cfg.Scale
	}

	orient := tilt.Source == SourceOrientation

	glare := OverlaySpec{
		Kind:      OverlayRadial,
		Blend:     BlendOverlay,
		CenterX:   tilt.HotX,
		CenterY:   tilt.HotY,
		Intensity: cfg.GlareIntensity,
	}
	if orient {
		glare.Intensity *= orientationGlareBoost
	}
	if engaged && cfg.EnableGlare {
		glare.Opacity = 1
	}

	offset := pointerShineOffset
	if orient {
		offset = orientationShineOffset
	}
	shine := OverlaySpec{
		Kind:      OverlayLinear,
		Blend:     BlendSoftLight,
		Angle:     math.Atan2(tilt.RotateX, tilt.RotateY)*180/math.Pi + float64(offset),
		Intensity: cfg.ShineIntensity,
	}
	if orient {
		shine.Intensity *= orientationShineBoost
	}
	if engaged && cfg.EnableShine {
		shine.Opacity = 1
	}

	filter := Filter{Brightness: 1, Contrast: 1, Saturate: 1}
	if engaged && (cfg.EnableGlare || cfg.EnableShine) {
		filter = Filter{Brightness: engagedBrightness, Contrast: engagedContrast, Saturate: engagedSaturate}
	}

	var tr Transition
	if !engaged {
		tr = Transition{Duration: cfg.Speed, Ease: EaseOut}
	}

	return EffectDescriptor{
		Transform: Transform3D{
			Perspective: cfg.Perspective,
			RotateX:     tilt.RotateX,
			RotateY:     tilt.RotateY,
			Scale:       scale,
		},
		Glare:      glare,
		Shine:      shine,
		Filter:     filter,
		Transition: tr,
	}
}
