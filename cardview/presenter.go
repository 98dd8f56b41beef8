package cardview

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/holocard"
)

// Pose is the displayed state of a card. While the card is engaged it
// matches the latest effect exactly; after release it eases back to rest.
type Pose struct {
	RotateX, RotateY float64 // degrees
	Scale            float64
	HotX, HotY       float64 // percent
	GlareOpacity     float64
	ShineOpacity     float64
	Brightness       float64
	Contrast         float64
	Saturate         float64
	ShineAngle       float64 // degrees
}

const poseFields = 11

func (p *Pose) fields() [poseFields]*float64 {
	return [poseFields]*float64{
		&p.RotateX, &p.RotateY, &p.Scale,
		&p.HotX, &p.HotY,
		&p.GlareOpacity, &p.ShineOpacity,
		&p.Brightness, &p.Contrast, &p.Saturate,
		&p.ShineAngle,
	}
}

// PoseOf extracts the animatable values of an effect.
func PoseOf(e holocard.EffectDescriptor) Pose {
	return Pose{
		RotateX:      e.Transform.RotateX,
		RotateY:      e.Transform.RotateY,
		Scale:        e.Transform.Scale,
		HotX:         e.Glare.CenterX,
		HotY:         e.Glare.CenterY,
		GlareOpacity: e.Glare.Opacity,
		ShineOpacity: e.Shine.Opacity,
		Brightness:   e.Filter.Brightness,
		Contrast:     e.Filter.Contrast,
		Saturate:     e.Filter.Saturate,
		ShineAngle:   e.Shine.Angle,
	}
}

// Presenter turns the stream of effect descriptors from an engine into a
// displayed pose, honouring each descriptor's transition. Call Update(dt)
// once per frame.
type Presenter struct {
	pose   Pose
	effect holocard.EffectDescriptor
	tweens [poseFields]*gween.Tween
	ease   ease.TweenFunc
	Done   bool
}

// NewPresenter creates a presenter resting at initial.
func NewPresenter(initial holocard.EffectDescriptor) *Presenter {
	return &Presenter{
		pose:   PoseOf(initial),
		effect: initial,
		ease:   ease.OutCubic,
		Done:   true,
	}
}

// SetEase replaces the easing used for ease-out transitions.
func (p *Presenter) SetEase(fn ease.TweenFunc) {
	if fn != nil {
		p.ease = fn
	}
}

// Apply retargets the presenter. A descriptor without a transition is shown
// immediately; otherwise every field tweens from where it is now.
func (p *Presenter) Apply(e holocard.EffectDescriptor) {
	p.effect = e
	target := PoseOf(e)

	if e.Transition.Duration <= 0 || e.Transition.Ease == holocard.EaseNone {
		p.pose = target
		p.tweens = [poseFields]*gween.Tween{}
		p.Done = true
		return
	}

	// The band turns the short way round.
	target.ShineAngle = nearestTurn(p.pose.ShineAngle, target.ShineAngle)

	seconds := float32(e.Transition.Duration) / 1000
	from := p.pose.fields()
	to := target.fields()
	for i := range p.tweens {
		p.tweens[i] = gween.New(float32(*from[i]), float32(*to[i]), seconds, p.ease)
	}
	p.Done = false
}

// nearestTurn returns the angle equivalent to to that is closest to from.
func nearestTurn(from, to float64) float64 {
	return from + math.Remainder(to-from, 360)
}

// Update advances running tweens by dt seconds.
func (p *Presenter) Update(dt float32) {
	if p.Done {
		return
	}
	fields := p.pose.fields()
	allDone := true
	for i, tw := range p.tweens {
		if tw == nil {
			continue
		}
		val, finished := tw.Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		// Land exactly on the target rather than the float32 approximation.
		p.pose = PoseOf(p.effect)
		p.tweens = [poseFields]*gween.Tween{}
	}
	p.Done = allDone
}

// Pose returns the pose to draw this frame.
func (p *Presenter) Pose() Pose {
	return p.pose
}

// Effect returns the descriptor the presenter is heading towards.
func (p *Presenter) Effect() holocard.EffectDescriptor {
	return p.effect
}
