package cardview

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/holocard"
)

// Overlay textures are generated once at unit intensity and tinted per frame
// through ColorScale.
const (
	radialTextureSize = 256
	bandTextureWidth  = 256
)

var (
	overlayImages [2]*ebiten.Image // indexed by holocard.OverlayKind

	// Additive highlight. White over the art brightens mids and lights
	// without touching pure black much once the art is filtered.
	blendOverlay = ebiten.BlendLighter

	// Screen blend: 1 - (1-src)(1-dst).
	blendSoftLight = ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
)

func blendFor(m holocard.OverlayBlend) ebiten.Blend {
	if m == holocard.BlendSoftLight {
		return blendSoftLight
	}
	return blendOverlay
}

// unitStops returns the stops of kind at intensity 1.
func unitStops(kind holocard.OverlayKind) []holocard.GradientStop {
	return holocard.OverlaySpec{Kind: kind, Intensity: 1}.Stops()
}

// stopAlpha linearly interpolates the gradient at t. Values outside the stop
// range take the nearest end stop.
func stopAlpha(stops []holocard.GradientStop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].Offset {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Alpha
		}
		f := (t - a.Offset) / span
		return a.Alpha + (b.Alpha-a.Alpha)*f
	}
	return stops[len(stops)-1].Alpha
}

// radialTexture renders a premultiplied white disc. The disc edge is the
// last stop, so the texture covers only the visible part of the gradient.
func radialTexture(size int, stops []holocard.GradientStop) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	reach := stops[len(stops)-1].Offset
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Sqrt(dx*dx+dy*dy) / r
			a := 0.0
			if d < 1 {
				a = stopAlpha(stops, d*reach)
			}
			setWhite(img, x, y, a)
		}
	}
	return img
}

// bandTexture renders a one pixel tall horizontal ramp of the stops.
func bandTexture(width int, stops []holocard.GradientStop) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, 1))
	for x := 0; x < width; x++ {
		t := (float64(x) + 0.5) / float64(width)
		setWhite(img, x, 0, stopAlpha(stops, t))
	}
	return img
}

func setWhite(img *image.RGBA, x, y int, alpha float64) {
	v := uint8(math.Round(clamp01(alpha) * 255))
	off := img.PixOffset(x, y)
	img.Pix[off+0] = v
	img.Pix[off+1] = v
	img.Pix[off+2] = v
	img.Pix[off+3] = v
}

func overlayImage(kind holocard.OverlayKind) *ebiten.Image {
	if img := overlayImages[kind]; img != nil {
		return img
	}
	var src *image.RGBA
	if kind == holocard.OverlayRadial {
		src = radialTexture(radialTextureSize, unitStops(kind))
	} else {
		src = bandTexture(bandTextureWidth, unitStops(kind))
	}
	img := ebiten.NewImageFromImage(src)
	overlayImages[kind] = img
	return img
}

// radialGeoM places the radial texture on a w x h face centred on (cx, cy).
// The gradient runs out to the farthest corner, matching a CSS circle
// gradient.
func radialGeoM(cx, cy, w, h float64) ebiten.GeoM {
	stops := unitStops(holocard.OverlayRadial)
	reach := math.Hypot(math.Max(cx, w-cx), math.Max(cy, h-cy)) * stops[len(stops)-1].Offset
	var g ebiten.GeoM
	g.Translate(-radialTextureSize/2, -radialTextureSize/2)
	g.Scale(2*reach/radialTextureSize, 2*reach/radialTextureSize)
	g.Translate(cx, cy)
	return g
}

// bandGeoM sweeps the band texture across a w x h face at a CSS gradient
// angle (0 points up, 90 points right).
func bandGeoM(angleDeg, w, h float64) ebiten.GeoM {
	theta := angleDeg * math.Pi / 180
	length := math.Abs(w*math.Sin(theta)) + math.Abs(h*math.Cos(theta))
	cover := math.Hypot(w, h)
	var g ebiten.GeoM
	g.Translate(-bandTextureWidth/2, -0.5)
	g.Scale(length/bandTextureWidth, cover)
	g.Rotate(theta - math.Pi/2)
	g.Translate(w/2, h/2)
	return g
}

// drawOverlays lights face with the glare and shine of effect, faded by the
// presenter's opacities.
func drawOverlays(face *ebiten.Image, effect holocard.EffectDescriptor, pose Pose) {
	b := face.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear

	if a := effect.Glare.Intensity * pose.GlareOpacity; a > 0 {
		op.GeoM = radialGeoM(pose.HotX/100*w, pose.HotY/100*h, w, h)
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(a))
		op.Blend = blendFor(effect.Glare.Blend)
		face.DrawImage(overlayImage(holocard.OverlayRadial), &op)
	}
	if a := effect.Shine.Intensity * pose.ShineOpacity; a > 0 {
		op.GeoM = bandGeoM(pose.ShineAngle, w, h)
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(a))
		op.Blend = blendFor(effect.Shine.Blend)
		face.DrawImage(overlayImage(holocard.OverlayLinear), &op)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
