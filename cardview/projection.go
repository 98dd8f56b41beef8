package cardview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"

	"github.com/phanxgames/holocard"
)

// meshDivisions is the number of quads per card edge. Each quad is textured
// affinely, so a finer grid hides the lack of perspective-correct sampling.
const meshDivisions = 8

// minDepth keeps points that swing past the eye from inverting.
const minDepth = 1.0

// projectPoint applies scale, rotateY, rotateX and perspective (in that
// order, the way a CSS transform list composes) to a point given relative
// to the card centre. Angles are in degrees, the perspective distance in
// pixels.
func projectPoint(x, y float64, pose Pose, perspective float64) (float64, float64) {
	x *= pose.Scale
	y *= pose.Scale
	z := 0.0

	ry := pose.RotateY * math.Pi / 180
	sin, cos := math.Sincos(ry)
	x, z = x*cos+z*sin, -x*sin+z*cos

	rx := pose.RotateX * math.Pi / 180
	sin, cos = math.Sincos(rx)
	y, z = y*cos-z*sin, y*sin+z*cos

	if perspective <= 0 {
		return x, y
	}
	depth := perspective - z
	if depth < minDepth {
		depth = minDepth
	}
	k := perspective / depth
	return x * k, y * k
}

// appendMesh appends a projected grid covering rect, textured from a
// srcW x srcH face image.
func appendMesh(vs []ebiten.Vertex, is []uint16, rect holocard.Rect, srcW, srcH float64, pose Pose, perspective float64) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	cx, cy := rect.Center()
	const n = meshDivisions
	for j := 0; j <= n; j++ {
		v := float64(j) / n
		for i := 0; i <= n; i++ {
			u := float64(i) / n
			lx := (u - 0.5) * rect.Width
			ly := (v - 0.5) * rect.Height
			px, py := projectPoint(lx, ly, pose, perspective)
			vs = append(vs, ebiten.Vertex{
				DstX:   float32(cx + px),
				DstY:   float32(cy + py),
				SrcX:   float32(u * srcW),
				SrcY:   float32(v * srcH),
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			tl := base + uint16(j*(n+1)+i)
			tr := tl + 1
			bl := tl + n + 1
			br := bl + 1
			is = append(is, tl, tr, bl, tr, br, bl)
		}
	}
	return vs, is
}

// filterMatrix builds the colour matrix for brightness, contrast and
// saturation, applied in that order.
func filterMatrix(pose Pose) colorm.ColorM {
	var cm colorm.ColorM
	b := pose.Brightness
	cm.Scale(b, b, b, 1)
	c := pose.Contrast
	cm.Scale(c, c, c, 1)
	off := 0.5 * (1 - c)
	cm.Translate(off, off, off, 0)
	if pose.Saturate != 1 {
		cm.ChangeHSV(0, pose.Saturate, 1)
	}
	return cm
}
