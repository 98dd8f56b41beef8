package cardview

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Capture queues a labelled capture of the next drawn frame. The frame is
// written to CaptureDir as a timestamped WebP file.
func (h *Host) Capture(label string) {
	h.captureQueue = append(h.captureQueue, label)
}

func (h *Host) flushCaptures(screen *ebiten.Image) {
	if len(h.captureQueue) == 0 {
		return
	}
	defer func() { h.captureQueue = h.captureQueue[:0] }()

	if err := os.MkdirAll(h.CaptureDir, 0o755); err != nil {
		log.Printf("[cardview] capture: mkdir %s: %v", h.CaptureDir, err)
		return
	}

	b := screen.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(frame.Pix)
	img := straightAlpha(downscale(frame, h.CaptureScale))

	stamp := time.Now().Format("20060102_150405")
	for _, label := range h.captureQueue {
		path := filepath.Join(h.CaptureDir, fmt.Sprintf("%s_%s.webp", stamp, sanitizeLabel(label)))
		if err := writeWebP(path, img); err != nil {
			log.Printf("[cardview] capture: %v", err)
		}
	}
}

// downscale shrinks a premultiplied frame by scale. Scales outside (0, 1)
// return the frame unchanged.
func downscale(frame *image.RGBA, scale float64) *image.RGBA {
	if scale <= 0 || scale >= 1 {
		return frame
	}
	b := frame.Bounds()
	w := max(1, int(float64(b.Dx())*scale+0.5))
	h := max(1, int(float64(b.Dy())*scale+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), frame, b, draw.Src, nil)
	return dst
}

// straightAlpha converts premultiplied RGBA to straight-alpha NRGBA.
func straightAlpha(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := out.PixOffset(x, y)
			r, g, bl, a := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				bl = uint8(min(int(bl)*255/int(a), 255))
			}
			out.Pix[di] = r
			out.Pix[di+1] = g
			out.Pix[di+2] = bl
			out.Pix[di+3] = a
		}
	}
	return out
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
