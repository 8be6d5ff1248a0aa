package reveal

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlurFilter applies a Kawase iterative blur using downscale/upscale passes.
// No shader needed — bilinear filtering during DrawImage does the work.
// Radius is fractional because it interpolates between keyframes each frame;
// below half a pixel the filter degenerates to a plain copy.
//
// The filter keeps its downscale chain between calls, so one filter reused
// across segments of similar size allocates only when sizes grow.
type BlurFilter struct {
	Radius float64
	temps  []*ebiten.Image
	op     ebiten.DrawImageOptions
}

// Apply renders src into dst with the current Radius. src and dst may have
// different sizes; the final upscale targets dst's bounds.
func (f *BlurFilter) Apply(src, dst *ebiten.Image) {
	if f.Radius < 0.5 {
		f.op.GeoM.Reset()
		f.op.ColorScale.Reset()
		f.op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, &f.op)
		return
	}

	passes := int(math.Ceil(math.Log2(f.Radius)))
	if passes < 1 {
		passes = 1
	}

	// Release temps left over from a larger radius.
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
		}
	}
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	f.temps = f.temps[:passes]

	// Downscale chain, halving each pass.
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	current := src
	for i := 0; i < passes; i++ {
		w = max(w/2, 1)
		h = max(h/2, 1)
		f.ensureTemp(i, w, h)
		f.drawScaled(f.temps[i], current)
		current = f.temps[i]
	}

	// Upscale back through the chain, then into dst.
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.drawScaled(f.temps[i], current)
		current = f.temps[i]
	}
	f.drawScaled(dst, current)
}

// Padding returns the extra pixels a source needs around its content so the
// blur does not clip at the edges.
func (f *BlurFilter) Padding() int {
	return int(math.Ceil(f.Radius))
}

// ensureTemp makes temps[i] exist with exactly the given size.
func (f *BlurFilter) ensureTemp(i, w, h int) {
	t := f.temps[i]
	if t != nil && t.Bounds().Dx() == w && t.Bounds().Dy() == h {
		t.Clear()
		return
	}
	if t != nil {
		t.Deallocate()
	}
	f.temps[i] = ebiten.NewImage(w, h)
}

// drawScaled draws src stretched over dst with bilinear filtering.
func (f *BlurFilter) drawScaled(dst, src *ebiten.Image) {
	f.op.GeoM.Reset()
	f.op.ColorScale.Reset()
	f.op.GeoM.Scale(
		float64(dst.Bounds().Dx())/float64(src.Bounds().Dx()),
		float64(dst.Bounds().Dy())/float64(src.Bounds().Dy()),
	)
	f.op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, &f.op)
}
