package reveal

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Drawer paints a [Reveal] into an ebiten image. It is the rendering
// boundary: the core never calls it, and headless code (and the tests)
// ignore it entirely.
//
// Each segment draws with its current opacity (color scale), vertical
// offset (geometry), and blur (offscreen Kawase pass). The layout is cached
// and rebuilt only when the reveal's text or snapshots change.
type Drawer struct {
	reveal *Reveal
	face   text.Face

	layout  *Layout
	gen     int
	maxBlur float64

	blur    BlurFilter
	scratch *ebiten.Image // segment rendered here before blurring
	blurred *ebiten.Image
}

// NewDrawer binds a drawer to a reveal and a text face.
func NewDrawer(r *Reveal, face text.Face) *Drawer {
	d := &Drawer{reveal: r, face: face, gen: -1}
	d.ensureLayout()
	return d
}

// ensureLayout rebuilds the cached layout when the reveal has been rebuilt.
func (d *Drawer) ensureLayout() {
	if d.gen == d.reveal.generation {
		return
	}
	d.gen = d.reveal.generation
	d.layout = NewLayout(d.face, d.reveal.Segments(), d.reveal.Mode())

	d.maxBlur = 0
	for _, v := range d.reveal.Keyframes()[Blur] {
		if v > d.maxBlur {
			d.maxBlur = v
		}
	}
}

// Layout returns the cached segment layout.
func (d *Drawer) Layout() *Layout {
	d.ensureLayout()
	return d.layout
}

// Bounds returns the rectangle the text occupies when drawn at (x, y).
// Feed this to [Reveal.CheckVisibility] as the target.
func (d *Drawer) Bounds(x, y float64) Rect {
	d.ensureLayout()
	return d.layout.Bounds(x, y)
}

// Draw paints every segment at its current animation values, with the line
// origin at (x, y). Fully transparent segments are skipped.
func (d *Drawer) Draw(dst *ebiten.Image, x, y float64) {
	d.ensureLayout()

	r := d.reveal
	for _, ps := range d.layout.Placed() {
		i := ps.Segment.Index
		alpha := r.Value(i, Opacity)
		if alpha <= 0 || ps.Width <= 0 {
			continue
		}
		if alpha > 1 {
			alpha = 1
		}
		dy := r.Value(i, OffsetY)
		blur := r.Value(i, Blur)

		if blur < 0.5 {
			op := &text.DrawOptions{}
			op.GeoM.Translate(x+ps.X, y+dy)
			op.ColorScale.ScaleAlpha(float32(alpha))
			text.Draw(dst, ps.Segment.Content, d.face, op)
			continue
		}
		d.drawBlurred(dst, ps, x, y+dy, alpha, blur)
	}
}

// drawBlurred renders one segment into a padded scratch image, blurs it,
// and composites the result. The scratch pair grows to the largest segment
// and is reused after that.
func (d *Drawer) drawBlurred(dst *ebiten.Image, ps PlacedSegment, x, y, alpha, blur float64) {
	pad := int(math.Ceil(d.maxBlur))
	if b := int(math.Ceil(blur)); b > pad {
		pad = b
	}
	w := int(math.Ceil(ps.Width)) + 2*pad
	h := int(math.Ceil(d.layout.LineHeight())) + 2*pad

	d.scratch = ensureImage(d.scratch, w, h)
	d.blurred = ensureImage(d.blurred, w, h)
	d.scratch.Clear()
	d.blurred.Clear()

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pad), float64(pad))
	text.Draw(d.scratch, ps.Segment.Content, d.face, op)

	d.blur.Radius = blur
	d.blur.Apply(d.scratch, d.blurred)

	var img ebiten.DrawImageOptions
	img.GeoM.Translate(x+ps.X-float64(pad), y-float64(pad))
	img.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(d.blurred, &img)
}

// ensureImage returns img if it is at least w×h, growing it otherwise.
func ensureImage(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil && img.Bounds().Dx() >= w && img.Bounds().Dy() >= h {
		return img
	}
	if img != nil {
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
