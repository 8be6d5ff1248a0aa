package reveal

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PlacedSegment is one segment with its horizontal position in the laid-out
// line, in pixels relative to the line origin.
type PlacedSegment struct {
	Segment Segment
	X       float64
	Width   float64
}

// Layout measures segments with a text/v2 face and assigns each its x
// offset, so segments land where the intact string would have put them.
// Words are re-separated by a single space advance; letter segments carry
// their own advance, spaces included. The layout is a single line — the
// segmenter never splits on newlines, so neither does the layout.
type Layout struct {
	face       text.Face
	placed     []PlacedSegment
	width      float64
	lineHeight float64
}

// NewLayout measures and places the given segments.
func NewLayout(face text.Face, segments []Segment, mode Mode) *Layout {
	m := face.Metrics()
	l := &Layout{
		face:       face,
		lineHeight: m.HAscent + m.HDescent + m.HLineGap,
		placed:     make([]PlacedSegment, len(segments)),
	}

	var spaceAdv float64
	if mode == Words {
		spaceAdv = text.Advance(" ", face)
	}

	var x float64
	for i, seg := range segments {
		adv := text.Advance(seg.Content, face)
		l.placed[i] = PlacedSegment{Segment: seg, X: x, Width: adv}
		x += adv
		if mode == Words && i < len(segments)-1 {
			x += spaceAdv
		}
	}
	l.width = x
	return l
}

// Placed returns the positioned segments in index order.
func (l *Layout) Placed() []PlacedSegment {
	return l.placed
}

// Width returns the total advance of the laid-out line.
func (l *Layout) Width() float64 {
	return l.width
}

// LineHeight returns the line height of the layout's face.
func (l *Layout) LineHeight() float64 {
	return l.lineHeight
}

// Bounds returns the rectangle the line occupies when drawn at (x, y),
// which is what the viewport observer wants as its target.
func (l *Layout) Bounds(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: l.width, Height: l.lineHeight}
}
