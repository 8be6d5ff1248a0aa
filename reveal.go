package reveal

// Mode selects how input text is split into animated segments.
type Mode uint8

const (
	Words   Mode = iota // split on single spaces; consecutive spaces yield empty segments
	Letters             // one segment per rune, whitespace included
)

// Direction selects which side the default starting snapshot offsets from.
type Direction uint8

const (
	FromTop    Direction = iota // segments drop in from above
	FromBottom                  // segments rise in from below
)

// Property names one animatable visual value. The built-in constants cover
// what [Drawer] knows how to paint; any other key is carried through the
// keyframe pipeline untouched for custom renderers.
type Property string

const (
	Opacity Property = "opacity" // alpha in [0, 1]
	Blur    Property = "blur"    // blur radius in pixels
	OffsetY Property = "offsetY" // vertical offset in pixels
)

// Snapshot is one point in an animation: a set of visual property values.
// There is no fixed schema; any key set is legal.
type Snapshot map[Property]float64

// Keyframes maps each property to the ordered values an animation
// interpolates through. Lists may be ragged when a property is absent from
// some snapshots; see [BuildKeyframes].
type Keyframes map[Property][]float64

// VisibilityState is the one-shot trigger state of a [Gate].
type VisibilityState uint8

const (
	Dormant   VisibilityState = iota // waiting; segments frozen at the starting snapshot
	Triggered                        // terminal; segments animate toward the keyframes
)

// String returns the state name for debug output.
func (s VisibilityState) String() string {
	switch s {
	case Dormant:
		return "Dormant"
	case Triggered:
		return "Triggered"
	default:
		return "Unknown"
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Inset shrinks the rectangle by m on every side. A negative m grows it,
// which is how a root margin expands the observed region.
func (r Rect) Inset(m float64) Rect {
	return Rect{
		X:      r.X + m,
		Y:      r.Y + m,
		Width:  r.Width - 2*m,
		Height: r.Height - 2*m,
	}
}

// OverlapFraction returns the fraction of r's area that lies inside other,
// in [0, 1]. A degenerate r (zero area) returns 1 if its origin is inside
// other and 0 otherwise, so zero-sized targets can still trip a gate.
func (r Rect) OverlapFraction(other Rect) float64 {
	area := r.Width * r.Height
	if area <= 0 {
		if other.Contains(r.X, r.Y) {
			return 1
		}
		return 0
	}
	ix := max(r.X, other.X)
	iy := max(r.Y, other.Y)
	ix2 := min(r.X+r.Width, other.X+other.Width)
	iy2 := min(r.Y+r.Height, other.Y+other.Height)
	if ix2 <= ix || iy2 <= iy {
		return 0
	}
	return (ix2 - ix) * (iy2 - iy) / area
}
