package reveal

import "github.com/tanema/gween/ease"

// Reveal owns one staggered text reveal: the segments, the shared keyframe
// set, one playback track per segment, and the visibility gate that starts
// everything. It is single-threaded; drive it from the host's update loop.
//
// A reveal stays frozen at the starting snapshot until its gate triggers.
// After the trigger each segment plays the same keyframes with its own
// stagger delay, and the completion callback fires when the highest-index
// segment finishes.
type Reveal struct {
	opts Options
	from Snapshot
	to   []Snapshot

	segments  []Segment
	keyframes Keyframes
	tracks    []*Track

	gate     *Gate
	viewport *ViewportObserver // nil when a custom Observer was supplied

	generation int
	completed  bool
	disposed   bool
}

// New creates a reveal gated by the built-in [ViewportObserver]. Feed it
// rectangles each frame via [Reveal.CheckVisibility].
func New(opts Options) *Reveal {
	vo := &ViewportObserver{}
	r := NewWithObserver(opts, vo)
	r.viewport = vo
	return r
}

// NewWithObserver creates a reveal gated by a caller-supplied visibility
// observer. The observer is attached immediately with the configured
// threshold and root margin, and detached on the first trigger or on
// [Reveal.Dispose], whichever comes first.
func NewWithObserver(opts Options, obs Observer) *Reveal {
	if opts.StepDuration <= 0 {
		opts.StepDuration = DefaultStepDuration
	}
	if opts.Easing == nil {
		opts.Easing = ease.Linear
	}

	r := &Reveal{
		opts: opts,
		from: opts.From,
		to:   opts.To,
		gate: NewGate(obs),
	}
	if r.from == nil {
		r.from = DefaultFrom(opts.Direction)
	}
	if r.to == nil {
		r.to = DefaultTo(opts.Direction)
	}

	r.rebuild()
	r.gate.Attach(opts.Threshold, opts.RootMargin, nil)
	return r
}

// rebuild recomputes the derived artifacts (segments, keyframes, tracks)
// from the current text and snapshots. Keyframes are built once here, never
// per segment or per frame.
func (r *Reveal) rebuild() {
	r.segments = Split(r.opts.Text, r.opts.AnimateBy)
	r.keyframes = BuildKeyframes(r.from, r.to)
	r.tracks = make([]*Track, len(r.segments))
	for i := range r.segments {
		r.tracks[i] = NewTrack(r.keyframes, r.Transition(i))
	}
	r.generation++
}

// Segments returns the ordered segments of the current text.
func (r *Reveal) Segments() []Segment {
	return r.segments
}

// Keyframes returns the shared per-property keyframe lists.
func (r *Reveal) Keyframes() Keyframes {
	return r.keyframes
}

// Transition returns the timing descriptor for the segment at index i:
// shared duration, fractions, and easing, with the segment's own delay.
func (r *Reveal) Transition(i int) Transition {
	return NewTransition(len(r.to), r.opts.StepDuration, r.opts.Delay, i, r.opts.Easing)
}

// Mode returns the segmentation mode the reveal was built with.
func (r *Reveal) Mode() Mode {
	return r.opts.AnimateBy
}

// State reports the gate state: Dormant until the first qualifying
// visibility signal, Triggered forever after.
func (r *Reveal) State() VisibilityState {
	return r.gate.State()
}

// CheckVisibility feeds one visibility sample to the built-in viewport
// observer: target is the text block's bounds, view the visible region.
// A no-op when the reveal was created with a custom observer, after the
// gate has triggered, and after Dispose.
func (r *Reveal) CheckVisibility(target, view Rect) {
	if r.viewport != nil {
		r.viewport.Check(target, view)
	}
}

// Update advances every segment's track by dt seconds. Before the gate
// triggers, and after Dispose, it is a no-op and segments hold the starting
// snapshot. The completion callback fires during the Update in which the
// highest-index segment's track completes, regardless of whether earlier
// segments are still running.
func (r *Reveal) Update(dt float64) {
	if r.disposed || r.gate.State() != Triggered {
		return
	}

	for _, t := range r.tracks {
		t.Update(dt)
	}

	if r.completed || len(r.tracks) == 0 {
		return
	}
	// Completion is bound to the last segment by index, not to the last
	// track to finish.
	if r.tracks[len(r.tracks)-1].Done {
		r.completed = true
		if r.opts.OnComplete != nil {
			r.opts.OnComplete()
		}
	}
}

// Value returns segment i's current value for the given property. While the
// reveal is dormant, or while the segment is waiting out its stagger delay,
// this is the starting snapshot's value (or the first defined keyframe for
// a property the starting snapshot omits). Unknown properties return 0.
func (r *Reveal) Value(i int, prop Property) float64 {
	if i < 0 || i >= len(r.tracks) {
		return 0
	}
	return r.tracks[i].Value(prop, 0)
}

// Done reports whether the completion point has been reached: the
// highest-index segment finished while the reveal was live.
func (r *Reveal) Done() bool {
	return r.completed
}

// SetText replaces the text and rebuilds segments and tracks. If the gate
// has already triggered, the new segments start animating from the
// beginning of their delays. The completion callback still fires at most
// once per instance.
func (r *Reveal) SetText(text string) {
	if text == r.opts.Text {
		return
	}
	r.opts.Text = text
	r.rebuild()
}

// SetSnapshots replaces the starting and target snapshots and rebuilds the
// keyframes and tracks. Nil arguments select the direction defaults.
func (r *Reveal) SetSnapshots(from Snapshot, to []Snapshot) {
	if from == nil {
		from = DefaultFrom(r.opts.Direction)
	}
	if to == nil {
		to = DefaultTo(r.opts.Direction)
	}
	r.from = from
	r.to = to
	r.rebuild()
}

// Dispose releases the visibility observation and freezes the reveal. If
// the animation had not completed, the completion callback never fires.
// Safe to call more than once and on every teardown path.
func (r *Reveal) Dispose() {
	r.disposed = true
	r.gate.Detach()
}

// IsDisposed reports whether Dispose has been called.
func (r *Reveal) IsDisposed() bool {
	return r.disposed
}
