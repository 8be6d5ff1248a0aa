package reveal

import (
	"sort"

	"github.com/tanema/gween"
)

// Track plays one segment's keyframes. Each property gets a chain of gween
// tweens, one per keyframe pair, sharing the transition's easing; the whole
// track waits out the segment's stagger delay before the first tween runs.
// Call Update(dt) each frame. Values hold the first keyframe until the delay
// elapses, so a dormant or still-waiting segment renders frozen.
//
// There is no global animation manager — owners call Update themselves.
type Track struct {
	props []propTrack
	delay float64
	Done  bool
}

// propTrack advances one property's value list.
type propTrack struct {
	prop   Property
	tweens []*gween.Tween
	idx    int
	value  float64
	done   bool
}

// NewTrack builds the playback state for one segment from the shared
// keyframes and the segment's transition. Properties with fewer than two
// values, or any property when the duration is zero, snap to their final
// value and complete as soon as the delay elapses.
//
// Keyframe lists may be ragged (see [BuildKeyframes]); a list of m values
// spreads its m-1 tweens evenly across the full duration. For a complete
// list this lands each keyframe exactly on its time fraction, since the
// fractions are uniform; a ragged list redistributes, matching the
// pass-through-to-renderer-defaults contract.
func NewTrack(kf Keyframes, tr Transition) *Track {
	t := &Track{
		props: make([]propTrack, 0, len(kf)),
		delay: tr.Delay,
	}

	names := make([]string, 0, len(kf))
	for prop := range kf {
		names = append(names, string(prop))
	}
	sort.Strings(names)

	fn := tr.Ease
	for _, name := range names {
		prop := Property(name)
		vals := kf[prop]
		if len(vals) == 0 {
			continue
		}
		p := propTrack{prop: prop, value: vals[0]}
		if len(vals) < 2 || tr.Duration <= 0 {
			p.value = vals[len(vals)-1]
			p.done = true
		} else {
			step := tr.Duration / float64(len(vals)-1)
			p.tweens = make([]*gween.Tween, len(vals)-1)
			for i := range p.tweens {
				p.tweens[i] = gween.New(float32(vals[i]), float32(vals[i+1]), float32(step), fn)
			}
		}
		t.props = append(t.props, p)
	}
	return t
}

// Update advances the track by dt seconds. The stagger delay is consumed
// first; leftover time in the same frame flows into the tweens, so a large
// dt cannot stall a segment for an extra frame. Once Done, Update is a
// no-op.
func (t *Track) Update(dt float64) {
	if t.Done {
		return
	}

	if t.delay > 0 {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		dt = -t.delay
		t.delay = 0
	}

	allDone := true
	for i := range t.props {
		p := &t.props[i]
		if p.done {
			continue
		}
		p.advance(float32(dt))
		if !p.done {
			allDone = false
		}
	}
	t.Done = allDone
}

// advance runs the tween chain, carrying each finished tween's overflow
// into the next so keyframe boundaries don't quantize to frame boundaries.
func (p *propTrack) advance(dt float32) {
	for p.idx < len(p.tweens) {
		v, finished := p.tweens[p.idx].Update(dt)
		p.value = float64(v)
		if !finished {
			return
		}
		dt = p.tweens[p.idx].Overflow
		p.idx++
	}
	p.done = true
}

// Value returns the current value of the given property, or the fallback if
// the track does not animate it.
func (t *Track) Value(prop Property, fallback float64) float64 {
	for i := range t.props {
		if t.props[i].prop == prop {
			return t.props[i].value
		}
	}
	return fallback
}

// Waiting reports whether the track is still inside its stagger delay.
func (t *Track) Waiting() bool {
	return !t.Done && t.delay > 0
}
