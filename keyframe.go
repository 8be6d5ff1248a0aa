package reveal

// BuildKeyframes merges a starting snapshot and an ordered list of target
// snapshots into per-property value lists.
//
// The key set is the union of every key in from and every snapshot in to.
// For each key the values are gathered in snapshot order — starting value
// first, then each target's value — skipping snapshots that do not define
// the key. Lists are therefore ragged: a property defined by m of the
// snapshots gets exactly m values, never a padded placeholder. A property
// absent from the starting snapshot begins at the first target that defines
// it, leaving the initial interpolation to the renderer's own defaults.
//
// The result depends only on (from, to) and is identical for every segment
// of a reveal, so callers build it once per snapshot pair, not per segment.
// A nil or empty to produces lists holding only the starting values.
func BuildKeyframes(from Snapshot, to []Snapshot) Keyframes {
	kf := make(Keyframes, len(from))
	for prop := range from {
		kf[prop] = nil
	}
	for _, snap := range to {
		for prop := range snap {
			kf[prop] = nil
		}
	}

	for prop := range kf {
		vals := make([]float64, 0, len(to)+1)
		if v, ok := from[prop]; ok {
			vals = append(vals, v)
		}
		for _, snap := range to {
			if v, ok := snap[prop]; ok {
				vals = append(vals, v)
			}
		}
		kf[prop] = vals
	}
	return kf
}

// TimeFractions returns the normalized time at which each keyframe is
// reached, for steps target snapshots. The result has steps+1 entries,
// evenly spaced over [0, 1] including both endpoints. With zero steps the
// single entry is 0 — a one-point animation collapses rather than failing.
func TimeFractions(steps int) []float64 {
	if steps <= 0 {
		return []float64{0}
	}
	fr := make([]float64, steps+1)
	for i := range fr {
		fr[i] = float64(i) / float64(steps)
	}
	return fr
}
