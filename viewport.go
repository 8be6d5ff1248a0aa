package reveal

// ViewportObserver is the built-in [Observer]: it trips when a target
// rectangle overlaps a view rectangle by at least the configured threshold.
// There is no background watcher — the host calls Check each frame with the
// current rectangles, the same way a scene feeds its camera bounds through
// a cull pass. Delivery stops permanently after Detach.
type ViewportObserver struct {
	threshold float64
	margin    float64
	onVisible func()
	active    bool
}

// Attach arms the observer. threshold is the fraction of the target's area
// that must lie inside the (margin-expanded) view, in [0, 1]; a threshold of
// zero fires on any intersection, edge contact included. margin grows the
// view rectangle on every side, so a positive margin fires before the target
// actually enters the view.
func (o *ViewportObserver) Attach(threshold, margin float64, onVisible func()) {
	o.threshold = threshold
	o.margin = margin
	o.onVisible = onVisible
	o.active = true
}

// Detach permanently stops delivery. Checks after Detach are no-ops.
func (o *ViewportObserver) Detach() {
	o.active = false
	o.onVisible = nil
}

// Check evaluates one visibility sample and invokes the attached callback if
// the overlap qualifies. The callback may call Detach re-entrantly (the gate
// does exactly that); delivery for the current sample still completes.
func (o *ViewportObserver) Check(target, view Rect) {
	if !o.active {
		return
	}
	region := view.Inset(-o.margin)
	if !target.Intersects(region) {
		return
	}
	if target.OverlapFraction(region) < o.threshold {
		return
	}
	if fn := o.onVisible; fn != nil {
		fn()
	}
}
