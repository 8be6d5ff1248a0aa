package reveal

// Observer delivers visibility signals for one element. Attach subscribes
// with an overlap threshold and a margin around the observed region; the
// observer calls onVisible on its own schedule, possibly more than once.
// Detach permanently stops delivery. [ViewportObserver] is the built-in
// implementation; anything that can report "the element entered the region"
// can satisfy this.
type Observer interface {
	Attach(threshold, margin float64, onVisible func())
	Detach()
}

// Gate is the one-shot trigger that starts a reveal. It begins Dormant and
// flips to Triggered on the first qualifying visibility signal; Triggered is
// terminal, so signals after the first — including ones already in flight
// while the observer detaches — have no effect. A gate serves exactly one
// mounted instance.
type Gate struct {
	obs      Observer
	state    VisibilityState
	attached bool
}

// NewGate wraps an observer in a dormant gate.
func NewGate(obs Observer) *Gate {
	return &Gate{obs: obs}
}

// Attach subscribes to the observer. The first signal transitions the gate
// to Triggered, detaches the observer, and then invokes onTrigger; the state
// flips before the callback runs, so a re-entrant signal sees Triggered and
// returns without a double transition.
func (g *Gate) Attach(threshold, margin float64, onTrigger func()) {
	if g.attached || g.state == Triggered {
		return
	}
	g.attached = true
	g.obs.Attach(threshold, margin, func() {
		// A signal still in flight after Detach must not fire the gate.
		if g.state == Triggered || !g.attached {
			return
		}
		g.state = Triggered
		g.detach()
		if onTrigger != nil {
			onTrigger()
		}
	})
}

// State returns Dormant until the first qualifying signal, Triggered after.
func (g *Gate) State() VisibilityState {
	return g.state
}

// Detach releases the observation without firing. Safe to call on every
// teardown path: it is idempotent and a no-op after the gate has triggered
// (the trigger already detached).
func (g *Gate) Detach() {
	g.detach()
}

func (g *Gate) detach() {
	if !g.attached {
		return
	}
	g.attached = false
	g.obs.Detach()
}
