package reveal

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewTransitionDurationAndFractions(t *testing.T) {
	tr := NewTransition(1, 0.35, 200, 0, ease.Linear)

	if math.Abs(tr.Duration-0.35) > 1e-9 {
		t.Errorf("Duration = %v, want 0.35", tr.Duration)
	}
	if !equalValues(tr.Fractions, []float64{0, 1}) {
		t.Errorf("Fractions = %v, want [0 1]", tr.Fractions)
	}
}

func TestNewTransitionTwoSteps(t *testing.T) {
	tr := NewTransition(2, 0.35, 0, 0, ease.Linear)

	if math.Abs(tr.Duration-0.7) > 1e-9 {
		t.Errorf("Duration = %v, want 0.7", tr.Duration)
	}
	if !equalValues(tr.Fractions, []float64{0, 0.5, 1}) {
		t.Errorf("Fractions = %v, want [0 0.5 1]", tr.Fractions)
	}
}

func TestNewTransitionDelayMillisecondsToSeconds(t *testing.T) {
	tr := NewTransition(2, 0.35, 200, 1, ease.Linear)
	if math.Abs(tr.Delay-0.2) > 1e-9 {
		t.Errorf("Delay = %v, want 0.2", tr.Delay)
	}
}

func TestNewTransitionDelayStrictlyIncreasing(t *testing.T) {
	prev := -1.0
	for i := 0; i < 5; i++ {
		tr := NewTransition(2, 0.35, 100, i, ease.Linear)
		want := float64(i) * 0.1
		if math.Abs(tr.Delay-want) > 1e-9 {
			t.Errorf("segment %d Delay = %v, want %v", i, tr.Delay, want)
		}
		if tr.Delay <= prev {
			t.Errorf("segment %d Delay = %v, not greater than previous %v", i, tr.Delay, prev)
		}
		prev = tr.Delay
	}
}

func TestNewTransitionSegmentZeroStartsImmediately(t *testing.T) {
	tr := NewTransition(2, 0.35, 500, 0, ease.Linear)
	if tr.Delay != 0 {
		t.Errorf("segment 0 Delay = %v, want 0", tr.Delay)
	}
}

func TestNewTransitionNilEasingDefaultsToLinear(t *testing.T) {
	tr := NewTransition(1, 0.35, 0, 0, nil)
	if tr.Ease == nil {
		t.Fatal("Ease is nil, want linear fallback")
	}
	// Linear: halfway through maps to half the change.
	if got := tr.Ease(0.5, 0, 1, 1); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("Ease(0.5, 0, 1, 1) = %v, want 0.5", got)
	}
}

func TestNewTransitionNegativeStepsCollapse(t *testing.T) {
	tr := NewTransition(-3, 0.35, 0, 0, ease.Linear)
	if tr.Duration != 0 {
		t.Errorf("Duration = %v, want 0", tr.Duration)
	}
	if !equalValues(tr.Fractions, []float64{0}) {
		t.Errorf("Fractions = %v, want [0]", tr.Fractions)
	}
}
