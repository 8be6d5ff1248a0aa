package reveal

import (
	"math"
	"testing"
)

func TestBuildKeyframesGathersValuesInSnapshotOrder(t *testing.T) {
	from := Snapshot{Opacity: 0, Blur: 10}
	to := []Snapshot{
		{Opacity: 0.5, Blur: 5},
		{Opacity: 1, Blur: 0},
	}

	kf := BuildKeyframes(from, to)

	wantOpacity := []float64{0, 0.5, 1}
	if got := kf[Opacity]; !equalValues(got, wantOpacity) {
		t.Errorf("opacity = %v, want %v", got, wantOpacity)
	}
	wantBlur := []float64{10, 5, 0}
	if got := kf[Blur]; !equalValues(got, wantBlur) {
		t.Errorf("blur = %v, want %v", got, wantBlur)
	}
}

func TestBuildKeyframesUnionOfKeys(t *testing.T) {
	from := Snapshot{Opacity: 0}
	to := []Snapshot{{OffsetY: 5}, {Blur: 0}}

	kf := BuildKeyframes(from, to)
	if len(kf) != 3 {
		t.Fatalf("key count = %d, want 3", len(kf))
	}
}

func TestBuildKeyframesRaggedListsOmitAbsentEntries(t *testing.T) {
	// A property absent from a snapshot is skipped, not null-filled: the
	// list length equals the number of snapshots that define it.
	from := Snapshot{Opacity: 0}
	to := []Snapshot{
		{Opacity: 0.5, Blur: 3},
		{Opacity: 1},
	}

	kf := BuildKeyframes(from, to)
	if got := kf[Blur]; !equalValues(got, []float64{3}) {
		t.Errorf("blur = %v, want [3]", got)
	}
	if got := kf[Opacity]; len(got) != 3 {
		t.Errorf("opacity length = %d, want 3", len(got))
	}
}

func TestBuildKeyframesPropertyMissingFromStart(t *testing.T) {
	// No interpolation "from nothing" is inserted; the list begins with the
	// first step that defines the property.
	from := Snapshot{}
	to := []Snapshot{{Opacity: 0.5}, {Opacity: 1}}

	kf := BuildKeyframes(from, to)
	if got := kf[Opacity]; !equalValues(got, []float64{0.5, 1}) {
		t.Errorf("opacity = %v, want [0.5 1]", got)
	}
}

func TestBuildKeyframesEmptyTargets(t *testing.T) {
	kf := BuildKeyframes(Snapshot{Opacity: 0}, nil)
	if got := kf[Opacity]; !equalValues(got, []float64{0}) {
		t.Errorf("opacity = %v, want [0]", got)
	}
}

func TestTimeFractionsSinglePoint(t *testing.T) {
	fr := TimeFractions(0)
	if !equalValues(fr, []float64{0}) {
		t.Errorf("fractions = %v, want [0]", fr)
	}
}

func TestTimeFractionsOneStep(t *testing.T) {
	fr := TimeFractions(1)
	if !equalValues(fr, []float64{0, 1}) {
		t.Errorf("fractions = %v, want [0 1]", fr)
	}
}

func TestTimeFractionsEvenlySpaced(t *testing.T) {
	fr := TimeFractions(4)
	if len(fr) != 5 {
		t.Fatalf("length = %d, want 5", len(fr))
	}
	if fr[0] != 0 || fr[len(fr)-1] != 1 {
		t.Errorf("endpoints = %v, %v, want 0 and 1", fr[0], fr[len(fr)-1])
	}
	for i := 1; i < len(fr); i++ {
		if math.Abs((fr[i]-fr[i-1])-0.25) > 1e-9 {
			t.Errorf("spacing between %d and %d = %v, want 0.25", i-1, i, fr[i]-fr[i-1])
		}
	}
}

func equalValues(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			return false
		}
	}
	return true
}
