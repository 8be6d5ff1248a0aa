package reveal

import "testing"

func TestSplitWords(t *testing.T) {
	segs := Split("a b", Words)
	if len(segs) != 2 {
		t.Fatalf("len = %d, want 2", len(segs))
	}
	if segs[0].Content != "a" || segs[1].Content != "b" {
		t.Errorf("contents = %q, %q, want \"a\", \"b\"", segs[0].Content, segs[1].Content)
	}
}

func TestSplitLetters(t *testing.T) {
	segs := Split("a b", Letters)
	if len(segs) != 3 {
		t.Fatalf("len = %d, want 3", len(segs))
	}
	want := []string{"a", " ", "b"}
	for i, w := range want {
		if segs[i].Content != w {
			t.Errorf("segment %d = %q, want %q", i, segs[i].Content, w)
		}
	}
}

func TestSplitEmptyText(t *testing.T) {
	if segs := Split("", Words); len(segs) != 0 {
		t.Errorf("words: len = %d, want 0", len(segs))
	}
	if segs := Split("", Letters); len(segs) != 0 {
		t.Errorf("letters: len = %d, want 0", len(segs))
	}
}

func TestSplitConsecutiveSpacesYieldEmptySegments(t *testing.T) {
	// Naive split semantics: "a  b" has an empty segment in the middle,
	// and it still occupies a stagger slot.
	segs := Split("a  b", Words)
	if len(segs) != 3 {
		t.Fatalf("len = %d, want 3", len(segs))
	}
	if segs[1].Content != "" {
		t.Errorf("middle segment = %q, want empty", segs[1].Content)
	}
}

func TestSplitLettersMultibyte(t *testing.T) {
	segs := Split("héj", Letters)
	if len(segs) != 3 {
		t.Fatalf("len = %d, want 3 (per rune, not per byte)", len(segs))
	}
	if segs[1].Content != "é" {
		t.Errorf("segment 1 = %q, want %q", segs[1].Content, "é")
	}
}

func TestSplitIndicesAreOrdinal(t *testing.T) {
	segs := Split("one two three", Words)
	for i, s := range segs {
		if s.Index != i {
			t.Errorf("segment %d has Index %d", i, s.Index)
		}
	}
}
