package reveal

import "strings"

// Segment is one unit of text (a word or a letter) that animates
// independently. Index is the sole identity used for stagger delays and
// completion detection.
type Segment struct {
	Index   int
	Content string
}

// Split breaks text into an ordered sequence of segments. Empty text yields
// an empty sequence.
//
// Words mode splits on single-space boundaries with naive split semantics:
// consecutive spaces produce empty segments, which still occupy a stagger
// slot. Letters mode produces one segment per rune, including whitespace
// runes as their own segment.
func Split(text string, mode Mode) []Segment {
	if text == "" {
		return nil
	}

	if mode == Words {
		parts := strings.Split(text, " ")
		segs := make([]Segment, len(parts))
		for i, p := range parts {
			segs[i] = Segment{Index: i, Content: p}
		}
		return segs
	}

	segs := make([]Segment, 0, len(text))
	for _, r := range text {
		segs = append(segs, Segment{Index: len(segs), Content: string(r)})
	}
	return segs
}
