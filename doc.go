// Package reveal animates text into view one segment at a time for
// [Ebitengine].
//
// A reveal splits its text into segments (words or letters), builds a
// per-property keyframe track from a starting visual snapshot and an ordered
// list of target snapshots, and plays every segment's track with a staggered
// start delay once the text block becomes visible inside a viewport.
//
// # Quick start
//
//	r := reveal.New(reveal.Options{
//		Text:      "Hello world",
//		AnimateBy: reveal.Words,
//		Delay:     200, // ms between segment starts
//		OnComplete: func() { fmt.Println("done") },
//	})
//
//	// Each frame:
//	r.CheckVisibility(textBounds, screenBounds)
//	r.Update(1.0 / 60.0)
//	drawer.Draw(screen, r, x, y)
//
// Until the text block intersects the viewport, every segment stays frozen
// at the starting snapshot. The first qualifying visibility check triggers
// the reveal exactly once; later checks are ignored for the lifetime of the
// instance.
//
// # Snapshots and keyframes
//
// A [Snapshot] maps property names to values. The defaults animate
// [Opacity], [Blur], and [OffsetY], but any key set is legal — the keyframe
// builder takes the union of all keys and a renderer decides what each one
// means. Easing comes from [gween]'s ease package; the default is linear.
//
// Drawing is optional and lives entirely in [Drawer]; the core types are
// plain values that can be inspected and tested without a display.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package reveal
