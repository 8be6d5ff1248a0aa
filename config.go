package reveal

import (
	"fmt"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Defaults applied by [LoadOptions] when a field is absent, matching the
// zero-config behavior of [New] where one exists.
const (
	DefaultDelay        = 200  // milliseconds between segment starts
	DefaultStepDuration = 0.35 // seconds per keyframe step
	DefaultThreshold    = 0.1  // overlap fraction required to trigger
)

// Options configures a [Reveal]. The zero value animates nothing (empty
// text); every field is optional.
type Options struct {
	// Text is the source string to segment. Empty text yields zero
	// segments, no animation, and no completion callback.
	Text string

	// Delay is the stagger unit in milliseconds: segment i starts
	// i×Delay ms after the trigger. Zero starts all segments together.
	Delay float64

	// AnimateBy selects Words (default) or Letters segmentation.
	AnimateBy Mode

	// Direction selects the sign of the default starting vertical offset:
	// FromTop drops segments in from above, FromBottom from below. Ignored
	// when From and To are both set explicitly.
	Direction Direction

	// Threshold is the overlap fraction of the text bounds that must lie
	// inside the view before the reveal triggers. Zero fires on any
	// intersection.
	Threshold float64

	// RootMargin expands the observed view region by this many pixels on
	// every side, so the trigger can fire before the text scrolls fully
	// into view.
	RootMargin float64

	// From overrides the starting snapshot. Nil selects the direction
	// default: blurred, transparent, vertically offset.
	From Snapshot

	// To overrides the ordered target snapshots. Nil selects the direction
	// default, a two-step sequence through a half-clear midpoint to fully
	// clear. A non-nil empty list is honored literally: segments snap to
	// their starting values and complete immediately after their delay.
	To []Snapshot

	// Easing maps elapsed time to progress between keyframes. Nil means
	// ease.Linear.
	Easing ease.TweenFunc

	// StepDuration is the seconds spent per keyframe step; the total
	// duration is StepDuration × len(To). Zero or negative selects
	// DefaultStepDuration.
	StepDuration float64

	// OnComplete is invoked exactly once, when the highest-index segment
	// finishes its own animation. It is bound to that segment, not to the
	// last track to finish. Never invoked for empty text or after Dispose.
	OnComplete func()
}

// DefaultFrom returns the starting snapshot for the given direction:
// fully blurred, invisible, and offset 50px toward the entry side.
func DefaultFrom(dir Direction) Snapshot {
	offset := -50.0
	if dir == FromBottom {
		offset = 50.0
	}
	return Snapshot{Blur: 10, Opacity: 0, OffsetY: offset}
}

// DefaultTo returns the default two-step target sequence for the given
// direction: a half-clear midpoint that overshoots 5px past the rest
// position, then the fully clear endpoint.
func DefaultTo(dir Direction) []Snapshot {
	overshoot := 5.0
	if dir == FromBottom {
		overshoot = -5.0
	}
	return []Snapshot{
		{Blur: 5, Opacity: 0.5, OffsetY: overshoot},
		{Blur: 0, Opacity: 1, OffsetY: 0},
	}
}

// easings is the name table for file-driven configs.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// EasingByName resolves an easing function by its config-file name
// ("linear", "outCubic", "inOutElastic", ...). The second result reports
// whether the name is known.
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// optionsFile is the YAML shape of a reveal definition. Pointer fields
// distinguish "absent, use the default" from an explicit zero.
type optionsFile struct {
	Text         string               `yaml:"text"`
	Delay        *float64             `yaml:"delay"`
	AnimateBy    string               `yaml:"animate_by"`
	Direction    string               `yaml:"direction"`
	Threshold    *float64             `yaml:"threshold"`
	RootMargin   float64              `yaml:"root_margin"`
	Easing       string               `yaml:"easing"`
	StepDuration *float64             `yaml:"step_duration"`
	From         map[string]float64   `yaml:"from"`
	To           []map[string]float64 `yaml:"to"`
}

// LoadOptions parses a YAML reveal definition:
//
//	text: Hello world
//	animate_by: words
//	direction: top
//	delay: 200
//	step_duration: 0.35
//	threshold: 0.1
//	easing: outCubic
//
// Absent delay, threshold, and step_duration fall back to the package
// defaults; absent from/to fall back to the direction defaults at New time.
// The completion callback cannot come from a file; set it on the returned
// Options.
func LoadOptions(data []byte) (Options, error) {
	var f optionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Options{}, fmt.Errorf("reveal: parse options: %w", err)
	}

	opts := Options{
		Text:         f.Text,
		Delay:        DefaultDelay,
		Threshold:    DefaultThreshold,
		RootMargin:   f.RootMargin,
		StepDuration: DefaultStepDuration,
	}
	if f.Delay != nil {
		opts.Delay = *f.Delay
	}
	if f.Threshold != nil {
		opts.Threshold = *f.Threshold
	}
	if f.StepDuration != nil {
		opts.StepDuration = *f.StepDuration
	}

	switch f.AnimateBy {
	case "", "words":
		opts.AnimateBy = Words
	case "letters":
		opts.AnimateBy = Letters
	default:
		return Options{}, fmt.Errorf("reveal: unknown animate_by %q", f.AnimateBy)
	}

	switch f.Direction {
	case "", "top":
		opts.Direction = FromTop
	case "bottom":
		opts.Direction = FromBottom
	default:
		return Options{}, fmt.Errorf("reveal: unknown direction %q", f.Direction)
	}

	if f.Easing != "" {
		fn, ok := EasingByName(f.Easing)
		if !ok {
			return Options{}, fmt.Errorf("reveal: unknown easing %q", f.Easing)
		}
		opts.Easing = fn
	}

	if f.From != nil {
		opts.From = snapshotFromYAML(f.From)
	}
	if f.To != nil {
		opts.To = make([]Snapshot, len(f.To))
		for i, m := range f.To {
			opts.To[i] = snapshotFromYAML(m)
		}
	}

	return opts, nil
}

func snapshotFromYAML(m map[string]float64) Snapshot {
	s := make(Snapshot, len(m))
	for k, v := range m {
		s[Property(k)] = v
	}
	return s
}
