package parallax

import (
	"slices"
	"time"

	"github.com/edwinsyarief/parallax/easing"
)

// Parallax configuration. See [DefaultConfig]() for the defaults
// and [Merge]() for how partial configurations are completed.
type Config struct {
	// Length of each panel transition. Defaults to [DefaultSpeed].
	Speed time.Duration

	// Enables motion on the vertical axis. By default, only the
	// left offset of the panels is animated.
	YMotion bool

	// Per panel overrides, applied by position at activation time:
	// PanelOpts[i] overrides the i-th panel of the stage.
	PanelOpts []PanelOption

	// Transition curve. Defaults to [easing.Linear].
	Easing easing.Easing
}

// Overrides for a single panel. Zero sizes mean "not set", in which
// case the panel's live size is used.
type PanelOption struct {
	// Informational only. The option applies to the panel matching its
	// position in [Config].PanelOpts, and a mismatching Index is just
	// reported through the debug log.
	Index  int
	Width  float64
	Height float64
}

// Returns the default configuration: 50ms linear transitions,
// horizontal motion only and no panel overrides.
func DefaultConfig() Config {
	return Config{
		Speed:  DefaultSpeed,
		Easing: easing.Linear,
	}
}

// Returns defaults with every field set in overrides replaced.
// Non positive speeds and nil easings count as unset, YMotion can
// only be switched on, and a non nil PanelOpts replaces the default
// list as a whole. Neither argument is modified.
func Merge(defaults, overrides Config) Config {
	merged := defaults
	if overrides.Speed > 0 {
		merged.Speed = overrides.Speed
	}
	if overrides.YMotion {
		merged.YMotion = true
	}
	if overrides.PanelOpts != nil {
		merged.PanelOpts = overrides.PanelOpts
	}
	if overrides.Easing != nil {
		merged.Easing = overrides.Easing
	}
	merged.PanelOpts = slices.Clone(merged.PanelOpts)
	return merged
}
