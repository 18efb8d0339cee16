// This package defines an [Easing] interface that the parallax
// transition animator uses to shape panel motion over time, and
// provides a couple of built-in curves.
//
// Built-in curves respect two properties:
//   - Ease(0) == 0 and Ease(1) == 1, so transitions always start at
//     their origin and land exactly on their target.
//   - Progress outside [0, 1] is clamped before evaluation.
//
// If you are writing your own curve, only the first property really
// matters; the animator never passes values outside [0, 1].
package easing

// The interface for parallax easing curves.
//
// Given the linear progress of a transition between 0 and 1,
// Ease() returns the eased progress used to interpolate between
// the start and target values.
type Easing interface {
	Ease(progress float64) float64
}

// Returns the curve registered under the given name, or nil if
// the name is unknown. Recognized names are "linear" and "swing".
func ByName(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "swing":
		return Swing
	default:
		return nil
	}
}
