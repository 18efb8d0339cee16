// This package implements the animator in charge of moving parallax
// panels towards their target offsets.
//
// Animations are never queued: requesting a new transition for a
// property that is already animating replaces the in-flight tween,
// starting from the property's current value. Different targets and
// different properties of the same target animate independently.
//
// Time is advanced explicitly through [Animator.Update](), typically
// once per game tick with a delta of 1/TPS seconds.
package transition

// The interface for anything the animator can move. Implementations
// must be comparable (pointers are the usual choice), as the animator
// keys its in-flight tweens by target identity.
type Target interface {
	Left() float64
	Top() float64
	SetLeft(left float64)
	SetTop(top float64)
}

// Animatable target properties.
type Property uint8

const (
	Left Property = iota
	Top

	propertyEndSentinel
)

// Returns a string representation of the property.
func (self Property) String() string {
	switch self {
	case Left:
		return "left"
	case Top:
		return "top"
	default:
		panic("invalid Property")
	}
}

func (self Property) get(target Target) float64 {
	switch self {
	case Left:
		return target.Left()
	case Top:
		return target.Top()
	default:
		panic("invalid Property")
	}
}

func (self Property) set(target Target, value float64) {
	switch self {
	case Left:
		target.SetLeft(value)
	case Top:
		target.SetTop(value)
	default:
		panic("invalid Property")
	}
}

// A single property change requested through [Animator.Animate]().
type Step struct {
	Property Property
	To       float64
}

// Shorthand for Step{Property: property, To: value}.
func To(property Property, value float64) Step {
	return Step{Property: property, To: value}
}
