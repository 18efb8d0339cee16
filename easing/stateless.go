package easing

import "math"

type easing = Easing

// A few stateless built-in curves.
var (
	// Ease(t) returns t. This is the default curve for panel motion.
	Linear easing = linearEasing{}

	// Slow start and end, faster middle: 0.5 - cos(t*pi)/2.
	Swing easing = swingEasing{}
)

type linearEasing struct{}

func (linearEasing) Ease(progress float64) float64 {
	return clamp01(progress)
}

func (linearEasing) String() string { return "linear" }

type swingEasing struct{}

func (swingEasing) Ease(progress float64) float64 {
	progress = clamp01(progress)
	switch progress {
	case 0, 1:
		return progress
	}
	return 0.5 - math.Cos(progress*math.Pi)/2.0
}

func (swingEasing) String() string { return "swing" }

func clamp01(value float64) float64 {
	if value <= 0 || math.IsNaN(value) {
		return 0
	}
	if value >= 1 {
		return 1
	}
	return value
}
