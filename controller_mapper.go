package parallax

import "math"

// Converts a pointer move into the pointer position within the stage
// bounds, as rounded percentages of each axis in [0, 100]. Axes with
// a zero (or otherwise unusable) size map to 0.
func PointerPercent(event PointerEvent, bounds Rect) (xPercent, yPercent int) {
	xPercent = axisPercent(event.PageX-bounds.X, bounds.Width)
	yPercent = axisPercent(event.PageY-bounds.Y, bounds.Height)
	return xPercent, yPercent
}

func axisPercent(position, size float64) int {
	if !(size > 0) || math.IsInf(size, 0) {
		return 0
	}
	percent := math.Round(position / size * 100.0)
	switch {
	case math.IsNaN(percent):
		return 0
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	default:
		return int(percent)
	}
}

// Returns the offset a panel must move to for the given pointer
// percentage: the size difference between stage and panel scaled by
// percent/100. Panels bigger than the stage get negative offsets.
func PanelOffset(stageSize, panelSize float64, percent int) float64 {
	return (stageSize - panelSize) * (float64(percent) / 100.0)
}
