package transition

import (
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/parallax/easing"
)

// below this distance tweens land on their target right away
const stabilizationThreshold = 0.001

type tween struct {
	from     float64
	to       float64
	elapsed  time.Duration
	duration time.Duration
	easing   easing.Easing
}

func (self *tween) advance(delta time.Duration) (value float64, finished bool) {
	if ebimath.Abs(self.to-self.from) < stabilizationThreshold {
		return self.to, true
	}

	self.elapsed += delta
	if self.elapsed >= self.duration {
		self.elapsed = self.duration
		return self.to, true
	}

	progress := float64(self.elapsed) / float64(self.duration)
	return self.from + (self.to-self.from)*self.easing.Ease(progress), false
}
