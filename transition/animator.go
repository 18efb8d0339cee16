package transition

import (
	"time"

	"github.com/edwinsyarief/parallax/easing"
)

// Options shared by all the steps of a single [Animator.Animate]() call.
type Options struct {
	// Transition length. Zero or negative durations apply the
	// target values immediately.
	Duration time.Duration

	// Curve applied to the transition progress. If nil,
	// [easing.Linear] is used.
	Easing easing.Easing
}

type track struct {
	target Target
	tweens [propertyEndSentinel]*tween
}

func (self *track) idle() bool {
	for _, tw := range self.tweens {
		if tw != nil {
			return false
		}
	}
	return true
}

// Animator keeps the in-flight tweens of any number of targets.
// The zero value is ready to use. Not safe for concurrent use.
type Animator struct {
	tracks []*track
	index  map[Target]*track
}

// Starts a transition of the given properties of target towards the
// step values. Any in-flight tween for the same target and property is
// replaced, and the new one starts from the property's current value.
func (self *Animator) Animate(target Target, opts Options, steps ...Step) {
	if target == nil || len(steps) == 0 {
		return
	}
	curve := opts.Easing
	if curve == nil {
		curve = easing.Linear
	}

	trk := self.index[target]
	for _, step := range steps {
		if opts.Duration <= 0 {
			step.Property.set(target, step.To)
			if trk != nil {
				trk.tweens[step.Property] = nil
			}
			continue
		}
		if trk == nil {
			trk = self.newTrack(target)
		}
		trk.tweens[step.Property] = &tween{
			from:     step.Property.get(target),
			to:       step.To,
			duration: opts.Duration,
			easing:   curve,
		}
	}
	if trk != nil && trk.idle() {
		self.Stop(target)
	}
}

func (self *Animator) newTrack(target Target) *track {
	if self.index == nil {
		self.index = make(map[Target]*track)
	}
	trk := &track{target: target}
	self.tracks = append(self.tracks, trk)
	self.index[target] = trk
	return trk
}

// Advances every in-flight tween by delta, writing the new values to
// their targets. Finished tweens write their exact target value and
// are discarded.
func (self *Animator) Update(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}

	kept := self.tracks[:0]
	for _, trk := range self.tracks {
		for i, tw := range trk.tweens {
			if tw == nil {
				continue
			}
			value, finished := tw.advance(delta)
			Property(i).set(trk.target, value)
			if finished {
				trk.tweens[i] = nil
			}
		}
		if trk.idle() {
			delete(self.index, trk.target)
		} else {
			kept = append(kept, trk)
		}
	}
	for i := len(kept); i < len(self.tracks); i++ {
		self.tracks[i] = nil
	}
	self.tracks = kept
}

// Discards the in-flight tweens of the given target, leaving its
// properties at their current values.
func (self *Animator) Stop(target Target) {
	trk, found := self.index[target]
	if !found {
		return
	}
	delete(self.index, target)
	for i := range self.tracks {
		if self.tracks[i] == trk {
			copy(self.tracks[i:], self.tracks[i+1:])
			self.tracks[len(self.tracks)-1] = nil
			self.tracks = self.tracks[:len(self.tracks)-1]
			return
		}
	}
}

// Discards all in-flight tweens.
func (self *Animator) StopAll() {
	clear(self.tracks)
	self.tracks = self.tracks[:0]
	clear(self.index)
}

// Returns whether the given target has any in-flight tween. If
// properties are given, only those are considered.
func (self *Animator) Active(target Target, properties ...Property) bool {
	trk, found := self.index[target]
	if !found {
		return false
	}
	if len(properties) == 0 {
		return true
	}
	for _, property := range properties {
		if trk.tweens[property] != nil {
			return true
		}
	}
	return false
}

// Returns the number of targets with in-flight tweens.
func (self *Animator) Len() int {
	return len(self.tracks)
}
