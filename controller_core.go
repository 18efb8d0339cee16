package parallax

import (
	"slices"
	"time"

	"github.com/edwinsyarief/parallax/transition"
)

// Parallax controller for a single stage. Create it with
// [NewController]() and toggle it with [Controller.Activate]() and
// [Controller.Deactivate]().
//
// Controllers are meant to be driven from the game loop goroutine
// and are not safe for concurrent use.
type Controller struct {
	stage        Stage
	config       Config
	registry     []RegisteredPanel
	active       bool
	subscription Subscription
	animator     transition.Animator
}

// Creates an inactive controller for the given stage.
func NewController(stage Stage) *Controller {
	return &Controller{stage: stage}
}

// Returns the stage the controller was created for.
func (self *Controller) Stage() Stage {
	return self.stage
}

// Returns whether the controller is active.
func (self *Controller) IsActive() bool {
	return self.active
}

// Returns the effective configuration of the current activation.
func (self *Controller) Config() Config {
	config := self.config
	config.PanelOpts = slices.Clone(config.PanelOpts)
	return config
}

// Returns a copy of the panel registry built at activation time.
// The registry is empty while the controller is inactive.
func (self *Controller) Registry() []RegisteredPanel {
	return slices.Clone(self.registry)
}

// Builds the panel registry from the stage's current panels, applies
// the panel overrides and starts listening to pointer moves. The given
// config is merged over [DefaultConfig]().
//
// Returns the controller itself for chaining, or nil and an error
// if the controller is already active ([ErrAlreadyActive]) or its
// stage is nil ([ErrInvalidStage], also logged).
func (self *Controller) Activate(config Config) (*Controller, error) {
	if self.stage == nil {
		pkgLogger.Error().Err(ErrInvalidStage).Msg("not a valid stage")
		return nil, ErrInvalidStage
	}
	if self.active {
		return nil, ErrAlreadyActive
	}

	self.config = Merge(DefaultConfig(), config)
	self.registry = buildRegistry(self.stage)
	applyPanelOptions(self.registry, self.config.PanelOpts)
	self.active = true
	self.subscription = self.stage.OnPointerMove(self.HandlePointerMove)

	pkgLogger.Debug().
		Int("panels", len(self.registry)).
		Dur("speed", self.config.Speed).
		Bool("y_motion", self.config.YMotion).
		Msg("parallax activated")
	return self, nil
}

// Stops listening to pointer moves, halts in-flight panel transitions
// where they are and drops the registry.
//
// Returns the controller itself, or nil and [ErrNotActive] if the
// controller wasn't active.
func (self *Controller) Deactivate() (*Controller, error) {
	if !self.active {
		return nil, ErrNotActive
	}

	if self.subscription != nil {
		self.subscription.Remove()
		self.subscription = nil
	}
	self.animator.StopAll()
	self.registry = nil
	self.active = false

	pkgLogger.Debug().Msg("parallax deactivated")
	return self, nil
}

// Repositions every registered panel for the given pointer move.
// This is the handler registered on the stage, but it can also be
// invoked directly. Ignored while inactive.
func (self *Controller) HandlePointerMove(event PointerEvent) {
	if !self.active {
		return
	}
	bounds := self.stage.Bounds()
	xPercent, yPercent := PointerPercent(event, bounds)
	self.position(bounds, xPercent, yPercent)
}

// Advances in-flight panel transitions. Must be called once per
// game update, typically with a delta of 1/TPS seconds.
func (self *Controller) Update(delta time.Duration) {
	self.animator.Update(delta)
}

// Returns whether any panel transition is still in progress.
func (self *Controller) IsAnimating() bool {
	return self.animator.Len() > 0
}

func (self *Controller) position(bounds Rect, xPercent, yPercent int) {
	opts := transition.Options{
		Duration: self.config.Speed,
		Easing:   self.config.Easing,
	}
	for i := range self.registry {
		entry := &self.registry[i]
		if entry.Panel == nil {
			continue
		}
		panelWidth, panelHeight := entry.Size()
		left := PanelOffset(bounds.Width, panelWidth, xPercent)
		if self.config.YMotion {
			top := PanelOffset(bounds.Height, panelHeight, yPercent)
			self.animator.Animate(entry.Panel, opts,
				transition.To(transition.Left, left),
				transition.To(transition.Top, top),
			)
		} else {
			self.animator.Animate(entry.Panel, opts, transition.To(transition.Left, left))
		}
	}
}
