package parallax

import (
	"time"

	"github.com/edwinsyarief/parallax/internal/logging"
	"github.com/edwinsyarief/parallax/transition"
	"github.com/rs/zerolog"
)

// --- stage ---

// A rectangle in page coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// A pointer move, in the same page coordinates as [Stage.Bounds]().
type PointerEvent struct {
	PageX, PageY float64
}

// Handle returned when subscribing to pointer moves.
type Subscription interface {
	// Unregisters the handler so it no longer fires.
	// Calling Remove more than once must be safe.
	Remove()
}

// The interface for parallax panels. Panels are moved through their
// left and top offsets, relative to the stage origin.
//
// Panels are compared by identity, so implementations must be
// comparable (pointers are the usual choice).
type Panel interface {
	transition.Target

	// Returns the live measured size of the panel.
	Size() (width, height float64)
}

// The interface for the container on which parallax is activated.
//
// Stages are used as map keys by [Attach](), so implementations must
// be comparable (pointers are the usual choice). A non-comparable
// stage makes [Attach]() panic.
type Stage interface {
	// Returns the stage offset and its current measured size.
	Bounds() Rect

	// Returns the direct children of the stage, in order.
	Panels() []Panel

	// Registers a handler for pointer moves over the stage.
	OnPointerMove(handler func(PointerEvent)) Subscription
}

// --- attachment ---

var attached map[Stage]*Controller

// Creates a controller for the given stage and activates it, keeping
// track of it so it can later be retrieved with [Lookup]() or
// deactivated with [Detach]().
//
// Returns [ErrAlreadyActive] if the stage was already attached and
// [ErrInvalidStage] if the stage is nil.
func Attach(stage Stage, config Config) (*Controller, error) {
	if stage == nil {
		pkgLogger.Error().Err(ErrInvalidStage).Msg("not a valid stage")
		return nil, ErrInvalidStage
	}
	if ctrl, found := attached[stage]; found && ctrl.IsActive() {
		return nil, ErrAlreadyActive
	}

	ctrl, err := NewController(stage).Activate(config)
	if err != nil {
		return nil, err
	}
	if attached == nil {
		attached = make(map[Stage]*Controller)
	}
	attached[stage] = ctrl
	return ctrl, nil
}

// Deactivates and forgets the controller attached to the given stage.
// Returns [ErrNotActive] if the stage isn't attached.
func Detach(stage Stage) error {
	ctrl, found := attached[stage]
	if !found {
		return ErrNotActive
	}
	delete(attached, stage)
	_, err := ctrl.Deactivate()
	return err
}

// Returns the controller attached to the given stage, if any.
func Lookup(stage Stage) (*Controller, bool) {
	ctrl, found := attached[stage]
	return ctrl, found
}

// Advances the transitions of every attached controller.
func UpdateAll(delta time.Duration) {
	for _, ctrl := range attached {
		ctrl.Update(delta)
	}
}

// --- logging ---

var pkgLogger = logging.WithComponent(logging.New(logging.DefaultConfig()), "parallax")

// Replaces the logger used to report diagnostics. By default, info
// and above are written to stderr.
func SetLogger(logger zerolog.Logger) {
	pkgLogger = logger
}
