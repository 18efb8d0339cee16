package parallax

import (
	"errors"
	"time"
)

// Default transition length, matching the classic 50ms parallax feel.
const DefaultSpeed = 50 * time.Millisecond

// --- errors ---

var (
	// The stage is nil. Reported through the logger as well.
	ErrInvalidStage = errors.New("parallax: invalid stage")

	// Activate was called on a controller that is already active.
	ErrAlreadyActive = errors.New("parallax: already active")

	// Deactivate was called on a controller that isn't active.
	ErrNotActive = errors.New("parallax: not active")
)
