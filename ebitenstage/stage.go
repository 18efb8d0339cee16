// Package ebitenstage provides a [parallax.Stage] for Ebitengine:
// panels are images drawn in order inside a rectangle of the screen,
// and pointer moves are detected by polling the cursor position once
// per update.
package ebitenstage

import (
	"math"
	"slices"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/parallax"
	"github.com/edwinsyarief/parallax/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ parallax.Stage = (*Stage)(nil)
var _ parallax.Panel = (*Sprite)(nil)

type pointerHandler struct {
	id uint32
	fn func(parallax.PointerEvent)
}

// A rectangular stage of sprites. Not safe for concurrent use; all
// methods must be called from the game loop.
type Stage struct {
	bounds    parallax.Rect
	sprites   []*Sprite
	handlers  []pointerHandler
	nextID    uint32
	cursor    ebimath.Vector
	hasCursor bool
}

// Creates an empty stage occupying the given screen rectangle.
func New(x, y, width, height float64) *Stage {
	return &Stage{bounds: parallax.Rect{X: x, Y: y, Width: width, Height: height}}
}

// Appends a panel for the given image and returns it. Panels added
// after a controller has been activated are not tracked by it.
func (self *Stage) AddPanel(image *ebiten.Image) *Sprite {
	sprite := NewSprite(image)
	self.sprites = append(self.sprites, sprite)
	return sprite
}

// Returns the stage sprites in drawing order.
func (self *Stage) Sprites() []*Sprite {
	return slices.Clone(self.sprites)
}

// Moves or resizes the stage, typically after a layout change.
func (self *Stage) SetBounds(bounds parallax.Rect) {
	self.bounds = bounds
}

// --- parallax.Stage implementation ---

func (self *Stage) Bounds() parallax.Rect {
	return self.bounds
}

func (self *Stage) Panels() []parallax.Panel {
	panels := make([]parallax.Panel, len(self.sprites))
	for i, sprite := range self.sprites {
		panels[i] = sprite
	}
	return panels
}

func (self *Stage) OnPointerMove(handler func(parallax.PointerEvent)) parallax.Subscription {
	self.nextID++
	self.handlers = append(self.handlers, pointerHandler{id: self.nextID, fn: handler})
	return &subscription{id: self.nextID, stage: self}
}

// --- input ---

// Polls [ebiten.CursorPosition]() and dispatches a pointer move if the
// cursor moved since the previous update and lies inside the stage.
func (self *Stage) Update() {
	x, y := ebiten.CursorPosition()
	self.ProcessCursor(float64(x), float64(y))
}

// Same as [Stage.Update](), but with explicit cursor coordinates.
// Useful when the screen coordinates need converting first.
func (self *Stage) ProcessCursor(x, y float64) {
	if self.hasCursor && self.cursor.X == x && self.cursor.Y == y {
		return
	}
	self.cursor, self.hasCursor = ebimath.V(x, y), true
	if !self.contains(x, y) {
		return
	}

	event := parallax.PointerEvent{PageX: x, PageY: y}
	for _, handler := range slices.Clone(self.handlers) {
		handler.fn(event)
	}
}

func (self *Stage) contains(x, y float64) bool {
	b := self.bounds
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// --- drawing ---

// Draws every sprite at its current offset, clipped to the stage.
func (self *Stage) Draw(target *ebiten.Image) {
	b := self.bounds
	clip := utils.SubImage(target,
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.X+b.Width)), int(math.Ceil(b.Y+b.Height)),
	)
	for _, sprite := range self.sprites {
		if sprite.image == nil {
			continue
		}
		opts := utils.DrawImageOptionsAt(sprite.image, b.X+sprite.left, b.Y+sprite.top)
		clip.DrawImage(sprite.image, &opts)
	}
}

// --- subscriptions ---

type subscription struct {
	id    uint32
	stage *Stage
}

func (self *subscription) Remove() {
	if self.stage == nil {
		return
	}
	handlers := self.stage.handlers
	for i := range handlers {
		if handlers[i].id == self.id {
			copy(handlers[i:], handlers[i+1:])
			handlers[len(handlers)-1] = pointerHandler{}
			self.stage.handlers = handlers[:len(handlers)-1]
			break
		}
	}
	self.stage = nil
}
