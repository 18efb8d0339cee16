package ebitenstage

import "github.com/hajimehoshi/ebiten/v2"

// A parallax panel backed by an [*ebiten.Image]. Offsets are relative
// to the stage origin.
type Sprite struct {
	image  *ebiten.Image
	width  float64
	height float64
	left   float64
	top    float64
}

// Creates a sprite whose live size is the size of the given image.
func NewSprite(image *ebiten.Image) *Sprite {
	bounds := image.Bounds()
	return &Sprite{
		image:  image,
		width:  float64(bounds.Dx()),
		height: float64(bounds.Dy()),
	}
}

// Returns the underlying image.
func (self *Sprite) Image() *ebiten.Image { return self.image }

// Returns the sprite's measured size.
func (self *Sprite) Size() (width, height float64) { return self.width, self.height }

func (self *Sprite) Left() float64        { return self.left }
func (self *Sprite) Top() float64         { return self.top }
func (self *Sprite) SetLeft(left float64) { self.left = left }
func (self *Sprite) SetTop(top float64)   { self.top = top }
