package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Syntax sugar for [ebiten.Image.SubImage]() passing explicit
// coordinates instead of [image.Rectangle] and returning [*ebiten.Image]
// instead of [image.Image].
func SubImage(source *ebiten.Image, minX, minY, maxX, maxY int) *ebiten.Image {
	return source.SubImage(Rect(minX, minY, maxX, maxY)).(*ebiten.Image)
}

// Create a low resolution image from a simple mask. The value
// 0 is always reserved for transparent, and higher values will
// index the given colors. If no colors are given, 1 will be
// white by default. Handy for quick panel placeholders:
//
//	hill := utils.MaskToImage(7, []uint8{
//	    0, 0, 0, 1, 0, 0, 0,
//	    0, 0, 1, 1, 1, 0, 0,
//	    0, 1, 1, 1, 1, 1, 0,
//	    1, 1, 1, 1, 1, 1, 1,
//	}, utils.RGB(40, 90, 60))
func MaskToImage(width int, mask []uint8, colors ...color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(MaskToRGBA(0, 0, width, mask, colors...))
}

// Same as [MaskToImage](), but returning a plain [*image.RGBA] with
// its bounds origin at (ox, oy). Doesn't require a graphics context.
func MaskToRGBA(ox, oy int, width int, mask []uint8, colors ...color.RGBA) *image.RGBA {
	// safety assertions
	if width <= 0 {
		panic("expected width > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}

	// no colors fallback
	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	rgba := image.NewRGBA(image.Rect(ox, oy, ox+width, oy+height))
	for index, value := range mask {
		if value == 0 {
			continue
		}
		if int(value) > len(colors) {
			panic("mask value without a matching color")
		}
		pixelIndex := index << 2
		clr := colors[value-1]
		rgba.Pix[pixelIndex+0] = clr.R
		rgba.Pix[pixelIndex+1] = clr.G
		rgba.Pix[pixelIndex+2] = clr.B
		rgba.Pix[pixelIndex+3] = clr.A
	}
	return rgba
}

// Returns the GeoM that draws source with its bounds origin at
// (x + Min.X, y + Min.Y) of the target. Ebitengine places a source
// at (0, 0) regardless of its bounds, so a sub-image keeps its
// placement relative to its parent image, and a full image (whose
// Min is (0, 0)) ends up with its top-left corner at (x, y).
func GeoMAt(source *ebiten.Image, x, y float64) ebiten.GeoM {
	return geoMAt(source.Bounds().Min, x, y)
}

func geoMAt(origin image.Point, x, y float64) ebiten.GeoM {
	var geom ebiten.GeoM
	geom.Translate(x+float64(origin.X), y+float64(origin.Y))
	return geom
}

// Returns the image options with the [GeoMAt]() translation for
// the given image and (x, y). Example code:
//
//	opts := utils.DrawImageOptionsAt(panelImage, left, top)
//	canvas.DrawImage(panelImage, &opts)
func DrawImageOptionsAt(source *ebiten.Image, x, y float64) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	opts.GeoM = GeoMAt(source, x, y)
	return opts
}

// Alias for [image.Rect]().
func Rect(minX, minY, maxX, maxY int) image.Rectangle {
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}
