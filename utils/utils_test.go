package utils

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToRGBA(t *testing.T) {
	red, blue := RGB(255, 0, 0), RGB(0, 0, 255)
	img := MaskToRGBA(2, 3, 3, []uint8{
		0, 1, 0,
		2, 2, 2,
	}, red, blue)

	assert.Equal(t, image.Rect(2, 3, 5, 5), img.Bounds())
	assert.Equal(t, color.RGBA{}, img.RGBAAt(2, 3))
	assert.Equal(t, red, img.RGBAAt(3, 3))
	assert.Equal(t, blue, img.RGBAAt(4, 4))
}

func TestMaskToRGBADefaultsToWhite(t *testing.T) {
	img := MaskToRGBA(0, 0, 1, []uint8{1})
	assert.Equal(t, RGB(255, 255, 255), img.RGBAAt(0, 0))
}

func TestMaskToRGBAPanics(t *testing.T) {
	assert.Panics(t, func() { MaskToRGBA(0, 0, 0, []uint8{1}) })
	assert.Panics(t, func() { MaskToRGBA(0, 0, 2, []uint8{1, 1, 1}) })
	assert.Panics(t, func() { MaskToRGBA(0, 0, 1, []uint8{3}, RGB(1, 1, 1)) })
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{10, 20, 30, 40}, RGBA(10, 20, 30, 40))
	assert.Panics(t, func() { RGBA(50, 0, 0, 40) })
}

func TestGeoMAtAddsBoundsOrigin(t *testing.T) {
	geom := geoMAt(image.Pt(0, 0), 12.5, 4)
	x, y := geom.Apply(0, 0)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 4.0, y)

	geom = geoMAt(image.Pt(3, 7), 12.5, 4)
	x, y = geom.Apply(0, 0)
	assert.Equal(t, 15.5, x)
	assert.Equal(t, 11.0, y)
}
