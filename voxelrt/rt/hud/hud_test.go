package hud

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func TestBounds(t *testing.T) {
	assert.True(t, Bounds(nil).Empty())

	r := Bounds([]string{"ab", "abcd"})
	// basicfont glyphs are 7px wide and lines 13px high
	assert.Equal(t, image.Rect(Margin, Margin, Margin+28+2*Padding, Margin+26+2*Padding), r)
}

func TestDrawTouchesOnlyPanel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 60))
	white := color.RGBA{255, 255, 255, 255}
	fill(img, white)

	lines := []string{"RayVox", "hits 10"}
	Draw(img, lines)
	panel := Bounds(lines)

	changed := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y) == white {
				continue
			}
			changed++
			assert.True(t, image.Pt(x, y).In(panel), "pixel %d,%d outside panel", x, y)
		}
	}
	assert.Positive(t, changed)

	// some glyph pixels must be the text colour
	found := false
	for y := panel.Min.Y; y < panel.Max.Y && !found; y++ {
		for x := panel.Min.X; x < panel.Max.X; x++ {
			if img.RGBAAt(x, y) == TextColor {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestDrawClipsToSmallImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.NotPanics(t, func() { Draw(img, []string{"a very long line of text"}) })

	tiny := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Draw(tiny, []string{"x"})
	assert.Equal(t, color.RGBA{}, tiny.RGBAAt(1, 1))
}
