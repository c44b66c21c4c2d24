// Package hud draws debug text over a rendered frame.
package hud

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Margin  = 4
	Padding = 2
)

var (
	TextColor  = color.RGBA{255, 255, 0, 255}
	PanelColor = color.RGBA{0, 0, 0, 160}
)

// Bounds is the panel rectangle Draw would cover for lines.
func Bounds(lines []string) image.Rectangle {
	face := basicfont.Face7x13
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	width := 0
	for _, l := range lines {
		if w := font.MeasureString(face, l).Ceil(); w > width {
			width = w
		}
	}
	height := face.Metrics().Height.Ceil() * len(lines)
	return image.Rect(Margin, Margin, Margin+width+2*Padding, Margin+height+2*Padding)
}

// Draw paints lines top-left on a translucent panel, clipped to img.
func Draw(img draw.Image, lines []string) {
	r := Bounds(lines).Add(img.Bounds().Min).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(PanelColor), image.Point{}, draw.Over)

	face := basicfont.Face7x13
	m := face.Metrics()
	d := &font.Drawer{Dst: img, Src: image.NewUniform(TextColor), Face: face}
	y := r.Min.Y + Padding + m.Ascent.Ceil()
	for _, l := range lines {
		d.Dot = fixed.P(r.Min.X+Padding, y)
		d.DrawString(l)
		y += m.Height.Ceil()
	}
}
