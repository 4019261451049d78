package ogpcard

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground    = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	colorHeader        = color.RGBA{R: 0x16, G: 0x21, B: 0x3e, A: 0xff}
	colorMuted         = color.RGBA{R: 0x88, G: 0x92, B: 0xb0, A: 0xff}
	colorJapan         = color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	colorInternational = color.RGBA{R: 0xf0, G: 0x93, B: 0xfb, A: 0xff}
	colorWhite         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// fillRect fills the rectangle with a solid color
func fillRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// fillCircle fills a circle of radius r centered at (cx, cy)
func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

// fillCapsule fills a horizontal pill spanning rect, with semicircular
// caps whose radius is half the rect height
func fillCapsule(img *image.RGBA, rect image.Rectangle, c color.Color) {
	r := rect.Dy() / 2
	cy := rect.Min.Y + r
	leftCx := rect.Min.X + r
	rightCx := rect.Max.X - r

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			switch {
			case x >= leftCx && x <= rightCx:
				img.Set(x, y, c)
			case x < leftCx:
				dx, dy := x-leftCx, y-cy
				if dx*dx+dy*dy <= r*r {
					img.Set(x, y, c)
				}
			default:
				dx, dy := x-rightCx, y-cy
				if dx*dx+dy*dy <= r*r {
					img.Set(x, y, c)
				}
			}
		}
	}
}

// drawText draws a string with its top-left corner at (x, y)
func drawText(img *image.RGBA, text string, x, y int, c color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// drawTextBold overdraws the string on a 2x2 offset grid for a slightly
// heavier weight than the face provides
func drawTextBold(img *image.RGBA, text string, x, y int, c color.Color, face font.Face) {
	for dx := 0; dx <= 1; dx++ {
		for dy := 0; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(img, text, x+dx, y+dy, c, face)
		}
	}
	drawText(img, text, x, y, c, face)
}

// drawTextHeavy overdraws the string on a full 3x3 grid, used for the
// headline
func drawTextHeavy(img *image.RGBA, text string, x, y int, c color.Color, face font.Face) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(img, text, x+dx, y+dy, c, face)
		}
	}
	drawText(img, text, x, y, c, face)
}
