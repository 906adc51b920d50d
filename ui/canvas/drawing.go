// Package canvas provides drawing primitives for the plot raster.
package canvas

import (
	"image"
	"image/color"
	"math"
)

// Plot palette.
var (
	colorBackground = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colorGrid       = color.RGBA{0xD8, 0xD8, 0xD8, 0xFF}
	colorAxis       = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	colorTickLabel  = color.RGBA{0x50, 0x50, 0x50, 0xFF}
	colorLine       = color.RGBA{0xFF, 0x8F, 0x00, 0xFF}
	colorPoint      = color.RGBA{0x1E, 0x88, 0xE5, 0xFF}
)

// glyphPatterns contains 3x5 pixel patterns for the characters needed by
// axis tick labels. Each glyph is 5 rows of 3 bits.
var glyphPatterns = map[rune][5]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b001, 0b001},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
}

const (
	glyphScale   = 2 // each pattern bit becomes a 2x2 block
	glyphWidth   = 3*glyphScale + glyphScale
	glyphHeight  = 5 * glyphScale
	tickLabelPad = 4
)

// textWidth returns the pixel width of a label drawn with drawText.
func textWidth(s string) int {
	return len(s) * glyphWidth
}

// drawText draws a label using the 3x5 pixel font at (x, y) top-left.
func drawText(img *image.RGBA, s string, x, y int, c color.RGBA) {
	for _, ch := range s {
		pattern, ok := glyphPatterns[ch]
		if !ok {
			pattern = glyphPatterns[' ']
		}
		for row := 0; row < 5; row++ {
			bits := pattern[row]
			for col := 0; col < 3; col++ {
				if bits&(0b100>>col) == 0 {
					continue
				}
				for dy := 0; dy < glyphScale; dy++ {
					for dx := 0; dx < glyphScale; dx++ {
						setPx(img, x+col*glyphScale+dx, y+row*glyphScale+dy, c)
					}
				}
			}
		}
		x += glyphWidth
	}
}

// setPx sets a pixel, ignoring out-of-bounds coordinates.
func setPx(img *image.RGBA, x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return
	}
	img.SetRGBA(x, y, c)
}

// fillBackground fills the whole image with the background color.
func fillBackground(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, colorBackground)
		}
	}
}

// drawVLine draws a vertical line of the given thickness centered on x.
func drawVLine(img *image.RGBA, x int, c color.RGBA, thickness int) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			setPx(img, x-thickness/2+t, y, c)
		}
	}
}

// drawHLine draws a horizontal line of the given thickness centered on y.
func drawHLine(img *image.RGBA, y int, c color.RGBA, thickness int) {
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			setPx(img, x, y-thickness/2+t, c)
		}
	}
}

// drawSegment draws a line segment between two pixel positions using a
// simple DDA walk, thickened to roughly the given stroke width.
func drawSegment(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA, thickness int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + dx*t))
		y := int(math.Round(y0 + dy*t))
		for oy := 0; oy < thickness; oy++ {
			for ox := 0; ox < thickness; ox++ {
				setPx(img, x-thickness/2+ox, y-thickness/2+oy, c)
			}
		}
	}
}

// fillCircle draws a filled circle at the given pixel center.
func fillCircle(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				setPx(img, cx+dx, cy+dy, c)
			}
		}
	}
}
