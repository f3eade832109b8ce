package display

import (
	"image"
	"strings"

	"github.com/jetsetilly/testchip8/hardware/spec"
)

// Display is the monochrome pixel grid. Pixels are stored row-major
type Display struct {
	pixels [spec.Width * spec.Height]bool

	// the number of times the display has been changed. the renderer uses this
	// to decide if a new image needs to be pushed
	serial int
}

// NewDisplay returns a cleared display
func NewDisplay() *Display {
	return &Display{}
}

// Clear sets every pixel to zero
func (dsp *Display) Clear() {
	clear(dsp.pixels[:])
	dsp.serial++
}

// Draw XORs the sprite rows onto the display with the top-left of the sprite
// at (x, y). Each row is eight pixels wide with the most significant bit on
// the left. Returns true if any set pixel was turned off.
//
// A starting x coordinate beyond the right edge is reset to zero. Pixels past
// the right edge of the display are not drawn, nor are pixels past the last
// pixel of the display. Neither wraps.
func (dsp *Display) Draw(x int, y int, rows []uint8) bool {
	if x >= spec.Width {
		x = 0
	}

	var collision bool

	for r, row := range rows {
		for c := range 8 {
			if row&(0x80>>c) == 0 {
				continue
			}

			px := x + c
			if px >= spec.Width {
				continue
			}

			idx := (y+r)*spec.Width + px
			if idx >= len(dsp.pixels) {
				continue
			}

			if dsp.pixels[idx] {
				collision = true
			}
			dsp.pixels[idx] = !dsp.pixels[idx]
		}
	}

	dsp.serial++

	return collision
}

// Pixel returns the state of the pixel at (x, y). Coordinates outside the
// display are never set
func (dsp *Display) Pixel(x int, y int) bool {
	if x < 0 || x >= spec.Width || y < 0 || y >= spec.Height {
		return false
	}
	return dsp.pixels[y*spec.Width+x]
}

// Serial changes every time the display is modified
func (dsp *Display) Serial() int {
	return dsp.serial
}

// Lit returns the number of set pixels
func (dsp *Display) Lit() int {
	var n int
	for _, p := range dsp.pixels {
		if p {
			n++
		}
	}
	return n
}

// Image returns the display as an image in the spec palette. One image pixel
// for every logical pixel. Scaling is left to the renderer
func (dsp *Display) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	for y := range spec.Height {
		for x := range spec.Width {
			if dsp.pixels[y*spec.Width+x] {
				img.SetRGBA(x, y, spec.Foreground)
			} else {
				img.SetRGBA(x, y, spec.Background)
			}
		}
	}
	return img
}

// String renders the display as text. One line per row with set pixels shown
// as '#'
func (dsp *Display) String() string {
	var s strings.Builder
	for y := range spec.Height {
		for x := range spec.Width {
			if dsp.pixels[y*spec.Width+x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		if y < spec.Height-1 {
			s.WriteRune('\n')
		}
	}
	return s.String()
}
