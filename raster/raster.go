package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/natrouter/routerhud/rgb565"
)

// Surface is the display boundary the renderer draws onto. Blit writes the
// rectangular region r, with pix holding r.Dx()*r.Dy() pixels in row-major
// order. Blit is assumed synchronous; any queuing is the surface's concern.
type Surface interface {
	// Bounds returns the panel dimensions. Min must be the origin.
	Bounds() image.Rectangle
	// Blit writes a rectangular region of pixels to the panel.
	Blit(r image.Rectangle, pix []rgb565.Pixel) error
}

// Renderer rasterizes shapes and text onto a Surface through a single
// reusable line buffer sized to one scanline. Filled shapes cost one Blit per
// covered row, bounding memory to one line regardless of shape height.
//
// A Renderer is not safe for concurrent use: all draw calls share the line
// buffer and must be issued from a single rendering task.
type Renderer struct {
	s    Surface
	w, h int
	line []rgb565.Pixel
}

// New creates a Renderer for the given surface and allocates its line buffer.
func New(s Surface) (*Renderer, error) {
	if s == nil {
		return nil, errors.New("raster: nil surface")
	}
	b := s.Bounds()
	if b.Min.X != 0 || b.Min.Y != 0 {
		return nil, errors.New("raster: surface bounds must start at the origin")
	}
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("raster: empty surface bounds")
	}
	return &Renderer{
		s:    s,
		w:    b.Dx(),
		h:    b.Dy(),
		line: make([]rgb565.Pixel, b.Dx()),
	}, nil
}

// Size returns the panel dimensions in pixels.
func (d *Renderer) Size() (w, h int) {
	return d.w, d.h
}

// fillLine fills the first n entries of the line buffer with color.
func (d *Renderer) fillLine(n int, color rgb565.Pixel) {
	for i := 0; i < n; i++ {
		d.line[i] = color
	}
}

// Clear fills the whole panel with a single color.
func (d *Renderer) Clear(color rgb565.Pixel) error {
	d.fillLine(d.w, color)
	for y := 0; y < d.h; y++ {
		if err := d.s.Blit(image.Rect(0, y, d.w, y+1), d.line[:d.w]); err != nil {
			return err
		}
	}
	return nil
}

// FillRect fills an axis-aligned rectangle, clipped to the panel bounds.
// A rectangle that clips to nothing is a no-op, not an error.
func (d *Renderer) FillRect(x, y, w, h int, color rgb565.Pixel) error {
	x, y, w, h = clipRect(x, y, w, h, d.w, d.h)
	if w <= 0 || h <= 0 {
		return nil
	}

	d.fillLine(w, color)
	for row := y; row < y+h; row++ {
		if err := d.s.Blit(image.Rect(x, row, x+w, row+1), d.line[:w]); err != nil {
			return err
		}
	}
	return nil
}

// DrawHLine draws a horizontal line segment of width w starting at (x, y).
func (d *Renderer) DrawHLine(x, y, w int, color rgb565.Pixel) error {
	return d.FillRect(x, y, w, 1, color)
}

// DrawVLine draws a vertical line segment of height h starting at (x, y).
func (d *Renderer) DrawVLine(x, y, h int, color rgb565.Pixel) error {
	return d.FillRect(x, y, 1, h, color)
}

// DrawRect draws a one-pixel rectangle outline.
func (d *Renderer) DrawRect(x, y, w, h int, color rgb565.Pixel) error {
	if err := d.DrawHLine(x, y, w, color); err != nil {
		return err
	}
	if err := d.DrawHLine(x, y+h-1, w, color); err != nil {
		return err
	}
	if err := d.DrawVLine(x, y, h, color); err != nil {
		return err
	}
	return d.DrawVLine(x+w-1, y, h, color)
}

// FillRoundedRect fills a rectangle with corner radius r. The shape is the
// union of a center rectangle, two edge strips and four corner circles.
func (d *Renderer) FillRoundedRect(x, y, w, h, r int, color rgb565.Pixel) error {
	// Center rectangle, full height.
	if err := d.FillRect(x+r, y, w-2*r, h, color); err != nil {
		return err
	}

	// Left and right edge strips.
	if err := d.FillRect(x, y+r, r, h-2*r, color); err != nil {
		return err
	}
	if err := d.FillRect(x+w-r, y+r, r, h-2*r, color); err != nil {
		return err
	}

	// Corner circles.
	if err := d.FillCircle(x+r, y+r, r, color); err != nil {
		return err
	}
	if err := d.FillCircle(x+w-r-1, y+r, r, color); err != nil {
		return err
	}
	if err := d.FillCircle(x+r, y+h-r-1, r, color); err != nil {
		return err
	}
	return d.FillCircle(x+w-r-1, y+h-r-1, r, color)
}

// FillCircle fills a circle of radius r centered at (cx, cy). r ≤ 0 is a no-op.
func (d *Renderer) FillCircle(cx, cy, r int, color rgb565.Pixel) error {
	var err error
	circleSpans(cx, cy, r, func(x, y, w int) {
		if err != nil {
			return
		}
		err = d.DrawHLine(x, y, w, color)
	})
	return err
}

// DrawCircle draws a circle outline of radius r centered at (cx, cy).
// r ≤ 0 is a no-op.
func (d *Renderer) DrawCircle(cx, cy, r int, color rgb565.Pixel) error {
	var err error
	circlePoints(cx, cy, r, func(x, y int) {
		if err != nil {
			return
		}
		err = d.drawPixel(x, y, color)
	})
	return err
}

// drawPixel writes a single pixel through the line buffer. Off-panel pixels
// are dropped.
func (d *Renderer) drawPixel(x, y int, color rgb565.Pixel) error {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return nil
	}
	d.line[0] = color
	return d.s.Blit(image.Rect(x, y, x+1, y+1), d.line[:1])
}

// DrawText renders text with the built-in 5x7 font at the given scale.
// scale=1 draws one pixel per set bit; scale>1 draws scale×scale blocks.
// A newline resets the horizontal cursor and advances the vertical cursor by
// 8×scale. Bytes outside the printable ASCII range render as '?'.
// scale < 1 is a no-op.
func (d *Renderer) DrawText(x, y int, text string, color rgb565.Pixel, scale int) error {
	if scale < 1 {
		return nil
	}

	cursorX, cursorY := x, y
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			cursorX = x
			cursorY += lineAdvance * scale
			continue
		}

		g := glyph(c)
		for col := 0; col < fontCols; col++ {
			bits := g[col]
			for row := 0; row < fontRows; row++ {
				if bits&(1<<row) == 0 {
					continue
				}
				if scale == 1 {
					if err := d.drawPixel(cursorX+col, cursorY+row, color); err != nil {
						return err
					}
				} else {
					if err := d.FillRect(cursorX+col*scale, cursorY+row*scale, scale, scale, color); err != nil {
						return err
					}
				}
			}
		}
		cursorX += charAdvance * scale
	}
	return nil
}

// DrawTextCentered renders text horizontally centered on the panel.
// The text width is computed as len(text)×6×scale.
func (d *Renderer) DrawTextCentered(y int, text string, color rgb565.Pixel, scale int) error {
	width := len(text) * charAdvance * scale
	return d.DrawText((d.w-width)/2, y, text, color, scale)
}

// DrawBitmap draws a monochrome w×h bitmap at (x, y). Rows are packed
// MSB-first with each row padded to a whole byte; set bits are drawn in
// color, clear bits are transparent.
func (d *Renderer) DrawBitmap(x, y, w, h int, bits []byte, color rgb565.Pixel) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	byteWidth := (w + 7) / 8
	if len(bits) < byteWidth*h {
		return fmt.Errorf("raster: bitmap needs %d bytes, got %d", byteWidth*h, len(bits))
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			b := bits[row*byteWidth+col/8]
			if b&(1<<(7-col%8)) == 0 {
				continue
			}
			if err := d.drawPixel(x+col, y+row, color); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawProgressBar draws a rounded horizontal gauge filled to percent (0-100).
func (d *Renderer) DrawProgressBar(x, y, w, h int, percent int, fg, bg rgb565.Pixel) error {
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	if err := d.FillRoundedRect(x, y, w, h, h/2, bg); err != nil {
		return err
	}
	fill := w * percent / 100
	if fill > 0 {
		return d.FillRoundedRect(x, y, fill, h, h/2, fg)
	}
	return nil
}
