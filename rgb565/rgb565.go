// Package rgb565 provides the 16-bit RGB565 pixel format used by small SPI
// TFT panels (ST7789, ILI9341 and friends).
//
// Each pixel is a single uint16 with 5 bits of red, 6 bits of green and
// 5 bits of blue:
//
//	bit 15                    bit 0
//	R R R R R G G G G G G B B B B B
//
// This package provides:
//
// - Pixel: the RGB565 color type, implementing color.Color
// - Model: a color model converting standard Go colors to Pixel
// - Image: an image.Image/draw.Image implementation backed by []Pixel
//
// The named colors are the common RGB565 palette used by small TFT panels.
package rgb565

import (
	"image"
	"image/color"
)

// Pixel is a single RGB565 pixel.
type Pixel uint16

// New packs 8-bit RGB components into a Pixel, truncating to 5/6/5 bits.
func New(r, g, b byte) Pixel {
	return Pixel(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGBA implements color.Color. The 5/6/5-bit components are expanded to
// 16 bits by bit replication so that full-scale values map to 0xFFFF.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r5 := uint32(p >> 11 & 0x1F)
	g6 := uint32(p >> 5 & 0x3F)
	b5 := uint32(p & 0x1F)

	// Replicate high bits into the low bits: 5 bits -> 8 bits -> 16 bits.
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

func toPixel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return New(byte(r>>8), byte(g>>8), byte(b>>8))
}

// Model converts colors to Pixel.
var Model = color.ModelFunc(toPixel)

// Common named colors in RGB565.
const (
	Black     Pixel = 0x0000
	White     Pixel = 0xFFFF
	Red       Pixel = 0xF800
	Green     Pixel = 0x07E0
	Blue      Pixel = 0x001F
	Cyan      Pixel = 0x07FF
	Magenta   Pixel = 0xF81F
	Yellow    Pixel = 0xFFE0
	Orange    Pixel = 0xFD20
	Gray      Pixel = 0x8410
	DarkGray  Pixel = 0x4208
	LightGray Pixel = 0xC618
	Navy      Pixel = 0x000F
	DarkGreen Pixel = 0x03E0
	DarkCyan  Pixel = 0x03EF
	Maroon    Pixel = 0x7800
	Purple    Pixel = 0x780F
	Olive     Pixel = 0x7BE0
	Pink      Pixel = 0xFC18
	Teal      Pixel = 0x0410
)

// Image is an in-memory RGB565 image.
type Image struct {
	Pix    []Pixel         // Pixel data, one Pixel per pixel
	Stride int             // Pixels per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a zeroed (black) Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]Pixel, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// PixelAt returns the Pixel at (x, y), or Black outside the bounds.
func (p *Image) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	return p.Pix[p.pixOffset(x, y)]
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.pixOffset(x, y)] = Model.Convert(c).(Pixel)
}

// SetPixel sets the Pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetPixel(x, y int, c Pixel) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.pixOffset(x, y)] = c
}

func (p *Image) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}
