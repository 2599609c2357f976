package raster

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/natrouter/routerhud/rgb565"
)

// ImageSurface is an in-memory Surface backed by an rgb565.Image. It is used
// for tests and for rendering snapshots without a panel attached.
type ImageSurface struct {
	Img *rgb565.Image
}

// NewImageSurface creates a w×h in-memory surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{Img: rgb565.NewImage(image.Rect(0, 0, w, h))}
}

// Bounds returns the surface dimensions.
func (s *ImageSurface) Bounds() image.Rectangle {
	return s.Img.Rect
}

// Blit copies a rectangular region into the backing image.
func (s *ImageSurface) Blit(r image.Rectangle, pix []rgb565.Pixel) error {
	if len(pix) < r.Dx()*r.Dy() {
		return fmt.Errorf("raster: blit needs %d pixels, got %d", r.Dx()*r.Dy(), len(pix))
	}
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.Img.SetPixel(x, y, pix[i])
			i++
		}
	}
	return nil
}

// DrawerSurface adapts a periph.io display.Drawer to the Surface contract.
// Blitted regions are staged in an RGB565 image and forwarded with a
// region-limited Draw call, so only the changed rectangle crosses the bus.
// The drawer's own color model applies during Draw.
type DrawerSurface struct {
	d       display.Drawer
	staging *rgb565.Image
}

// NewDrawerSurface wraps a periph.io display device.
func NewDrawerSurface(d display.Drawer) (*DrawerSurface, error) {
	if d == nil {
		return nil, errors.New("raster: nil drawer")
	}
	b := d.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("raster: drawer has empty bounds")
	}
	return &DrawerSurface{
		d:       d,
		staging: rgb565.NewImage(image.Rect(0, 0, b.Dx(), b.Dy())),
	}, nil
}

// Bounds returns the drawer dimensions, normalized to the origin.
func (s *DrawerSurface) Bounds() image.Rectangle {
	return s.staging.Rect
}

// Blit stages the region and pushes it to the device.
func (s *DrawerSurface) Blit(r image.Rectangle, pix []rgb565.Pixel) error {
	if len(pix) < r.Dx()*r.Dy() {
		return fmt.Errorf("raster: blit needs %d pixels, got %d", r.Dx()*r.Dy(), len(pix))
	}
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.staging.SetPixel(x, y, pix[i])
			i++
		}
	}
	return s.d.Draw(r, s.staging, r.Min)
}
