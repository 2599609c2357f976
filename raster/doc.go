// Package raster draws shapes and text for a small RGB565 status panel.
//
// The renderer targets memory-constrained devices: there is no framebuffer.
// All drawing goes through a single line buffer sized to one scanline of the
// panel, and every filled shape is decomposed into one Surface.Blit call per
// covered row. Memory stays bounded at one line regardless of shape height,
// trading one bus transaction per row for it.
//
// # Surfaces
//
// The renderer draws onto anything implementing Surface. Two implementations
// ship with the package:
//
//   - ImageSurface renders into an in-memory rgb565.Image, useful for tests
//     and for writing PNG snapshots.
//   - DrawerSurface adapts any periph.io display.Drawer, forwarding each
//     blit as a region-limited Draw call.
//
// # Drawing
//
//	surf := raster.NewImageSurface(240, 320)
//	d, _ := raster.New(surf)
//
//	d.Clear(rgb565.Black)
//	d.FillRoundedRect(10, 10, 220, 70, 8, rgb565.New(0x20, 0x20, 0x30))
//	d.DrawText(18, 18, "Download", rgb565.LightGray, 1)
//	d.DrawText(18, 30, "1.2 MB/s", rgb565.Green, 2)
//	d.DrawProgressBar(18, 55, 100, 8, 64, rgb565.Green, rgb565.DarkGray)
//
// Geometry that clips to nothing (zero or negative sizes, radius ≤ 0,
// shapes fully off panel) is a silent no-op, not an error: callers routinely
// pass bounds that clip away at screen edges.
//
// # Text
//
// Text uses a fixed 5x7 bitmap font covering printable ASCII; bytes outside
// that range render as '?'. Each character advances the cursor by 6×scale
// pixels and a newline advances the line by 8×scale.
//
// # Concurrency
//
// A Renderer is not safe for concurrent use. The shared line buffer means two
// concurrent draw calls would corrupt each other's output; a single rendering
// task must own the Renderer and issue draw calls sequentially.
package raster
