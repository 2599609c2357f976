package raster

// Geometry helpers are pure: they compute pixel coverage and hand it to a
// callback, leaving clipping and buffer management to the caller.

// clipRect clamps an axis-aligned rectangle to a panelW×panelH panel anchored
// at the origin. A negative origin shrinks the rectangle; overhang past the
// panel edge is trimmed. The returned width/height may be ≤ 0, which means
// the rectangle clips to nothing.
func clipRect(x, y, w, h, panelW, panelH int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > panelW {
		w = panelW - x
	}
	if y+h > panelH {
		h = panelH - y
	}
	return x, y, w, h
}

// circleSpans emits the horizontal spans covering a filled circle of radius r
// centered at (cx, cy), using the integer midpoint algorithm. The decision
// variable starts at 1-r and each step advances along one axis or both.
// Spans are emitted as (x, y, width). r ≤ 0 emits nothing.
//
// Spans overlap near the axes; callers that fill with a solid color are
// unaffected.
func circleSpans(cx, cy, r int, span func(x, y, w int)) {
	if r <= 0 {
		return
	}

	x := r
	y := 0
	err := 1 - r

	for x >= y {
		span(cx-x, cy+y, 2*x+1)
		span(cx-x, cy-y, 2*x+1)
		span(cx-y, cy+x, 2*y+1)
		span(cx-y, cy-x, 2*y+1)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// circlePoints emits the eight symmetric boundary points per midpoint step
// for a circle outline of radius r centered at (cx, cy). r ≤ 0 emits nothing.
func circlePoints(cx, cy, r int, point func(x, y int)) {
	if r <= 0 {
		return
	}

	x := r
	y := 0
	err := 1 - r

	for x >= y {
		point(cx+x, cy+y)
		point(cx-x, cy+y)
		point(cx+x, cy-y)
		point(cx-x, cy-y)
		point(cx+y, cy+x)
		point(cx-y, cy+x)
		point(cx+y, cy-x)
		point(cx-y, cy-x)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}
