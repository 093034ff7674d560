// seehuhn.de/go/epicycle - silhouette outlines as Fourier series
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package silhouette

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// ring lists the Moore neighbourhood in clockwise order on screen
// (y pointing down), starting from the west.
var ring = [8]struct{ dx, dy int }{
	{-1, 0},  // W
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
}

// ringIndex[dy+1][dx+1] is the position of the offset (dx, dy) in ring.
// The centre entry is unused.
var ringIndex = [3][3]int{
	{1, 2, 3}, // dy = -1: NW, N, NE
	{0, -1, 4},
	{7, 6, 5}, // dy = +1: SW, S, SE
}

// minClosing is the number of points which must be emitted before a
// return to the start pixel ends the walk.
const minClosing = 10

// Trace follows the outer boundary of component id clockwise, using
// Moore-neighbour tracing, and returns the visited pixel centres.
//
// The walk starts at the first boundary pixel in row-major order and ends
// when it comes back to this pixel.  Pixels visited more than once, for
// example along one pixel wide features, appear once per visit.  If the
// walk closes, the start point is repeated at the end.  The walk is
// limited to 4·Width·Height steps.
//
// If fewer than minPoints points are found, ErrBoundaryTraceFailed is
// returned.
func Trace(l *Labels, id int, minPoints int) ([]vec.Vec2, error) {
	if id < 0 || id >= l.Count {
		return nil, fmt.Errorf("%w: no component %d", ErrBoundaryTraceFailed, id)
	}
	sx, sy, ok := l.firstBoundaryPixel(id)
	if !ok {
		return nil, fmt.Errorf("%w: component %d has no boundary pixel",
			ErrBoundaryTraceFailed, id)
	}

	center := func(x, y int) vec.Vec2 {
		return vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	}

	// The walk state is the current pixel together with the direction,
	// as seen from the current pixel, of the background pixel visited
	// just before.  No pixel above the start pixel belongs to the
	// component, so the walk can begin with the western neighbour.
	cx, cy := sx, sy
	back := 0
	boundary := []vec.Vec2{center(sx, sy)}

	maxSteps := 4 * l.Width * l.Height
	for range maxSteps {
		found := -1
		for k := 1; k <= 8; k++ {
			i := (back + k) % 8
			if l.At(cx+ring[i].dx, cy+ring[i].dy) == id {
				found = i
				break
			}
		}
		if found < 0 {
			// isolated pixel
			break
		}

		// The new backtrack pixel is the neighbour just before the one we
		// step to.  It is adjacent to the new current pixel, too.
		prev := (found + 7) % 8
		bx, by := cx+ring[prev].dx, cy+ring[prev].dy
		cx, cy = cx+ring[found].dx, cy+ring[found].dy
		back = ringIndex[by-cy+1][bx-cx+1]

		boundary = append(boundary, center(cx, cy))
		if cx == sx && cy == sy && len(boundary) > minClosing {
			break
		}
	}

	if len(boundary) < minPoints {
		return nil, fmt.Errorf("%w: boundary has %d points, need %d",
			ErrBoundaryTraceFailed, len(boundary), minPoints)
	}
	return boundary, nil
}

// firstBoundaryPixel returns the first pixel of component id, in
// row-major order, which has a neighbour outside the component or lies on
// the image edge.
func (l *Labels) firstBoundaryPixel(id int) (int, int, bool) {
	for y := range l.Height {
		for x := range l.Width {
			if l.isBoundary(x, y, id) {
				return x, y, true
			}
		}
	}
	return -1, -1, false
}

// isBoundary reports whether (x, y) belongs to component id and one of its
// eight neighbours does not.
func (l *Labels) isBoundary(x, y, id int) bool {
	if l.At(x, y) != id {
		return false
	}
	for _, d := range ring {
		if l.At(x+d.dx, y+d.dy) != id {
			return true
		}
	}
	return false
}
