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

// Package contour implements operations on closed polylines.
package contour

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrDegenerate is returned for polylines of zero length.
var ErrDegenerate = errors.New("degenerate contour")

const (
	// closeEpsilon is the distance below which the last point of a
	// polyline is taken to coincide with the first.
	closeEpsilon = 1e-6

	// minSegment is the smallest segment length used as a divisor.
	minSegment = 1e-9
)

// ResampleClosed places m points along the closed polyline pts, evenly
// spaced by arc length.  The first output point equals pts[0].
//
// The polyline is closed by joining the last point to the first, unless
// the two already coincide.
func ResampleClosed(pts []vec.Vec2, m int) ([]vec.Vec2, error) {
	if m < 1 {
		return nil, fmt.Errorf("invalid sample count %d", m)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrDegenerate)
	}

	closed := pts
	if pts[len(pts)-1].Sub(pts[0]).Length() > closeEpsilon {
		closed = append(slices.Clip(pts), pts[0])
	}

	// dist[i] is the arc length from closed[0] to closed[i]
	n := len(closed)
	dist := make([]float64, n)
	for i := 1; i < n; i++ {
		dist[i] = dist[i-1] + closed[i].Sub(closed[i-1]).Length()
	}
	total := dist[n-1]
	if !(total > 0) {
		return nil, fmt.Errorf("%w: total length %g", ErrDegenerate, total)
	}

	out := make([]vec.Vec2, m)
	for k := range m {
		target := float64(k) / float64(m) * total

		// first vertex at or beyond the target; target < total, so i < n
		i, _ := slices.BinarySearch(dist, target)
		i = max(i, 1)

		a, b := closed[i-1], closed[i]
		seg := max(minSegment, dist[i]-dist[i-1])
		t := (target - dist[i-1]) / seg
		out[k] = a.Add(b.Sub(a).Mul(t))
	}
	return out, nil
}

// Length returns the length of the closed polyline pts, including the
// segment from the last point back to the first.
func Length(pts []vec.Vec2) float64 {
	if len(pts) == 0 {
		return 0
	}
	total := 0.0
	prev := pts[len(pts)-1]
	for _, p := range pts {
		total += p.Sub(prev).Length()
		prev = p
	}
	return total
}

// Bounds returns the smallest axis-aligned rectangle containing pts.
// The zero rectangle is returned for an empty slice.
func Bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range pts {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// Center returns the midpoint of r.
func Center(r rect.Rect) vec.Vec2 {
	return vec.Vec2{
		X: (r.LLx + r.URx) / 2,
		Y: (r.LLy + r.URy) / 2,
	}
}
