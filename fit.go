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

package epicycle

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/epicycle/contour"
	"seehuhn.de/go/epicycle/fourier"
)

// minExtent is the smallest box side used as a divisor.
const minExtent = 1e-9

// Fit describes how a curve is scaled and centred on a canvas.
type Fit struct {
	// Box is the bounding box of the curve, in curve coordinates.
	Box rect.Rect

	// Center is the midpoint of Box.
	Center vec.Vec2

	// Scale is the number of canvas pixels per curve unit.
	Scale float64

	// Width and Height give the canvas size in pixels.
	Width, Height int
}

// FitCurve computes the largest scale at which curve, together with a
// margin of the given fraction of its extent, fits a w×h canvas.
// Degenerate boxes are widened to 1e-9 units.
func FitCurve(curve []fourier.Complex, w, h int, margin float64) Fit {
	pts := make([]vec.Vec2, len(curve))
	for i, z := range curve {
		pts[i] = vec.Vec2{X: z.Re, Y: z.Im}
	}
	box := contour.Bounds(pts)

	margin = max(margin, 0)
	dx := max(minExtent, box.URx-box.LLx)
	dy := max(minExtent, box.URy-box.LLy)
	return Fit{
		Box:    box,
		Center: contour.Center(box),
		Scale:  min(float64(w)/(dx*(1+margin)), float64(h)/(dy*(1+margin))),
		Width:  w,
		Height: h,
	}
}

// Matrix returns the transformation from curve coordinates to canvas
// pixels.  The box centre maps to the canvas centre, shifted up by
// centerY pixels, and the y axis is flipped to point down.
func (f Fit) Matrix(centerY float64) matrix.Matrix {
	s := f.Scale
	return matrix.Matrix{
		s, 0,
		0, -s,
		float64(f.Width)/2 - s*f.Center.X,
		float64(f.Height)/2 + s*f.Center.Y - centerY,
	}
}

// Apply maps a curve point to canvas pixels.
func (f Fit) Apply(z fourier.Complex, centerY float64) vec.Vec2 {
	m := f.Matrix(centerY)
	return vec.Vec2{
		X: m[0]*z.Re + m[2]*z.Im + m[4],
		Y: m[1]*z.Re + m[3]*z.Im + m[5],
	}
}
