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

// Package testcases provides synthetic silhouette images for tests.
package testcases

import (
	"image"
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// TestCase defines a single input image for the silhouette pipeline.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // image width in pixels
	Height int           // image height in pixels
	Shape  *model2d.Mesh // outline in pixel coordinates, nil for a blank image
	Light  bool          // draw a light shape on a dark background
	Want   error         // expected pipeline error, nil for success
}

// Image renders the test case.  Points inside the outline, determined by
// the even-odd rule, are black and all other points are white.  If Light
// is set, the colours are swapped.
func (tc TestCase) Image() *image.Gray {
	var img *image.Gray
	if tc.Shape == nil {
		img = image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
	} else {
		rend := &model2d.Rasterizer{
			// The resolution is rounded up, so the scale is shrunk slightly.
			Scale: 1 - 1e-5,
			Bounds: model2d.NewRect(
				model2d.XY(0, 0),
				model2d.XY(float64(tc.Width), float64(tc.Height)),
			),
		}
		img = rend.RasterizeColliderSolid(model2d.MeshToCollider(tc.Shape))
	}

	if tc.Light {
		for i, v := range img.Pix {
			img.Pix[i] = 0xff - v
		}
	}
	return img
}

// polygon returns the closed outline through the given vertices.
func polygon(pts ...model2d.Coord) *model2d.Mesh {
	m := model2d.NewMesh()
	addLoop(m, pts)
	return m
}

func addLoop(m *model2d.Mesh, pts []model2d.Coord) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		m.Add(&model2d.Segment{p, q})
	}
}

// ellipse returns an n-gon approximating the ellipse with centre (cx, cy)
// and semi-axes rx, ry.
func ellipse(cx, cy, rx, ry float64, n int) []model2d.Coord {
	pts := make([]model2d.Coord, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = model2d.XY(cx+rx*c, cy+ry*s)
	}
	return pts
}

// disc returns the outline of a disc with centre (cx, cy) and radius r.
func disc(cx, cy, r float64) *model2d.Mesh {
	return polygon(ellipse(cx, cy, r, r, discVertices)...)
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x0, y0, x1, y1 float64) []model2d.Coord {
	return []model2d.Coord{
		model2d.XY(x0, y0),
		model2d.XY(x1, y0),
		model2d.XY(x1, y1),
		model2d.XY(x0, y1),
	}
}

// discVertices is the number of polygon vertices used for circles.
const discVertices = 256
