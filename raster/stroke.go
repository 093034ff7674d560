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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// subpath is a range of r.pts.  Closed subpaths end with a copy of their
// first point.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of the path using Width, Cap and Join.
// The emit callback receives coverage row-by-row; its slice argument is
// valid only during the call.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()
	r.flattenPath(p)

	d := r.Width / 2
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if len(pts) == 1 {
			if r.Cap == graphics.LineCapRound {
				r.addDisc(pts[0], d)
			}
			continue
		}

		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			t := b.Sub(a).Mul(1 / b.Sub(a).Length())
			if !sp.closed && r.Cap == graphics.LineCapSquare {
				if i == 1 {
					a = a.Sub(t.Mul(d))
				}
				if i == len(pts)-1 {
					b = b.Add(t.Mul(d))
				}
			}
			n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
			r.addPolygon(a.Sub(n), b.Sub(n), b.Add(n), a.Add(n))
		}

		for i := 1; i < len(pts)-1; i++ {
			r.addJoin(pts[i-1], pts[i], pts[i+1], d)
		}
		if sp.closed && len(pts) > 2 {
			r.addJoin(pts[len(pts)-2], pts[0], pts[1], d)
		} else if !sp.closed && r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
			r.addDisc(pts[len(pts)-1], d)
		}
	}

	r.fill(emit)
}

// addJoin covers the corner at b between the segments a-b and b-c.
func (r *Rasterizer) addJoin(a, b, c vec.Vec2, d float64) {
	if r.Join == graphics.LineJoinRound {
		r.addDisc(b, d)
		return
	}

	t1 := b.Sub(a).Mul(1 / b.Sub(a).Length())
	t2 := c.Sub(b).Mul(1 / c.Sub(b).Length())
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(d)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(d)
	r.addPolygon(b, b.Add(n1), b.Add(n2))
	r.addPolygon(b, b.Sub(n1), b.Sub(n2))
}

// addDisc adds a polygon approximating the circle of radius d around c,
// accurate to r.Flatness in device space.
func (r *Rasterizer) addDisc(c vec.Vec2, d float64) {
	det := math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2])
	rDev := d * math.Sqrt(det)

	n := minDiscVertices
	if rDev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/rDev)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.poly = r.poly[:0]
	for i := range n {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.poly = append(r.poly, vec.Vec2{X: c.X + d*co, Y: c.Y + d*s})
	}
	r.addPolygon(r.poly...)
}

// addPolygon adds the edges of a closed polygon, oriented so that its
// signed area is positive.  All stroke polygons then have the same winding
// direction and their union is filled by the nonzero rule.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	area := 0.0
	prev := pts[len(pts)-1]
	for _, p := range pts {
		area += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	if area == 0 {
		return
	}

	n := len(pts)
	for i := range n {
		if area > 0 {
			r.addEdge(pts[i], pts[(i+1)%n])
		} else {
			r.addEdge(pts[(i+1)%n], pts[i])
		}
	}
}

// flattenPath converts p into polylines, stored in r.pts and r.subpaths.
// Curves are approximated by line segments and segments shorter than
// zeroLengthThreshold are dropped.
func (r *Rasterizer) flattenPath(p *path.Data) {
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]

	start := -1
	endSubpath := func(closed bool) {
		if start < 0 {
			return
		}
		if closed && len(r.pts)-start > 1 {
			r.lineTo(r.pts[start])
		}
		r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.pts), closed: closed})
		start = -1
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			endSubpath(false)
			start = len(r.pts)
			r.pts = append(r.pts, p.Coords[coordIdx])
			coordIdx++

		case path.CmdLineTo:
			if start >= 0 {
				r.lineTo(p.Coords[coordIdx])
			}
			coordIdx++

		case path.CmdQuadTo:
			if start >= 0 {
				r.flattenQuadratic(r.pts[len(r.pts)-1], p.Coords[coordIdx], p.Coords[coordIdx+1])
			}
			coordIdx += 2

		case path.CmdCubeTo:
			if start >= 0 {
				r.flattenCubic(r.pts[len(r.pts)-1], p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			}
			coordIdx += 3

		case path.CmdClose:
			endSubpath(true)
		}
	}
	endSubpath(false)
}

// lineTo appends q to the current subpath, unless it coincides with the
// last point.
func (r *Rasterizer) lineTo(q vec.Vec2) {
	if q.Sub(r.pts[len(r.pts)-1]).Length() < zeroLengthThreshold {
		return
	}
	r.pts = append(r.pts, q)
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic appends a polyline approximation of the quadratic
// Bézier curve p0, p1, p2, without p0.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	errDev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		r.lineTo(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic appends a polyline approximation of the cubic Bézier curve
// p0, p1, p2, p3, without p0.  The number of segments follows Wang's
// formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		r.lineTo(p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}

// minDiscVertices is the smallest number of vertices used for a disc.
const minDiscVertices = 8
