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

package testcases

import (
	"math"

	"github.com/unixpickle/model3d/model2d"

	"seehuhn.de/go/epicycle/silhouette"
)

var discCases = []TestCase{
	{
		Name:   "centred",
		Width:  200,
		Height: 200,
		Shape:  disc(100, 100, 60),
	},
	{
		Name:   "off_centre",
		Width:  200,
		Height: 200,
		Shape:  disc(70, 120, 50),
	},
	{
		Name:   "ellipse",
		Width:  240,
		Height: 160,
		Shape:  polygon(ellipse(120, 80, 100, 50, discVertices)...),
	},
	{
		Name:   "two_discs",
		Width:  200,
		Height: 200,
		Shape:  twoDiscs(),
	},
}

var polygonCases = []TestCase{
	{
		Name:   "square",
		Width:  200,
		Height: 200,
		Shape:  polygon(rectangle(50, 50, 150, 150)...),
	},
	{
		Name:   "triangle",
		Width:  200,
		Height: 200,
		Shape: polygon(
			model2d.XY(20, 180),
			model2d.XY(100, 20),
			model2d.XY(180, 180),
		),
	},
	{
		Name:   "star",
		Width:  200,
		Height: 200,
		Shape:  star(100, 100, 90, 40, 5),
	},
	{
		Name:   "heart",
		Width:  200,
		Height: 200,
		Shape:  heart(100, 100, 0.25),
	},
}

var polarityCases = []TestCase{
	{
		Name:   "light_disc",
		Width:  200,
		Height: 200,
		Shape:  disc(100, 100, 45),
		Light:  true,
	},
	{
		Name:   "hole",
		Width:  200,
		Height: 200,
		Shape:  hole(),
	},
}

var emptyCases = []TestCase{
	{
		Name:   "white",
		Width:  100,
		Height: 100,
		Want:   silhouette.ErrNoForeground,
	},
	{
		Name:   "black",
		Width:  100,
		Height: 100,
		Light:  true,
		Want:   silhouette.ErrNoForeground,
	},
	{
		Name:   "speck",
		Width:  200,
		Height: 200,
		Shape:  disc(100, 100, 6),
		Want:   silhouette.ErrNoForeground,
	},
}

// twoDiscs draws a large and a small disc.  Only the larger one is
// traced.
func twoDiscs() *model2d.Mesh {
	m := disc(80, 80, 50)
	m.AddMesh(disc(160, 160, 20))
	return m
}

// hole draws a dark canvas with a light triangle cut out.
func hole() *model2d.Mesh {
	m := polygon(rectangle(0, 0, 200, 200)...)
	addLoop(m, []model2d.Coord{
		model2d.XY(60, 140),
		model2d.XY(100, 60),
		model2d.XY(140, 140),
	})
	return m
}

// star builds a star with n points, alternating between the outer and
// inner radius.
func star(cx, cy, rOuter, rInner float64, n int) *model2d.Mesh {
	pts := make([]model2d.Coord, 2*n)
	for i := range pts {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		angle := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		s, c := math.Sincos(angle)
		pts[i] = model2d.XY(cx+r*c, cy+r*s)
	}
	return polygon(pts...)
}

// heart builds a heart outline from cubic Bézier curves, scaled by s and
// centred at (cx, cy).
func heart(cx, cy, s float64) *model2d.Mesh {
	side := model2d.JoinedCurve{
		model2d.BezierCurve{
			model2d.XY(0, 293.481332),
			model2d.XY(63.151034, 293.481332),
			model2d.XY(271.922287, 84.131773),
			model2d.XY(301.151311, -1.335062)},
		model2d.BezierCurve{
			model2d.XY(301.151311, -1.335062),
			model2d.XY(321.470461, -60.706464),
			model2d.XY(346.852102, -152.539968),
			model2d.XY(278.451331, -234.937704)},
		model2d.BezierCurve{
			model2d.XY(278.451331, -234.937704),
			model2d.XY(262.631063, -254.079683),
			model2d.XY(179.054775, -332.691285),
			model2d.XY(70.203954, -270.282418)},
		model2d.BezierCurve{
			model2d.XY(70.203954, -270.282418),
			model2d.XY(23.207534, -243.461804),
			model2d.XY(0, -210.997784),
			model2d.XY(0, -210.997784)},
	}
	sideMesh := model2d.CurveMesh(side, 200)

	m := model2d.NewMesh()
	m.AddMesh(sideMesh)
	m.AddMesh(sideMesh.MapCoords(model2d.XY(-1, 1).Mul))

	// the curves span y from -333 to 293
	offset := model2d.XY(cx, cy-20*s)
	return m.MapCoords(func(c model2d.Coord) model2d.Coord {
		return model2d.XY(c.X, -c.Y).Scale(s).Add(offset)
	})
}
