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
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillO fills an "O" shape made of two polygons.
func BenchmarkFillO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			p := &path.Data{}
			appendPolygon(p, circlePoints(center, center, float64(size)*0.45, 256))
			inner := circlePoints(center, center, float64(size)*0.30, 256)
			slices.Reverse(inner)
			appendPolygon(p, inner)

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with golang.org/x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			outer := circlePoints(center, center, float64(size)*0.45, 256)
			inner := circlePoints(center, center, float64(size)*0.30, 256)

			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addVectorPolygon(r, outer)
				addVectorPolygon(r, inner)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeCurve strokes a closed curve with 7000 vertices, the
// size of a typical reconstructed outline.
func BenchmarkStrokeCurve(b *testing.B) {
	const n = 7000
	p := &path.Data{}
	for i := range n {
		theta := 2 * math.Pi * float64(i) / (n - 1)
		rad := 400 + 80*math.Sin(7*theta)
		q := vec.Vec2{X: 960 + rad*math.Cos(theta), Y: 540 + rad*math.Sin(theta)}
		if i == 0 {
			p.MoveTo(q)
		} else {
			p.LineTo(q)
		}
	}

	r := NewRasterizer(rect.Rect{URx: 1920, URy: 1080})
	r.Width = 1.2
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(p, emit)
	}
}

func circlePoints(cx, cy, rad float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = vec.Vec2{X: cx + rad*c, Y: cy + rad*s}
	}
	return pts
}

func appendPolygon(p *path.Data, pts []vec.Vec2) {
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	p.Close()
}

func addVectorPolygon(r *vector.Rasterizer, pts []vec.Vec2) {
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		r.LineTo(float32(q.X), float32(q.Y))
	}
	r.ClosePath()
}
