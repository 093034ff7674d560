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

// Package fourier represents closed curves as truncated complex Fourier
// series.
//
// A curve sampled at M points z_0, …, z_{M-1} has the coefficients
//
//	c_n = (1/M) Σ_k z_k exp(-i·n·2πk/M),    n = -N, …, N,
//
// and the series Σ_n c_n exp(i·n·t), 0 ≤ t ≤ 2π, traces an approximation of
// the curve.  Each term is one "epicycle": a circle of radius |c_n|
// turning n times per period.
package fourier

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/epicycle/contour"
)

// Samples converts pixel-space points to complex samples.  The points are
// centred at the midpoint of their bounding box, and the y axis is flipped
// so that the imaginary axis points up.
func Samples(pts []vec.Vec2) []Complex {
	if len(pts) == 0 {
		return nil
	}
	c := contour.Center(contour.Bounds(pts))

	z := make([]Complex, len(pts))
	for i, p := range pts {
		z[i] = Complex{Re: p.X - c.X, Im: -(p.Y - c.Y)}
	}
	return z
}

// Coefficients is a truncated Fourier series with the frequencies
// -Order()..Order().
type Coefficients struct {
	order int
	c     []Complex // c[n+order] is the coefficient of frequency n
}

// Analyze computes the coefficients of order -order..order for the
// periodic signal z.  The transform is evaluated directly at the 2·order+1
// frequencies, at a cost of O(len(z)·order).
//
// Order must be at least 1 and z must not be empty.
func Analyze(z []Complex, order int) *Coefficients {
	order = max(order, 1)
	m := len(z)
	res := &Coefficients{
		order: order,
		c:     make([]Complex, 2*order+1),
	}
	if m == 0 {
		return res
	}

	for n := -order; n <= order; n++ {
		var sum Complex
		for k, zk := range z {
			theta := -float64(n) * 2 * math.Pi * float64(k) / float64(m)
			sum = sum.Add(zk.Mul(Expi(theta)))
		}
		res.c[n+order] = sum.Scale(1 / float64(m))
	}
	return res
}

// Order returns the largest frequency of the series.
func (c *Coefficients) Order() int {
	return c.order
}

// At returns the coefficient of frequency n, or zero if |n| > Order().
func (c *Coefficients) At(n int) Complex {
	if n < -c.order || n > c.order {
		return Complex{}
	}
	return c.c[n+c.order]
}

// Eval returns the value of the series at angle t.
func (c *Coefficients) Eval(t float64) Complex {
	var sum Complex
	for n := -c.order; n <= c.order; n++ {
		sum = sum.Add(c.c[n+c.order].Mul(Expi(float64(n) * t)))
	}
	return sum
}

// Synthesize evaluates the series at d angles evenly spaced from 0 to 2π,
// both ends included, so that the returned curve is closed.  For d == 1 the
// single point is the value at angle 0.
func (c *Coefficients) Synthesize(d int) []Complex {
	if d < 1 {
		return nil
	}
	out := make([]Complex, d)
	if d == 1 {
		out[0] = c.Eval(0)
		return out
	}
	for i := range d {
		t := float64(i) / float64(d-1) * 2 * math.Pi
		out[i] = c.Eval(t)
	}
	return out
}

// Truncate returns the series restricted to the frequencies
// -order..order.  If order is not smaller than Order(), c is returned.
func (c *Coefficients) Truncate(order int) *Coefficients {
	order = max(order, 1)
	if order >= c.order {
		return c
	}
	off := c.order - order
	return &Coefficients{
		order: order,
		c:     c.c[off : off+2*order+1],
	}
}
