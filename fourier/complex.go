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

package fourier

import (
	"fmt"
	"math"
)

// Complex is a point of a curve, read as the complex number Re + i·Im.
type Complex struct {
	Re, Im float64
}

// Expi returns exp(i·theta).
func Expi(theta float64) Complex {
	s, c := math.Sincos(theta)
	return Complex{Re: c, Im: s}
}

// Add returns a+b.
func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a-b.
func (a Complex) Sub(b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns the complex product a·b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Scale returns s·a.
func (a Complex) Scale(s float64) Complex {
	return Complex{Re: a.Re * s, Im: a.Im * s}
}

// Abs returns the modulus of a.
func (a Complex) Abs() float64 {
	return math.Hypot(a.Re, a.Im)
}

func (a Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", a.Re, a.Im)
}
