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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	gfourier "gonum.org/v1/gonum/dsp/fourier"
	"seehuhn.de/go/geom/vec"
)

func randomSignal(m int, seed uint64) []Complex {
	rng := rand.New(rand.NewPCG(seed, 0))
	z := make([]Complex, m)
	for i := range z {
		z[i] = Complex{Re: rng.NormFloat64(), Im: rng.NormFloat64()}
	}
	return z
}

// TestAnalyzeFFT compares the coefficients with an FFT.
func TestAnalyzeFFT(t *testing.T) {
	const m = 64
	const order = 20
	z := randomSignal(m, 1)

	seq := make([]complex128, m)
	for i, zi := range z {
		seq[i] = complex(zi.Re, zi.Im)
	}
	fft := gfourier.NewCmplxFFT(m)
	ref := fft.Coefficients(nil, seq)

	c := Analyze(z, order)
	approx := cmpopts.EquateApprox(0, 1e-12)
	for n := -order; n <= order; n++ {
		r := ref[(n+m)%m] / m
		want := Complex{Re: real(r), Im: imag(r)}
		if d := cmp.Diff(want, c.At(n), approx); d != "" {
			t.Errorf("c_%d: mismatch (-fft +got):\n%s", n, d)
		}
	}
}

// TestExactReconstruction checks that for odd M and N = (M-1)/2 the
// series passes through every sample.
func TestExactReconstruction(t *testing.T) {
	const m = 31
	z := randomSignal(m, 2)
	c := Analyze(z, (m-1)/2)

	approx := cmpopts.EquateApprox(0, 1e-9)
	for k, zk := range z {
		got := c.Eval(2 * math.Pi * float64(k) / m)
		if d := cmp.Diff(zk, got, approx); d != "" {
			t.Errorf("sample %d: mismatch (-want +got):\n%s", k, d)
		}
	}
}

// TestConvergence checks that the reconstruction error at the sample
// points of a square decreases with the order.
func TestConvergence(t *testing.T) {
	const m = 400
	z := make([]Complex, m)
	for k := range z {
		// walk around the square [-1,1]² at unit speed
		s := 8 * float64(k) / m
		side, u := int(s/2), math.Mod(s, 2)-1
		switch side {
		case 0:
			z[k] = Complex{Re: u, Im: -1}
		case 1:
			z[k] = Complex{Re: 1, Im: u}
		case 2:
			z[k] = Complex{Re: -u, Im: 1}
		default:
			z[k] = Complex{Re: -1, Im: -u}
		}
	}

	last := math.Inf(1)
	for _, order := range []int{1, 5, 20, 100} {
		c := Analyze(z, order)
		e := 0.0
		for k, zk := range z {
			d := c.Eval(2 * math.Pi * float64(k) / m).Sub(zk).Abs()
			e += d * d
		}
		e = math.Sqrt(e / m)
		if !(e < last) {
			t.Errorf("order %d: error %g, not smaller than %g", order, e, last)
		}
		last = e
	}
	if last > 0.01 {
		t.Errorf("order 100: error %g", last)
	}
}

func TestAnalyzeCircle(t *testing.T) {
	const m = 100
	z := make([]Complex, m)
	for k := range z {
		z[k] = Complex{Re: 3, Im: 1}.Add(Expi(2 * math.Pi * float64(k) / m).Scale(5))
	}
	c := Analyze(z, 4)

	approx := cmpopts.EquateApprox(0, 1e-12)
	for n := -4; n <= 4; n++ {
		var want Complex
		switch n {
		case 0:
			want = Complex{Re: 3, Im: 1}
		case 1:
			want = Complex{Re: 5}
		}
		if d := cmp.Diff(want, c.At(n), approx); d != "" {
			t.Errorf("c_%d: mismatch (-want +got):\n%s", n, d)
		}
	}
	if got := c.At(5); got != (Complex{}) {
		t.Errorf("At(5) = %v, want 0", got)
	}
}

func TestSynthesize(t *testing.T) {
	c := Analyze(randomSignal(50, 3), 10)

	if got := c.Synthesize(0); got != nil {
		t.Errorf("Synthesize(0) = %v", got)
	}
	if d := cmp.Diff([]Complex{c.Eval(0)}, c.Synthesize(1)); d != "" {
		t.Errorf("Synthesize(1) mismatch (-want +got):\n%s", d)
	}

	curve := c.Synthesize(1000)
	if len(curve) != 1000 {
		t.Fatalf("len = %d", len(curve))
	}
	if d := curve[0].Sub(curve[999]).Abs(); d > 1e-9 {
		t.Errorf("curve not closed, gap %g", d)
	}
	if d := cmp.Diff(c.Eval(2*math.Pi*10/999), curve[10], cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("point 10 mismatch (-want +got):\n%s", d)
	}
}

func TestTruncate(t *testing.T) {
	z := randomSignal(80, 4)
	c := Analyze(z, 20)
	low := c.Truncate(5)
	if low.Order() != 5 {
		t.Fatalf("Order() = %d", low.Order())
	}

	direct := Analyze(z, 5)
	for n := -6; n <= 6; n++ {
		if low.At(n) != direct.At(n) {
			t.Errorf("c_%d: got %v, want %v", n, low.At(n), direct.At(n))
		}
	}
	if c.Truncate(30) != c {
		t.Error("truncation to a higher order changed the series")
	}
}

func TestSamples(t *testing.T) {
	pts := []vec.Vec2{{X: 10, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 60}}
	want := []Complex{{Re: -10, Im: 20}, {Re: 10, Im: 20}, {Re: 10, Im: -20}}
	if d := cmp.Diff(want, Samples(pts)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
	if Samples(nil) != nil {
		t.Error("Samples(nil) is not nil")
	}
}

func TestComplex(t *testing.T) {
	a := Complex{Re: 1, Im: 2}
	b := Complex{Re: 3, Im: -1}
	if got := a.Mul(b); got != (Complex{Re: 5, Im: 5}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Sub(b).Add(b); got != a {
		t.Errorf("Sub/Add = %v", got)
	}
	if got := (Complex{Re: 3, Im: 4}).Abs(); got != 5 {
		t.Errorf("Abs = %g", got)
	}
	if got := a.String(); got != "(1+2i)" {
		t.Errorf("String = %q", got)
	}
}
