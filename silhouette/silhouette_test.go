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
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGray(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
		img.Pix[i+3] = 255
	}

	g, err := NewGray(img, 32, NearestNeighbor)
	if err != nil {
		t.Fatal(err)
	}
	// 48*32/64 = 24 is raised to the minimum side length
	if g.Width != 32 || g.Height != 32 {
		t.Errorf("size %dx%d, want 32x32", g.Width, g.Height)
	}
	for i, v := range g.Pix {
		if v != 76 {
			t.Fatalf("pixel %d: got %d, want 76", i, v)
		}
	}
}

func TestNewGraySize(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 410, 220))
	for rs := ApproxBiLinear; rs <= Lanczos; rs++ {
		t.Run(rs.String(), func(t *testing.T) {
			g, err := NewGray(img, 100, rs)
			if err != nil {
				t.Fatal(err)
			}
			if g.Width != 100 || g.Height != 50 {
				t.Errorf("size %dx%d, want 100x50", g.Width, g.Height)
			}
			if len(g.Pix) != g.Width*g.Height {
				t.Errorf("len(Pix) = %d", len(g.Pix))
			}
		})
	}
}

func TestNewGrayEmpty(t *testing.T) {
	_, err := NewGray(image.NewGray(image.Rect(0, 0, 0, 10)), 100, ApproxBiLinear)
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("got %v, want ErrInvalidImage", err)
	}
}

func TestParseResampler(t *testing.T) {
	for rs := ApproxBiLinear; rs <= Lanczos; rs++ {
		got, err := ParseResampler(rs.String())
		if err != nil || got != rs {
			t.Errorf("ParseResampler(%q) = %v, %v", rs.String(), got, err)
		}
	}
	if _, err := ParseResampler("cubic"); err == nil {
		t.Error("unknown name accepted")
	}
}

func TestLuma(t *testing.T) {
	cases := []struct {
		c    color.RGBA
		want uint8
	}{
		{color.RGBA{0, 0, 0, 255}, 0},
		{color.RGBA{255, 255, 255, 255}, 255},
		{color.RGBA{255, 0, 0, 255}, 76},
		{color.RGBA{0, 255, 0, 255}, 150},
		{color.RGBA{0, 0, 255, 255}, 29},
	}
	for _, c := range cases {
		if got := luma(c.c.R, c.c.G, c.c.B); got != c.want {
			t.Errorf("luma(%v) = %d, want %d", c.c, got, c.want)
		}
	}
}

func TestOtsuThreshold(t *testing.T) {
	cases := []struct {
		name   string
		values map[int]int
		want   int
	}{
		{"empty", nil, 128},
		{"constant", map[int]int{17: 100}, 128},
		{"bimodal", map[int]int{50: 100, 200: 100}, 50},
		{"unbalanced", map[int]int{10: 30, 20: 30, 240: 300}, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var hist [256]int
			for v, n := range c.values {
				hist[v] = n
			}
			if got := OtsuThreshold(&hist); got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}

// TestOtsuPermutation checks that the threshold does not depend on the
// position of the pixels.
func TestOtsuPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	g := &Gray{Width: 40, Height: 30, Pix: make([]uint8, 1200)}
	for i := range g.Pix {
		if i%3 == 0 {
			g.Pix[i] = uint8(40 + rng.IntN(30))
		} else {
			g.Pix[i] = uint8(150 + rng.IntN(80))
		}
	}
	hist := g.Histogram()
	want := OtsuThreshold(&hist)

	for range 10 {
		rng.Shuffle(len(g.Pix), func(i, j int) {
			g.Pix[i], g.Pix[j] = g.Pix[j], g.Pix[i]
		})
		hist := g.Histogram()
		if got := OtsuThreshold(&hist); got != want {
			t.Fatalf("threshold changed from %d to %d", want, got)
		}
	}
}

func TestBinarize(t *testing.T) {
	g := &Gray{Width: 4, Height: 1, Pix: []uint8{0, 99, 100, 255}}
	m := Binarize(g, 99)
	if d := cmp.Diff([]uint8{1, 1, 0, 0}, m.Bits); d != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", d)
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d", m.Count())
	}
	m.Invert()
	if d := cmp.Diff([]uint8{0, 0, 1, 1}, m.Bits); d != "" {
		t.Errorf("inverted mask mismatch (-want +got):\n%s", d)
	}
}

// newMask returns a w×h mask with the given rectangles set, each given as
// x0, y0, x1, y1 with exclusive upper bounds.
func newMask(w, h int, rects ...[4]int) *Mask {
	m := &Mask{Width: w, Height: h, Bits: make([]uint8, w*h)}
	for _, r := range rects {
		for y := r[1]; y < r[3]; y++ {
			for x := r[0]; x < r[2]; x++ {
				m.Bits[y*w+x] = 1
			}
		}
	}
	return m
}

func TestLabelLargest(t *testing.T) {
	// a 50 pixel blob first in row-major order, then a 300 pixel blob
	m := newMask(60, 60, [4]int{2, 2, 12, 7}, [4]int{20, 20, 35, 40})
	l := Label(m)
	if l.Count != 2 {
		t.Errorf("Count = %d, want 2", l.Count)
	}
	if l.Best != 1 || l.BestArea != 300 {
		t.Errorf("Best = %d, BestArea = %d, want 1, 300", l.Best, l.BestArea)
	}
	if got := l.At(2, 2); got != 0 {
		t.Errorf("At(2, 2) = %d, want 0", got)
	}
	if got := l.At(25, 30); got != 1 {
		t.Errorf("At(25, 30) = %d, want 1", got)
	}
	if got := l.At(0, 0); got != Unlabeled {
		t.Errorf("At(0, 0) = %d, want Unlabeled", got)
	}
	if got := l.At(-1, 5); got != Unlabeled {
		t.Errorf("At(-1, 5) = %d, want Unlabeled", got)
	}
}

func TestLabelTies(t *testing.T) {
	m := newMask(30, 30, [4]int{0, 0, 10, 10}, [4]int{15, 15, 25, 25})
	l := Label(m)
	if l.Best != 0 || l.BestArea != 100 {
		t.Errorf("Best = %d, BestArea = %d, want 0, 100", l.Best, l.BestArea)
	}
}

func TestLabelDiagonal(t *testing.T) {
	m := newMask(4, 4, [4]int{0, 0, 1, 1}, [4]int{1, 1, 2, 2})
	l := Label(m)
	if l.Count != 2 {
		t.Errorf("diagonal pixels form %d components, want 2", l.Count)
	}
}

func TestSelectEmpty(t *testing.T) {
	m := newMask(50, 50)
	_, _, err := Select(m, DefaultParams)
	if !errors.Is(err, ErrNoForeground) {
		t.Errorf("got %v, want ErrNoForeground", err)
	}
}

func TestSelectTooSmall(t *testing.T) {
	m := newMask(50, 50, [4]int{10, 10, 20, 20})
	_, _, err := Select(m, DefaultParams)
	if !errors.Is(err, ErrNoForeground) {
		t.Errorf("got %v, want ErrNoForeground", err)
	}
}

func TestSelectInverts(t *testing.T) {
	// everything except a 20x20 square: the frame covers 84%
	m := newMask(50, 50, [4]int{0, 0, 50, 15}, [4]int{0, 35, 50, 50},
		[4]int{0, 15, 15, 35}, [4]int{35, 15, 50, 35})
	l, inverted, err := Select(m, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if !inverted {
		t.Error("mask was not inverted")
	}
	if l.BestArea != 400 {
		t.Errorf("BestArea = %d, want 400", l.BestArea)
	}
	if m.Bits[0] != 0 || m.Bits[25*50+25] != 1 {
		t.Error("mask not inverted in place")
	}
}

// squareImage returns a size×size image with a square of the given
// side, placed at (off, off).
func squareImage(size, off, side int, bg, fg uint8) *Gray {
	g := &Gray{Width: size, Height: size, Pix: make([]uint8, size*size)}
	for y := range size {
		for x := range size {
			v := bg
			if x >= off && x < off+side && y >= off && y < off+side {
				v = fg
			}
			g.Pix[y*size+x] = v
		}
	}
	return g
}

func TestExtract(t *testing.T) {
	g := squareImage(64, 10, 30, 230, 20)
	s, err := Extract(g, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if s.Inversions != 0 {
		t.Errorf("Inversions = %d, want 0", s.Inversions)
	}
	if s.Area != 900 {
		t.Errorf("Area = %d, want 900", s.Area)
	}
	if len(s.Boundary) != 4*29+1 {
		t.Errorf("boundary has %d points, want %d", len(s.Boundary), 4*29+1)
	}
}

// TestExtractPolarity checks both polarity corrections.  A light square
// on a dark background covering 78% of the image is found by the first
// correction, or by the second one if the first is disabled.
func TestExtractPolarity(t *testing.T) {
	g := squareImage(64, 10, 30, 0, 255)

	cases := []struct {
		name         string
		maskPolarity float64
	}{
		{"mask", DefaultParams.MaskPolarity},
		{"component", 1.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := DefaultParams
			p.MaskPolarity = c.maskPolarity
			s, err := Extract(g, p)
			if err != nil {
				t.Fatal(err)
			}
			if s.Inversions != 1 {
				t.Errorf("Inversions = %d, want 1", s.Inversions)
			}
			if s.Area != 900 {
				t.Errorf("Area = %d, want 900", s.Area)
			}
		})
	}
}

func TestExtractBlank(t *testing.T) {
	for _, v := range []uint8{0, 128, 255} {
		g := squareImage(50, 0, 0, v, v)
		_, err := Extract(g, DefaultParams)
		if !errors.Is(err, ErrNoForeground) {
			t.Errorf("intensity %d: got %v, want ErrNoForeground", v, err)
		}
	}
}
