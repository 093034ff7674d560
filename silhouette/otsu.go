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

// defaultThreshold is returned by OtsuThreshold when the histogram
// admits no split into two non-empty classes.
const defaultThreshold = 128

// OtsuThreshold returns the intensity t which maximises the between-class
// variance wB·wF·(mB−mF)², where the background class holds the
// intensities 0..t.  Ties go to the lowest t.
//
// The result only depends on the histogram, not on where the pixels are.
func OtsuThreshold(hist *[256]int) int {
	total := 0
	sum := 0.0
	for t, n := range hist {
		total += n
		sum += float64(t) * float64(n)
	}
	if total == 0 {
		return defaultThreshold
	}

	threshold := defaultThreshold
	best := -1.0
	countB := 0
	sumB := 0.0
	for t := range 256 {
		countB += hist[t]
		if countB == 0 {
			continue
		}
		countF := total - countB
		if countF == 0 {
			break
		}

		sumB += float64(t) * float64(hist[t])
		mB := sumB / float64(countB)
		mF := (sum - sumB) / float64(countF)
		wB := float64(countB) / float64(total)
		wF := float64(countF) / float64(total)

		v := wB * wF * (mB - mF) * (mB - mF)
		if v > best {
			best = v
			threshold = t
		}
	}
	return threshold
}

// Mask is a binary image. Bits holds one entry per pixel in row-major
// order; 1 marks the foreground and 0 the background.
type Mask struct {
	Width  int
	Height int
	Bits   []uint8
}

// Binarize marks every pixel with intensity at most t as foreground.
func Binarize(g *Gray, t int) *Mask {
	m := &Mask{
		Width:  g.Width,
		Height: g.Height,
		Bits:   make([]uint8, len(g.Pix)),
	}
	for i, v := range g.Pix {
		if int(v) <= t {
			m.Bits[i] = 1
		}
	}
	return m
}

// Invert swaps foreground and background in place.
func (m *Mask) Invert() {
	for i, b := range m.Bits {
		m.Bits[i] = 1 - b
	}
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		n += int(b)
	}
	return n
}

// exceeds reports whether n is more than the fraction frac of the mask.
func (m *Mask) exceeds(n int, frac float64) bool {
	return float64(n) > float64(len(m.Bits))*frac
}
