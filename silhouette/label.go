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

import "fmt"

// Unlabeled marks background pixels in a label field.
const Unlabeled = -1

// Labels is the result of connected-component labelling.
type Labels struct {
	Width  int
	Height int

	// IDs holds the component id of every pixel in row-major order,
	// or Unlabeled for background pixels.
	IDs []int32

	// Best is the id of the largest component, or Unlabeled if the
	// mask has no foreground.  Among components of equal size the one
	// found first wins.
	Best int

	// BestArea is the pixel count of component Best.
	BestArea int

	// Count is the number of components.
	Count int
}

// Label finds the 4-connected foreground components of m.
// Components are numbered in the row-major order of their first pixel.
func Label(m *Mask) *Labels {
	w, h := m.Width, m.Height
	l := &Labels{
		Width:  w,
		Height: h,
		IDs:    make([]int32, len(m.Bits)),
		Best:   Unlabeled,
	}
	for i := range l.IDs {
		l.IDs[i] = Unlabeled
	}

	// A component never has more pixels than the mask, so one buffer
	// serves all flood fills.
	queue := make([]int32, len(m.Bits))

	for start, b := range m.Bits {
		if b == 0 || l.IDs[start] != Unlabeled {
			continue
		}

		id := int32(l.Count)
		head, tail := 0, 0
		queue[tail] = int32(start)
		tail++
		l.IDs[start] = id

		for head < tail {
			p := int(queue[head])
			head++
			x, y := p%w, p/w

			if x > 0 && m.Bits[p-1] != 0 && l.IDs[p-1] == Unlabeled {
				l.IDs[p-1] = id
				queue[tail] = int32(p - 1)
				tail++
			}
			if x < w-1 && m.Bits[p+1] != 0 && l.IDs[p+1] == Unlabeled {
				l.IDs[p+1] = id
				queue[tail] = int32(p + 1)
				tail++
			}
			if y > 0 && m.Bits[p-w] != 0 && l.IDs[p-w] == Unlabeled {
				l.IDs[p-w] = id
				queue[tail] = int32(p - w)
				tail++
			}
			if y < h-1 && m.Bits[p+w] != 0 && l.IDs[p+w] == Unlabeled {
				l.IDs[p+w] = id
				queue[tail] = int32(p + w)
				tail++
			}
		}

		// the queue was filled from position 0, so tail is the area
		if tail > l.BestArea {
			l.BestArea = tail
			l.Best = int(id)
		}
		l.Count++
	}
	return l
}

// At returns the component id at (x, y), or Unlabeled if (x, y) is
// background or outside the image.
func (l *Labels) At(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return Unlabeled
	}
	return int(l.IDs[y*l.Width+x])
}

// Select labels m and returns the field if its largest component is
// usable.
//
// If the largest component covers more than p.ComponentPolarity of the
// image, the shape is taken to be the background: m is inverted in place
// and labelled once more, and inverted is set.  The call fails with
// ErrNoForeground if no component of at least p.MinArea pixels remains.
func Select(m *Mask, p Params) (l *Labels, inverted bool, err error) {
	l = Label(m)
	if m.exceeds(l.BestArea, p.ComponentPolarity) {
		m.Invert()
		l = Label(m)
		inverted = true
	}

	if l.Best == Unlabeled {
		return nil, inverted, fmt.Errorf("%w: mask is empty", ErrNoForeground)
	}
	if l.BestArea < p.MinArea {
		return nil, inverted, fmt.Errorf("%w: largest component has %d pixels, need %d",
			ErrNoForeground, l.BestArea, p.MinArea)
	}
	return l, inverted, nil
}
