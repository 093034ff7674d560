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

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidImage is returned for images with zero width or height.
	ErrInvalidImage = errors.New("invalid image")

	// ErrNoForeground is returned when no component of the minimum size
	// can be found, even after correcting the polarity of the mask.
	ErrNoForeground = errors.New("could not find a clear shape in the image")

	// ErrBoundaryTraceFailed is returned when the outline of the selected
	// component cannot be traced or is too short.
	ErrBoundaryTraceFailed = errors.New("boundary tracing failed")
)

// Params holds the thresholds used by Extract.
type Params struct {
	// MaskPolarity is the largest fraction of the image which the
	// foreground of the Otsu mask may cover.  Larger masks are inverted.
	MaskPolarity float64

	// ComponentPolarity is the largest fraction of the image which the
	// largest component may cover.  Larger components cause the mask to be
	// inverted and labelled again.
	ComponentPolarity float64

	// MinArea is the minimum size of the selected component, in pixels.
	MinArea int

	// MinBoundary is the minimum number of points of the traced outline.
	MinBoundary int
}

// DefaultParams are the thresholds used when none are given.
var DefaultParams = Params{
	MaskPolarity:      0.75,
	ComponentPolarity: 0.75,
	MinArea:           200,
	MinBoundary:       100,
}

// WithDefaults returns a copy of p in which every zero or negative field is
// replaced by the corresponding field of DefaultParams.
func (p Params) WithDefaults() Params {
	if p.MaskPolarity <= 0 {
		p.MaskPolarity = DefaultParams.MaskPolarity
	}
	if p.ComponentPolarity <= 0 {
		p.ComponentPolarity = DefaultParams.ComponentPolarity
	}
	if p.MinArea <= 0 {
		p.MinArea = DefaultParams.MinArea
	}
	if p.MinBoundary <= 0 {
		p.MinBoundary = DefaultParams.MinBoundary
	}
	return p
}

// Silhouette describes the shape found by Extract.
type Silhouette struct {
	// Threshold is the Otsu threshold of the grayscale image.
	Threshold int

	// Inversions counts how often the mask was inverted (0, 1 or 2).
	Inversions int

	// Label is the component id of the shape and Area its pixel count.
	Label int
	Area  int

	// Boundary is the traced outline in pixel-centre coordinates.
	Boundary []vec.Vec2
}

// Extract finds the largest shape in g and traces its outline.
//
// Dark pixels are taken to be the shape.  The polarity is corrected twice:
// once if the Otsu foreground covers more than p.MaskPolarity of the image,
// and once more, independently, if the largest component covers more than
// p.ComponentPolarity.  Both checks always run.
func Extract(g *Gray, p Params) (*Silhouette, error) {
	if len(g.Pix) == 0 {
		return nil, ErrInvalidImage
	}

	hist := g.Histogram()
	s := &Silhouette{
		Threshold: OtsuThreshold(&hist),
	}

	m := Binarize(g, s.Threshold)
	if m.exceeds(m.Count(), p.MaskPolarity) {
		m.Invert()
		s.Inversions++
	}

	l, inverted, err := Select(m, p)
	if inverted {
		s.Inversions++
	}
	if err != nil {
		return nil, err
	}
	s.Label = l.Best
	s.Area = l.BestArea

	s.Boundary, err = Trace(l, l.Best, p.MinBoundary)
	if err != nil {
		return nil, err
	}
	return s, nil
}
