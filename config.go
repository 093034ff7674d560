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

package epicycle

import "seehuhn.de/go/epicycle/silhouette"

// Config holds the parameters of ExtractAndSynthesize.
// Values below the documented minimums are raised to the minimum.
type Config struct {
	// Order is the largest frequency N of the series; 2N+1 coefficients
	// are computed.  Minimum 1.
	Order int

	// Samples is the number of points the boundary is resampled to before
	// the analysis.  Minimum 512.
	Samples int

	// DrawSamples is the number of points of the reconstructed curve.
	// Minimum 1024.
	DrawSamples int

	// DownscaleW is the width of the working image.  Minimum 32.
	DownscaleW int

	// Resampler selects the filter used for downscaling.
	Resampler silhouette.Resampler

	// Silhouette holds the thresholds of the shape detection.
	// Zero fields are taken from silhouette.DefaultParams.
	Silhouette silhouette.Params

	// Width and Height give the output canvas size in pixels.
	// Zero selects 1920x1080.
	Width, Height int

	// Margin is the fraction of the curve extent kept free around the
	// fitted curve.  Negative values are treated as zero.
	Margin float64
}

// DefaultConfig gives the parameters used by the command line tool.
var DefaultConfig = Config{
	Order:       40,
	Samples:     2048,
	DrawSamples: 7000,
	DownscaleW:  360,
	Silhouette:  silhouette.DefaultParams,
	Width:       1920,
	Height:      1080,
	Margin:      0.02,
}

const (
	minOrder       = 1
	minSamples     = 512
	minDrawSamples = 1024
	minDownscaleW  = 32
)

// normalize returns a copy of c with all values in range.
func (c Config) normalize() Config {
	c.Order = max(c.Order, minOrder)
	c.Samples = max(c.Samples, minSamples)
	c.DrawSamples = max(c.DrawSamples, minDrawSamples)
	c.DownscaleW = max(c.DownscaleW, minDownscaleW)
	c.Margin = max(c.Margin, 0)
	c.Silhouette = c.Silhouette.WithDefaults()
	if c.Width <= 0 {
		c.Width = DefaultConfig.Width
	}
	if c.Height <= 0 {
		c.Height = DefaultConfig.Height
	}
	return c
}
