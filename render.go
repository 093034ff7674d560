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

import (
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/epicycle/fourier"
	"seehuhn.de/go/epicycle/raster"
)

// Style controls how a curve is drawn.
type Style struct {
	// LineWidth is the stroke width in canvas pixels.
	LineWidth float64

	// Background and Ink are the gray levels of the canvas and the stroke.
	Background, Ink uint8

	// Alpha is the opacity of the stroke, between 0 and 1.
	Alpha float64

	// CenterY shifts the curve up by this many canvas pixels.
	CenterY float64
}

// DefaultStyle draws a thin white line on a near-black canvas.
var DefaultStyle = Style{
	LineWidth:  1.2,
	Background: 5,
	Ink:        255,
	Alpha:      0.98,
}

// Render draws the reconstructed curve of res onto a new canvas of the
// size given in the configuration.
func (res *Result) Render(style Style) *image.Gray {
	return RenderCurve(res.Curve, res.Fit, style)
}

// RenderCurve strokes the closed curve, mapped by fit, onto a new
// canvas of size fit.Width×fit.Height.  Joins and caps are round.
func RenderCurve(curve []fourier.Complex, fit Fit, style Style) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fit.Width, fit.Height))
	for i := range img.Pix {
		img.Pix[i] = style.Background
	}
	if len(curve) == 0 || !(fit.Scale > 0) || math.IsInf(fit.Scale, 0) {
		return img
	}

	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: curve[0].Re, Y: curve[0].Im})
	for _, z := range curve[1:] {
		p.LineTo(vec.Vec2{X: z.Re, Y: z.Im})
	}

	r := raster.NewRasterizer(rect.Rect{
		URx: float64(fit.Width),
		URy: float64(fit.Height),
	})
	r.CTM = fit.Matrix(style.CenterY)
	r.Width = style.LineWidth / fit.Scale
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound

	alpha := min(max(style.Alpha, 0), 1)
	bg := float64(style.Background)
	ink := float64(style.Ink)
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride:]
		for i, c := range coverage {
			a := alpha * float64(c)
			row[xMin+i] = uint8(math.Round(bg + a*(ink-bg)))
		}
	})
	return img
}
