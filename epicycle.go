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

// Package epicycle turns the silhouette of an image into a closed curve
// drawn by a truncated Fourier series.
//
// [ExtractAndSynthesize] runs the whole pipeline: the image is reduced to
// a grayscale working copy, the largest shape is found and its outline
// traced, the outline is resampled by arc length, and its Fourier
// coefficients are computed and evaluated densely.  The result can be
// fitted to a canvas and drawn with [Result.Render].
package epicycle

//go:generate go run ./testcases/export

import (
	"context"
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/epicycle/contour"
	"seehuhn.de/go/epicycle/fourier"
	"seehuhn.de/go/epicycle/silhouette"
)

// Errors returned by ExtractAndSynthesize.  Use [errors.Is] to test for
// them, since they are usually wrapped.
var (
	ErrInvalidImage        = silhouette.ErrInvalidImage
	ErrNoForeground        = silhouette.ErrNoForeground
	ErrBoundaryTraceFailed = silhouette.ErrBoundaryTraceFailed
	ErrDegenerate          = contour.ErrDegenerate
)

// Result holds the output of every stage of the pipeline.
type Result struct {
	// Silhouette is the shape found in the image, with its traced
	// boundary in working-image pixel coordinates.
	Silhouette *silhouette.Silhouette

	// Contour is the boundary resampled to Config.Samples points.
	Contour []vec.Vec2

	// Coefficients is the Fourier series of the centred contour.
	Coefficients *fourier.Coefficients

	// Curve is the series evaluated at Config.DrawSamples angles.
	Curve []fourier.Complex

	// Fit maps Curve onto the output canvas.
	Fit Fit

	cfg Config
}

// ExtractAndSynthesize finds the dominant shape in img and returns its
// outline as a Fourier series together with the reconstructed curve.
//
// The stages do not block.  ctx is checked between stages, so that a
// caller can abandon a computation which has been superseded.
func ExtractAndSynthesize(ctx context.Context, img image.Image, cfg Config) (*Result, error) {
	cfg = cfg.normalize()

	g, err := silhouette.NewGray(img, cfg.DownscaleW, cfg.Resampler)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := silhouette.Extract(g, cfg.Silhouette)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pts, err := contour.ResampleClosed(s.Boundary, cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("resampling boundary: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Silhouette:   s,
		Contour:      pts,
		Coefficients: fourier.Analyze(fourier.Samples(pts), cfg.Order),
		cfg:          cfg,
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.synthesize()
	return res, nil
}

// Resynthesize returns a copy of res with the series truncated to the
// given order, without tracing the image again.  Orders above the order
// of res leave the series unchanged.
func (res *Result) Resynthesize(order int) *Result {
	out := &Result{
		Silhouette:   res.Silhouette,
		Contour:      res.Contour,
		Coefficients: res.Coefficients.Truncate(order),
		cfg:          res.cfg,
	}
	out.cfg.Order = out.Coefficients.Order()
	out.synthesize()
	return out
}

func (res *Result) synthesize() {
	res.Curve = res.Coefficients.Synthesize(res.cfg.DrawSamples)
	res.Fit = FitCurve(res.Curve, res.cfg.Width, res.cfg.Height, res.cfg.Margin)
}
