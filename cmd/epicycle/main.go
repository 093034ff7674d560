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

// Command epicycle finds the silhouette in an image and draws it as a
// Fourier series.
//
// Every flag can also be set with an environment variable, for example
// EPICYCLE_ORDER=20 for -order 20.
package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfomuseum/go-flags/flagset"
	"github.com/unixpickle/essentials"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/epicycle"
	"seehuhn.de/go/epicycle/contour"
	"seehuhn.de/go/epicycle/silhouette"
)

func main() {
	cfg := epicycle.DefaultConfig
	style := epicycle.DefaultStyle

	var infile, outfile, resampler string
	var orders string
	var verbose bool

	fs := flagset.NewFlagSet("epicycle")

	fs.StringVar(&infile, "infile", "", "input image (png, jpeg, gif, bmp, tiff or webp)")
	fs.StringVar(&outfile, "outfile", "epicycle.png", "output PNG file")
	fs.StringVar(&orders, "orders", "", "comma-separated list of extra orders, each written to its own file")

	fs.IntVar(&cfg.Order, "order", cfg.Order, "number of positive and negative frequencies")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of boundary samples used for the analysis")
	fs.IntVar(&cfg.DrawSamples, "draw-samples", cfg.DrawSamples, "number of points of the reconstructed curve")
	fs.IntVar(&cfg.DownscaleW, "downscale", cfg.DownscaleW, "width of the working image")
	fs.StringVar(&resampler, "resampler", cfg.Resampler.String(), "downscaling filter: nearest, approx-bilinear, bilinear, catmull-rom or lanczos")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "output width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "output height in pixels")
	fs.Float64Var(&cfg.Margin, "margin", cfg.Margin, "free space around the curve, as a fraction of its size")

	fs.IntVar(&cfg.Silhouette.MinArea, "min-area", cfg.Silhouette.MinArea, "minimum shape area in working pixels")
	fs.IntVar(&cfg.Silhouette.MinBoundary, "min-boundary", cfg.Silhouette.MinBoundary, "minimum number of boundary points")
	fs.Float64Var(&cfg.Silhouette.MaskPolarity, "mask-polarity", cfg.Silhouette.MaskPolarity, "foreground fraction above which the mask is inverted")
	fs.Float64Var(&cfg.Silhouette.ComponentPolarity, "component-polarity", cfg.Silhouette.ComponentPolarity, "component fraction above which the mask is inverted again")

	fs.Float64Var(&style.LineWidth, "line-width", style.LineWidth, "stroke width in pixels")
	fs.Float64Var(&style.Alpha, "alpha", style.Alpha, "stroke opacity")
	fs.Float64Var(&style.CenterY, "center-y", style.CenterY, "upward shift of the curve in pixels")

	fs.BoolVar(&verbose, "verbose", false, "print the largest coefficients")

	flagset.Parse(fs)
	err := flagset.SetFlagsFromEnvVars(fs, "EPICYCLE")
	if err != nil {
		log.Fatalf("Failed to set flags from environment variables, %v", err)
	}

	if infile == "" {
		log.Fatal("missing -infile")
	}
	cfg.Resampler, err = silhouette.ParseResampler(resampler)
	if err != nil {
		log.Fatal(err)
	}
	extra, err := parseOrders(orders)
	if err != nil {
		log.Fatal(err)
	}

	r, err := os.Open(infile)
	if err != nil {
		log.Fatalf("Failed to open %s for reading, %v", infile, err)
	}
	img, format, err := image.Decode(r)
	r.Close()
	if err != nil {
		log.Fatalf("Failed to decode %s, %v", infile, err)
	}
	log.Printf("read %s image %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())

	res, err := epicycle.ExtractAndSynthesize(context.Background(), img, cfg)
	if err != nil {
		log.Fatal(err)
	}
	s := res.Silhouette
	log.Printf("threshold %d, %d inversions, shape area %d px, boundary %d points (length %.1f px)",
		s.Threshold, s.Inversions, s.Area, len(s.Boundary), contour.Length(s.Boundary))
	if verbose {
		logCoefficients(res)
	}

	writePNG(outfile, res, style)
	for _, order := range extra {
		writePNG(orderFileName(outfile, order), res.Resynthesize(order), style)
	}
}

func writePNG(fname string, res *epicycle.Result, style epicycle.Style) {
	f, err := os.Create(fname)
	essentials.Must(err)
	defer f.Close()
	essentials.Must(png.Encode(f, res.Render(style)))
	log.Printf("wrote %s (order %d)", fname, res.Coefficients.Order())
}

// logCoefficients prints the coefficients in order of decreasing radius.
func logCoefficients(res *epicycle.Result) {
	c := res.Coefficients
	ns := make([]int, 0, 2*c.Order()+1)
	for n := -c.Order(); n <= c.Order(); n++ {
		ns = append(ns, n)
	}
	essentials.VoodooSort(ns, func(i, j int) bool {
		return c.At(ns[i]).Abs() > c.At(ns[j]).Abs()
	})
	for _, n := range ns[:min(len(ns), 10)] {
		log.Printf("  n=%+4d  |c|=%10.4f  c=%v", n, c.At(n).Abs(), c.At(n))
	}
}

func parseOrders(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var res []int
	for _, field := range strings.Split(s, ",") {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(field), "%d", &n); err != nil || n < 1 {
			return nil, fmt.Errorf("invalid order %q", field)
		}
		res = append(res, n)
	}
	return res, nil
}

// orderFileName inserts the order before the extension of fname.
func orderFileName(fname string, order int) string {
	ext := filepath.Ext(fname)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(fname, ext), order, ext)
}
