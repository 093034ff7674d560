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

// Package silhouette finds the outline of the dominant shape in a raster
// image.
//
// The work is split into the classical stages: conversion to a downsampled
// grayscale image, Otsu binarization, labelling of 4-connected components,
// and Moore-neighbour tracing of the outer boundary of the largest
// component. [Extract] runs all stages in order.
package silhouette

import (
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// minSide is the smallest width or height of a working image.
const minSide = 32

// Resampler selects the filter used to bring the input image to the
// working resolution. All filters are deterministic.
type Resampler int

const (
	ApproxBiLinear Resampler = iota
	NearestNeighbor
	BiLinear
	CatmullRom
	Lanczos
)

func (rs Resampler) String() string {
	switch rs {
	case ApproxBiLinear:
		return "approx-bilinear"
	case NearestNeighbor:
		return "nearest"
	case BiLinear:
		return "bilinear"
	case CatmullRom:
		return "catmull-rom"
	case Lanczos:
		return "lanczos"
	default:
		return fmt.Sprintf("Resampler(%d)", int(rs))
	}
}

// ParseResampler returns the Resampler with the given name, as produced
// by [Resampler.String].
func ParseResampler(name string) (Resampler, error) {
	for rs := ApproxBiLinear; rs <= Lanczos; rs++ {
		if rs.String() == name {
			return rs, nil
		}
	}
	return 0, fmt.Errorf("unknown resampler %q", name)
}

// Gray is a single-channel intensity image.
// Pix holds Width*Height values in row-major order.
type Gray struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGray scales img to the working width targetW, keeping the aspect
// ratio, and converts the result to luma 0.299R + 0.587G + 0.114B.
// Neither side of the result is smaller than 32 pixels.
func NewGray(img image.Image, targetW int, rs Resampler) (*Gray, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidImage, b.Dx(), b.Dy())
	}
	if targetW <= 0 {
		return nil, fmt.Errorf("invalid working width %d", targetW)
	}

	scale := float64(targetW) / float64(b.Dx())
	w := max(minSide, int(math.Round(float64(b.Dx())*scale)))
	h := max(minSide, int(math.Round(float64(b.Dy())*scale)))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	switch rs {
	case Lanczos:
		scaled := resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
		draw.Draw(rgba, rgba.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	default:
		scaler(rs).Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	}

	g := &Gray{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h),
	}
	for y := range h {
		row := rgba.Pix[y*rgba.Stride:]
		for x := range w {
			r, gg, bb := row[4*x], row[4*x+1], row[4*x+2]
			g.Pix[y*w+x] = luma(r, gg, bb)
		}
	}
	return g, nil
}

func scaler(rs Resampler) draw.Scaler {
	switch rs {
	case NearestNeighbor:
		return draw.NearestNeighbor
	case BiLinear:
		return draw.BiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// luma returns the rounded Rec. 601 luma of an 8-bit colour.
func luma(r, g, b uint8) uint8 {
	v := math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
	return uint8(min(255, max(0, v)))
}

// At returns the intensity at (x, y).
func (g *Gray) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Histogram counts how many pixels have each intensity.
func (g *Gray) Histogram() [256]int {
	var hist [256]int
	for _, v := range g.Pix {
		hist[v]++
	}
	return hist
}
