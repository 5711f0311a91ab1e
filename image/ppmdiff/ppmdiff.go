/*
NAME
  ppmdiff.go

DESCRIPTION
  ppmdiff.go computes a root-mean-square pixel difference between two
  PPM pixmaps, tolerating a small mismatch in dimensions by comparing
  over their overlapping region.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ppmdiff computes a normalized RMS difference between two PPM
// pixmaps, for judging the visual cost of lossy compression.
package ppmdiff

import (
	"fmt"
	"math"

	"github.com/ausocean/imgcomp/image/ppm"
)

// maxDimensionSkew is the largest difference in width or height the
// comparison tolerates before giving up and reporting the maximal
// difference value.
const maxDimensionSkew = 1

// ErrDimensionMismatch is returned by RMS when the two images differ in
// width or height by more than maxDimensionSkew. A value of 1.0 still
// accompanies this error, for callers that want a numeric result to
// print regardless.
var ErrDimensionMismatch = fmt.Errorf("ppmdiff: image dimensions differ by more than %d", maxDimensionSkew)

// RMS computes the normalized root-mean-square difference between a
// and b over their overlapping region. If the two images' widths or
// heights differ by more than maxDimensionSkew, RMS returns 1.0 and
// ErrDimensionMismatch rather than comparing a meaningless overlap.
func RMS(a, b *ppm.Pixmap) (float64, error) {
	if absInt(a.Width-b.Width) > maxDimensionSkew || absInt(a.Height-b.Height) > maxDimensionSkew {
		return 1.0, ErrDimensionMismatch
	}

	width := min(a.Width, b.Width)
	height := min(a.Height, b.Height)
	if width == 0 || height == 0 {
		return 0, nil
	}

	var sumSq float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ar, ag, ab := a.At(x, y)
			br, bg, bb := b.At(x, y)
			sumSq += sq(ar-br) + sq(ag-bg) + sq(ab-bb)
		}
	}

	n := float64(3 * width * height)
	return math.Sqrt(sumSq / n), nil
}

func sq(v float64) float64 { return v * v }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
