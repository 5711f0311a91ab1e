/*
NAME
  chroma.go

DESCRIPTION
  chroma.go implements a fixed 16-level quantizer mapping a chroma value
  (Pb or Pr) to a 4-bit index and back, using the same fixed-table
  lookup shape as an adaptive step-size coder's step/index table pair.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package chroma quantizes chroma (Pb/Pr) samples to a 4-bit index and
// back, using a fixed table spanning the achievable range of the color
// matrix in package colorspace.
package chroma

// table holds the 16 representative chroma values an index can name.
// RGB inputs normalized to [0,1] produce Pb, Pr in [-0.5,0.5]; the
// table is spaced evenly across that range, with values rounded to
// match the precision a 4-bit index can usefully resolve.
var table = [16]float64{
	-0.46875, -0.40625, -0.34375, -0.28125,
	-0.21875, -0.15625, -0.09375, -0.03125,
	0.03125, 0.09375, 0.15625, 0.21875,
	0.28125, 0.34375, 0.40625, 0.46875,
}

// IndexOfChroma returns the 4-bit index of the table entry nearest f.
func IndexOfChroma(f float64) uint8 {
	best := 0
	bestDist := dist(f, table[0])
	for i := 1; i < len(table); i++ {
		if d := dist(f, table[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// ChromaOfIndex returns the chroma value named by a 4-bit index.
func ChromaOfIndex(i uint8) float64 {
	return table[i&0xF]
}

func dist(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
