/*
NAME
  dct.go

DESCRIPTION
  dct.go implements the forward and inverse 2x2 luminance discrete
  cosine transform: four luminance samples in, four coefficients
  (a,b,c,d) out, and back.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dct implements the 2x2 luminance discrete cosine transform
// used to compact a 2x2 block of Y samples into (a,b,c,d).
package dct

// MinBCD and MaxBCD bound the b, c, d coefficients produced by Forward.
const (
	MinBCD = -0.3
	MaxBCD = 0.3
)

// Block is the (a,b,c,d) result of transforming a 2x2 luminance block.
type Block struct {
	A, B, C, D float64
}

// Forward computes (a,b,c,d) from the four luminance samples of a 2x2
// block, with y1 the top-left pixel, y2 top-right, y3 bottom-left and
// y4 bottom-right. b, c and d are clamped to [MinBCD, MaxBCD]; a is not
// clamped.
func Forward(y1, y2, y3, y4 float64) Block {
	return Block{
		A: (y4 + y3 + y2 + y1) / 4,
		B: clamp((y4+y3-y2-y1)/4, MinBCD, MaxBCD),
		C: clamp((y4-y3+y2-y1)/4, MinBCD, MaxBCD),
		D: clamp((y4-y3-y2+y1)/4, MinBCD, MaxBCD),
	}
}

// Inverse recovers the four luminance samples from a Block, in the
// same top-left/top-right/bottom-left/bottom-right order Forward takes
// them in.
func Inverse(blk Block) (y1, y2, y3, y4 float64) {
	a, b, c, d := blk.A, blk.B, blk.C, blk.D
	y1 = a - b - c + d
	y2 = a - b + c - d
	y3 = a + b - c - d
	y4 = a + b + c + d
	return
}

func clamp(v, min, max float64) float64 {
	switch {
	case v < min:
		return min
	case v > max:
		return max
	default:
		return v
	}
}
