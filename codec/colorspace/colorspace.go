/*
NAME
  colorspace.go

DESCRIPTION
  colorspace.go implements the fixed linear RGB <-> component-video (CV)
  color matrix used by the codec, with clamping applied on the inverse
  path only.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package colorspace converts between RGB pixels normalized to [0,1]
// and Y'PbPr-like component-video (CV) samples.
package colorspace

// CV is a component-video sample: a luminance value y and two chroma
// values pb, pr.
type CV struct {
	Y, Pb, Pr float64
}

// RGBToCV converts a normalized RGB triple (each channel in [0,1]) to
// component video. No clamping is applied; the result's ranges follow
// directly from the matrix.
func RGBToCV(r, g, b float64) CV {
	return CV{
		Y:  0.299*r + 0.587*g + 0.114*b,
		Pb: -0.168736*r - 0.331264*g + 0.5*b,
		Pr: 0.5*r - 0.418688*g - 0.081312*b,
	}
}

// CVToRGB converts a component-video sample back to an RGB triple,
// clamping each output channel to [0,1].
func CVToRGB(cv CV) (r, g, b float64) {
	r = cv.Y + 1.402*cv.Pr
	g = cv.Y - 0.344136*cv.Pb - 0.714136*cv.Pr
	b = cv.Y + 1.772*cv.Pb
	return clamp01(r), clamp01(g), clamp01(b)
}

// clamp01 restricts v to the closed interval [0,1].
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
