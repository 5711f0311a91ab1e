/*
NAME
  codeword.go

DESCRIPTION
  codeword.go packs a DCT block plus its chroma indices into a 32-bit
  codeword, and unpacks the reverse, using a fixed bit field layout.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package codeword packs the lossy per-block representation (the DCT
// coefficients a,b,c,d plus the two 4-bit chroma indices) into a single
// 32-bit word, and unpacks it back, via package bitpack.
package codeword

import (
	"math"

	"github.com/ausocean/imgcomp/codec/bitpack"
	"github.com/ausocean/imgcomp/codec/dct"
)

// Block is the per-2x2-block payload a codeword carries.
type Block struct {
	dct.Block
	PbIndex, PrIndex uint8
}

// field widths and least-significant-bit positions, fixed by the wire
// format. aWidth=9 unsigned; b/c/d width=5 signed; pb/pr width=4
// unsigned.
const (
	aWidth, aLSB   = 9, 23
	bWidth, bLSB   = 5, 18
	cWidth, cLSB   = 5, 13
	dWidth, dLSB   = 5, 8
	pbWidth, pbLSB = 4, 4
	prWidth, prLSB = 4, 0

	// bcdMax is the clamp bound used to scale b, c, d into their
	// 5-bit signed fields; it must match dct.MaxBCD.
	bcdMax = dct.MaxBCD
)

// aCapacity is 2^aWidth - 1, the largest value the unsigned a field can
// hold.
const aCapacity = (1 << aWidth) - 1

// bcdScale is the integer scale factor applied to b, c and d before
// truncating to a signed integer: trunc((2^(width-1)-1) / maxval). The
// truncation (rather than rounding) is deliberate: it reproduces a
// reference C implementation's integer-cast arithmetic exactly, which
// this package matches for wire compatibility.
var bcdScale = math.Trunc(float64((1<<(bWidth-1))-1) / bcdMax)

// Pack quantizes and bit-packs a Block into a 32-bit codeword.
func Pack(b Block) (uint32, error) {
	a := quantizeA(b.A)
	bq := quantizeBCD(b.B)
	cq := quantizeBCD(b.C)
	dq := quantizeBCD(b.D)

	var word uint64
	var err error
	if word, err = bitpack.PutUnsigned(word, aWidth, aLSB, a); err != nil {
		return 0, err
	}
	if word, err = bitpack.PutSigned(word, bWidth, bLSB, bq); err != nil {
		return 0, err
	}
	if word, err = bitpack.PutSigned(word, cWidth, cLSB, cq); err != nil {
		return 0, err
	}
	if word, err = bitpack.PutSigned(word, dWidth, dLSB, dq); err != nil {
		return 0, err
	}
	if word, err = bitpack.PutUnsigned(word, pbWidth, pbLSB, uint64(b.PbIndex)); err != nil {
		return 0, err
	}
	if word, err = bitpack.PutUnsigned(word, prWidth, prLSB, uint64(b.PrIndex)); err != nil {
		return 0, err
	}
	return uint32(word), nil
}

// Unpack bit-unpacks and dequantizes a 32-bit codeword into a Block.
func Unpack(codeword uint32) Block {
	word := uint64(codeword)

	a := bitpack.GetUnsigned(word, aWidth, aLSB)
	b := bitpack.GetSigned(word, bWidth, bLSB)
	c := bitpack.GetSigned(word, cWidth, cLSB)
	d := bitpack.GetSigned(word, dWidth, dLSB)
	pb := bitpack.GetUnsigned(word, pbWidth, pbLSB)
	pr := bitpack.GetUnsigned(word, prWidth, prLSB)

	return Block{
		Block: dct.Block{
			A: dequantizeA(a),
			B: dequantizeBCD(b),
			C: dequantizeBCD(c),
			D: dequantizeBCD(d),
		},
		PbIndex: uint8(pb),
		PrIndex: uint8(pr),
	}
}

// quantizeA maps a value nominally in [0,1] to an unsigned integer in
// [0, aCapacity], rounding half to nearest and clamping the result.
func quantizeA(v float64) uint64 {
	scaled := math.Round(v * aCapacity)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > aCapacity {
		scaled = aCapacity
	}
	return uint64(scaled)
}

// dequantizeA is the exact inverse of quantizeA.
func dequantizeA(v uint64) float64 {
	return float64(v) / aCapacity
}

// quantizeBCD maps a value in [-bcdMax, bcdMax] to a signed integer in
// [-15, 15] by truncating toward zero.
func quantizeBCD(v float64) int64 {
	return int64(v * bcdScale)
}

// dequantizeBCD is the exact inverse of quantizeBCD.
func dequantizeBCD(v int64) float64 {
	return float64(v) / bcdScale
}
