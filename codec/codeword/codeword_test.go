/*
NAME
  codeword_test.go

DESCRIPTION
  codeword_test.go contains tests for the codeword package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package codeword

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ausocean/imgcomp/codec/dct"
)

// TestPackUnpackRoundTrip checks that packing then unpacking a block
// recovers values within the quantizer's resolution.
func TestPackUnpackRoundTrip(t *testing.T) {
	blocks := []Block{
		{Block: dct.Block{A: 0.5, B: 0, C: 0, D: 0}, PbIndex: 0, PrIndex: 0},
		{Block: dct.Block{A: 1, B: 0.3, C: -0.3, D: 0.1}, PbIndex: 15, PrIndex: 7},
		{Block: dct.Block{A: 0, B: -0.3, C: 0.3, D: -0.1}, PbIndex: 9, PrIndex: 3},
	}
	tolerance := cmpopts.EquateApprox(0, 1/bcdScale+1e-9)
	for _, b := range blocks {
		word, err := Pack(b)
		if err != nil {
			t.Fatalf("Pack(%+v): %v", b, err)
		}
		got := Unpack(word)
		if diff := cmp.Diff(b, got, tolerance); diff != "" {
			t.Errorf("Pack/Unpack round trip for %+v (-want +got):\n%s", b, diff)
		}
	}
}

// TestPackBitsPartitioned checks that the six fields partition the
// 32-bit codeword exactly, with no gaps or overlaps. b, c and d are
// signed 5-bit fields, so their all-ones bit pattern is the quantized
// value -1, not their positive maximum; -1/bcdScale is the float input
// that quantizes to exactly that.
func TestPackBitsPartitioned(t *testing.T) {
	neg := -1 / bcdScale
	word, err := Pack(Block{Block: dct.Block{A: 1, B: neg, C: neg, D: neg}, PbIndex: 15, PrIndex: 15})
	if err != nil {
		t.Fatal(err)
	}
	if word != 0xFFFFFFFF {
		t.Errorf("got %#x, want all 32 bits set", word)
	}
}

// TestAQuantizationBounds checks a's rounding and clamping at the
// extremes.
func TestAQuantizationBounds(t *testing.T) {
	if got := quantizeA(0); got != 0 {
		t.Errorf("quantizeA(0) = %d, want 0", got)
	}
	if got := quantizeA(1); got != aCapacity {
		t.Errorf("quantizeA(1) = %d, want %d", got, aCapacity)
	}
	if got := quantizeA(2); got != aCapacity {
		t.Errorf("quantizeA(2) (out of range) = %d, want clamped to %d", got, aCapacity)
	}
}
