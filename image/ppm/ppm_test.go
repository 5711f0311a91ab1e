/*
NAME
  ppm_test.go

DESCRIPTION
  ppm_test.go contains tests for the ppm package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ppm

import (
	"bytes"
	"math"
	"testing"
)

// TestEncodeDecodeRoundTrip checks that encoding then decoding a small
// synthetic image recovers the same pixel values, up to byte rounding.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	pix := New(2, 2)
	pix.Set(0, 0, 1, 0, 0)
	pix.Set(1, 0, 0, 1, 0)
	pix.Set(0, 1, 0, 0, 1)
	pix.Set(1, 1, 1, 1, 1)

	var buf bytes.Buffer
	if err := Encode(&buf, pix); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Width != 2 || got.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", got.Width, got.Height)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			wr, wg, wb := pix.At(x, y)
			gr, gg, gb := got.At(x, y)
			if !close(wr, gr) || !close(wg, gg) || !close(wb, gb) {
				t.Errorf("pixel (%d,%d): got (%v,%v,%v), want (%v,%v,%v)", x, y, gr, gg, gb, wr, wg, wb)
			}
		}
	}
}

// TestDecodeRejectsWrongMagic checks that a non-P6 magic number is
// reported as an error rather than silently misparsed.
func TestDecodeRejectsWrongMagic(t *testing.T) {
	src := bytes.NewBufferString("P3\n2 2\n255\n")
	if _, err := Decode(src); err == nil {
		t.Error("Decode with P3 magic: want error, got nil")
	}
}

// TestDecodeSixteenBitChannels checks that a max value above 255
// selects the two-byte-per-channel path and scales correctly.
func TestDecodeSixteenBitChannels(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n1 1\n65535\n")
	buf.Write([]byte{0xFF, 0xFF, 0x00, 0x00, 0x7F, 0xFF})

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r, g, b := got.At(0, 0)
	if !close(r, 1) {
		t.Errorf("r = %v, want 1", r)
	}
	if !close(g, 0) {
		t.Errorf("g = %v, want 0", g)
	}
	if want := float64(0x7FFF) / 65535; !close(b, want) {
		t.Errorf("b = %v, want %v", b, want)
	}
}

// TestDecodeSkipsComments checks that a '#' comment line embedded in
// the header is skipped rather than misread as a dimension token.
func TestDecodeSkipsComments(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("P6\n# a comment\n1 1\n255\n")
	buf.Write([]byte{10, 20, 30})

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Width != 1 || got.Height != 1 {
		t.Errorf("dimensions = %dx%d, want 1x1", got.Width, got.Height)
	}
}

func close(a, b float64) bool { return math.Abs(a-b) < 1.0/255 }
