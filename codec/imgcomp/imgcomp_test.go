/*
NAME
  imgcomp_test.go

DESCRIPTION
  imgcomp_test.go contains end-to-end tests for the Compress and
  Decompress pipeline.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package imgcomp

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/ausocean/imgcomp/image/ppm"
)

// solidPPM returns a binary P6 PPM image of w x h pixels, every pixel
// set to the given color.
func solidPPM(w, h int, r, g, b byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P6\n%d %d\n255\n", w, h)
	px := []byte{r, g, b}
	for i := 0; i < w*h; i++ {
		buf.Write(px)
	}
	return buf.Bytes()
}

// TestCompressHeaderMatchesLiteral checks that a compressed stream
// begins with the exact expected header text and even dimensions.
func TestCompressHeaderMatchesLiteral(t *testing.T) {
	src := solidPPM(4, 4, 128, 64, 200)

	var compressed bytes.Buffer
	if err := Compress(bytes.NewReader(src), &compressed, nil); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	want := headerPrefix + "4 4\n"
	got := compressed.Bytes()
	if len(got) < len(want) || string(got[:len(want)]) != want {
		t.Errorf("header = %q, want prefix %q", got, want)
	}

	remaining := len(got) - len(want)
	wantCodewords := (4 / 2) * (4 / 2)
	if remaining != wantCodewords*codewordSize {
		t.Errorf("payload size = %d bytes, want %d", remaining, wantCodewords*codewordSize)
	}
}

// TestCompressTrimsOddDimensions checks that an odd-sized source image
// is trimmed down to the nearest even width and height before encoding.
func TestCompressTrimsOddDimensions(t *testing.T) {
	src := solidPPM(5, 3, 10, 20, 30)

	var compressed bytes.Buffer
	if err := Compress(bytes.NewReader(src), &compressed, nil); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	want := headerPrefix + "4 2\n"
	got := compressed.Bytes()
	if len(got) < len(want) || string(got[:len(want)]) != want {
		t.Errorf("header = %q, want prefix %q", got, want)
	}
}

// TestRoundTripSolidColor checks that compressing then decompressing a
// uniform image recovers a pixmap very close to the original; a solid
// image exercises the lossy stages (chroma and DCT quantization) at
// their least lossy point, since every block is uniform.
func TestRoundTripSolidColor(t *testing.T) {
	src := solidPPM(8, 8, 180, 90, 40)

	var compressed bytes.Buffer
	if err := Compress(bytes.NewReader(src), &compressed, nil); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	var decompressed bytes.Buffer
	if err := Decompress(&compressed, &decompressed, nil); err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	pix, err := ppm.Decode(&decompressed)
	if err != nil {
		t.Fatalf("ppm.Decode of round-tripped output: %v", err)
	}
	if pix.Width != 8 || pix.Height != 8 {
		t.Fatalf("dimensions = %dx%d, want 8x8", pix.Width, pix.Height)
	}

	wantR, wantG, wantB := 180.0/255, 90.0/255, 40.0/255
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, g, b := pix.At(x, y)
			if absf(r-wantR) > 0.05 || absf(g-wantG) > 0.05 || absf(b-wantB) > 0.05 {
				t.Errorf("pixel (%d,%d) = (%v,%v,%v), want approximately (%v,%v,%v)", x, y, r, g, b, wantR, wantG, wantB)
			}
		}
	}
}

// TestDecompressRejectsBadHeader checks that a stream lacking the
// expected literal prefix is rejected with ErrBadHeader. The input is
// shorter than the prefix, so readHeader wraps ErrBadHeader around the
// read error and the check uses errors.Is.
func TestDecompressRejectsBadHeader(t *testing.T) {
	bad := bytes.NewBufferString("not a compressed image\n4 4\n")
	var out bytes.Buffer
	err := Decompress(bad, &out, nil)
	if !errors.Is(err, ErrBadHeader) {
		t.Errorf("Decompress with garbage header: got %v, want ErrBadHeader", err)
	}
}

// TestDecompressRejectsShortStream checks that a header promising more
// codewords than the stream actually holds is reported distinctly from
// a header-parsing failure.
func TestDecompressRejectsShortStream(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(headerPrefix)
	buf.WriteString("2 2\n")
	buf.Write([]byte{0, 0}) // one codeword needed, only 2 of 4 bytes present

	var out bytes.Buffer
	err := Decompress(&buf, &out, nil)
	if err != ErrShortStream {
		t.Errorf("Decompress with truncated payload: got %v, want ErrShortStream", err)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
