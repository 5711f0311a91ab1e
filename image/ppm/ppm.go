/*
NAME
  ppm.go

DESCRIPTION
  ppm.go decodes and encodes binary (P6) PPM pixmaps, storing pixel
  channels as normalized floats in [0,1] for direct use by the color
  transform stage.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ppm reads and writes the binary "P6" Portable Pixmap format.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// maxDenom is the largest maximum-channel-value a PPM header may
// declare, per the format's own limit.
const maxDenom = 65535

// Pixmap holds a decoded RGB image, with channels normalized to [0,1]
// regardless of the source file's maximum-value denominator.
type Pixmap struct {
	Width, Height int
	r, g, b       []float64
}

// New returns a black Pixmap of the given dimensions.
func New(width, height int) *Pixmap {
	n := width * height
	return &Pixmap{
		Width: width, Height: height,
		r: make([]float64, n), g: make([]float64, n), b: make([]float64, n),
	}
}

// At returns the normalized RGB triple at (x, y).
func (p *Pixmap) At(x, y int) (r, g, b float64) {
	i := y*p.Width + x
	return p.r[i], p.g[i], p.b[i]
}

// Set stores a normalized RGB triple at (x, y).
func (p *Pixmap) Set(x, y int, r, g, b float64) {
	i := y*p.Width + x
	p.r[i], p.g[i], p.b[i] = r, g, b
}

// Decode reads a binary P6 PPM image from r. It accepts both 1-byte
// and 2-byte channel widths, selected by the header's maximum value,
// and normalizes every channel to [0,1].
func Decode(r io.Reader) (*Pixmap, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: reading magic number")
	}
	if magic != "P6" {
		return nil, fmt.Errorf("ppm: unsupported magic number %q, want P6", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: reading width")
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: reading height")
	}
	denom, err := readIntToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: reading max value")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if denom <= 0 || denom > maxDenom {
		return nil, fmt.Errorf("ppm: invalid max value %d", denom)
	}

	// readToken consumes the single whitespace byte that terminates the
	// max-value token, so the raster begins at the reader's current
	// position with no further skipping needed.
	bytesPerChannel := 1
	if denom > 255 {
		bytesPerChannel = 2
	}

	pix := New(width, height)
	buf := make([]byte, bytesPerChannel)
	readChannel := func() (float64, error) {
		if _, err := io.ReadFull(br, buf); err != nil {
			return 0, err
		}
		var v int
		for _, b := range buf {
			v = v<<8 | int(b)
		}
		return float64(v) / float64(denom), nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rv, err := readChannel()
			if err != nil {
				return nil, errors.Wrap(err, "ppm: reading raster")
			}
			gv, err := readChannel()
			if err != nil {
				return nil, errors.Wrap(err, "ppm: reading raster")
			}
			bv, err := readChannel()
			if err != nil {
				return nil, errors.Wrap(err, "ppm: reading raster")
			}
			pix.Set(x, y, rv, gv, bv)
		}
	}
	return pix, nil
}

// Encode writes p as a binary P6 PPM image with a maximum value of 255,
// one byte per channel.
func Encode(w io.Writer, p *Pixmap) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", p.Width, p.Height); err != nil {
		return errors.Wrap(err, "ppm: writing header")
	}

	buf := make([]byte, 3)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, b := p.At(x, y)
			buf[0] = toByte(r)
			buf[1] = toByte(g)
			buf[2] = toByte(b)
			if _, err := bw.Write(buf); err != nil {
				return errors.Wrap(err, "ppm: writing raster")
			}
		}
	}
	return bw.Flush()
}

// toByte scales a normalized [0,1] channel to a byte, truncating toward
// zero and clamping against representation error at the boundaries.
func toByte(v float64) byte {
	scaled := int(v * 255)
	switch {
	case scaled < 0:
		return 0
	case scaled > 255:
		return 255
	default:
		return byte(scaled)
	}
}

// readToken skips leading whitespace and '#' comment lines (each
// running to end of line), then returns the next run of non-whitespace
// bytes.
func readToken(r *bufio.Reader) (string, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			continue
		}
		if b == '#' {
			if err := skipLine(r); err != nil {
				return "", err
			}
			continue
		}
		var tok []byte
		tok = append(tok, b)
		for {
			b, err := r.ReadByte()
			if err != nil {
				if err == io.EOF {
					break
				}
				return "", err
			}
			if isSpace(b) {
				break
			}
			tok = append(tok, b)
		}
		return string(tok), nil
	}
}

func readIntToken(r *bufio.Reader) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	var v int
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("ppm: malformed integer token %q", tok)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

func skipLine(r *bufio.Reader) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
