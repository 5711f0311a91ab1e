/*
NAME
  pipeline.go

DESCRIPTION
  pipeline.go drives the full compress and decompress pipelines: color
  transform, 4:1 chroma subsampling, 2x2 luminance DCT, codeword
  packing, and framing, and their inverses.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package imgcomp implements the lossy image codec: Compress maps a PPM
// pixmap to a compressed codeword stream, and Decompress is its
// inverse.
package imgcomp

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/imgcomp/codec/chroma"
	"github.com/ausocean/imgcomp/codec/codeword"
	"github.com/ausocean/imgcomp/codec/colorspace"
	"github.com/ausocean/imgcomp/codec/dct"
	"github.com/ausocean/imgcomp/image/ppm"
	"github.com/ausocean/imgcomp/internal/grid"
)

// Logger is the subset of github.com/ausocean/utils/logging.Logger that
// the pipeline uses to report image dimensions and codeword counts.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// nopLogger discards everything; used when callers pass a nil Logger.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}

func orNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}

// Compress reads a PPM pixmap from src and writes the compressed
// codeword stream to dst. Both dimensions are trimmed down to the
// nearest even number before encoding, per the 2x2 block structure the
// format requires.
func Compress(src io.Reader, dst io.Writer, log Logger) error {
	log = orNop(log)

	pix, err := ppm.Decode(src)
	if err != nil {
		return errors.Wrap(err, "imgcomp: decoding source pixmap")
	}

	width := pix.Width &^ 1
	height := pix.Height &^ 1
	log.Debug("trimmed dimensions", "from_w", pix.Width, "from_h", pix.Height, "to_w", width, "to_h", height)

	cv := grid.New[colorspace.CV](width, height)
	cv.Apply(func(x, y int, v *colorspace.CV) {
		r, g, b := pix.At(x, y)
		*v = colorspace.RGBToCV(r, g, b)
	})

	blocksWide, blocksHigh := width/2, height/2
	codewords := make([]uint32, 0, blocksWide*blocksHigh)

	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			x0, y0 := 2*bx, 2*by
			tl := cv.At(x0, y0)
			tr := cv.At(x0+1, y0)
			bl := cv.At(x0, y0+1)
			br := cv.At(x0+1, y0+1)

			pbAvg := (tl.Pb + tr.Pb + bl.Pb + br.Pb) / 4
			prAvg := (tl.Pr + tr.Pr + bl.Pr + br.Pr) / 4
			pbIndex := chroma.IndexOfChroma(pbAvg)
			prIndex := chroma.IndexOfChroma(prAvg)

			blk := dct.Forward(tl.Y, tr.Y, bl.Y, br.Y)

			word, err := codeword.Pack(codeword.Block{Block: blk, PbIndex: pbIndex, PrIndex: prIndex})
			if err != nil {
				return errors.Wrapf(err, "imgcomp: packing block at (%d,%d)", bx, by)
			}
			codewords = append(codewords, word)
		}
	}
	log.Info("packed codewords", "count", len(codewords))

	bw := bufio.NewWriter(dst)
	if err := writeHeader(bw, width, height); err != nil {
		return err
	}
	if err := writeCodewords(bw, codewords); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "imgcomp: flushing compressed output")
	}
	return nil
}

// Decompress reads a compressed codeword stream from src and writes
// the reconstructed PPM pixmap to dst.
func Decompress(src io.Reader, dst io.Writer, log Logger) error {
	log = orNop(log)

	br := bufio.NewReader(src)
	width, height, err := readHeader(br)
	if err != nil {
		return err
	}
	blocksWide, blocksHigh := width/2, height/2
	log.Debug("header parsed", "w", width, "h", height)

	codewords, err := readCodewords(br, blocksWide*blocksHigh)
	if err != nil {
		return err
	}
	log.Info("read codewords", "count", len(codewords))

	pix := ppm.New(width, height)

	i := 0
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			blk := codeword.Unpack(codewords[i])
			i++

			pb := chroma.ChromaOfIndex(blk.PbIndex)
			pr := chroma.ChromaOfIndex(blk.PrIndex)

			y1, y2, y3, y4 := dct.Inverse(blk.Block)

			x0, y0 := 2*bx, 2*by
			setPixel(pix, x0, y0, y1, pb, pr)
			setPixel(pix, x0+1, y0, y2, pb, pr)
			setPixel(pix, x0, y0+1, y3, pb, pr)
			setPixel(pix, x0+1, y0+1, y4, pb, pr)
		}
	}

	if err := ppm.Encode(dst, pix); err != nil {
		return errors.Wrap(err, "imgcomp: encoding reconstructed pixmap")
	}
	return nil
}

func setPixel(pix *ppm.Pixmap, x, y int, yVal, pb, pr float64) {
	r, g, b := colorspace.CVToRGB(colorspace.CV{Y: yVal, Pb: pb, Pr: pr})
	pix.Set(x, y, r, g, b)
}
