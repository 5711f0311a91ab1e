/*
NAME
  framing.go

DESCRIPTION
  framing.go writes and reads the compressed stream's textual header and
  its big-endian codeword stream, using a hand-rolled binary header
  writer and a stream-oriented reader/writer pair in the style of this
  codec's other framing code.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package imgcomp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// headerPrefix is the literal, case-sensitive prefix every compressed
// stream begins with.
const headerPrefix = "COMP40 Compressed image format 2\n"

// codewordSize is the number of bytes a serialized codeword occupies.
const codewordSize = 4

// writeHeader emits the literal header prefix followed by the decimal
// dimensions and a trailing newline.
func writeHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "%s%d %d\n", headerPrefix, width, height)
	if err != nil {
		return errors.Wrap(err, "imgcomp: writing header")
	}
	return nil
}

// writeCodewords emits each codeword as 4 bytes, most-significant-byte
// first, in the order given.
func writeCodewords(w io.Writer, codewords []uint32) error {
	var buf [codewordSize]byte
	for _, cw := range codewords {
		binary.BigEndian.PutUint32(buf[:], cw)
		if _, err := w.Write(buf[:]); err != nil {
			return errors.Wrap(err, "imgcomp: writing codeword")
		}
	}
	return nil
}

// readHeader scans the fixed header prefix and the two decimal
// dimensions that follow it. It returns ErrBadHeader, or an error
// wrapping it, if the prefix doesn't match exactly or the dimensions
// can't be parsed.
func readHeader(r *bufio.Reader) (width, height int, err error) {
	prefixBuf := make([]byte, len(headerPrefix))
	if _, err := io.ReadFull(r, prefixBuf); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if string(prefixBuf) != headerPrefix {
		return 0, 0, ErrBadHeader
	}

	if _, err := fmt.Fscanf(r, "%d %d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	nl, err := r.ReadByte()
	if err != nil || nl != '\n' {
		return 0, 0, ErrBadHeader
	}
	if width < 0 || height < 0 || width%2 != 0 || height%2 != 0 {
		return 0, 0, ErrOddDimension
	}
	return width, height, nil
}

// readCodewords reads exactly n codewords of 4 bytes each,
// most-significant-byte first. It returns ErrShortStream if the
// stream ends early.
func readCodewords(r io.Reader, n int) ([]uint32, error) {
	codewords := make([]uint32, n)
	var buf [codewordSize]byte
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrShortStream
			}
			return nil, errors.Wrap(err, "imgcomp: reading codeword")
		}
		codewords[i] = binary.BigEndian.Uint32(buf[:])
	}
	return codewords, nil
}
