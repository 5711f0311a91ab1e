/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the sentinel errors imgcomp returns for malformed
  compressed streams, following the package's convention of plain
  errors.New sentinels for expected, recognizable failure conditions.

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

import "errors"

var (
	// ErrBadHeader is returned when a compressed stream's header does
	// not match the literal prefix or its dimensions can't be parsed.
	ErrBadHeader = errors.New("imgcomp: malformed compressed image header")

	// ErrShortStream is returned when a compressed stream ends before
	// the number of codewords implied by its header have been read.
	ErrShortStream = errors.New("imgcomp: compressed stream ended before expected codeword count")

	// ErrOddDimension is returned by Decompress if a header's
	// dimensions are not both even, which cannot happen for a stream
	// produced by Compress but guards against hand-edited input.
	ErrOddDimension = errors.New("imgcomp: header dimensions must both be even")
)
