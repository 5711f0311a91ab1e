/*
NAME
  bitpack.go

DESCRIPTION
  bitpack.go implements a bit-field access primitive over a 64-bit word:
  width/lsb addressed get and put, for both unsigned and signed fields.

AUTHOR
  Generated for the ausocean/imgcomp codec.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitpack provides pure, stateless access to contiguous bit
// fields (identified by a width and a least-significant-bit position)
// within a 64-bit word. It underlies the 32-bit codeword layout used by
// package codeword.
package bitpack

import "errors"

// wordWidth is the number of bits in the word that every field lives in.
const wordWidth = 64

// ErrOverflow is returned by PutUnsigned/PutSigned when value does not
// fit in the requested width. Unlike a bad width/lsb (a programmer
// error that panics, since the caller controls the layout constants),
// this is a data-dependent failure the caller is expected to have ruled
// out in advance via FitsUnsigned/FitsSigned.
var ErrOverflow = errors.New("bitpack: value does not fit in field width")

// checkShape panics if width or width+lsb exceed the word width. These
// are programmer errors: the field layout is a compile-time constant,
// never derived from untrusted input.
func checkShape(width, lsb uint) {
	if width > wordWidth {
		panic("bitpack: width exceeds word width")
	}
	if width+lsb > wordWidth {
		panic("bitpack: width+lsb exceeds word width")
	}
}

// shiftLeft shifts n left by shift bits, treating a shift of the full
// word width as yielding zero rather than relying on Go's defined (but
// surprising here) shift semantics for shift counts >= bit width of the
// operand's underlying representation.
func shiftLeft(n uint64, shift uint) uint64 {
	if shift >= wordWidth {
		return 0
	}
	return n << shift
}

// shiftRightUnsigned is the unsigned counterpart of shiftLeft.
func shiftRightUnsigned(n uint64, shift uint) uint64 {
	if shift >= wordWidth {
		return 0
	}
	return n >> shift
}

// FitsUnsigned reports whether n can be represented in width bits as an
// unsigned integer. A width of 0 fits only the value 0; a width of 64
// or more always fits.
func FitsUnsigned(n uint64, width uint) bool {
	if width >= wordWidth {
		return true
	}
	if width == 0 {
		return n == 0
	}
	capacity := shiftLeft(1, width) - 1
	return n <= capacity
}

// FitsSigned reports whether n can be represented in width bits as a
// two's-complement signed integer. A width of 0 fits only the value 0;
// a width of 64 or more always fits.
func FitsSigned(n int64, width uint) bool {
	if width >= wordWidth {
		return true
	}
	if width == 0 {
		return n == 0
	}
	maxPositive := int64(shiftLeft(1, width-1)) - 1
	maxNegative := -int64(shiftLeft(1, width-1))
	return n >= maxNegative && n <= maxPositive
}

// mask returns a width-bit mask of 1s positioned at lsb.
func mask(width, lsb uint) uint64 {
	if width == 0 {
		return 0
	}
	return shiftLeft(shiftRightUnsigned(^uint64(0), wordWidth-width), lsb)
}

// GetUnsigned returns the width bits of word starting at bit lsb,
// zero-extended. Width 0 returns 0.
func GetUnsigned(word uint64, width, lsb uint) uint64 {
	checkShape(width, lsb)
	if width == 0 {
		return 0
	}
	return shiftRightUnsigned(word&mask(width, lsb), lsb)
}

// GetSigned returns the width bits of word starting at bit lsb,
// sign-extended from the field's high bit. Width 0 returns 0.
func GetSigned(word uint64, width, lsb uint) int64 {
	checkShape(width, lsb)
	if width == 0 {
		return 0
	}
	u := GetUnsigned(word, width, lsb)
	// Shift the field into the word's high bits and back with an
	// arithmetic right shift, so the sign bit propagates.
	return int64(u) << (wordWidth - width) >> (wordWidth - width)
}

// update writes value into the width-bit field at lsb, leaving every
// other bit of word untouched.
func update(word uint64, width, lsb uint, value uint64) uint64 {
	m := mask(width, lsb)
	cleared := word &^ m
	return cleared | shiftLeft(value, lsb)
}

// PutUnsigned returns word with its width-bit field at lsb replaced by
// value. It returns ErrOverflow if value does not fit in width bits;
// word is returned unchanged in that case.
func PutUnsigned(word uint64, width, lsb uint, value uint64) (uint64, error) {
	checkShape(width, lsb)
	if !FitsUnsigned(value, width) {
		return word, ErrOverflow
	}
	return update(word, width, lsb, value), nil
}

// PutSigned returns word with its width-bit field at lsb replaced by
// the two's-complement truncation of value. It returns ErrOverflow if
// value does not fit in width bits; word is returned unchanged in that
// case.
func PutSigned(word uint64, width, lsb uint, value int64) (uint64, error) {
	checkShape(width, lsb)
	if !FitsSigned(value, width) {
		return word, ErrOverflow
	}
	// Truncate value to width bits by shifting the unwanted high
	// bits out of the top of the word and back down as unsigned,
	// which clears everything above bit width-1 without disturbing
	// the low width bits of a negative value's two's-complement form.
	trimmed := shiftRightUnsigned(shiftLeft(uint64(value), wordWidth-width), wordWidth-width)
	return update(word, width, lsb, trimmed), nil
}

// MustPutUnsigned is PutUnsigned for callers that have already verified
// via FitsUnsigned that value fits; it panics instead of returning an
// error, since failure at this point indicates a logic bug, not bad
// input.
func MustPutUnsigned(word uint64, width, lsb uint, value uint64) uint64 {
	w, err := PutUnsigned(word, width, lsb, value)
	if err != nil {
		panic(err)
	}
	return w
}

// MustPutSigned is PutSigned for callers that have already verified via
// FitsSigned that value fits.
func MustPutSigned(word uint64, width, lsb uint, value int64) uint64 {
	w, err := PutSigned(word, width, lsb, value)
	if err != nil {
		panic(err)
	}
	return w
}
