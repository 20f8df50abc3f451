// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzari implements the LZARI compressed data format: LZSS-style
// sliding-window dictionary matching driven by an adaptive arithmetic coder
// over two probability models, one for literals and match lengths and one
// for match positions.
//
// The format has no external specification; this implementation follows the
// classic Okumura LZARI scheme. All window, match, and precision constants
// are part of the wire format: changing any of them breaks compatibility
// with streams produced by this package.
package lzari

// Format constants. These are load-bearing: every constant here is encoded
// implicitly in the wire format produced by Encode, and Decode assumes the
// exact same values.
const (
	windowSize  = 4096 // N: ring-buffer (sliding window) size
	maxMatchLen = 60   // F: maximum match length
	minMatchLen = 2    // THR: matches at or below this length are literals
	nilIndex    = windowSize

	precisionBits = 15 // M: arithmetic-coder precision bits
	q1            = 1 << precisionBits
	q2            = 2 << precisionBits
	q3            = 3 << precisionBits
	q4            = 4 << precisionBits
	maxCum        = q1 - 1

	// numChars is the size of the symbol alphabet: byte literals 0..255 plus
	// match-length codes 256..(256-minMatchLen+maxMatchLen-1).
	numChars = 256 - minMatchLen + maxMatchLen

	lengthPrefixSize = 4 // bytes of little-endian original-length header
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzari: " + string(e) }

var (
	// ErrCorrupt indicates a declared length inconsistent with the size of
	// the compressed body it accompanies. Beyond this header-level check,
	// per the format's design, a malformed body produces unspecified (but
	// length-bounded) output rather than a reported error.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrShortHeader indicates the input is shorter than the 4-byte
	// original-length prefix every encoded stream begins with.
	ErrShortHeader error = Error("input shorter than length header")
)

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
