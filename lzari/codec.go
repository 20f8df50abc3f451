// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzari

import (
	"encoding/binary"

	"github.com/dsnet/golib/errs"
)

// Params describes the fixed coding parameters used by this package. Every
// field is part of the wire format (spec.md's constants), so there is
// exactly one valid value, reported by DefaultParams. Params exists, rather
// than bare package constants, so the CLI and benchmark tool have a single
// place to describe the active configuration, the way bzip2.NewWriterLevel
// accepts an explicit (if here unused) level parameter instead of a global.
type Params struct {
	WindowSize     int
	MaxMatchLen    int
	MinMatchLen    int
	PrecisionBits  int
	SymbolAlphabet int
}

// DefaultParams reports the single coding configuration this package
// implements.
func DefaultParams() Params {
	return Params{
		WindowSize:     windowSize,
		MaxMatchLen:    maxMatchLen,
		MinMatchLen:    minMatchLen,
		PrecisionBits:  precisionBits,
		SymbolAlphabet: numChars,
	}
}

// codec bundles the three components of the driver: the match finder, the
// two adaptive/static models, and the arithmetic coder. One codec is created
// fresh per Encode or Decode call and discarded afterward; no state persists
// across calls.
type codec struct {
	mf  matchFinder
	sym symbolModel
	pos positionModel
	ar  arithCoder
}

// Stats reports size statistics about a single Encode call, for collaborators
// that want to report stream overhead (the CLI, the benchmark tool) without
// re-deriving it from the output byte length.
type Stats struct {
	BitsWritten int // bits emitted by the arithmetic coder, before the final byte-alignment flush
}

// Encode compresses input, returning a stream decodable by Decode. Encode
// never fails: every byte sequence, including the empty one, has a valid
// encoding. If stats is non-nil, it is populated with statistics about the
// encoding.
func Encode(input []byte, stats *Stats) []byte {
	var c codec
	out := make([]byte, lengthPrefixSize)
	binary.LittleEndian.PutUint32(out, uint32(len(input)))

	c.sym.init()
	c.pos.init()
	c.mf.initTree()
	c.ar.initEncode()

	r := windowSize - maxMatchLen
	for i := 0; i < r; i++ {
		c.mf.textBuf[i] = ' '
	}

	length := minInt(maxMatchLen, len(input))
	copy(c.mf.textBuf[r:r+length], input[:length])
	inCursor := length

	for i := 1; i <= maxMatchLen; i++ {
		c.mf.insertNode(r - i)
	}
	matchPosition, matchLength := c.mf.insertNode(r)

	s := 0
	for length > 0 {
		if matchLength > length {
			matchLength = length
		}

		if matchLength <= minMatchLen {
			matchLength = 1
			c.ar.encodeChar(&c.sym, int(c.mf.textBuf[r]))
		} else {
			c.ar.encodeChar(&c.sym, 255-minMatchLen+matchLength)
			c.ar.encodePosition(&c.pos, matchPosition-1)
		}

		lastMatchLength := matchLength
		i := 0
		for i < lastMatchLength && inCursor < len(input) {
			c.mf.deleteNode(s)
			b := input[inCursor]
			c.mf.textBuf[s] = b
			if s < maxMatchLen-1 {
				c.mf.textBuf[s+windowSize] = b
			}
			s = (s + 1) & (windowSize - 1)
			r = (r + 1) & (windowSize - 1)
			matchPosition, matchLength = c.mf.insertNode(r)
			i++
			inCursor++
		}
		for i < lastMatchLength {
			c.mf.deleteNode(s)
			s = (s + 1) & (windowSize - 1)
			r = (r + 1) & (windowSize - 1)
			length--
			if length > 0 {
				matchPosition, matchLength = c.mf.insertNode(r)
			}
			i++
		}
	}
	c.ar.end()

	if stats != nil {
		stats.BitsWritten = c.ar.bw.bitsWritten()
	}
	return append(out, c.ar.bw.buf...)
}

// Decode reconstructs the original input from a stream produced by Encode.
// It returns ErrShortHeader if input is shorter than the 4-byte length
// prefix, and ErrCorrupt if the declared length is inconsistent with the
// size of the compressed body. Beyond these two header checks, Decode
// assumes the remainder is well-formed LZARI output; a malformed body does
// not produce an error, only unspecified output bounded by the declared
// length.
func Decode(input []byte) (output []byte, err error) {
	defer errs.Recover(&err)
	errs.Assert(len(input) >= lengthPrefixSize, ErrShortHeader)

	textSize := binary.LittleEndian.Uint32(input)
	bodyLen := len(input) - lengthPrefixSize

	// A single compressed byte can never expand into more than
	// maxBytesPerBody bytes of output: the symbol model's total stays below
	// q1 and every symbol keeps a frequency of at least 1, so even the most
	// probable symbol costs a fixed minimum fraction of a bit, and one symbol
	// yields at most maxMatchLen bytes. A declared size wildly out of
	// proportion to the body it accompanies did not come from this encoder.
	const maxBytesPerBody = 1 << 16
	errs.Assert(uint64(textSize) <= uint64(bodyLen+1)*maxBytesPerBody, ErrCorrupt)

	var c codec

	c.ar.initDecode(input[lengthPrefixSize:])
	c.sym.init()
	c.pos.init()

	r := windowSize - maxMatchLen
	for i := 0; i < r; i++ {
		c.mf.textBuf[i] = ' '
	}

	out := make([]byte, 0, textSize)
	var count uint32
	for count < textSize {
		ch := c.ar.decodeChar(&c.sym)
		if ch < 256 {
			out = append(out, byte(ch))
			c.mf.textBuf[r] = byte(ch)
			r = (r + 1) & (windowSize - 1)
			count++
		} else {
			offset := c.ar.decodePosition(&c.pos)
			i := (r - (offset + 1)) & (windowSize - 1)
			j := ch - 255 + minMatchLen
			for k := 0; k < j; k++ {
				b := c.mf.textBuf[(i+k)&(windowSize-1)]
				out = append(out, b)
				c.mf.textBuf[r] = b
				r = (r + 1) & (windowSize - 1)
				count++
			}
		}
	}
	return out, nil
}
