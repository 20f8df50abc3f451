// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzari

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/dsnet/lzari/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	var vectors = []struct {
		name  string
		input []byte
	}{
		{"Empty", nil},
		{"SingleByte", []byte("A")},
		{"LongRun", bytes.Repeat([]byte("A"), 10000)},
		{"WindowRepeat", bytes.Repeat([]byte("A"), windowSize)},
		{"ByteSequence", func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
		{"ASCIISentence", []byte("The quick brown fox jumps over the lazy dog.\n")},
		{"LCG64KiB", testutil.LCGBytes(1, 65536)},
		{"Random64KiB", testutil.NewRand(0).Bytes(65536)},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			enc := Encode(v.input, nil)
			dec, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode: unexpected error: %v", err)
			}
			if !bytes.Equal(dec, v.input) {
				t.Fatalf("round-trip mismatch: got %d bytes, want %d bytes", len(dec), len(v.input))
			}
		})
	}
}

func TestLengthPrefix(t *testing.T) {
	var vectors = [][]byte{
		nil,
		[]byte("A"),
		bytes.Repeat([]byte("x"), 12345),
	}
	for _, input := range vectors {
		enc := Encode(input, nil)
		if len(enc) < lengthPrefixSize {
			t.Fatalf("encoded stream shorter than length prefix: got %d bytes", len(enc))
		}
		got := binary.LittleEndian.Uint32(enc)
		if got != uint32(len(input)) {
			t.Errorf("length prefix mismatch: got %d, want %d", got, len(input))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	enc := Encode(nil, nil)
	if len(enc) == 0 {
		t.Fatal("Encode(nil) produced an empty stream")
	}
	if !bytes.Equal(enc[:lengthPrefixSize], []byte{0x00, 0x00, 0x00, 0x00}) {
		t.Errorf("Encode(nil) prefix mismatch: got % x", enc[:lengthPrefixSize])
	}
	if len(enc) < 5 || len(enc) > 8 {
		t.Errorf("Encode(nil) length out of expected range: got %d bytes", len(enc))
	}

	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if len(dec) != 0 {
		t.Errorf("Decode(Encode(nil)) non-empty: got %d bytes", len(dec))
	}
}

func TestSingleByte(t *testing.T) {
	enc := Encode([]byte("A"), nil)
	if !bytes.Equal(enc[:lengthPrefixSize], []byte{0x01, 0x00, 0x00, 0x00}) {
		t.Errorf("length prefix mismatch: got % x", enc[:lengthPrefixSize])
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if string(dec) != "A" {
		t.Errorf("got %q, want %q", dec, "A")
	}
}

func TestLongRunCompresses(t *testing.T) {
	input := bytes.Repeat([]byte("A"), 10000)
	enc := Encode(input, nil)
	if len(enc) >= len(input) {
		t.Errorf("long run did not compress: got %d bytes for %d byte input", len(enc), len(input))
	}
	if len(enc) > 100 {
		t.Errorf("long run compressed size too large: got %d bytes, want under 100", len(enc))
	}
}

func TestDecodeShortHeader(t *testing.T) {
	for n := 0; n < lengthPrefixSize; n++ {
		_, err := Decode(make([]byte, n))
		if err != ErrShortHeader {
			t.Errorf("input length %d: got error %v, want %v", n, err, ErrShortHeader)
		}
	}
}

func TestEncodeStats(t *testing.T) {
	input := bytes.Repeat([]byte("A"), 10000)
	var stats Stats
	enc := Encode(input, &stats)

	if stats.BitsWritten <= 0 {
		t.Fatalf("BitsWritten not populated: got %d", stats.BitsWritten)
	}
	// The flush pads out to a whole byte, so the tracked bit count must
	// never exceed the compressed body's bit length.
	bodyBits := (len(enc) - lengthPrefixSize) * 8
	if stats.BitsWritten > bodyBits {
		t.Errorf("BitsWritten exceeds compressed body size: got %d bits, body is %d bits", stats.BitsWritten, bodyBits)
	}
}

func TestDecodeCorruptLength(t *testing.T) {
	// Encode a small input, then overwrite the length header with a wildly
	// larger declared size than the tiny compressed body could ever hold.
	enc := Encode([]byte("hi"), nil)
	binary.LittleEndian.PutUint32(enc, 1<<31)

	_, err := Decode(enc)
	if err != ErrCorrupt {
		t.Fatalf("got error %v, want %v", err, ErrCorrupt)
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.WindowSize != windowSize || p.MaxMatchLen != maxMatchLen ||
		p.MinMatchLen != minMatchLen || p.PrecisionBits != precisionBits ||
		p.SymbolAlphabet != numChars {
		t.Errorf("DefaultParams mismatch: got %+v", p)
	}
}

func TestRoundTripRepeatedSubstrings(t *testing.T) {
	// Exercises both the literal and match coding paths together, with
	// matches that straddle the window boundary.
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("the quick brown fox jumps over the lazy dog, again and again, ")
	}
	input := []byte(sb.String())
	enc := Encode(input, nil)
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if !bytes.Equal(dec, input) {
		t.Fatal("round-trip mismatch on repeated substrings")
	}
}
