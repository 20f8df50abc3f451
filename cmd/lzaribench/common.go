// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzaribench compares the performance and compression ratio of the
// lzari package against reference implementations of comparable encoders.
// LZARI has no compression levels and a single fixed window size, so unlike
// the corpus's own multi-format, multi-level benchmark harness this tool
// varies only the codec and the input file.
package main

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/dsnet/golib/strconv"
	"github.com/dsnet/lzari/internal/testutil"
	"github.com/dsnet/lzari/lzari"
)

// Encoder compresses src and returns the compressed bytes.
type Encoder func(src []byte) []byte

// Decoder decompresses src and returns the original bytes.
type Decoder func(src []byte) []byte

var (
	encoders = map[string]Encoder{}
	decoders = map[string]Decoder{}

	// order fixes the order in which each file's codec rows appear in
	// reports: the order the codecs were first registered.
	order []string
)

func registerCodec(name string, enc Encoder, dec Decoder) {
	if _, ok := encoders[name]; !ok {
		order = append(order, name)
	}
	encoders[name] = enc
	decoders[name] = dec
}

func init() {
	registerCodec("lzari",
		func(src []byte) []byte { return lzari.Encode(src, nil) },
		func(src []byte) []byte {
			out, err := lzari.Decode(src)
			if err != nil {
				panic(err)
			}
			return out
		})
}

type result struct {
	name     string
	ratio    float64
	encMBs   float64
	decMBs   float64
	bitsByte float64 // bits written per input byte; 0 unless the codec is lzari
}

// runSuite benchmarks every registered codec against each file, reporting
// compression ratio and encode/decode throughput.
func runSuite(files []string, n int) []result {
	var results []result
	for _, f := range files {
		input, err := testutil.LoadFile(f, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lzaribench: skipping %s: %v\n", f, err)
			continue
		}
		for _, name := range order {
			r := benchmarkOne(name, input)
			r.name = fmt.Sprintf("%s:%s %s", path.Base(f), formatSize(len(input)), name)
			results = append(results, r)
		}
	}
	return results
}

func benchmarkOne(name string, input []byte) result {
	enc, dec := encoders[name], decoders[name]

	var compressed []byte
	encBench := testing.Benchmark(func(b *testing.B) {
		runtime.GC()
		for i := 0; i < b.N; i++ {
			compressed = enc(input)
		}
		b.SetBytes(int64(len(input)))
	})

	decBench := testing.Benchmark(func(b *testing.B) {
		runtime.GC()
		for i := 0; i < b.N; i++ {
			_ = dec(compressed)
		}
		b.SetBytes(int64(len(input)))
	})

	ratio := float64(len(input)) / float64(len(compressed))
	r := result{
		ratio:  ratio,
		encMBs: rate(encBench),
		decMBs: rate(decBench),
	}
	if name == "lzari" && len(input) > 0 {
		var stats lzari.Stats
		lzari.Encode(input, &stats)
		r.bitsByte = float64(stats.BitsWritten) / float64(len(input))
	}
	return r
}

func rate(r testing.BenchmarkResult) float64 {
	if r.N == 0 || r.T == 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func formatSize(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
}
