// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzari is a thin wrapper around the lzari package: it reads an
// input file, encodes or decodes it, and writes the result to an output
// file. It owns no codec state; all compression logic lives in the lzari
// package.
//
// Example usage:
//	$ lzari -mode e -in report.txt -out report.lzari -v
//	$ lzari -mode d -in report.lzari -out report.txt -crc32
package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"io/ioutil"
	"log"
	"os"

	"github.com/dsnet/lzari/lzari"
)

func main() {
	var (
		mode     = flag.String("mode", "", "compression mode: \"e\" or \"encode\" to compress, \"d\" or \"decode\" to decompress")
		inPath   = flag.String("in", "", "input file path (\"-\" for stdin)")
		outPath  = flag.String("out", "", "output file path (\"-\" for stdout)")
		checksum = flag.Bool("crc32", false, "print a diagnostic CRC-32 of the decoded output to stderr; never part of the wire format")
		verbose  = flag.Bool("v", false, "print encoded bit-stream statistics to stderr")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lzari: ")

	input, err := readInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}

	var output []byte
	switch *mode {
	case "e", "encode":
		var stats lzari.Stats
		output = lzari.Encode(input, &stats)
		if *verbose && len(input) > 0 {
			fmt.Fprintf(os.Stderr, "lzari: %d bits written (%.2f bits/byte)\n",
				stats.BitsWritten, float64(stats.BitsWritten)/float64(len(input)))
		}
	case "d", "decode":
		output, err = lzari.Decode(input)
		if err != nil {
			log.Fatal(err)
		}
		if *checksum {
			fmt.Fprintf(os.Stderr, "lzari: decoded crc32 = %08x\n", crc32.ChecksumIEEE(output))
		}
	default:
		flag.Usage()
		log.Fatalf("invalid mode: %q", *mode)
	}

	if err := writeOutput(*outPath, output); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func writeOutput(path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return ioutil.WriteFile(path, b, 0664)
}
