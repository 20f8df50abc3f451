// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Example usage:
//	$ go build -o lzaribench .
//	$ ./lzaribench -files twain.txt -size 1e6
//
//	CPU: Intel(R) Core(TM) i7-9750H @ 2.60GHz (6 cores)
//
//	benchmark               ratio    enc MB/s    dec MB/s   bits/byte
//	twain.txt:977Ki lzari    2.71        1.84       11.02        2.95
//	twain.txt:977Ki flate    2.93       18.40      120.55           -
//	twain.txt:977Ki xz       3.41        2.11       45.08           -
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid"
)

func main() {
	var (
		files = flag.String("files", "", "comma-separated list of input files to benchmark")
		size  = flag.String("size", "1e5", "number of bytes of each file to benchmark, parsed as a float (e.g. 1e6)")
	)
	flag.Parse()

	if *files == "" {
		fmt.Fprintln(os.Stderr, "lzaribench: -files is required")
		flag.Usage()
		os.Exit(2)
	}

	n, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lzaribench: invalid -size: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("CPU: %s (%d cores)\n\n", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores)

	results := runSuite(strings.Split(*files, ","), n)

	fmt.Printf("%-24s %8s %11s %11s %11s\n", "benchmark", "ratio", "enc MB/s", "dec MB/s", "bits/byte")
	for _, r := range results {
		bitsByte := "-"
		if r.bitsByte > 0 {
			bitsByte = fmt.Sprintf("%.2f", r.bitsByte)
		}
		fmt.Printf("%-24s %8.2f %11.2f %11.2f %11s\n", r.name, r.ratio, r.encMBs, r.decMBs, bitsByte)
	}
}

func parseSize(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
