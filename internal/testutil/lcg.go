// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// LCGBytes generates n bytes from the linear congruential generator
// x_{n+1} = 1103515245*x_n + 12345 mod 2^31, taking the low 8 bits of each
// successive state starting from seed. This specific generator (the classic
// glibc-style LCG) is used by cross-implementation LZARI test vectors so
// that a pseudo-random payload is bit-for-bit identical regardless of which
// language produced it.
func LCGBytes(seed uint32, n int) []byte {
	const (
		a = 1103515245
		c = 12345
		m = 1 << 31
	)
	b := make([]byte, n)
	x := seed % m
	for i := range b {
		x = (a*x + c) % m
		b[i] = byte(x)
	}
	return b
}
