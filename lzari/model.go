// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzari

// symbolModel is the adaptive cumulative-frequency table over the 314-symbol
// alphabet (byte literals 0..255 plus match-length codes 256..numChars-1).
// Symbols are move-to-front-by-frequency: the character just coded is
// promoted to the lowest rank sharing its current frequency, and that
// frequency is then incremented, so sym_freq stays non-increasing in rank
// without a full resort.
type symbolModel struct {
	charToSym [numChars]int     // logical character -> current rank (1..numChars)
	symToChar [numChars + 1]int // current rank -> logical character
	symFreq   [numChars + 1]int // frequency per rank
	symCum    [numChars + 1]int // cumulative frequency, symCum[numChars] == 0
}

func (m *symbolModel) init() {
	for sym := numChars; sym >= 1; sym-- {
		ch := sym - 1
		m.charToSym[ch] = sym
		m.symToChar[sym] = ch
		m.symFreq[sym] = 1
		m.symCum[sym-1] = m.symCum[sym] + m.symFreq[sym]
	}
}

// update bumps the frequency of sym (a rank, 1..numChars), rescaling the
// whole table first if the total cumulative frequency has grown too large
// for the coder's fixed precision.
func (m *symbolModel) update(sym int) {
	if m.symCum[0] >= maxCum {
		c := 0
		for i := numChars; i >= 1; i-- {
			m.symCum[i] = c
			m.symFreq[i] = (m.symFreq[i] + 1) >> 1
			c += m.symFreq[i]
		}
		m.symCum[0] = c
	}

	i := sym
	for m.symFreq[i] == m.symFreq[i-1] {
		i--
	}
	if i < sym {
		chI, chSym := m.symToChar[i], m.symToChar[sym]
		m.symToChar[i], m.symToChar[sym] = chSym, chI
		m.charToSym[chI], m.charToSym[chSym] = sym, i
	}

	m.symFreq[i]++
	for j := i - 1; j >= 0; j-- {
		m.symCum[j]++
	}
}

// binarySearch locates the smallest rank whose cumulative frequency is at
// most x, the inverse of the encoder's narrowing step.
func (m *symbolModel) binarySearch(x int) int {
	i, j := 1, numChars
	for i < j {
		k := (i + j) / 2
		if m.symCum[k] > x {
			i = k + 1
		} else {
			j = k
		}
	}
	return i
}

// positionModel is the static cumulative-frequency table over the 4096
// possible match offsets. It is computed once at start-up and never updated;
// smaller offsets (more recent matches) are weighted more heavily.
type positionModel struct {
	cum [windowSize + 1]int
}

func (m *positionModel) init() {
	for i := windowSize; i >= 1; i-- {
		m.cum[i-1] = m.cum[i] + 10000/(i+200)
	}
}

// binarySearch locates the zero-based offset corresponding to cumulative
// value x. Unlike the symbol model's search, the result is shifted down by
// one rank because positionModel indexes offsets 0..windowSize-1 against a
// table sized windowSize+1 with cum[windowSize] == 0.
func (m *positionModel) binarySearch(x int) int {
	i, j := 1, windowSize
	for i < j {
		k := (i + j) / 2
		if m.cum[k] > x {
			i = k + 1
		} else {
			j = k
		}
	}
	return i - 1
}
