// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzari

// arithCoder holds the shared range-coder state used by both the encoder and
// decoder. low and high bound the current coding interval in [0, q4]; value
// is only meaningful while decoding; shifts counts bits deferred across an
// underflow (the interval straddling the q1..q3 midsection).
//
// Intermediate products such as range*cum can reach roughly q4*(q1-1), about
// 2^47: every range computation below is done in int (64-bit on every
// platform this package targets) rather than a narrower type.
type arithCoder struct {
	low, high int
	value     int
	shifts    int

	bw bitWriter
	br bitReader
}

func (c *arithCoder) initEncode() {
	c.low, c.high, c.shifts = 0, q4, 0
	c.bw.init()
}

func (c *arithCoder) initDecode(buf []byte) {
	c.low, c.high, c.shifts = 0, q4, 0
	c.br.init(buf)
	c.value = 0
	for i := 0; i < precisionBits+2; i++ {
		c.value = c.value<<1 + btoi(c.br.getBit())
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// output emits bit, then emits its complement once per pending underflow
// shift, resetting the shift counter.
func (c *arithCoder) output(bit bool) {
	c.bw.putBit(bit)
	for c.shifts > 0 {
		c.bw.putBit(!bit)
		c.shifts--
	}
}

// normalizeEncode renormalizes the coding interval after narrowing it for a
// symbol, emitting bits as the interval's magnitude is resolved.
func (c *arithCoder) normalizeEncode() {
	for {
		switch {
		case c.high <= q2:
			c.output(false)
		case c.low >= q2:
			c.output(true)
			c.low -= q2
			c.high -= q2
		case c.low >= q1 && c.high <= q3:
			c.shifts++
			c.low -= q1
			c.high -= q1
		default:
			return
		}
		c.low += c.low
		c.high += c.high
	}
}

// normalizeDecode mirrors normalizeEncode, shifting new bits into value
// instead of emitting them.
func (c *arithCoder) normalizeDecode() {
	for {
		switch {
		case c.low >= q2:
			c.value -= q2
			c.low -= q2
			c.high -= q2
		case c.low >= q1 && c.high <= q3:
			c.value -= q1
			c.low -= q1
			c.high -= q1
		case c.high > q2:
			return
		default:
		}
		c.low += c.low
		c.high += c.high
		c.value = c.value<<1 + btoi(c.br.getBit())
	}
}

// encodeChar narrows the interval for the literal/length symbol ch (a
// logical character 0..numChars-1) and updates the symbol model.
func (c *arithCoder) encodeChar(m *symbolModel, ch int) {
	sym := m.charToSym[ch]
	rng := c.high - c.low
	c.high = c.low + rng*m.symCum[sym-1]/m.symCum[0]
	c.low += rng * m.symCum[sym] / m.symCum[0]
	c.normalizeEncode()
	m.update(sym)
}

// encodePosition narrows the interval for a zero-based match offset. The
// position model is static and is never updated.
func (c *arithCoder) encodePosition(m *positionModel, pos int) {
	rng := c.high - c.low
	c.high = c.low + rng*m.cum[pos]/m.cum[0]
	c.low += rng * m.cum[pos+1] / m.cum[0]
	c.normalizeEncode()
}

// end flushes the final disambiguating bit and pads out the last byte. It
// must be called exactly once, after the last symbol has been encoded.
func (c *arithCoder) end() {
	c.shifts++
	c.output(c.low >= q1)
	c.bw.flush()
}

// decodeChar recovers the next logical character and updates the symbol
// model identically to how encodeChar did at encode time.
func (c *arithCoder) decodeChar(m *symbolModel) int {
	rng := c.high - c.low
	target := ((c.value-c.low+1)*m.symCum[0] - 1) / rng
	sym := m.binarySearch(target)
	c.high = c.low + rng*m.symCum[sym-1]/m.symCum[0]
	c.low += rng * m.symCum[sym] / m.symCum[0]
	c.normalizeDecode()
	ch := m.symToChar[sym]
	m.update(sym)
	return ch
}

// decodePosition recovers the next zero-based match offset.
func (c *arithCoder) decodePosition(m *positionModel) int {
	rng := c.high - c.low
	target := ((c.value-c.low+1)*m.cum[0] - 1) / rng
	pos := m.binarySearch(target)
	c.high = c.low + rng*m.cum[pos]/m.cum[0]
	c.low += rng * m.cum[pos+1] / m.cum[0]
	c.normalizeDecode()
	return pos
}
