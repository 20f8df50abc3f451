// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzari

// matchFinder is a sliding-window dictionary indexed by a binary search tree
// keyed on the maxMatchLen-byte suffix starting at each window position.
//
// Position indices double as array indices throughout: lson/rson/dad are
// addressed by window position (or, for the 256 root slots, by
// windowSize+1+firstByte), with nilIndex == windowSize as the absence
// sentinel. There are no heap-allocated tree nodes; the index discipline is
// what lets window-position arithmetic (mod windowSize) and tree arithmetic
// share the same space.
type matchFinder struct {
	// textBuf is the ring buffer. Only [0, windowSize) wraps; the extra
	// maxMatchLen-1 tail bytes mirror textBuf[0:maxMatchLen-1] so that any
	// window position exposes a contiguous maxMatchLen-byte lookahead
	// without a wraparound branch in insertNode's key comparison.
	textBuf [windowSize + maxMatchLen - 1]byte

	lson [windowSize + 1]int
	rson [windowSize + 257]int
	dad  [windowSize + 1]int
}

func (f *matchFinder) initTree() {
	for i := windowSize + 1; i < windowSize+257; i++ {
		f.rson[i] = nilIndex
	}
	for i := 0; i < windowSize; i++ {
		f.dad[i] = nilIndex
	}
}

// insertNode inserts the window position r into the tree and returns the
// best match found along the descent path: the longest shared prefix with
// any position currently in the tree, ties broken by the nearest (smallest)
// offset. Because the tree holds every position currently in the window,
// this is also the best match anywhere in the window.
func (f *matchFinder) insertNode(r int) (matchPosition, matchLength int) {
	key := f.textBuf[r : r+maxMatchLen]
	p := windowSize + 1 + int(key[0])
	f.rson[r] = nilIndex
	f.lson[r] = nilIndex

	cmp := 1 // > 0 descends right on the first comparison, per the root slot
	for {
		if cmp >= 0 {
			if f.rson[p] != nilIndex {
				p = f.rson[p]
			} else {
				f.rson[p] = r
				f.dad[r] = p
				return matchPosition, matchLength
			}
		} else {
			if f.lson[p] != nilIndex {
				p = f.lson[p]
			} else {
				f.lson[p] = r
				f.dad[r] = p
				return matchPosition, matchLength
			}
		}

		idx := 1
		for idx < maxMatchLen {
			cmp = int(key[idx]) - int(f.textBuf[p+idx])
			if cmp != 0 {
				break
			}
			idx++
		}

		if idx > minMatchLen {
			switch {
			case idx > matchLength:
				matchPosition = (r - p) & (windowSize - 1)
				matchLength = idx
				if idx >= maxMatchLen {
					goto replace
				}
			case idx == matchLength:
				if off := (r - p) & (windowSize - 1); off < matchPosition {
					matchPosition = off
				}
			}
		}
	}

replace:
	// The key at p is now fully subsumed by r (an exact maxMatchLen-byte
	// match): splice r into the tree in p's place and retire p.
	f.dad[r] = f.dad[p]
	f.lson[r] = f.lson[p]
	f.rson[r] = f.rson[p]
	f.dad[f.lson[p]] = r
	f.dad[f.rson[p]] = r
	if f.rson[f.dad[p]] == p {
		f.rson[f.dad[p]] = r
	} else {
		f.lson[f.dad[p]] = r
	}
	f.dad[p] = nilIndex
	return matchPosition, matchLength
}

// deleteNode removes window position p from the tree. It is a no-op if p is
// not currently present (dad[p] == nilIndex), which happens for window
// positions that were never inserted (Encode deletes them while the window
// fills for the first time) and for positions retired by insertNode's
// replacement step.
func (f *matchFinder) deleteNode(p int) {
	if f.dad[p] == nilIndex {
		return
	}

	var q int
	switch {
	case f.rson[p] == nilIndex:
		q = f.lson[p]
	case f.lson[p] == nilIndex:
		q = f.rson[p]
	default:
		q = f.lson[p]
		if f.rson[q] != nilIndex {
			for f.rson[q] != nilIndex {
				q = f.rson[q]
			}
			f.rson[f.dad[q]] = f.lson[q]
			f.dad[f.lson[q]] = f.dad[q]
			f.lson[q] = f.lson[p]
			f.dad[f.lson[p]] = q
		}
		f.rson[q] = f.rson[p]
		f.dad[f.rson[p]] = q
	}

	f.dad[q] = f.dad[p]
	if f.rson[f.dad[p]] == p {
		f.rson[f.dad[p]] = q
	} else {
		f.lson[f.dad[p]] = q
	}
	f.dad[p] = nilIndex
}
