// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzari

import "testing"

// fillBuf stages a short literal pattern at the start of textBuf, padding the
// rest of the window with spaces the way Encode does before the first
// insertNode call, and mirrors the tail into the lookahead region.
func fillBuf(f *matchFinder, pattern string) {
	for i := range f.textBuf {
		f.textBuf[i] = ' '
	}
	copy(f.textBuf[:], pattern)
	copy(f.textBuf[windowSize:], f.textBuf[:maxMatchLen-1])
}

func TestMatchFinderFindsRepeat(t *testing.T) {
	var f matchFinder
	f.initTree()

	// "abcabc...": position 3 should find position 0 as a match of length
	// at least 3 once inserted.
	fillBuf(&f, "abcabcabcabc")

	for i := 0; i < 3; i++ {
		f.insertNode(i)
	}
	pos, length := f.insertNode(3)

	if length < minMatchLen+1 {
		t.Fatalf("expected a match of length > minMatchLen, got %d", length)
	}
	if pos != 3 {
		// pos is encoded as (r - p) & (windowSize-1); r=3, p=0 => offset 3.
		t.Errorf("match offset: got %d, want 3", pos)
	}
}

func TestMatchFinderNoMatchOnFirstInsert(t *testing.T) {
	var f matchFinder
	f.initTree()
	fillBuf(&f, "xyz")

	_, length := f.insertNode(0)
	if length != 0 {
		t.Errorf("first insertNode should find no match, got length %d", length)
	}
}

func TestMatchFinderDeleteIsNoOpForAbsent(t *testing.T) {
	var f matchFinder
	f.initTree()

	// No position has been inserted yet; dad[p] == nilIndex for all p, so
	// deleteNode must be a safe no-op (this occurs in Encode while the window
	// fills for the first time, for positions that were never inserted).
	f.deleteNode(0)
	if f.dad[0] != nilIndex {
		t.Errorf("dad[0] changed by deleting an absent node: got %d", f.dad[0])
	}
}

func TestMatchFinderInsertDeleteRoundTrip(t *testing.T) {
	var f matchFinder
	f.initTree()
	fillBuf(&f, "mississippi mississippi")

	for i := 0; i < 12; i++ {
		f.insertNode(i)
	}
	// Remove every inserted position; each must become absent again.
	for i := 0; i < 12; i++ {
		f.deleteNode(i)
		if f.dad[i] != nilIndex {
			t.Errorf("position %d still present after deleteNode", i)
		}
	}
}
