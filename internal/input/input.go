// Package input implements the engine's read-only view over the bytes of
// the current chunk: random access by absolute position, the commit
// high-water mark, and a non-suspending forward scan.
//
// A View is reborn on every resumption (its initialCommitted advances to
// the previous committed), never mutated across chunk boundaries.
package input

// View is the engine's handle on currently-available bytes. All positions
// it accepts are absolute: valued in the coordinate system of the original
// input stream, unaffected by where chunk boundaries happen to fall.
type View struct {
	bytes            []byte
	initialCommitted int
	committed        int
}

// Create builds a view anchored at initialCommitted over bytes. committed
// starts out equal to initialCommitted.
func Create(initialCommitted int, bytes []byte) *View {
	return &View{bytes: bytes, initialCommitted: initialCommitted, committed: initialCommitted}
}

// InitialCommitted is the absolute position of this view's first byte.
func (v *View) InitialCommitted() int { return v.initialCommitted }

// Committed is the monotonically non-decreasing commit high-water mark.
// Bytes below this position have been committed and may never be
// revisited by a backtracking alternative.
func (v *View) Committed() int { return v.committed }

// Length is the absolute end position of this view.
func (v *View) Length() int { return v.initialCommitted + len(v.bytes) }

// Uncommitted is the number of bytes in this view that sit at or above
// the commit mark.
func (v *View) Uncommitted() int { return len(v.bytes) - (v.committed - v.initialCommitted) }

// Consumed is how far above initialCommitted the commit mark has moved.
func (v *View) Consumed() int { return v.committed - v.initialCommitted }

// Get reads a single byte at an absolute position. Precondition:
// initialCommitted <= pos < Length(); unchecked here for speed, callers
// must bounds-check first.
func (v *View) Get(pos int) byte {
	return v.bytes[pos-v.initialCommitted]
}

// Substring reads n bytes starting at an absolute position. Precondition:
// the range [pos, pos+n) lies within [initialCommitted, Length()).
func (v *View) Substring(pos, n int) []byte {
	off := pos - v.initialCommitted
	return v.bytes[off : off+n]
}

// CountWhile returns the largest k >= 0 such that pred holds on every byte
// in [pos, pos+k), or the chunk ends. It never suspends and never advances
// pos itself — callers follow up with an explicit advance.
func (v *View) CountWhile(pos int, pred func(byte) bool) int {
	off := pos - v.initialCommitted
	n := 0
	for off+n < len(v.bytes) && pred(v.bytes[off+n]) {
		n++
	}
	return n
}

// Commit raises the commit mark to at least pos. The mark never moves
// backwards: Commit(pos) with pos below the current mark is a no-op,
// preserving monotonicity even if a caller re-commits an earlier position.
func (v *View) Commit(pos int) {
	if pos > v.committed {
		v.committed = pos
	}
}
