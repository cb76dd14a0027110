// Package buffer implements the Buffered driver's growable scratch: it
// glues successive chunks fed by the caller into a single contiguous byte
// range the engine can view as one chunk.
package buffer

// Buffer holds the still-uncommitted tail of a parse plus any freshly fed
// chunks, as one contiguous backing array with a logical [start, start+
// length) window of live bytes.
type Buffer struct {
	data   []byte
	start  int
	length int
}

// New allocates a Buffer with at least initialCapacity bytes of backing
// storage. initialCapacity < 1 is a programming error, not a parse
// failure: callers (the Buffered driver constructor) must reject it before
// reaching here.
func New(initialCapacity int) *Buffer {
	if initialCapacity < 1 {
		panic("buffer: initial capacity must be >= 1")
	}
	return &Buffer{data: get(initialCapacity)}
}

// View returns the current contiguous byte range: the concatenation of
// every fed chunk minus every consumed prefix.
func (b *Buffer) View() []byte {
	return b.data[b.start : b.start+b.length]
}

// Len is the number of live bytes currently in the buffer.
func (b *Buffer) Len() int { return b.length }

// Feed appends bytes, growing or compacting the backing array per policy:
// append in place if the unused tail fits it; else compact (shift live
// bytes to offset 0) if the total freed space fits it; else grow the
// backing array by a 3/2 factor until it does, then copy-compact into the
// new array.
func (b *Buffer) Feed(chunk []byte) {
	needed := len(chunk)
	if needed == 0 {
		return
	}

	tailFree := cap(b.data) - (b.start + b.length)
	if tailFree >= needed {
		copy(b.data[b.start+b.length:], chunk)
		b.length += needed
		return
	}

	totalFree := cap(b.data) - b.length
	if totalFree >= needed {
		b.compact()
		copy(b.data[b.length:], chunk)
		b.length += needed
		return
	}

	newCap := cap(b.data)
	if newCap == 0 {
		newCap = 1
	}
	for newCap-b.length < needed {
		newCap = newCap*3/2 + 1
	}
	next := get(newCap)
	copy(next, b.data[b.start:b.start+b.length])
	put(b.data)
	b.data = next
	b.start = 0
	copy(b.data[b.length:], chunk)
	b.length += needed
}

// compact shifts live bytes down to offset 0, freeing the consumed prefix
// for reuse by a subsequent Feed.
func (b *Buffer) compact() {
	if b.start == 0 {
		return
	}
	copy(b.data, b.data[b.start:b.start+b.length])
	b.start = 0
}

// Consume advances the view's logical start by n, freeing a prefix. n must
// be within [0, Len()]; violating that is a programming error in the
// driver, not a parse failure.
func (b *Buffer) Consume(n int) {
	if n < 0 || n > b.length {
		panic("buffer: consume out of range")
	}
	b.start += n
	b.length -= n
}

// Unconsumed exports the tail that was never consumed, for the Buffered
// driver's terminal Done/Fail states.
func (b *Buffer) Unconsumed() (backing []byte, offset, length int) {
	return b.data, b.start, b.length
}

// Release returns the backing array to the pool. The Buffer must not be
// used afterwards.
func (b *Buffer) Release() {
	if b.data != nil {
		put(b.data)
		b.data = nil
	}
}
