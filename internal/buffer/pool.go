package buffer

import "sync"

// Backing arrays for the Buffered driver's scratch buffer are drawn from
// size-bucketed sync.Pool free lists, the same bucket-then-grow idea the
// teacher package used for per-tag I/O memory (there: 128KB/256KB/512KB/1MB
// buckets for request payloads; here: smaller buckets sized for the
// typical growth curve of a streaming grammar's lookahead window).
//
// Uses the *[]byte pattern to avoid sync.Pool's interface-boxing overhead
// on every Get/Put.
const (
	bucket4k   = 4 * 1024
	bucket16k  = 16 * 1024
	bucket64k  = 64 * 1024
	bucket256k = 256 * 1024
	bucket1m   = 1024 * 1024
)

var pools = struct {
	p4k, p16k, p64k, p256k, p1m sync.Pool
}{
	p4k:   sync.Pool{New: func() any { b := make([]byte, bucket4k); return &b }},
	p16k:  sync.Pool{New: func() any { b := make([]byte, bucket16k); return &b }},
	p64k:  sync.Pool{New: func() any { b := make([]byte, bucket64k); return &b }},
	p256k: sync.Pool{New: func() any { b := make([]byte, bucket256k); return &b }},
	p1m:   sync.Pool{New: func() any { b := make([]byte, bucket1m); return &b }},
}

// get returns a backing array of at least size bytes, full length (callers
// re-slice down to whatever is actually in use).
func get(size int) []byte {
	switch {
	case size <= bucket4k:
		return *pools.p4k.Get().(*[]byte)
	case size <= bucket16k:
		return *pools.p16k.Get().(*[]byte)
	case size <= bucket64k:
		return *pools.p64k.Get().(*[]byte)
	case size <= bucket256k:
		return *pools.p256k.Get().(*[]byte)
	case size <= bucket1m:
		return *pools.p1m.Get().(*[]byte)
	default:
		// Larger than our largest bucket: not pooled, a one-off allocation.
		return make([]byte, size)
	}
}

// put returns a backing array to its bucket's pool. Arrays whose capacity
// doesn't match a bucket exactly (the one-off large allocations from get's
// default case) are simply dropped for the GC to reclaim.
func put(buf []byte) {
	c := cap(buf)
	buf = buf[:c]
	switch c {
	case bucket4k:
		pools.p4k.Put(&buf)
	case bucket16k:
		pools.p16k.Put(&buf)
	case bucket64k:
		pools.p64k.Put(&buf)
	case bucket256k:
		pools.p256k.Put(&buf)
	case bucket1m:
		pools.p1m.Put(&buf)
	}
}
