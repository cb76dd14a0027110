package parsec

import (
	"github.com/ehrlich-b/parsec/internal/buffer"
	"github.com/ehrlich-b/parsec/internal/constants"
	"github.com/ehrlich-b/parsec/internal/logging"
)

// Options configures a Buffered driver.
type Options struct {
	// InitialBufferSize is the backing buffer's starting capacity.
	InitialBufferSize int
	// Logger receives Debug-level traces of each Feed call. Defaults to
	// logging.Default() when left nil.
	Logger *logging.Logger
}

// DefaultOptions returns the Buffered driver's default configuration.
func DefaultOptions() Options {
	return Options{InitialBufferSize: constants.DefaultInitialBufferSize, Logger: logging.Default()}
}

// Buffered drives a Parser across repeated Feed calls, owning a growable
// scratch buffer so the caller doesn't have to keep every chunk it has
// ever handed over alive itself the way Parse/State.Continue requires.
type Buffered[A any] struct {
	opts  Options
	buf   *buffer.Buffer
	state State[A]
	fed   int
	done  bool
	// base is the absolute position represented by buf's index 0. It
	// tracks the engine's commit mark: prompt anchors every resumed chunk
	// at the commit mark it suspended with, so the buffer fed back on the
	// next Continue must start at that same absolute position, which
	// means dropping everything below it here as the grammar commits.
	base int
}

// NewBuffered constructs a Buffered driver for p.
func NewBuffered[A any](p Parser[A], opts Options) *Buffered[A] {
	if opts.InitialBufferSize < 1 {
		panic(usageErrorf("NewBuffered", "InitialBufferSize must be >= 1"))
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	b := &Buffered[A]{
		opts: opts,
		buf:  buffer.New(opts.InitialBufferSize),
	}
	b.state = Parse(p, nil, Incomplete)
	return b
}

// Feed hands the driver another chunk of input (possibly empty, to merely
// flip more to Complete) and returns the resulting state. Calling Feed
// once the parser has already reached Done or Fail is a programming
// error — start a fresh Buffered for the next parse instead.
func (b *Buffered[A]) Feed(chunk []byte, more More) State[A] {
	if b.done {
		panic(usageErrorf("Buffered.Feed", "parser already reached a terminal state"))
	}
	if !b.state.Partial() {
		panic(usageErrorf("Buffered.Feed", "state is not awaiting input"))
	}

	prevLen := b.buf.Len()
	b.buf.Feed(chunk)
	if b.buf.Len() < prevLen {
		panic(usageErrorf("Buffered.Feed", "observed input shrink"))
	}
	b.fed += len(chunk)
	b.opts.Logger.Debugf("buffered: feed %d bytes (more=%s, total fed=%d)", len(chunk), more, b.fed)

	b.state = b.state.Continue(b.buf.View(), more)

	if committed := b.state.Committed(); committed > b.base {
		b.buf.Consume(committed - b.base)
		b.base = committed
	}

	if !b.state.Partial() {
		b.done = true
		if _, ok := b.state.Done(); ok {
			b.opts.Logger.Debugf("buffered: done at pos %d", b.state.Pos())
		} else {
			b.opts.Logger.Debugf("buffered: failed at pos %d", b.state.Pos())
		}
	}
	return b.state
}

// ToOption returns the parsed value and true on success, or the zero
// value and false otherwise (failed, or still partial).
func (b *Buffered[A]) ToOption() (A, bool) {
	return b.state.Done()
}

// ToResult returns the parsed value, or the failure as an error. Calling
// it while the state is still Partial also reports an error.
func (b *Buffered[A]) ToResult() (A, error) {
	if v, ok := b.state.Done(); ok {
		return v, nil
	}
	var zero A
	if pf, ok := b.state.Failed(); ok {
		return zero, pf
	}
	return zero, usageErrorf("Buffered.ToResult", "parse is still partial")
}

// ToUnconsumed returns the bytes fed to the driver that the parser never
// consumed. Only meaningful once the state is Done or Fail.
func (b *Buffered[A]) ToUnconsumed() []byte {
	view := b.buf.View()
	off := b.state.Pos() - b.base
	if off >= len(view) {
		return nil
	}
	return view[off:]
}
