package parsec

import "github.com/ehrlich-b/parsec/internal/input"

type stateKind int

const (
	stateDone stateKind = iota
	stateFail
	statePartial
)

// State is the public, typed result of driving a Parser: Done with a
// value, Fail with a mark trail and message, or Partial awaiting a
// further chunk via Continue.
type State[A any] struct {
	kind      stateKind
	pos       int
	committed int
	value     A
	marks     []string
	message   string
	consumed  int
	cont      func(chunk []byte, more More) State[A]
}

// Done reports the parsed value, if this state succeeded.
func (s State[A]) Done() (A, bool) {
	if s.kind == stateDone {
		return s.value, true
	}
	var zero A
	return zero, false
}

// Failed reports the failure, if this state failed.
func (s State[A]) Failed() (*ParseFailure, bool) {
	if s.kind == stateFail {
		return newFailure(s.marks, s.message), true
	}
	return nil, false
}

// Partial reports whether this state is suspended awaiting more input.
func (s State[A]) Partial() bool { return s.kind == statePartial }

// Pos reports the absolute byte position the parser stopped at — where it
// succeeded, where it failed, or how far it had gotten before suspending.
func (s State[A]) Pos() int { return s.pos }

// Consumed reports, while Partial, how far the parser had got past the
// start of the chunk it was last running against (the InitialCommitted
// of that view) when it suspended; it is not a running total over all
// chunks.
func (s State[A]) Consumed() int { return s.consumed }

// Committed reports the absolute position of the engine's commit
// high-water mark at the point this state was reached. A driver that
// re-presents a buffer on a Partial's Continue must align the buffer so
// its first byte represents this absolute position — see Buffered.Feed.
func (s State[A]) Committed() int { return s.committed }

// Continue resumes a Partial state with another chunk (possibly empty,
// e.g. to merely flip more to Complete) and the updated More flag.
// Calling it on a non-Partial state is a programming error.
func (s State[A]) Continue(chunk []byte, more More) State[A] {
	if s.kind != statePartial {
		panic(usageErrorf("State.Continue", "state is not Partial"))
	}
	return s.cont(chunk, more)
}

func wrapStep[A any](st step) State[A] {
	switch st.kind {
	case stepDone:
		return State[A]{kind: stateDone, pos: st.pos, committed: st.committed, value: st.value.(A)}
	case stepFail:
		return State[A]{kind: stateFail, pos: st.pos, committed: st.committed, marks: st.marks, message: st.message}
	default:
		return State[A]{kind: statePartial, pos: st.pos, committed: st.committed, consumed: st.consumed, cont: func(chunk []byte, more More) State[A] {
			return wrapStep[A](st.cont(chunk, more))
		}}
	}
}

// Parse drives p against an initial chunk of input with the given More
// flag, returning a State the caller can inspect or, if Partial, continue
// feeding. This is the unbuffered driver: the caller owns data and must
// keep earlier chunks alive itself across Continue calls, since nothing
// here compacts or pools memory (see Buffered for that).
func Parse[A any](p Parser[A], data []byte, more More) State[A] {
	view := input.Create(0, data)
	fail := func(view *input.View, pos int, more More, marks []string, msg string) step {
		return step{kind: stepFail, pos: pos, committed: view.Committed(), marks: append([]string(nil), marks...), message: msg}
	}
	succ := func(view *input.View, pos int, more More, value any) step {
		return step{kind: stepDone, pos: pos, committed: view.Committed(), value: value}
	}
	return wrapStep[A](p.run(view, 0, more, fail, succ))
}

// ParseOnly runs p against the whole of data as a single Complete input,
// resolving any Partial suspensions by repeatedly feeding no further bytes
// until the parser commits to Done or Fail. It is a programming error for
// a parser to suspend forever under More=Complete with no bytes ever
// offered back — callers that need true incremental feeding should use
// Parse or Buffered directly.
func ParseOnly[A any](p Parser[A], data []byte) (A, error) {
	st := Parse(p, data, Complete)
	for st.Partial() {
		st = st.Continue(nil, Complete)
	}
	if v, ok := st.Done(); ok {
		return v, nil
	}
	pf, _ := st.Failed()
	var zero A
	return zero, pf
}
