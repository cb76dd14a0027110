// Package parsec is an incremental, streaming parser combinator library.
// Parsers are small values — match a byte, take N bytes, alternative,
// sequence — composed into grammars that run against input arriving in
// chunks. A parser may suspend when it needs more input, fail with a
// breadcrumb trail of named contexts, or succeed with a value and the
// number of bytes it consumed.
//
// The engine is single-threaded and synchronous (no I/O, no concurrency):
// a Parser is a plain, reusable value, but one parse in progress (a
// suspended Partial) closes over the Input view driving it and is not
// itself safe to resume from multiple goroutines at once.
package parsec

import "github.com/ehrlich-b/parsec/internal/input"

// More tells a parser whether additional input may still arrive.
type More int

const (
	// Incomplete means more input may arrive later.
	Incomplete More = iota
	// Complete means no more input will ever arrive.
	Complete
)

func (m More) String() string {
	if m == Complete {
		return "Complete"
	}
	return "Incomplete"
}

// stepKind tags the engine's result.
type stepKind int

const (
	stepDone stepKind = iota
	stepFail
	stepPartial
)

// step is the engine's defunctionalized CPS result: a concrete,
// non-generic tagged union standing in for the rank-2-polymorphic
// "forall r" record a language with higher-rank types would use here (see
// DESIGN.md). The Done payload is untyped (any): Parser[A]'s generic
// wrappers type-assert it back to A at the point a success continuation
// receives it, so this type never needs to know A.
//
// This is not a trampoline: a step value only crosses back out to a
// driver at a Partial suspension or at the terminal Done/Fail. Along the
// success path, continuations call each other directly (Bind's succ
// calls f(v).run(...) in the same Go call), so a long synchronous run of
// a repetition combinator (Many over a large chunk with no suspension in
// between) recurses proportionally to its match count on the Go stack,
// the same as any other recursive-descent parser. See DESIGN.md.
type step struct {
	kind stepKind

	// pos and committed are set on every kind: the absolute position the
	// step stopped at (succeeded, failed, or had reached before
	// suspending) and the view's commit mark at that moment. A driver
	// re-presenting input after a Partial must align its next chunk's
	// base with committed — see Buffered.Feed.
	pos       int
	committed int

	// stepDone
	value any

	// stepFail
	marks   []string
	message string

	// stepPartial
	consumed int
	cont     func(chunk []byte, more More) step
}

// failureK is a parser's failure continuation. It is always invoked with
// the Input view live at the point of failure (which, across a
// suspend/resume boundary, may not be the view the parser was originally
// entered with), the position and More flag there, the mark trail, and
// the primitive's message.
type failureK func(view *input.View, pos int, more More, marks []string, msg string) step

// successK is a parser's success continuation, invoked with the live view,
// advanced position, the More flag, and the produced value.
type successK func(view *input.View, pos int, more More, value any) step

// coreParser is the untyped engine representation shared by every
// Parser[A]: given an input view, the absolute position, the More flag,
// and the fail/success continuations, it eventually invokes exactly one
// of them, or returns a step carrying a Partial suspension.
type coreParser func(view *input.View, pos int, more More, fail failureK, succ successK) step

// Parser is a value satisfying the engine's suspend/resume/backtrack
// contract, parameterized by the type of value it produces on success.
type Parser[A any] struct {
	run coreParser
}

// prompt packages the suspend-for-more-input protocol used by every
// primitive that needs bytes it doesn't have: it captures the current
// commit mark and uncommitted byte count, and returns a Partial whose
// continue rebuilds an Input view anchored at that commit mark once the
// caller supplies a chunk covering more than the uncommitted bytes already
// seen (or flips the flag to Complete, in which case onResume re-enters
// with no new bytes under Complete and the resumed primitive settles its
// own end-of-input outcome: ensure fails, while EndOfInput, PeekChar and
// the TakeWhile family succeed). A chunk no longer than what was
// already uncommitted, with the flag still Incomplete, makes prompt
// suspend again rather than spin.
func prompt(view *input.View, pos int, more More, onResume func(view *input.View, pos int, more More) step) step {
	committed := view.Committed()
	u := view.Uncommitted()
	consumed := pos - view.InitialCommitted()

	var cont func(chunk []byte, more More) step
	cont = func(chunk []byte, newMore More) step {
		if len(chunk) > u {
			return onResume(input.Create(committed, chunk), pos, newMore)
		}
		if newMore == Complete {
			return onResume(input.Create(committed, chunk), pos, Complete)
		}
		return step{kind: stepPartial, pos: pos, committed: committed, consumed: consumed, cont: cont}
	}
	return step{kind: stepPartial, pos: pos, committed: committed, consumed: consumed, cont: cont}
}

// ensure requires n bytes to be available starting at pos. It succeeds
// with nil once they are; otherwise it fails outright when more is
// Complete, or chains a single prompt followed by a self-referential retry
// of ensure n on resume.
func ensure(n int) coreParser {
	var self coreParser
	self = func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		if pos+n <= view.Length() {
			return succ(view, pos, more, nil)
		}
		if more == Complete {
			return fail(view, pos, more, nil, "not enough input")
		}
		return prompt(view, pos, more, func(view *input.View, pos int, more More) step {
			return self(view, pos, more, fail, succ)
		})
	}
	return self
}
