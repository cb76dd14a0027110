package parsec

import "github.com/ehrlich-b/parsec/internal/input"

// Return lifts a pure value into a parser that always succeeds without
// consuming input: Return(a) ≡ "return a" in the combinator algebra.
func Return[A any](v A) Parser[A] {
	return Parser[A]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return succ(view, pos, more, v)
	}}
}

// Fail builds a parser that always fails with msg and no input consumed.
func Fail[A any](msg string) Parser[A] {
	return Parser[A]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return fail(view, pos, more, nil, msg)
	}}
}

// Bind sequences p into f: "p >>= f". f receives p's value and chooses the
// next parser to run. Suspensions are transparent — the inner primitive's
// Partial closes over the outer success continuation, so resuming picks up
// exactly where the data flow left off; the view passed to that
// continuation is always the one live at the moment it fires, never the
// one p was originally entered with.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Parser[B]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return p.run(view, pos, more, fail, func(view *input.View, pos int, more More, v any) step {
			return f(v.(A)).run(view, pos, more, fail, succ)
		})
	}}
}

// Map applies f to p's result: "p >>| f" / "f <$> p".
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Parser[B]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return p.run(view, pos, more, fail, func(view *input.View, pos int, more More, v any) step {
			return succ(view, pos, more, f(v.(A)))
		})
	}}
}

// Ap applies a parsed function to a parsed argument in sequence: "pf <*> pa".
func Ap[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Bind(pf, func(f func(A) B) Parser[B] {
		return Map(pa, f)
	})
}

// Then runs p then q, keeping only q's value: "p *> q".
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] { return q })
}

// Before runs p then q, keeping only p's value: "p <* q".
func Before[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] { return Map(q, func(B) A { return a }) })
}

// Lift2 runs pa then pb and combines their results: "lift2 f pa pb".
func Lift2[A, B, C any](f func(A, B) C, pa Parser[A], pb Parser[B]) Parser[C] {
	return Bind(pa, func(a A) Parser[C] {
		return Map(pb, func(b B) C { return f(a, b) })
	})
}

// Lift3 runs three parsers in sequence and combines their results.
func Lift3[A, B, C, D any](f func(A, B, C) D, pa Parser[A], pb Parser[B], pc Parser[C]) Parser[D] {
	return Bind(pa, func(a A) Parser[D] {
		return Bind(pb, func(b B) Parser[D] {
			return Map(pc, func(c C) D { return f(a, b, c) })
		})
	})
}

// Lift4 runs four parsers in sequence and combines their results.
func Lift4[A, B, C, D, E any](f func(A, B, C, D) E, pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[E] {
	return Bind(pa, func(a A) Parser[E] {
		return Bind(pb, func(b B) Parser[E] {
			return Bind(pc, func(c C) Parser[E] {
				return Map(pd, func(d D) E { return f(a, b, c, d) })
			})
		})
	})
}
