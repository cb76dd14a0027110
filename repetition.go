package parsec

import "github.com/ehrlich-b/parsec/internal/input"

func cons[A any](a A, rest []A) []A {
	out := make([]A, 0, len(rest)+1)
	out = append(out, a)
	out = append(out, rest...)
	return out
}

// Many matches p zero or more times: "many p = fix (λm. (lift2 cons p m) <|> return [])".
// It never inserts an implicit commit — a p that never fails and never
// consumes would loop forever, and that is the caller's bug to avoid, not
// something Many silently guards against.
func Many[A any](p Parser[A]) Parser[[]A] {
	return Fix(func(self Parser[[]A]) Parser[[]A] {
		return Alt(Lift2(cons[A], p, self), Return([]A{}))
	})
}

// Many1 matches p one or more times.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return Lift2(cons[A], p, Many(p))
}

// Count matches p exactly n times, collecting its results in order.
func Count[A any](n int, p Parser[A]) Parser[[]A] {
	if n < 0 {
		panic(usageErrorf("Count", "n must be >= 0"))
	}
	if n == 0 {
		return Return([]A{})
	}
	return Lift2(cons[A], p, Count[A](n-1, p))
}

// SkipMany matches p zero or more times, discarding its results.
func SkipMany[A any](p Parser[A]) Parser[struct{}] {
	return Fix(func(self Parser[struct{}]) Parser[struct{}] {
		return Alt(Then(p, self), Return(struct{}{}))
	})
}

// SkipMany1 matches p one or more times, discarding its results.
func SkipMany1[A any](p Parser[A]) Parser[struct{}] {
	return Then(p, SkipMany(p))
}

// SepBy1 matches p one or more times, separated by sep, keeping only p's
// values.
func SepBy1[A, S any](sep Parser[S], p Parser[A]) Parser[[]A] {
	rest := Many(Then(sep, p))
	return Lift2(cons[A], p, rest)
}

// SepBy is SepBy1, but also accepts zero occurrences.
func SepBy[A, S any](sep Parser[S], p Parser[A]) Parser[[]A] {
	return Alt(SepBy1(sep, p), Return([]A{}))
}

// ManyTill matches p repeatedly until end succeeds; end's own value is
// discarded and consumed along with everything end itself consumes.
func ManyTill[A, E any](p Parser[A], end Parser[E]) Parser[[]A] {
	return Fix(func(self Parser[[]A]) Parser[[]A] {
		return Alt(
			Then(end, Return([]A{})),
			Lift2(cons[A], p, self),
		)
	})
}

// List runs a fixed sequence of parsers of the same result type in order,
// collecting their values.
func List[A any](ps []Parser[A]) Parser[[]A] {
	return Parser[[]A]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return sequenceList(ps, 0, nil, view, pos, more, fail, succ)
	}}
}

func sequenceList[A any](ps []Parser[A], i int, acc []A, view *input.View, pos int, more More, fail failureK, succ successK) step {
	if i >= len(ps) {
		return succ(view, pos, more, acc)
	}
	return ps[i].run(view, pos, more, fail, func(view *input.View, pos int, more More, v any) step {
		return sequenceList(ps, i+1, append(acc, v.(A)), view, pos, more, fail, succ)
	})
}
