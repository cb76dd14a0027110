package parsec

import "github.com/ehrlich-b/parsec/internal/input"

// Alt is biased choice: "p <|> q". p runs first; if it fails and the
// position the choice began at is still at or after the commit mark, q
// runs at that original position with the More flag seen when the choice
// was entered. If p committed past the choice's starting position, the
// rewind is forbidden and the failure propagates outward instead — this
// is what lets the driver discard committed bytes safely.
func Alt[A any](p, q Parser[A]) Parser[A] {
	return Parser[A]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return p.run(view, pos, more, func(view *input.View, failPos int, failMore More, marks []string, msg string) step {
			if pos < view.Committed() {
				return fail(view, failPos, failMore, marks, msg)
			}
			return q.run(view, pos, more, fail, succ)
		}, succ)
	}}
}

// Choice tries each alternative in order, biased left-to-right, via
// repeated Alt. An empty Choice is a programming error: there is no
// sensible parser it could denote.
func Choice[A any](ps ...Parser[A]) Parser[A] {
	if len(ps) == 0 {
		panic(usageErrorf("Choice", "at least one alternative is required"))
	}
	result := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		result = Alt(ps[i], result)
	}
	return result
}

// Option runs p, falling back to def if p fails without committing:
// "option def p" ≡ p <|> return def.
func Option[A any](def A, p Parser[A]) Parser[A] {
	return Alt(p, Return(def))
}

// Named prepends mark to the trail of any failure p produces, without
// otherwise changing p's behavior: "p <?> mark".
func Named[A any](p Parser[A], mark string) Parser[A] {
	return Parser[A]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return p.run(view, pos, more, func(view *input.View, failPos int, failMore More, marks []string, msg string) step {
			withMark := make([]string, 0, len(marks)+1)
			withMark = append(withMark, mark)
			withMark = append(withMark, marks...)
			return fail(view, failPos, failMore, withMark, msg)
		}, succ)
	}}
}

// Commit raises the commit mark to the current position. No enclosing Alt
// may rewind past this point afterward — this is what makes the library
// incremental-safe, since the driver is then free to drop committed bytes
// from memory. Repetition combinators never insert an implicit Commit;
// long-running parsers must call it explicitly to bound memory.
func Commit() Parser[struct{}] {
	return Parser[struct{}]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		view.Commit(pos)
		return succ(view, pos, more, struct{}{})
	}}
}
