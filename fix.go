package parsec

import "github.com/ehrlich-b/parsec/internal/input"

// Fix ties the recursive knot for a self-referential grammar rule: "fix (λself. body(self))".
// Go has no lazy let-rec, so the indirection is a parser value whose run
// method calls back into f with itself every time it is invoked — f only
// needs to treat its argument as "the rest of this same rule" without ever
// forcing it eagerly, which is exactly what Many and friends in
// repetition.go rely on.
func Fix[A any](f func(Parser[A]) Parser[A]) Parser[A] {
	var self Parser[A]
	self = Parser[A]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return f(self).run(view, pos, more, fail, succ)
	}}
	return self
}
