package parsec

import (
	"fmt"

	"github.com/ehrlich-b/parsec/internal/input"
)

// Maybe is an optional value, used where a primitive (peek_char) must be
// able to report "no byte available" without treating that as a failure.
type Maybe[A any] struct {
	Value A
	Ok    bool
}

// Satisfy matches and consumes a single byte for which pred holds.
func Satisfy(pred func(byte) bool) Parser[byte] {
	return Parser[byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(1)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			b := view.Get(pos)
			if pred(b) {
				return succ(view, pos+1, more, b)
			}
			return fail(view, pos, more, nil, "satisfy")
		})
	}}
}

// Skip matches and consumes a single byte for which pred holds, discarding it.
func Skip(pred func(byte) bool) Parser[struct{}] {
	return Parser[struct{}]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(1)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			if pred(view.Get(pos)) {
				return succ(view, pos+1, more, struct{}{})
			}
			return fail(view, pos, more, nil, "skip")
		})
	}}
}

// AnyChar matches and consumes any single byte.
func AnyChar() Parser[byte] {
	return Satisfy(func(byte) bool { return true })
}

// Char matches and consumes a specific byte, failing with its literal
// quoted form as the canonical message.
func Char(c byte) Parser[byte] {
	msg := fmt.Sprintf("%q", rune(c))
	return Parser[byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(1)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			if b := view.Get(pos); b == c {
				return succ(view, pos+1, more, b)
			}
			return fail(view, pos, more, nil, msg)
		})
	}}
}

// NotChar matches and consumes any single byte other than c.
func NotChar(c byte) Parser[byte] {
	msg := fmt.Sprintf("not %q", rune(c))
	return Parser[byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(1)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			if b := view.Get(pos); b != c {
				return succ(view, pos+1, more, b)
			}
			return fail(view, pos, more, nil, msg)
		})
	}}
}

// scanWhile drives Input.CountWhile to its fixed point, suspending for
// more bytes whenever the scan stopped only because the chunk ran out
// (not because a byte failed pred) and the flag is still Incomplete. It
// never advances pos itself — onDone receives the total span and decides.
func scanWhile(view *input.View, pos int, more More, pred func(byte) bool, total int, onDone func(view *input.View, pos int, more More, total int) step) step {
	total += view.CountWhile(pos+total, pred)
	if pos+total < view.Length() || more == Complete {
		return onDone(view, pos, more, total)
	}
	return prompt(view, pos, more, func(view *input.View, pos int, more More) step {
		return scanWhile(view, pos, more, pred, total, onDone)
	})
}

// TakeWhile consumes the longest prefix of bytes satisfying pred,
// possibly empty.
func TakeWhile(pred func(byte) bool) Parser[[]byte] {
	return Parser[[]byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return scanWhile(view, pos, more, pred, 0, func(view *input.View, pos int, more More, total int) step {
			out := make([]byte, total)
			copy(out, view.Substring(pos, total))
			return succ(view, pos+total, more, out)
		})
	}}
}

// TakeWhile1 is TakeWhile, but requires at least one byte.
func TakeWhile1(pred func(byte) bool) Parser[[]byte] {
	return Parser[[]byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return scanWhile(view, pos, more, pred, 0, func(view *input.View, pos int, more More, total int) step {
			if total == 0 {
				return fail(view, pos, more, nil, "take_while1")
			}
			out := make([]byte, total)
			copy(out, view.Substring(pos, total))
			return succ(view, pos+total, more, out)
		})
	}}
}

// SkipWhile consumes and discards the longest prefix of bytes satisfying pred.
func SkipWhile(pred func(byte) bool) Parser[struct{}] {
	return Parser[struct{}]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return scanWhile(view, pos, more, pred, 0, func(view *input.View, pos int, more More, total int) step {
			return succ(view, pos+total, more, struct{}{})
		})
	}}
}

// TakeTill consumes the longest prefix of bytes for which pred does not hold.
func TakeTill(pred func(byte) bool) Parser[[]byte] {
	return TakeWhile(func(b byte) bool { return !pred(b) })
}

// TakeRest consumes every remaining byte, waiting for Complete.
func TakeRest() Parser[[]byte] {
	return TakeWhile(func(byte) bool { return true })
}

// Take consumes exactly n bytes.
func Take(n int) Parser[[]byte] {
	if n < 0 {
		panic(usageErrorf("Take", "n must be >= 0"))
	}
	return Parser[[]byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(n)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			out := make([]byte, n)
			copy(out, view.Substring(pos, n))
			return succ(view, pos+n, more, out)
		})
	}}
}

// Advance skips n bytes without inspecting them.
func Advance(n int) Parser[struct{}] {
	if n < 0 {
		panic(usageErrorf("Advance", "n must be >= 0"))
	}
	return Parser[struct{}]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(n)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			return succ(view, pos+n, more, struct{}{})
		})
	}}
}

// String matches and consumes an exact byte-for-byte literal.
func String(s string) Parser[string] {
	n := len(s)
	return Parser[string]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(n)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			if string(view.Substring(pos, n)) == s {
				return succ(view, pos+n, more, s)
			}
			return fail(view, pos, more, nil, s)
		})
	}}
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// StringCI matches s case-insensitively, folding ASCII letters only (never
// locale-dependent — see DESIGN.md's resolution of the spec's open
// question on this primitive).
func StringCI(s string) Parser[string] {
	n := len(s)
	folded := make([]byte, n)
	for i := 0; i < n; i++ {
		folded[i] = asciiLower(s[i])
	}
	return Parser[string]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(n)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			got := view.Substring(pos, n)
			for i := 0; i < n; i++ {
				if asciiLower(got[i]) != folded[i] {
					return fail(view, pos, more, nil, "string_ci")
				}
			}
			out := make([]byte, n)
			copy(out, got)
			return succ(view, pos+n, more, string(out))
		})
	}}
}

// PeekChar reports the next byte, if any, without consuming it. Unlike
// most primitives it does not fail at end of input — it reports Ok=false.
func PeekChar() Parser[Maybe[byte]] {
	var self coreParser
	self = func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		if pos < view.Length() {
			return succ(view, pos, more, Maybe[byte]{Value: view.Get(pos), Ok: true})
		}
		if more == Complete {
			return succ(view, pos, more, Maybe[byte]{})
		}
		return prompt(view, pos, more, func(view *input.View, pos int, more More) step {
			return self(view, pos, more, fail, succ)
		})
	}
	return Parser[Maybe[byte]]{run: self}
}

// PeekCharFail is PeekChar, but fails with the canonical "peek_char_fail"
// message at end of input instead of returning a Maybe.
func PeekCharFail() Parser[byte] {
	var self coreParser
	self = func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		if pos < view.Length() {
			return succ(view, pos, more, view.Get(pos))
		}
		if more == Complete {
			return fail(view, pos, more, nil, "peek_char_fail")
		}
		return prompt(view, pos, more, func(view *input.View, pos int, more More) step {
			return self(view, pos, more, fail, succ)
		})
	}
	return Parser[byte]{run: self}
}

// PeekString reports the next n bytes without consuming them.
func PeekString(n int) Parser[[]byte] {
	return Parser[[]byte]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return ensure(n)(view, pos, more, fail, func(view *input.View, pos int, more More, _ any) step {
			out := make([]byte, n)
			copy(out, view.Substring(pos, n))
			return succ(view, pos, more, out)
		})
	}}
}

// EndOfInput succeeds iff every byte has been consumed and no more will
// ever arrive. If exhausted but still Incomplete, it prompts: bytes
// arriving makes it fail (there was more input after all); the flag
// flipping to Complete with nothing new makes it succeed.
func EndOfInput() Parser[struct{}] {
	var self coreParser
	self = func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		if pos >= view.Length() {
			if more == Complete {
				return succ(view, pos, more, struct{}{})
			}
			return prompt(view, pos, more, func(view *input.View, pos int, more More) step {
				return self(view, pos, more, fail, succ)
			})
		}
		return fail(view, pos, more, nil, "end_of_input")
	}
	return Parser[struct{}]{run: self}
}

// EndOfLine matches "\n" or "\r\n".
func EndOfLine() Parser[struct{}] {
	nl := Map(Char('\n'), func(byte) struct{} { return struct{}{} })
	crnl := Map(String("\r\n"), func(string) struct{} { return struct{}{} })
	return Alt(nl, crnl)
}

// Pos reports the current absolute position without consuming input.
func Pos() Parser[int] {
	return Parser[int]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return succ(view, pos, more, pos)
	}}
}

// Available reports how many bytes are available right now (never waits
// for more) without consuming input.
func Available() Parser[int] {
	return Parser[int]{run: func(view *input.View, pos int, more More, fail failureK, succ successK) step {
		return succ(view, pos, more, view.Length()-pos)
	}}
}
