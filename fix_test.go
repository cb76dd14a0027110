package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// digits via Fix, independent of Many, to test the recursive knot itself.
func digitsViaFix() Parser[[]byte] {
	return Fix(func(self Parser[[]byte]) Parser[[]byte] {
		return Alt(
			Lift2(func(d byte, rest []byte) []byte { return append([]byte{d}, rest...) },
				Satisfy(func(b byte) bool { return b >= '0' && b <= '9' }),
				self,
			),
			Return([]byte{}),
		)
	})
}

func TestFixRecursesUntilFailure(t *testing.T) {
	v, err := ParseOnly(digitsViaFix(), []byte("123a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("123"), v)
}

func TestFixOnEmptyMatchSucceedsWithZeroValue(t *testing.T) {
	v, err := ParseOnly(digitsViaFix(), []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []byte{}, v)
}
