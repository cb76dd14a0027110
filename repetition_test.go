package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManyMatchesZeroOrMore(t *testing.T) {
	v, err := ParseOnly(Many(Char('a')), []byte("aaab"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'a', 'a'}, v)
}

func TestManyMatchesZeroOccurrences(t *testing.T) {
	v, err := ParseOnly(Many(Char('a')), []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte{}, v)
}

func TestMany1RequiresOneOccurrence(t *testing.T) {
	_, err := ParseOnly(Many1(Char('a')), []byte("b"))
	assert.Error(t, err)
}

func TestMany1MatchesAtLeastOne(t *testing.T) {
	v, err := ParseOnly(Many1(Char('a')), []byte("aab"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'a'}, v)
}

func TestManyThenEndOfInputOnFullMatch(t *testing.T) {
	_, err := ParseOnly(Before(Many(Char('a')), EndOfInput()), []byte("aaaa"))
	assert.NoError(t, err)
}

func TestManyThenEndOfInputFailsWithTrailingByte(t *testing.T) {
	_, err := ParseOnly(Before(Many(Char('a')), EndOfInput()), []byte("aaab"))
	assert.Error(t, err)
}

func TestCountMatchesExactly(t *testing.T) {
	v, err := ParseOnly(Count(3, Char('a')), []byte("aaab"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'a', 'a'}, v)
}

func TestCountFailsWhenShort(t *testing.T) {
	_, err := ParseOnly(Count(3, Char('a')), []byte("aab"))
	assert.Error(t, err)
}

func TestCountZeroReturnsEmpty(t *testing.T) {
	v, err := ParseOnly(Count(0, Char('a')), []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte{}, v)
}

func TestCountNegativePanics(t *testing.T) {
	assert.Panics(t, func() { Count(-1, Char('a')) })
}

func TestSkipManyDiscardsAll(t *testing.T) {
	p := Then(SkipMany(Char(' ')), AnyChar())
	v, err := ParseOnly(p, []byte("   x"))
	require.NoError(t, err)
	assert.Equal(t, byte('x'), v)
}

func TestSkipMany1RequiresOne(t *testing.T) {
	_, err := ParseOnly(SkipMany1(Char(' ')), []byte("x"))
	assert.Error(t, err)
}

func TestSepByMatchesZero(t *testing.T) {
	v, err := ParseOnly(SepBy(Char(','), TakeWhile1(isDigit)), []byte(""))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{}, v)
}

func TestSepByMatchesSeveral(t *testing.T) {
	v, err := ParseOnly(SepBy(Char(','), TakeWhile1(isAlpha)), []byte("a,bb,ccc"))
	require.NoError(t, err)
	require.Len(t, v, 3)
	assert.Equal(t, []byte("a"), v[0])
	assert.Equal(t, []byte("bb"), v[1])
	assert.Equal(t, []byte("ccc"), v[2])
}

func TestSepBy1RequiresAtLeastOne(t *testing.T) {
	_, err := ParseOnly(SepBy1(Char(','), TakeWhile1(isAlpha)), []byte(""))
	assert.Error(t, err)
}

func TestManyTillStopsAtTerminator(t *testing.T) {
	p := ManyTill(AnyChar(), Char(';'))
	v, err := ParseOnly(p, []byte("abc;def"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestListSequencesInOrder(t *testing.T) {
	v, err := ParseOnly(List([]Parser[byte]{Char('a'), Char('b'), Char('c')}), []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestListFailsIfAnyElementFails(t *testing.T) {
	_, err := ParseOnly(List([]Parser[byte]{Char('a'), Char('b'), Char('c')}), []byte("abx"))
	assert.Error(t, err)
}

func isAlpha(b byte) bool { return b >= 'a' && b <= 'z' }
