package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltTriesSecondOnFirstFailure(t *testing.T) {
	p := Alt(String("foo"), String("bar"))
	v, err := ParseOnly(p, []byte("bar"))
	require.NoError(t, err)
	assert.Equal(t, "bar", v)
}

func TestAltFailsWhenBothFail(t *testing.T) {
	p := Alt(String("foo"), String("bar"))
	_, err := ParseOnly(p, []byte("baz"))
	assert.Error(t, err)
}

// TestCommitForbidsBacktrackPastIt is scenario S5: once the first
// alternative commits, a later failure in that same alternative must
// propagate outward rather than let Alt retry the second alternative at
// the original position.
func TestCommitForbidsBacktrackPastIt(t *testing.T) {
	left := Then(Then(Char('a'), Commit()), Char('b'))
	right := Then(Char('a'), Char('c'))
	p := Alt(Map(left, func(byte) string { return "left" }), Map(right, func(byte) string { return "right" }))

	_, err := ParseOnly(p, []byte("ac"))
	require.Error(t, err)
	pf, ok := IsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "'b'", pf.Message)
}

func TestAltAllowsBacktrackWithoutCommit(t *testing.T) {
	left := Then(Char('a'), Char('b'))
	right := Then(Char('a'), Char('c'))
	p := Alt(Map(left, func(byte) string { return "left" }), Map(right, func(byte) string { return "right" }))

	v, err := ParseOnly(p, []byte("ac"))
	require.NoError(t, err)
	assert.Equal(t, "right", v)
}

func TestChoiceTriesInOrder(t *testing.T) {
	p := Choice(String("a"), String("b"), String("c"))
	v, err := ParseOnly(p, []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestChoiceEmptyPanics(t *testing.T) {
	assert.Panics(t, func() {
		Choice[string]()
	})
}

func TestOptionFallsBackToDefault(t *testing.T) {
	p := Option(0, Map(Char('a'), func(byte) int { return 1 }))
	v, err := ParseOnly(p, []byte("z"))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestOptionUsesParsedValueWhenPresent(t *testing.T) {
	p := Option(0, Map(Char('a'), func(byte) int { return 1 }))
	v, err := ParseOnly(p, []byte("a"))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNamedPrependsMark(t *testing.T) {
	p := Named(Char('a'), "header")
	_, err := ParseOnly(p, []byte("z"))
	pf, ok := IsFailure(err)
	require.True(t, ok)
	assert.Equal(t, []string{"header"}, pf.Marks)
}

func TestNamedNestsOuterToInner(t *testing.T) {
	p := Named(Named(Char('a'), "inner"), "outer")
	_, err := ParseOnly(p, []byte("z"))
	pf, ok := IsFailure(err)
	require.True(t, ok)
	assert.Equal(t, []string{"outer", "inner"}, pf.Marks)
}

func TestCommitSucceedsAndProducesUnit(t *testing.T) {
	v, err := ParseOnly(Commit(), []byte(""))
	require.NoError(t, err)
	assert.Equal(t, struct{}{}, v)
}
