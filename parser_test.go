package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDoneOnFirstChunk(t *testing.T) {
	st := Parse(Char('a'), []byte("a"), Complete)
	v, ok := st.Done()
	require.True(t, ok)
	assert.Equal(t, byte('a'), v)
}

func TestParseFailsWithMessage(t *testing.T) {
	st := Parse(Char('a'), []byte("b"), Complete)
	pf, ok := st.Failed()
	require.True(t, ok)
	assert.Equal(t, "'a'", pf.Message)
}

func TestParseSuspendsWhenShortOnIncomplete(t *testing.T) {
	st := Parse(Take(2), []byte("a"), Incomplete)
	assert.True(t, st.Partial())
}

func TestParseFailsOnCompleteWhenShort(t *testing.T) {
	st := Parse(Take(2), []byte("a"), Complete)
	_, ok := st.Failed()
	assert.True(t, ok)
}

// TestResumeUsesLiveViewNotStaleClosure exercises the exact scenario a
// closure capturing a stale *input.View would get wrong: string "ab" fed
// one byte per chunk. The second byte only becomes visible once Continue
// rebuilds the view anchored at the commit mark captured when the first
// Partial suspended.
func TestResumeUsesLiveViewNotStaleClosure(t *testing.T) {
	st := Parse(String("ab"), []byte("a"), Incomplete)
	require.True(t, st.Partial())

	st = st.Continue([]byte("ab"), Complete)
	v, ok := st.Done()
	require.True(t, ok)
	assert.Equal(t, "ab", v)
}

func TestResumeFailsWhenSecondByteMismatches(t *testing.T) {
	st := Parse(String("ab"), []byte("a"), Incomplete)
	require.True(t, st.Partial())

	st = st.Continue([]byte("ac"), Complete)
	_, ok := st.Failed()
	assert.True(t, ok)
}

func TestContinueOnTerminalStateIsUsageError(t *testing.T) {
	st := Parse(Char('a'), []byte("a"), Complete)
	assert.Panics(t, func() {
		st.Continue([]byte("x"), Complete)
	})
}

func TestMoreString(t *testing.T) {
	assert.Equal(t, "Incomplete", Incomplete.String())
	assert.Equal(t, "Complete", Complete.String())
}
