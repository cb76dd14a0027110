package parsec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFailureErrorNoMarks(t *testing.T) {
	f := newFailure(nil, "not enough input")
	assert.Equal(t, "not enough input", f.Error())
}

func TestParseFailureErrorWithMarks(t *testing.T) {
	f := newFailure([]string{"header", "length"}, "take_while1")
	assert.Equal(t, "header > length: take_while1", f.Error())
}

func TestParseFailureIs(t *testing.T) {
	a := newFailure([]string{"x"}, "boom")
	b := newFailure([]string{"x"}, "boom")
	c := newFailure([]string{"y"}, "boom")
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestNewFailureCopiesMarks(t *testing.T) {
	marks := []string{"a", "b"}
	f := newFailure(marks, "msg")
	marks[0] = "mutated"
	assert.Equal(t, "a", f.Marks[0])
}

func TestIsFailureUnwraps(t *testing.T) {
	var err error = fmt.Errorf("wrapped: %w", newFailure([]string{"outer"}, "inner failed"))
	pf, ok := IsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "inner failed", pf.Message)
}

func TestIsFailureRejectsOtherErrors(t *testing.T) {
	_, ok := IsFailure(errors.New("not a parse failure"))
	assert.False(t, ok)
}

func TestUsageErrorMessage(t *testing.T) {
	err := usageErrorf("Take", "n must be >= 0")
	assert.Equal(t, "parsec: Take: n must be >= 0", err.Error())
}
