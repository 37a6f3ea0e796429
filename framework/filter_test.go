package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFilters(t *testing.T) {
	var none RegexFilters
	assert.True(t, none.AsFilter(testID("functional", "FastBuildFunctionalTest")))

	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^functional/"))
	require.NoError(t, filters.MustNotMatch.Set("OnlyNeeded"))

	assert.True(t, filters.AsFilter(testID("functional", "FastBuildFunctionalTest")))
	assert.False(t, filters.AsFilter(testID("functional", "OnlyNeededFastBuildTest")))
	assert.False(t, filters.AsFilter(testID("regression", "HelloWorld")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
	assert.False(t, list.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("a"))
	require.NoError(t, filters.MustMatch.Set("b"))
	PrintFilterDescription(&buf, filters)
	assert.Contains(t, buf.String(), `skip any not matching "a" or "b"`)
	assert.NotContains(t, buf.String(), "skip any matching")
}
