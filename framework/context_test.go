package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailRecordsExitCodeAndStopsTest(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Fail(42, errors.New("broken"))
			reached = true
		})
	})

	assert.False(t, reached)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "a", results.Failures[0].TestID.String())
	assert.Equal(t, 42, results.Failures[0].ExitCode)
	assert.Equal(t, []error{errors.New("broken")}, results.Failures[0].Errors)
	assert.Equal(t, 42, results.ExitCode())
}

func TestFailWithZeroExitCodeStillReportsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { c.Fail(0, errors.New("broken")) })
	})
	assert.Equal(t, defaultFailureExitCode, results.ExitCode())
}

func TestErrorfAndFailNowUseDefaultExitCode(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Errorf("value was %d", 3)
			c.FailNow()
		})
	})
	require.Len(t, results.Failures, 1)
	assert.Equal(t, 1, results.ExitCode())
	assert.Equal(t, "value was 3", results.Failures[0].Errors[0].Error())
}

func TestResultsExitCodeIsFromFirstFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { c.Fail(3, errors.New("first")) })
		c.Run("b", func(c *Context) { c.Fail(-1, errors.New("second")) })
	})
	assert.Len(t, results.Failures, 2)
	assert.Equal(t, 3, results.ExitCode())
	assert.False(t, results.OK())
}

func TestAnyFailed(t *testing.T) {
	var before, after bool
	Run(nil, nil, func(c *Context) {
		before = c.AnyFailed()
		c.Run("a", func(c *Context) { c.Fail(2, errors.New("x")) })
		after = c.AnyFailed()
	})
	assert.False(t, before)
	assert.True(t, after)
}

func TestUnexpectedPanicIsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { panic("oops") })
	})
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: oops")
	assert.Equal(t, 1, results.ExitCode())
}

func TestSkipAndFilter(t *testing.T) {
	logger := &RecordingTestLogger{}
	filter := func(id TestID) bool { return id.String() != "skipped-by-filter" }
	results := Run(filter, logger, func(c *Context) {
		c.Run("skipped-by-filter", func(c *Context) { c.Fail(5, errors.New("should not run")) })
		c.Run("skipped-by-test", func(c *Context) { c.SkipWithReason("not applicable") })
		c.Run("passed", func(c *Context) { c.Debug("hello") })
	})

	assert.True(t, results.OK())
	assert.Equal(t, 0, results.ExitCode())
	assert.Equal(t, []string{
		"started skipped-by-filter",
		"skipped skipped-by-filter (excluded by filter parameters)",
		"started skipped-by-test",
		"skipped skipped-by-test (not applicable)",
		"started passed",
		"passed passed",
	}, logger.Events())
}

func TestNestedTestIDs(t *testing.T) {
	logger := &RecordingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("suite", func(c *Context) {
			c.Run("case", func(c *Context) {
				assert.Equal(t, []string{"suite", "case"}, c.ID().Path)
				c.Fail(9, errors.New("bad"))
			})
		})
	})
	assert.Equal(t, []string{
		"started suite",
		"started suite/case",
		"error suite/case: bad",
		"failed suite/case",
		"passed suite",
	}, logger.Events())
}
