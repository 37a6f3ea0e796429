package framework

import (
	"fmt"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID   TestID
	Errors   []error
	ExitCode int
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// ExitCode returns the exit code of the first failed test, or zero if nothing failed.
func (r Results) ExitCode() int {
	if len(r.Failures) == 0 {
		return 0
	}
	return r.Failures[0].ExitCode
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
