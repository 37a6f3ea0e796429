package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sharpmake/test-harness/framework"
)

// PrintResults summarizes a run. rerun, if not nil, returns a command line that runs one
// failed test case again.
func PrintResults(out io.Writer, suiteName string, results framework.Results, rerun func(framework.TestID) string) {
	cases := 0
	for _, r := range results.Tests {
		if len(r.TestID.Path) >= 2 {
			cases++
		}
	}

	if results.OK() {
		passedColor.Fprintf(out, "%s tests succeeded.", capitalize(suiteName))
		fmt.Fprintf(out, " (%d test cases)\n", cases)
		return
	}

	for _, f := range results.Failures {
		fmt.Fprintf(out, "FAILED: %s (exit code %d)\n", f.TestID, f.ExitCode)
		for _, err := range f.Errors {
			fmt.Fprintf(out, "  %s\n", err)
		}
		if rerun != nil && len(f.TestID.Path) >= 2 {
			fmt.Fprintf(out, "  to run it again: %s\n", rerun(f.TestID))
		}
	}
	failedColor.Fprintln(out, "Test failed.")
}

// capitalize upper-cases the first letter of an ASCII suite name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
