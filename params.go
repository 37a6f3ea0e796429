package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sharpmake/test-harness/framework"
	"github.com/sharpmake/test-harness/gentests"
	"github.com/sharpmake/test-harness/suitedef"

	"github.com/alessio/shellescape"
)

const defaultLauncher = "mono --debug"

type commandParams struct {
	rootDir             string
	suite               string
	generatorPath       string
	enableMultiStamping bool
	launcher            string
	filters             framework.RegexFilters
	debug               bool
	debugAll            bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.rootDir, "root", ".", "root of the source tree to test")
	fs.StringVar(&c.suite, "suite", gentests.FunctionalSuiteName,
		fmt.Sprintf("%q, %q, or the path of a JSON or YAML suite file",
			gentests.FunctionalSuiteName, gentests.RegressionSuiteName))
	fs.StringVar(&c.generatorPath, "generator", "", "generator executable to use instead of searching the build output")
	fs.BoolVar(&c.enableMultiStamping, "enable-multi-stamping", false, "pass /enableLinkerMultiStamp(true) to the FastBuild functional test")
	fs.StringVar(&c.launcher, "launcher", defaultLauncher, "command that runs the generator on hosts other than Windows")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

func (c *commandParams) launcherArgs() []string {
	return strings.Fields(c.launcher)
}

// suiteParams returns the built-in suite named by -suite, or else loads it as a file.
func (c *commandParams) suiteParams() (suitedef.SuiteParams, error) {
	if p, ok := gentests.BuiltInSuiteParams(c.suite, c.enableMultiStamping); ok {
		return p, nil
	}
	ext := strings.ToLower(filepath.Ext(c.suite))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return suitedef.SuiteParams{}, fmt.Errorf("unknown suite %q", c.suite)
	}
	return suitedef.LoadSuiteFile(c.suite)
}

// rerunCommand returns a command line that runs a single test case again with the same settings.
func (c *commandParams) rerunCommand(program string, id framework.TestID) string {
	var b commandBuilder
	b.add(program, "-root", c.rootDir, "-suite", c.suite)
	if c.generatorPath != "" {
		b.add("-generator", c.generatorPath)
	}
	if c.enableMultiStamping {
		b.add("-enable-multi-stamping")
	}
	if c.launcher != defaultLauncher {
		b.add("-launcher", c.launcher)
	}
	b.add("-run", "^"+regexp.QuoteMeta(id.String())+"$", "-debug")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
