package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sharpmake/test-harness/framework"
	"github.com/sharpmake/test-harness/gentests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	suiteParams, err := params.suiteParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid suite: %s\n", err)
		os.Exit(1)
	}
	suite, err := gentests.NewSuite(suiteParams)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid suite: %s\n", err)
		os.Exit(1)
	}

	harness, err := framework.NewTestHarness(params.rootDir, framework.WithDebugLogger(mainDebugLogger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid root directory: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running %s tests in %s\n", suite.Name, harness.RootDir())

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	opts := gentests.RunOptions{
		GeneratorPath: params.generatorPath,
		Launcher:      params.launcherArgs(),
	}
	results := gentests.RunTestSuite(harness, suite, opts, params.filters.AsFilter, testLogger)

	fmt.Println()
	PrintResults(os.Stdout, suite.Name, results, func(id framework.TestID) string {
		return params.rerunCommand(os.Args[0], id)
	})
	os.Exit(results.ExitCode())
}
