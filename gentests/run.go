package gentests

import (
	"path/filepath"

	"github.com/sharpmake/test-harness/framework"
	"github.com/sharpmake/test-harness/locator"
)

// RunTestSuite runs the cases of a suite in order and stops at the first failure. The test IDs
// are <suite name>/<case name>; filter is only applied to cases. The working directory is the
// root directory while the suite runs, and is restored when it finishes.
func RunTestSuite(
	h *framework.TestHarness,
	suite *Suite,
	opts RunOptions,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	caseFilter := func(id framework.TestID) bool {
		return len(id.Path) < 2 || filter == nil || filter(id)
	}

	if opts.GeneratorPath != "" && !filepath.IsAbs(opts.GeneratorPath) {
		// Relative to the directory the harness was started in, not to the root.
		if abs, err := filepath.Abs(opts.GeneratorPath); err == nil {
			opts.GeneratorPath = abs
		}
	}

	var results framework.Results
	err := framework.WithWorkingDir(h.RootDir(), func() error {
		results = framework.Run(caseFilter, testLogger, func(c *framework.Context) {
			c.Run(suite.Name, func(c *framework.Context) {
				gen, err := suite.ResolveGenerator(h, opts)
				if err != nil {
					c.Fail(ExitCodeOf(err), err)
				}
				c.Debug("Using generator %s", gen.Path)
				h.Logger().Printf("Using generator %s", gen.Path)

				for i := range suite.Cases {
					if c.AnyFailed() {
						return
					}
					tc := &suite.Cases[i]
					c.Run(tc.Name, func(c *framework.Context) {
						runTestCase(c, h, suite, tc, gen)
					})
				}
			})
		})
		return nil
	})
	if err != nil {
		// The root directory was checked when the harness was created, so this only happens if
		// it has been removed since then.
		return framework.Run(nil, testLogger, func(c *framework.Context) {
			c.Run(suite.Name, func(c *framework.Context) { c.Fail(exitCodeFailure, err) })
		})
	}
	return results
}

func runTestCase(c *framework.Context, h *framework.TestHarness, suite *Suite, tc *TestCase, gen Generator) {
	layout := suite.Layout(h, tc)
	logger := c.DebugLogger()

	for _, mode := range tc.Modes {
		var assemblyPath string
		if mode == ModeAssembly {
			path, err := locator.Locate(suite.AssemblyQuery(h, tc))
			if err != nil {
				failStage(c, &StageError{Kind: ArtifactNotFound, ExitCode: exitCodeFailure, Message: "assembly", Err: err})
			}
			assemblyPath = path
		}
		logger.Printf("Generating %s in %s mode", tc.Name, mode)
		if err := Generate(h, tc, layout, mode, assemblyPath, gen, logger); err != nil {
			failStage(c, err)
		}
	}

	logger.Printf("Building %s with %s", tc.Name, tc.Backend.Name())
	if err := tc.Backend.Build(h, tc, layout, logger); err != nil {
		failStage(c, err)
	}

	if tc.Verification != nil {
		if err := tc.Verification.Verify(layout.BuildRoot, logger); err != nil {
			failStage(c, err)
		}
	}
}

func failStage(c *framework.Context, err error) {
	result := ResultOf(err)
	c.Debug("Stage failed with exit code %d", result.ExitCode)
	c.Fail(result.ExitCode, err)
}
