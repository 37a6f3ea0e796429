package gentests

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/sharpmake/test-harness/suitedef"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalSuiteParams(cases ...suitedef.TestCaseParams) suitedef.SuiteParams {
	return suitedef.SuiteParams{
		Name:     "custom",
		CasesDir: "cases",
		Generator: suitedef.ArtifactParams{
			Name:     "Generator.exe",
			BaseDirs: []string{"bin"},
		},
		Cases: cases,
	}
}

func TestBuiltInSuitesAreValid(t *testing.T) {
	functional, err := NewSuite(FunctionalSuiteParams(true))
	require.NoError(t, err)
	require.Len(t, functional.Cases, 4)
	assert.Equal(t, []string{"/enableLinkerMultiStamp(true)"}, functional.Cases[0].ExtraArgs)
	assert.Equal(t, suitedef.BackendFastBuild, functional.Cases[0].Backend.Name())
	assert.NotNil(t, functional.Cases[0].Verification)
	assert.Nil(t, functional.Cases[1].Verification)
	assert.Equal(t, suitedef.BackendNone, functional.Cases[3].Backend.Name())
	assert.Equal(t, []string{"/generateDebugSolution"}, functional.Cases[3].ExtraArgs)

	withoutStamping, err := NewSuite(FunctionalSuiteParams(false))
	require.NoError(t, err)
	assert.Empty(t, withoutStamping.Cases[0].ExtraArgs)

	regression, err := NewSuite(RegressionSuiteParams())
	require.NoError(t, err)
	for _, tc := range regression.Cases {
		assert.Equal(t, []GenerationMode{ModeSources, ModeAssembly}, tc.Modes, tc.Name)
		require.NotNil(t, tc.Regression, tc.Name)
	}
}

func TestBuiltInSuiteParamsByName(t *testing.T) {
	_, ok := BuiltInSuiteParams(FunctionalSuiteName, false)
	assert.True(t, ok)
	_, ok = BuiltInSuiteParams(RegressionSuiteName, false)
	assert.True(t, ok)
	_, ok = BuiltInSuiteParams("other", false)
	assert.False(t, ok)
}

func TestNewSuiteDefaults(t *testing.T) {
	suite, err := NewSuite(minimalSuiteParams(suitedef.TestCaseParams{Name: "HelloWorld", Script: "HelloWorld.sharpmake.cs"}))
	require.NoError(t, err)
	tc := suite.Cases[0]
	assert.Equal(t, "HelloWorld", tc.Directory)
	assert.Equal(t, "HelloWorld", tc.ProjectRoot)
	assert.Equal(t, "HelloWorld.dll", tc.Assembly)
	assert.Equal(t, []GenerationMode{ModeSources}, tc.Modes)
	assert.Equal(t, suitedef.BackendNone, tc.Backend.Name())
	assert.Equal(t, "tools", suite.ToolsDir)
}

func TestRegressionCaseProjectRootDefaultsToCurrentDirectory(t *testing.T) {
	suite, err := NewSuite(RegressionSuiteParams())
	require.NoError(t, err)
	byName := make(map[string]TestCase)
	for _, tc := range suite.Cases {
		byName[tc.Name] = tc
	}
	assert.Equal(t, ".", byName["HelloWorld"].ProjectRoot)
	assert.Equal(t, "codebase", byName["CSharpWCF"].ProjectRoot)
	assert.Equal(t, "DotNetOSMultiFrameworksHelloWorld.dll", byName["DotNetOSMultiFrameworksHelloWorld"].Assembly)
	assert.Equal(t, "NetCore/DotNetOSMultiFrameworksHelloWorld", byName["DotNetOSMultiFrameworksHelloWorld"].Directory)
}

func TestNewSuiteRejectsInvalidDefinitions(t *testing.T) {
	valid := suitedef.TestCaseParams{Name: "A", Script: "a.cs"}

	t.Run("unknown backend", func(t *testing.T) {
		tc := valid
		tc.Build = suitedef.BuildParams{Backend: "make"}
		_, err := NewSuite(minimalSuiteParams(tc))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownBackend))
	})

	t.Run("duplicate case", func(t *testing.T) {
		_, err := NewSuite(minimalSuiteParams(valid, valid))
		assert.Error(t, err)
	})

	t.Run("missing script", func(t *testing.T) {
		_, err := NewSuite(minimalSuiteParams(suitedef.TestCaseParams{Name: "A"}))
		assert.Error(t, err)
	})

	t.Run("assembly mode without assemblies", func(t *testing.T) {
		tc := valid
		tc.Modes = []string{suitedef.ModeAssembly}
		_, err := NewSuite(minimalSuiteParams(tc))
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		tc := valid
		tc.Modes = []string{"binary"}
		_, err := NewSuite(minimalSuiteParams(tc))
		assert.Error(t, err)
	})

	t.Run("unknown check", func(t *testing.T) {
		tc := valid
		tc.Verification = &suitedef.VerificationParams{TargetDirs: []string{"debug"}, Checks: []suitedef.CheckParams{{Kind: "size"}}}
		_, err := NewSuite(minimalSuiteParams(tc))
		assert.Error(t, err)
	})

	t.Run("text check without content", func(t *testing.T) {
		tc := valid
		tc.Verification = &suitedef.VerificationParams{
			TargetDirs: []string{"debug"},
			Checks:     []suitedef.CheckParams{{Kind: suitedef.CheckTextEquals, File: "out.txt"}},
		}
		_, err := NewSuite(minimalSuiteParams(tc))
		assert.Error(t, err)
	})

	t.Run("text check expecting empty content", func(t *testing.T) {
		tc := valid
		tc.Verification = &suitedef.VerificationParams{
			TargetDirs: []string{"debug"},
			Checks:     []suitedef.CheckParams{{Kind: suitedef.CheckTextEquals, File: "out.txt", Content: ldvalue.NewOptionalString("")}},
		}
		_, err := NewSuite(minimalSuiteParams(tc))
		assert.NoError(t, err)
	})

	t.Run("missing generator", func(t *testing.T) {
		p := minimalSuiteParams(valid)
		p.Generator = suitedef.ArtifactParams{}
		_, err := NewSuite(p)
		assert.Error(t, err)
	})
}

func TestSuiteLayout(t *testing.T) {
	h := newTestHarness(t, t.TempDir(), &fakeRunner{}, "linux")

	functional, err := NewSuite(FunctionalSuiteParams(false))
	require.NoError(t, err)
	tc := &functional.Cases[0]
	layout := functional.Layout(h, tc)
	assert.Equal(t, h.Path("Sharpmake.FunctionalTests", "FastBuildFunctionalTest"), layout.BuildRoot)
	assert.Equal(t, h.Path("Sharpmake.FunctionalTests"), layout.WorkDir)
	assert.Equal(t, filepath.Join("FastBuildFunctionalTest", "FastBuildFunctionalTest.sharpmake.cs"), layout.ScriptPath)
	assert.Equal(t, h.Path("Sharpmake.FunctionalTests", "FastBuildFunctionalTest", "projects"), layout.ProjectsDir())
	assert.Equal(t, h.Path("tools"), layout.ToolsDir)

	regression, err := NewSuite(RegressionSuiteParams())
	require.NoError(t, err)
	tc = &regression.Cases[0]
	layout = regression.Layout(h, tc)
	assert.Equal(t, h.Path("samples", "ConfigureOrder"), layout.WorkDir)
	assert.Equal(t, "main.sharpmake.cs", layout.ScriptPath)

	q := regression.AssemblyQuery(h, tc)
	assert.Equal(t, "ConfigureOrder.dll", q.Name)
	assert.Equal(t, []string{h.Path("tmp", "samples")}, q.BaseDirs)
	assert.Equal(t, "ConfigureOrder", q.SubDir)
	assert.Equal(t, []string{"net472", "net5.0"}, q.ExcludeDirs)
}
