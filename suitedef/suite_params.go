// Package suitedef contains the serializable definitions of test suites: which test cases
// exist, how to find the generator, which build backend each case uses and what its
// outputs are expected to look like.
package suitedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

const (
	BackendFastBuild = "fastbuild"
	BackendMSBuild   = "msbuild"
	BackendScript    = "script"
	BackendNone      = "none"
)

const (
	ModeSources  = "sources"
	ModeAssembly = "assembly"
)

const (
	CheckFileExists   = "file-exists"
	CheckTextEquals   = "text-equals"
	CheckBinarySuffix = "binary-suffix"
)

type SuiteParams struct {
	Name string `json:"name"`
	// CasesDir is the directory, relative to the root, that contains one directory per case.
	CasesDir string `json:"casesDir"`
	// RunInCaseDir selects whether the generator runs in the case directory, with a script
	// path relative to it, or in CasesDir with a script path that includes the case directory.
	RunInCaseDir bool `json:"runInCaseDir,omitempty"`
	// ToolsDir is the directory, relative to the root, that contains build tools.
	ToolsDir   string           `json:"toolsDir,omitempty"`
	Generator  ArtifactParams   `json:"generator"`
	Assemblies *ArtifactParams  `json:"assemblies,omitempty"`
	Cases      []TestCaseParams `json:"cases"`
}

// ArtifactParams describes a versioned output tree to search: <baseDir>/<token>/<framework>/<name>.
type ArtifactParams struct {
	Name        string   `json:"name,omitempty"`
	BaseDirs    []string `json:"baseDirs"`
	Tokens      []string `json:"tokens,omitempty"`
	SubDir      string   `json:"subDir,omitempty"`
	ExcludeDirs []string `json:"excludeDirs,omitempty"`
}

type TestCaseParams struct {
	Name         string                 `json:"name"`
	Directory    string                 `json:"directory,omitempty"`
	Script       string                 `json:"script"`
	ProjectRoot  ldvalue.OptionalString `json:"projectRoot,omitempty"`
	ExtraArgs    []string               `json:"extraArgs,omitempty"`
	Modes        []string               `json:"modes,omitempty"`
	Assembly     ldvalue.OptionalString `json:"assembly,omitempty"`
	AssemblyDir  ldvalue.OptionalString `json:"assemblyDir,omitempty"`
	Regression   *RegressionParams      `json:"regression,omitempty"`
	Build        BuildParams            `json:"build"`
	Verification *VerificationParams    `json:"verification,omitempty"`
}

type RegressionParams struct {
	ReferenceDir ldvalue.OptionalString `json:"referenceDir,omitempty"`
	OutputDir    ldvalue.OptionalString `json:"outputDir,omitempty"`
	TestMode     ldvalue.OptionalString `json:"testMode,omitempty"`
}

type BuildParams struct {
	Backend  string                 `json:"backend"`
	ToolPath ldvalue.OptionalString `json:"toolPath,omitempty"`
	Solution ldvalue.OptionalString `json:"solution,omitempty"`
	Script   ldvalue.OptionalString `json:"script,omitempty"`
	EnvName  ldvalue.OptionalString `json:"envName,omitempty"`
}

type VerificationParams struct {
	// OutputDir is relative to the case directory.
	OutputDir  string        `json:"outputDir"`
	TargetDirs []string      `json:"targetDirs"`
	Checks     []CheckParams `json:"checks"`
}

type CheckParams struct {
	Kind    string                 `json:"kind"`
	SubDir  ldvalue.OptionalString `json:"subDir,omitempty"`
	Files   []string               `json:"files,omitempty"`
	File    string                 `json:"file,omitempty"`
	Content ldvalue.OptionalString `json:"content,omitempty"`
	Suffix  ldvalue.OptionalString `json:"suffix,omitempty"`
}
