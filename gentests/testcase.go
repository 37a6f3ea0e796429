package gentests

import (
	"path/filepath"
)

type GenerationMode string

const (
	// ModeSources passes the case's script to the generator.
	ModeSources GenerationMode = "sources"
	// ModeAssembly passes a prebuilt assembly of the case's script to the generator.
	ModeAssembly GenerationMode = "assembly"
)

const projectsDirName = "projects"

// RegressionOptions are the generator options used when the generator compares its output
// with a reference directory. Empty fields are not passed.
type RegressionOptions struct {
	ReferenceDir string
	OutputDir    string
	TestMode     string
}

// TestCase describes one test. It is created by NewSuite and must not be modified afterward.
type TestCase struct {
	Name string
	// Directory is the case directory relative to the suite's cases directory.
	Directory string
	// Script is the file name of the generator script inside Directory.
	Script      string
	ProjectRoot string
	ExtraArgs   []string
	Modes       []GenerationMode
	// Assembly and AssemblyDir name the prebuilt assembly used by ModeAssembly.
	Assembly    string
	AssemblyDir string
	Regression  *RegressionOptions
	Backend     BuildBackend
	// Verification is nil for cases that only check that generation and build succeed.
	Verification *VerificationRules
}

// CaseLayout is where one test case lives on disk during a run.
type CaseLayout struct {
	// BuildRoot is the case directory; the generator writes its projects beneath it.
	BuildRoot string
	// WorkDir is the directory the generator runs in.
	WorkDir string
	// ScriptPath is the script as passed to the generator, relative to WorkDir.
	ScriptPath string
	ToolsDir   string
}

// ProjectsDir is the directory holding the generated build files.
func (l CaseLayout) ProjectsDir() string {
	return filepath.Join(l.BuildRoot, projectsDirName)
}

// baseName is the last element of the case directory, which the generated build files are
// named after.
func (tc *TestCase) baseName() string {
	return filepath.Base(filepath.FromSlash(tc.Directory))
}
