package gentests

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sharpmake/test-harness/framework"
	"github.com/sharpmake/test-harness/locator"
	"github.com/sharpmake/test-harness/suitedef"
)

var defaultConfigTokens = []string{"Debug", "Release"}

// Suite is an ordered list of test cases, along with where to find the generator and the
// prebuilt assemblies that the cases use.
type Suite struct {
	Name         string
	CasesDir     string
	RunInCaseDir bool
	ToolsDir     string
	Generator    suitedef.ArtifactParams
	Assemblies   *suitedef.ArtifactParams
	Cases        []TestCase
}

// RunOptions are the parameters of one run that do not come from the suite definition.
type RunOptions struct {
	// GeneratorPath, if set, is used instead of searching for the generator.
	GeneratorPath string
	// Launcher is prepended to the generator command on hosts other than Windows.
	Launcher []string
}

// NewSuite validates a suite definition. Every problem that could stop a test case from
// being run, such as an unknown build backend, is reported here rather than during the run.
func NewSuite(params suitedef.SuiteParams) (*Suite, error) {
	if params.Name == "" {
		return nil, errors.New("suite has no name")
	}
	if params.Generator.Name == "" || len(params.Generator.BaseDirs) == 0 {
		return nil, fmt.Errorf("suite %s: generator name and base directories are required", params.Name)
	}
	s := &Suite{
		Name:         params.Name,
		CasesDir:     params.CasesDir,
		RunInCaseDir: params.RunInCaseDir,
		ToolsDir:     params.ToolsDir,
		Generator:    params.Generator,
		Assemblies:   params.Assemblies,
	}
	if s.ToolsDir == "" {
		s.ToolsDir = "tools"
	}
	seen := make(map[string]bool)
	for _, cp := range params.Cases {
		tc, err := newTestCase(cp, s)
		if err != nil {
			return nil, fmt.Errorf("suite %s: %w", params.Name, err)
		}
		if seen[tc.Name] {
			return nil, fmt.Errorf("suite %s: duplicate test case %s", params.Name, tc.Name)
		}
		seen[tc.Name] = true
		s.Cases = append(s.Cases, tc)
	}
	return s, nil
}

func newTestCase(p suitedef.TestCaseParams, s *Suite) (TestCase, error) {
	if p.Name == "" {
		return TestCase{}, errors.New("test case has no name")
	}
	if p.Script == "" {
		return TestCase{}, fmt.Errorf("test case %s has no script", p.Name)
	}
	tc := TestCase{
		Name:      p.Name,
		Directory: p.Directory,
		Script:    p.Script,
		ExtraArgs: append([]string(nil), p.ExtraArgs...),
	}
	if tc.Directory == "" {
		tc.Directory = p.Name
	}
	tc.Assembly = p.Assembly.OrElse(tc.Directory + ".dll")
	tc.AssemblyDir = p.AssemblyDir.OrElse(tc.Directory)

	if r := p.Regression; r != nil {
		tc.Regression = &RegressionOptions{
			ReferenceDir: r.ReferenceDir.OrElse(""),
			OutputDir:    r.OutputDir.OrElse(""),
			TestMode:     r.TestMode.OrElse(""),
		}
		tc.ProjectRoot = p.ProjectRoot.OrElse(".")
	} else {
		tc.ProjectRoot = p.ProjectRoot.OrElse(tc.Directory)
	}

	for _, m := range p.Modes {
		switch GenerationMode(m) {
		case ModeSources:
		case ModeAssembly:
			if s.Assemblies == nil {
				return TestCase{}, fmt.Errorf("test case %s uses assembly mode but the suite defines no assemblies", p.Name)
			}
		default:
			return TestCase{}, fmt.Errorf("test case %s has unknown generation mode %q", p.Name, m)
		}
		tc.Modes = append(tc.Modes, GenerationMode(m))
	}
	if len(tc.Modes) == 0 {
		tc.Modes = []GenerationMode{ModeSources}
	}

	backend, err := NewBuildBackend(p.Build)
	if err != nil {
		return TestCase{}, fmt.Errorf("test case %s: %w", p.Name, err)
	}
	tc.Backend = backend

	if p.Verification != nil {
		rules, err := newVerificationRules(*p.Verification)
		if err != nil {
			return TestCase{}, fmt.Errorf("test case %s: %w", p.Name, err)
		}
		tc.Verification = rules
	}
	return tc, nil
}

func newVerificationRules(p suitedef.VerificationParams) (*VerificationRules, error) {
	if len(p.TargetDirs) == 0 {
		return nil, errors.New("verification has no target directories")
	}
	rules := &VerificationRules{
		OutputDir:  p.OutputDir,
		TargetDirs: append([]string(nil), p.TargetDirs...),
	}
	for _, cp := range p.Checks {
		switch cp.Kind {
		case suitedef.CheckFileExists:
			if len(cp.Files) == 0 {
				return nil, errors.New("file-exists check has no files")
			}
			rules.Checks = append(rules.Checks, FileExistsCheck{SubDir: cp.SubDir.OrElse(""), Files: cp.Files})
		case suitedef.CheckTextEquals:
			if cp.File == "" || !cp.Content.IsDefined() {
				return nil, errors.New("text-equals check needs a file and content")
			}
			rules.Checks = append(rules.Checks, TextEqualsCheck{File: cp.File, Content: cp.Content.StringValue()})
		case suitedef.CheckBinarySuffix:
			if cp.File == "" || cp.Suffix.OrElse("") == "" {
				return nil, errors.New("binary-suffix check needs a file and a non-empty suffix")
			}
			rules.Checks = append(rules.Checks, BinarySuffixCheck{File: cp.File, Suffix: []byte(cp.Suffix.StringValue())})
		default:
			return nil, fmt.Errorf("unknown verification check %q", cp.Kind)
		}
	}
	return rules, nil
}

// Layout resolves where a test case lives on disk for a run rooted at h.RootDir().
func (s *Suite) Layout(h *framework.TestHarness, tc *TestCase) CaseLayout {
	casesDir := h.Path(filepath.FromSlash(s.CasesDir))
	caseDir := filepath.FromSlash(tc.Directory)
	layout := CaseLayout{
		BuildRoot: filepath.Join(casesDir, caseDir),
		ToolsDir:  h.Path(filepath.FromSlash(s.ToolsDir)),
	}
	if s.RunInCaseDir {
		layout.WorkDir = layout.BuildRoot
		layout.ScriptPath = tc.Script
	} else {
		layout.WorkDir = casesDir
		layout.ScriptPath = filepath.Join(caseDir, tc.Script)
	}
	return layout
}

// GeneratorQuery returns the search for the generator executable.
func (s *Suite) GeneratorQuery(h *framework.TestHarness) locator.ArtifactQuery {
	return artifactQuery(h, s.Generator, s.Generator.Name, filepath.FromSlash(s.Generator.SubDir))
}

// AssemblyQuery returns the search for the prebuilt assembly of a test case.
func (s *Suite) AssemblyQuery(h *framework.TestHarness, tc *TestCase) locator.ArtifactQuery {
	var p suitedef.ArtifactParams
	if s.Assemblies != nil {
		p = *s.Assemblies
	}
	return artifactQuery(h, p, tc.Assembly, filepath.FromSlash(tc.AssemblyDir))
}

func artifactQuery(h *framework.TestHarness, p suitedef.ArtifactParams, name, subDir string) locator.ArtifactQuery {
	q := locator.ArtifactQuery{
		Name:        name,
		Tokens:      p.Tokens,
		SubDir:      subDir,
		ExcludeDirs: p.ExcludeDirs,
	}
	if len(q.Tokens) == 0 {
		q.Tokens = defaultConfigTokens
	}
	for _, d := range p.BaseDirs {
		q.BaseDirs = append(q.BaseDirs, h.Path(filepath.FromSlash(d)))
	}
	return q
}

// ResolveGenerator finds the generator executable, or checks the one given in opts.
func (s *Suite) ResolveGenerator(h *framework.TestHarness, opts RunOptions) (Generator, error) {
	var path string
	var err error
	if opts.GeneratorPath != "" {
		path, err = locator.ResolveExplicit(opts.GeneratorPath)
	} else {
		path, err = locator.Locate(s.GeneratorQuery(h))
	}
	if err != nil {
		return Generator{}, &StageError{Kind: ArtifactNotFound, ExitCode: exitCodeFailure, Message: "generator", Err: err}
	}
	return Generator{Path: path, Launcher: opts.Launcher}, nil
}
