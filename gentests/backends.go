package gentests

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sharpmake/test-harness/framework"
	"github.com/sharpmake/test-harness/suitedef"
)

// ErrUnknownBackend is returned by NewBuildBackend for a backend name it does not know.
var ErrUnknownBackend = errors.New("unknown build backend")

const (
	fastBuildTarget      = "All-Configs"
	defaultMSBuildTool   = "msbuild"
	defaultToolsEnvName  = "TOOLS_DIR"
	fastBuildDatabaseExt = ".windows.fdb"
)

// BuildBackend builds the projects that the generator produced for a test case.
type BuildBackend interface {
	Name() string
	Build(h *framework.TestHarness, tc *TestCase, layout CaseLayout, logger framework.Logger) error
}

// NewBuildBackend is the only place where a backend name is mapped to an implementation.
func NewBuildBackend(params suitedef.BuildParams) (BuildBackend, error) {
	switch params.Backend {
	case suitedef.BackendFastBuild:
		return fastBuildBackend{toolPath: params.ToolPath.OrElse("")}, nil
	case suitedef.BackendMSBuild:
		return msBuildBackend{
			toolPath: params.ToolPath.OrElse(defaultMSBuildTool),
			solution: params.Solution.OrElse(""),
		}, nil
	case suitedef.BackendScript:
		return scriptBackend{
			script:  params.Script.OrElse(""),
			envName: params.EnvName.OrElse(defaultToolsEnvName),
		}, nil
	case suitedef.BackendNone, "":
		return noBuildBackend{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, params.Backend)
	}
}

type fastBuildBackend struct {
	toolPath string
}

func (b fastBuildBackend) Name() string { return suitedef.BackendFastBuild }

func (b fastBuildBackend) Build(h *framework.TestHarness, tc *TestCase, layout CaseLayout, logger framework.Logger) error {
	tool := b.toolPath
	if tool == "" {
		t := toolsForPlatform(h.Platform())
		tool = filepath.Join(layout.ToolsDir, "FastBuild", t.fastBuildDir, t.fastBuildExe)
	} else {
		tool = rootRelative(h, tool)
	}
	if !isFile(tool) {
		return stageErrorf(BuildToolNotFound, exitCodeToolNotFound, nil, "cannot find FastBuild at %s", tool)
	}

	projectsDir := layout.ProjectsDir()
	database := filepath.Join(projectsDir, tc.baseName()+fastBuildDatabaseExt)
	if err := os.Remove(database); err != nil && !os.IsNotExist(err) {
		return stageErrorf(BuildFailed, exitCodeFailure, err, "cannot remove stale FastBuild database")
	}

	cmd := framework.Command{
		Path: tool,
		Args: []string{fastBuildTarget, "-monitor", "-nosummaryonerror", "-clean", "-config", tc.baseName() + ".bff"},
	}
	return runBuildCommand(h, projectsDir, cmd, tc, logger)
}

type msBuildBackend struct {
	toolPath string
	solution string
}

func (b msBuildBackend) Name() string { return suitedef.BackendMSBuild }

func (b msBuildBackend) Build(h *framework.TestHarness, tc *TestCase, layout CaseLayout, logger framework.Logger) error {
	toolPath := b.toolPath
	if strings.ContainsAny(toolPath, "/"+string(filepath.Separator)) {
		toolPath = rootRelative(h, toolPath)
	}
	tool, err := exec.LookPath(toolPath)
	if err != nil {
		return stageErrorf(BuildToolNotFound, exitCodeToolNotFound, err, "cannot find MSBuild")
	}
	// The build runs in the projects directory, so a tool found relative to the current one
	// must not stay relative.
	if abs, err := filepath.Abs(tool); err == nil {
		tool = abs
	}
	solution := b.solution
	if solution == "" {
		solution = tc.baseName() + ".sln"
	}
	cmd := framework.Command{Path: tool, Args: []string{solution, "-m"}}
	return runBuildCommand(h, layout.ProjectsDir(), cmd, tc, logger)
}

type scriptBackend struct {
	script  string
	envName string
}

func (b scriptBackend) Name() string { return suitedef.BackendScript }

func (b scriptBackend) Build(h *framework.TestHarness, tc *TestCase, layout CaseLayout, logger framework.Logger) error {
	t := toolsForPlatform(h.Platform())
	script := b.script
	if script == "" {
		script = t.buildScript
	}
	scriptPath := filepath.Join(layout.BuildRoot, filepath.FromSlash(script))
	if !isFile(scriptPath) {
		return stageErrorf(BuildToolNotFound, exitCodeToolNotFound, nil, "cannot find build script %s", scriptPath)
	}
	cmd := framework.Command{
		Path: t.scriptLauncher[0],
		Args: append(append([]string(nil), t.scriptLauncher[1:]...), scriptPath),
		Env:  []string{b.envName + "=" + layout.ToolsDir},
	}
	return runBuildCommand(h, layout.BuildRoot, cmd, tc, logger)
}

// noBuildBackend is used for cases that only test generation.
type noBuildBackend struct{}

func (noBuildBackend) Name() string { return suitedef.BackendNone }

func (noBuildBackend) Build(*framework.TestHarness, *TestCase, CaseLayout, framework.Logger) error {
	return nil
}

func runBuildCommand(h *framework.TestHarness, dir string, cmd framework.Command, tc *TestCase, logger framework.Logger) error {
	var exitCode int
	err := framework.WithWorkingDir(dir, func() error {
		code, err := h.RunCommand(cmd, logger)
		exitCode = code
		return err
	})
	if err != nil {
		return stageErrorf(BuildFailed, exitCodeFailure, err, "could not build %s", tc.Name)
	}
	if exitCode != 0 {
		return stageErrorf(BuildFailed, exitCode, nil, "build of %s exited with code %d", tc.Name, exitCode)
	}
	return nil
}

// rootRelative resolves a path from a suite definition, which like every other path there is
// relative to the root directory.
func rootRelative(h *framework.TestHarness, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return h.Path(filepath.FromSlash(path))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
