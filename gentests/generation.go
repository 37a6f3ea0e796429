package gentests

import (
	"fmt"
	"strings"

	"github.com/sharpmake/test-harness/framework"
)

// Generator is the resolved generator executable, plus the launcher that must run it on hosts
// other than Windows (for instance "mono --debug").
type Generator struct {
	Path     string
	Launcher []string
}

// GeneratorArgs returns the generator options for one run of a test case, in the order the
// generator expects them.
func GeneratorArgs(tc *TestCase, layout CaseLayout, mode GenerationMode, assemblyPath string) []string {
	var args []string
	if mode == ModeAssembly {
		args = append(args, quotedOption("assemblies", assemblyPath))
	} else {
		args = append(args, quotedOption("sources", layout.ScriptPath))
	}
	if r := tc.Regression; r != nil {
		if r.ReferenceDir != "" {
			args = append(args, quotedOption("referencedir", r.ReferenceDir))
		}
		if r.OutputDir != "" {
			args = append(args, quotedOption("outputdir", r.OutputDir))
		}
		args = append(args, quotedOption("remaproot", tc.ProjectRoot))
		if r.TestMode != "" {
			args = append(args, quotedOption("test", r.TestMode))
		}
	}
	args = append(args, "/verbose")
	return append(args, tc.ExtraArgs...)
}

// quotedOption renders an option whose value is a string, which the generator expects in the
// form /name(@'value') so that the value may contain spaces.
func quotedOption(name, value string) string {
	return fmt.Sprintf("/%s(@'%s')", name, value)
}

// GeneratorCommand builds the command line for the generator. All the options are passed as a
// single argument.
func GeneratorCommand(h *framework.TestHarness, gen Generator, args []string) framework.Command {
	joined := strings.Join(args, " ")
	if h.IsWindows() || len(gen.Launcher) == 0 {
		return framework.Command{Path: gen.Path, Args: []string{joined}}
	}
	launcherArgs := append(append([]string(nil), gen.Launcher[1:]...), gen.Path, joined)
	return framework.Command{Path: gen.Launcher[0], Args: launcherArgs}
}

// Generate runs the generator for one test case in the case's working directory. The previous
// working directory is restored afterward, whatever the outcome.
func Generate(
	h *framework.TestHarness,
	tc *TestCase,
	layout CaseLayout,
	mode GenerationMode,
	assemblyPath string,
	gen Generator,
	logger framework.Logger,
) error {
	cmd := GeneratorCommand(h, gen, GeneratorArgs(tc, layout, mode, assemblyPath))
	var exitCode int
	err := framework.WithWorkingDir(layout.WorkDir, func() error {
		code, err := h.RunCommand(cmd, logger)
		exitCode = code
		return err
	})
	if err != nil {
		return stageErrorf(GenerationFailed, exitCodeFailure, err, "could not run generator for %s", tc.Name)
	}
	if exitCode != 0 {
		return stageErrorf(GenerationFailed, exitCode, nil, "generator exited with code %d for %s (%s mode)",
			exitCode, tc.Name, mode)
	}
	return nil
}
