package framework

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// TestHarness holds everything that the tests of one run share: the root of the directory tree
// being tested, the way child processes are started, and the host platform.
type TestHarness struct {
	rootDir  string
	runner   ProcessRunner
	platform string
	logger   Logger
}

// HarnessOption customizes a TestHarness created by NewTestHarness.
type HarnessOption func(*TestHarness)

// WithProcessRunner replaces the default ExecRunner.
func WithProcessRunner(runner ProcessRunner) HarnessOption {
	return func(h *TestHarness) { h.runner = runner }
}

// WithPlatform overrides the host platform, which otherwise is runtime.GOOS.
func WithPlatform(goos string) HarnessOption {
	return func(h *TestHarness) { h.platform = goos }
}

// WithDebugLogger sets the logger for messages that are not associated with any one test.
func WithDebugLogger(logger Logger) HarnessOption {
	return func(h *TestHarness) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewTestHarness creates a TestHarness for the directory tree at rootDir, which must exist.
// A relative rootDir is resolved against the current directory.
func NewTestHarness(rootDir string, options ...HarnessOption) (*TestHarness, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("root directory is not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root directory %s is not a directory", absRoot)
	}

	h := &TestHarness{
		rootDir:  absRoot,
		runner:   ExecRunner{},
		platform: runtime.GOOS,
		logger:   NullLogger(),
	}
	for _, o := range options {
		o(h)
	}
	return h, nil
}

// RootDir returns the absolute path of the tree being tested.
func (h *TestHarness) RootDir() string {
	return h.rootDir
}

// Path joins path elements onto the root directory.
func (h *TestHarness) Path(elem ...string) string {
	return filepath.Join(append([]string{h.rootDir}, elem...)...)
}

// Platform returns the host platform in runtime.GOOS form.
func (h *TestHarness) Platform() string {
	return h.platform
}

// IsWindows returns true if the host platform is Windows.
func (h *TestHarness) IsWindows() bool {
	return h.platform == "windows"
}

func (h *TestHarness) Logger() Logger {
	return h.logger
}

// RunCommand runs a child process in the current working directory, sending its output
// to logger one line at a time.
func (h *TestHarness) RunCommand(cmd Command, logger Logger) (int, error) {
	if logger == nil {
		logger = h.logger
	}
	logger.Printf("Running: %s", cmd)
	if wd, err := os.Getwd(); err != nil {
		logger.Printf("Working dir: unknown (%s)", err)
	} else {
		logger.Printf("Working dir: %s", wd)
	}
	out := NewLineWriter(logger, "> ")
	exitCode, err := h.runner.Run(cmd, out)
	out.Flush()
	if err != nil {
		logger.Printf("Could not run %s: %s", cmd.Path, err)
		return exitCode, err
	}
	logger.Printf("Exit code: %d", exitCode)
	return exitCode, nil
}
