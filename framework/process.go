package framework

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/alessio/shellescape"
)

// Command describes one invocation of an external tool.
type Command struct {
	Path string
	Args []string
	// Env contains extra NAME=value entries that are added to the child's environment only.
	Env []string
}

// String renders the command as a shell command line, for logging.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, shellescape.Quote(c.Path))
	for _, a := range c.Args {
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}

// ProcessRunner runs a command in the current working directory and waits for it to exit.
//
// The returned error is non-nil only if the process could not be run at all; a process that
// ran and failed is reported through a non-zero exit code.
type ProcessRunner interface {
	Run(cmd Command, output io.Writer) (int, error)
}

// A process killed by a signal reports signalExitCodeBase plus the signal number, as POSIX
// shells do.
const signalExitCodeBase = 128

func signalExitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return signalExitCodeBase + int(ws.Signal())
	}
	return signalExitCodeBase
}

// ExecRunner is the ProcessRunner that starts real child processes.
type ExecRunner struct{}

func (ExecRunner) Run(cmd Command, output io.Writer) (int, error) {
	if output == nil {
		output = io.Discard
	}
	c := exec.Command(cmd.Path, cmd.Args...)
	c.Stdout = output
	c.Stderr = output
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	err := c.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return signalExitCode(exitErr), nil
	}
	return -1, fmt.Errorf("failed to run %s: %w", cmd.Path, err)
}
