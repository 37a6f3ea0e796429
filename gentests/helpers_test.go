package gentests

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sharpmake/test-harness/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Command framework.Command
	Dir     string
}

// fakeRunner records every command instead of running it. If handler is set, it decides the
// outcome; otherwise every command succeeds.
type fakeRunner struct {
	calls   []recordedCall
	handler func(cmd framework.Command) (int, error)
}

func (r *fakeRunner) Run(cmd framework.Command, output io.Writer) (int, error) {
	wd, _ := os.Getwd()
	r.calls = append(r.calls, recordedCall{Command: cmd, Dir: wd})
	if r.handler != nil {
		return r.handler(cmd)
	}
	return 0, nil
}

func newTestHarness(t *testing.T, root string, runner framework.ProcessRunner, platform string) *framework.TestHarness {
	h, err := framework.NewTestHarness(root, framework.WithProcessRunner(runner), framework.WithPlatform(platform))
	require.NoError(t, err)
	return h
}

func writeFile(t *testing.T, path string, data string) string {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o755))
	return path
}

func mkdir(t *testing.T, path string) string {
	require.NoError(t, os.MkdirAll(path, 0o755))
	return path
}

// realPath resolves symlinks so that directories reported by os.Getwd can be compared with
// the ones we constructed, on systems where the temporary directory is behind a symlink.
func realPath(t *testing.T, path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func assertSameDir(t *testing.T, expected, actual string) {
	assert.Equal(t, realPath(t, expected), realPath(t, actual))
}

// keepWorkingDir restores the working directory at the end of a test, so that a test that
// fails halfway does not affect the others.
func keepWorkingDir(t *testing.T) string {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return wd
}
