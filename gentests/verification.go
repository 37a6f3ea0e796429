package gentests

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sharpmake/test-harness/framework"
)

// Check is one expectation about the contents of a build output directory.
type Check interface {
	// Verify returns a description of the unmet expectation, or nil.
	Verify(targetDir string) error
}

// VerificationRules are checked against every target directory in order, stopping at the
// first failed check.
type VerificationRules struct {
	// OutputDir is relative to the case's build root.
	OutputDir  string
	TargetDirs []string
	Checks     []Check
}

// Verify returns a VerificationFailed error for the first check that fails.
func (r *VerificationRules) Verify(buildRoot string, logger framework.Logger) error {
	outputDir := filepath.Join(buildRoot, filepath.FromSlash(r.OutputDir))
	for _, target := range r.TargetDirs {
		targetDir := filepath.Join(outputDir, filepath.FromSlash(target))
		logger.Printf("Verifying build outputs in %s", targetDir)
		for _, check := range r.Checks {
			if err := check.Verify(targetDir); err != nil {
				return stageErrorf(VerificationFailed, exitCodeFailure, nil, "%s: %s", target, err)
			}
		}
	}
	return nil
}

// FileExistsCheck expects every one of Files to exist under SubDir of the target directory.
type FileExistsCheck struct {
	SubDir string
	Files  []string
}

func (c FileExistsCheck) Verify(targetDir string) error {
	for _, f := range c.Files {
		path := filepath.Join(targetDir, filepath.FromSlash(c.SubDir), filepath.FromSlash(f))
		if !isFile(path) {
			return fmt.Errorf("expected file does not exist: %s", path)
		}
	}
	return nil
}

// TextEqualsCheck expects File to contain exactly Content.
type TextEqualsCheck struct {
	File    string
	Content string
}

func (c TextEqualsCheck) Verify(targetDir string) error {
	path := filepath.Join(targetDir, filepath.FromSlash(c.File))
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}
	if string(data) != c.Content {
		return fmt.Errorf("incorrect content in %s: expected %q, got %q", path, c.Content, string(data))
	}
	return nil
}

// BinarySuffixCheck expects File to end with the bytes of Suffix, which a post-build stamping
// step appends.
type BinarySuffixCheck struct {
	File   string
	Suffix []byte
}

func (c BinarySuffixCheck) Verify(targetDir string) error {
	path := filepath.Join(targetDir, filepath.FromSlash(c.File))
	tail, err := readTail(path, len(c.Suffix))
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", path, err)
	}
	if !bytes.Equal(tail, c.Suffix) {
		return fmt.Errorf("incorrect stamping for file %s: expected it to end with %q, but it ends with %q",
			path, c.Suffix, tail)
	}
	return nil
}

// readTail returns the last n bytes of a file, or the whole file if it is shorter.
func readTail(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	offset := info.Size() - int64(n)
	if offset < 0 {
		offset = 0
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}
