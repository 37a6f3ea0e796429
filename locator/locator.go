// Package locator finds build artifacts, such as the generator executable or a compiled
// assembly, in output trees that are laid out as <base>/<configuration>/<framework>/<file>.
package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrArtifactNotFound is matched by every error that this package returns for a missing artifact.
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactQuery describes where an artifact may be.
//
// For every base directory, and then for every token in order, the directory
// <base>/<token>[/<SubDir>] is searched: each of its immediate subdirectories, except those
// named in ExcludeDirs, is checked for a file called Name. Tokens are matched against
// directory names without regard to case, so a token of "Debug" finds a "debug" directory.
type ArtifactQuery struct {
	Name        string
	BaseDirs    []string
	Tokens      []string
	SubDir      string
	ExcludeDirs []string
}

// NotFoundError reports that no combination of base directory, token and subdirectory
// contained the artifact.
type NotFoundError struct {
	Name     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("cannot find %s", e.Name)
	}
	return fmt.Sprintf("cannot find %s (searched %s)", e.Name, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrArtifactNotFound
}

// Locate returns the absolute path of the first file matching the query. When several
// framework subdirectories contain the artifact, callers should not depend on which one
// is returned.
func Locate(q ArtifactQuery) (string, error) {
	var searched []string
	for _, base := range q.BaseDirs {
		absBase, err := filepath.Abs(base)
		if err != nil {
			return "", err
		}
		for _, token := range q.Tokens {
			tokenDir, ok := findDirFold(absBase, token)
			if !ok {
				continue
			}
			dir := tokenDir
			if q.SubDir != "" {
				dir = filepath.Join(tokenDir, q.SubDir)
			}
			searched = append(searched, dir)
			if path, ok := searchFrameworkDirs(dir, q.Name, q.ExcludeDirs); ok {
				return path, nil
			}
		}
	}
	return "", &NotFoundError{Name: q.Name, Searched: searched}
}

// ResolveExplicit checks a path that was given directly instead of being searched for, and
// returns it in absolute form.
func ResolveExplicit(path string) (string, error) {
	if !isFile(path) {
		return "", &NotFoundError{Name: path}
	}
	return filepath.Abs(path)
}

func findDirFold(parent, name string) (string, bool) {
	exact := filepath.Join(parent, name)
	if isDir(exact) {
		return exact, true
	}
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), name) {
			return filepath.Join(parent, e.Name()), true
		}
	}
	return "", false
}

func searchFrameworkDirs(dir, name string, exclude []string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() || isExcluded(e.Name(), exclude) {
			continue
		}
		path := filepath.Join(dir, e.Name(), name)
		if isFile(path) {
			return path, true
		}
	}
	return "", false
}

func isExcluded(name string, exclude []string) bool {
	for _, x := range exclude {
		if strings.EqualFold(name, x) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
