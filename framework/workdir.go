package framework

import (
	"fmt"
	"os"
)

// WithWorkingDir changes the process working directory to dir, calls action, and then changes
// back to the directory that was current before the call. The previous directory is restored
// whether action returns normally, returns an error, or panics; a panic is propagated after
// the directory has been restored.
//
// If the directory cannot be restored, that error is returned unless action already failed.
func WithWorkingDir(dir string, action func() error) (err error) {
	previous, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine current directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("cannot change directory to %s: %w", dir, err)
	}
	defer func() {
		if restoreErr := os.Chdir(previous); restoreErr != nil && err == nil {
			err = fmt.Errorf("cannot restore directory %s: %w", previous, restoreErr)
		}
	}()
	return action()
}
