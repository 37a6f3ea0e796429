package gentests

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ArtifactNotFound   ErrorKind = "ArtifactNotFound"
	GenerationFailed   ErrorKind = "GenerationFailed"
	BuildToolNotFound  ErrorKind = "BuildToolNotFound"
	BuildFailed        ErrorKind = "BuildFailed"
	VerificationFailed ErrorKind = "VerificationFailed"
)

// Sentinel values for errors.Is; only the Kind is compared.
var (
	ErrArtifactNotFound   = &StageError{Kind: ArtifactNotFound}
	ErrGenerationFailed   = &StageError{Kind: GenerationFailed}
	ErrBuildToolNotFound  = &StageError{Kind: BuildToolNotFound}
	ErrBuildFailed        = &StageError{Kind: BuildFailed}
	ErrVerificationFailed = &StageError{Kind: VerificationFailed}
)

const (
	exitCodeToolNotFound = -1
	exitCodeFailure      = 1
)

// StageResult is the outcome of one pipeline stage. A non-zero ExitCode stops the pipeline.
type StageResult struct {
	ExitCode int
	Message  string
}

// StageError is how a pipeline stage reports failure. ExitCode is what the whole run exits
// with if this is the first failure.
type StageError struct {
	Kind     ErrorKind
	ExitCode int
	Message  string
	Err      error
}

func (e *StageError) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func (e *StageError) Is(target error) bool {
	t, ok := target.(*StageError)
	return ok && t.Kind == e.Kind
}

// ResultOf converts the error returned by a pipeline stage into its result: a zero exit code
// for nil, the stage's exit code for a StageError, and 1 for anything else.
func ResultOf(err error) StageResult {
	if err == nil {
		return StageResult{}
	}
	var se *StageError
	if errors.As(err, &se) {
		return StageResult{ExitCode: se.ExitCode, Message: err.Error()}
	}
	return StageResult{ExitCode: exitCodeFailure, Message: err.Error()}
}

// ExitCodeOf returns ResultOf(err).ExitCode.
func ExitCodeOf(err error) int {
	return ResultOf(err).ExitCode
}

func stageErrorf(kind ErrorKind, exitCode int, cause error, format string, args ...interface{}) *StageError {
	return &StageError{Kind: kind, ExitCode: exitCode, Message: fmt.Sprintf(format, args...), Err: cause}
}
