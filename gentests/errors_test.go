package gentests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageErrorMatchesKind(t *testing.T) {
	cause := errors.New("permission denied")
	err := stageErrorf(BuildFailed, 4, cause, "could not build %s", "HelloWorld")

	assert.Equal(t, "BuildFailed: could not build HelloWorld: permission denied", err.Error())
	assert.True(t, errors.Is(err, ErrBuildFailed))
	assert.False(t, errors.Is(err, ErrBuildToolNotFound))
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("case failed: %w", err)
	assert.True(t, errors.Is(wrapped, ErrBuildFailed))
	assert.Equal(t, 4, ExitCodeOf(wrapped))
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, StageResult{}, ResultOf(nil))
	assert.Equal(t, StageResult{ExitCode: -1, Message: "BuildToolNotFound: cannot find FastBuild"},
		ResultOf(stageErrorf(BuildToolNotFound, exitCodeToolNotFound, nil, "cannot find FastBuild")))
	assert.Equal(t, StageResult{ExitCode: 1, Message: "unexpected"}, ResultOf(errors.New("unexpected")))
}
