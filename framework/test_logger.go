package framework

import (
	"fmt"
	"sync"
)

type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

func NullTestLogger() TestLogger { return nullTestLogger{} }

// RecordingTestLogger keeps a one-line summary of every event it receives, in order.
type RecordingTestLogger struct {
	events []string
	lock   sync.Mutex
}

func (r *RecordingTestLogger) add(format string, args ...interface{}) {
	r.lock.Lock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
	r.lock.Unlock()
}

func (r *RecordingTestLogger) TestStarted(id TestID) {
	r.add("started %s", id)
}

func (r *RecordingTestLogger) TestError(id TestID, err error) {
	r.add("error %s: %s", id, err)
}

func (r *RecordingTestLogger) TestFinished(id TestID, failed bool, _ CapturedOutput) {
	if failed {
		r.add("failed %s", id)
	} else {
		r.add("passed %s", id)
	}
}

func (r *RecordingTestLogger) TestSkipped(id TestID, reason string) {
	r.add("skipped %s (%s)", id, reason)
}

func (r *RecordingTestLogger) Events() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.events...)
}
