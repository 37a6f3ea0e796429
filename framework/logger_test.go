package framework

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func messages(output CapturedOutput) []string {
	var ret []string
	for _, m := range output {
		ret = append(ret, m.Message)
	}
	return ret
}

func TestLineWriterLogsCompleteLines(t *testing.T) {
	var logger CapturingLogger
	w := NewLineWriter(&logger, "> ")

	_, _ = w.Write([]byte("first line\r\nsecond "))
	assert.Equal(t, []string{"> first line"}, messages(logger.Output()))

	_, _ = w.Write([]byte("line\n\nthird"))
	assert.Equal(t, []string{"> first line", "> second line", "> "}, messages(logger.Output()))

	w.Flush()
	assert.Equal(t, []string{"> first line", "> second line", "> ", "> third"}, messages(logger.Output()))

	w.Flush()
	assert.Len(t, logger.Output(), 4)
}

func TestLineWriterWithNilLogger(t *testing.T) {
	w := NewLineWriter(nil, "")
	n, err := w.Write([]byte("ignored\n"))
	assert.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestCapturedOutputDump(t *testing.T) {
	when := time.Date(2022, 3, 4, 5, 6, 7, 8000000, time.UTC)
	output := CapturedOutput{{Time: when, Message: "hello"}}
	var buf bytes.Buffer
	output.Dump(&buf, "  ")
	assert.Equal(t, "  [2022-03-04 05:06:07.008] hello\n", buf.String())
}
