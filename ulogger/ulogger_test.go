package ulogger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/bsv-blockchain/utxoledger/ulogger"
	"github.com/ordishs/gocore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var lines []map[string]interface{}

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		lines = append(lines, entry)
	}

	return lines
}

func TestLogLevels(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := ulogger.New("txhandler",
		ulogger.WithWriter(buf),
		ulogger.WithPretty(false),
		ulogger.WithLevel("WARN"),
	)

	logger.Debugf("debug %d", 1)
	logger.Infof("info %d", 2)
	logger.Warnf("warn %d", 3)
	logger.Errorf("error %d", 4)

	lines := jsonLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "warn 3", lines[0]["message"])
	assert.Equal(t, "txhandler", lines[0]["service"])
	assert.Equal(t, "error", lines[1]["level"])

	assert.Equal(t, int(gocore.WARN), logger.LogLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected int
	}{
		{"DEBUG", int(gocore.DEBUG)},
		{"info", int(gocore.INFO)},
		{"WARN", int(gocore.WARN)},
		{"ERROR", int(gocore.ERROR)},
		{"FATAL", int(gocore.FATAL)},
		{"nonsense", int(gocore.INFO)},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := ulogger.NewZeroLogger("test", ulogger.WithWriter(&bytes.Buffer{}), ulogger.WithPretty(false))
			logger.SetLogLevel(tt.level)
			assert.Equal(t, tt.expected, logger.LogLevel())
		})
	}
}

func TestNewChildKeepsWriterAndLevel(t *testing.T) {
	buf := &bytes.Buffer{}

	parent := ulogger.NewZeroLogger("parent", ulogger.WithWriter(buf), ulogger.WithPretty(false), ulogger.WithLevel("DEBUG"))
	child := parent.New("child")

	child.Debugf("from child")

	lines := jsonLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "child", lines[0]["service"])
	assert.Equal(t, "from child", lines[0]["message"])

	dup := parent.Duplicate(ulogger.WithLevel("ERROR"))
	dup.Infof("dropped")
	assert.Len(t, jsonLines(t, buf), 1)
}

func TestPrettyOutput(t *testing.T) {
	buf := &bytes.Buffer{}

	logger := ulogger.NewZeroLogger("pool", ulogger.WithWriter(buf), ulogger.WithPretty(true))
	logger.Infof("hello %s", "world")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "pool")
	assert.Contains(t, out, "hello world")
}

func TestNewGoCoreLogger(t *testing.T) {
	t.Run("with empty service name", func(t *testing.T) {
		logger := ulogger.NewGoCoreLogger("")
		require.NotNil(t, logger)
	})

	t.Run("selected by logger type", func(t *testing.T) {
		logger := ulogger.New("test", ulogger.WithLoggerType("gocore"), ulogger.WithLevel("ERROR"))
		_, ok := logger.(*ulogger.GoCoreLogger)
		require.True(t, ok)

		dup := logger.Duplicate(ulogger.WithSkipFrame(2))
		require.NotNil(t, dup)
	})
}

type recordingT struct {
	errors []string
	logs   []string
	fatals []string
}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {}

func (r *recordingT) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func TestErrorTestLogger(t *testing.T) {
	rt := &recordingT{}
	logger := ulogger.NewErrorTestLogger(rt)

	logger.Infof("ignored")
	logger.Errorf("boom %d", 1)
	require.Len(t, rt.errors, 1)
	assert.Contains(t, rt.errors[0], "ERR_LEVEL boom 1")

	logger.SkipCancelOnFail(true)
	logger.Errorf("soft")
	require.Len(t, rt.errors, 1)
	require.Len(t, rt.logs, 1)

	logger.Shutdown()
	logger.Errorf("after shutdown")
	require.Len(t, rt.logs, 1)
}

func TestTestLogger(t *testing.T) {
	var logger ulogger.Logger = ulogger.TestLogger{}

	logger.Infof("nothing")
	require.NotNil(t, logger.New("x"))
	require.Equal(t, 0, logger.LogLevel())
}

func TestVerboseTestLogger(t *testing.T) {
	rt := &recordingT{}
	logger := ulogger.NewVerboseTestLogger(rt)

	assert.Equal(t, int(gocore.DEBUG), logger.LogLevel())

	logger.Debugf("seeded %d", 3)

	child := logger.New("branch-1", ulogger.WithLevel("WARN"))
	child.Infof("dropped")
	child.Warnf("slow epoch %d", 2)

	require.Len(t, rt.logs, 2)
	assert.Equal(t, "[DEBUG] seeded 3", rt.logs[0])
	assert.Equal(t, "[WARN][branch-1] slow epoch 2", rt.logs[1])
	assert.Equal(t, int(gocore.WARN), child.LogLevel())

	dup := child.Duplicate()
	dup.Errorf("boom")
	require.Len(t, rt.logs, 3)
	assert.Equal(t, "[ERROR][branch-1] boom", rt.logs[2])

	logger.SetLogLevel("nonsense")
	assert.Equal(t, int(gocore.INFO), logger.LogLevel())

	logger.Fatalf("stop %s", "now")
	require.Len(t, rt.fatals, 1)
	assert.Equal(t, "[FATAL] stop now", rt.fatals[0])

	var _ ulogger.Logger = ulogger.NewVerboseTestLogger(t)
}
