package ulogger

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// VerboseT is the part of *testing.T the verbose logger writes to.
type VerboseT interface {
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// VerboseTestLogger sends every line at or above its level to t.Logf, prefixed with the
// level and service, so the lines show up under go test -v next to the failing test.
type VerboseTestLogger struct {
	t       VerboseT
	service string
	level   zerolog.Level
	mu      *sync.Mutex
}

func NewVerboseTestLogger(t VerboseT, options ...Option) *VerboseTestLogger {
	opts := DefaultOptions()
	opts.logLevel = "DEBUG"

	for _, o := range options {
		o(opts)
	}

	l := &VerboseTestLogger{t: t, mu: &sync.Mutex{}}
	l.SetLogLevel(opts.logLevel)

	return l
}

func (l *VerboseTestLogger) LogLevel() int {
	return gocoreLevel(l.level)
}

func (l *VerboseTestLogger) SetLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	l.level = parsed
}

// New shares the parent's testing.T and lock, only the service prefix changes.
func (l *VerboseTestLogger) New(service string, options ...Option) Logger {
	child := &VerboseTestLogger{t: l.t, service: service, level: l.level, mu: l.mu}

	opts := DefaultOptions()
	opts.logLevel = l.level.String()

	for _, o := range options {
		o(opts)
	}

	child.SetLogLevel(opts.logLevel)

	return child
}

func (l *VerboseTestLogger) Duplicate(options ...Option) Logger {
	return l.New(l.service, options...)
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.log(zerolog.DebugLevel, format, args...)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.log(zerolog.InfoLevel, format, args...)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.log(zerolog.WarnLevel, format, args...)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.log(zerolog.ErrorLevel, format, args...)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Fatalf(l.prefix(zerolog.FatalLevel)+format, args...)
}

func (l *VerboseTestLogger) log(level zerolog.Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Logf(l.prefix(level)+format, args...)
}

func (l *VerboseTestLogger) prefix(level zerolog.Level) string {
	if l.service == "" {
		return "[" + strings.ToUpper(level.String()) + "] "
	}

	return "[" + strings.ToUpper(level.String()) + "][" + l.service + "] "
}
