package logger

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Logger is a subsystem logger. All messages are tagged with the subsystem
// name and filtered by the logger's current level before being handed to the
// shared backend.
type Logger struct {
	level uint32 // atomic; holds a Level
	tag   string
	b     *Backend
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32(&l.level, uint32(logLevel))
}

func (l *Logger) print(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.b.write(logLevel, formatEntry(logLevel, l.tag, fmt.Sprint(args...)))
}

func (l *Logger) printf(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.b.write(logLevel, formatEntry(logLevel, l.tag, fmt.Sprintf(format, args...)))
}

// formatEntry renders a single log line:
// 2006-01-02 15:04:05.000 [INF] TAG: message
func formatEntry(logLevel Level, tag string, message string) []byte {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	return []byte(fmt.Sprintf("%s [%s] %s: %s\n", timestamp, logLevel, tag, message))
}

// Trace formats a message using the default formats for its operands and
// writes it at the trace level.
func (l *Logger) Trace(args ...interface{}) { l.print(LevelTrace, args...) }

// Tracef formats a message according to a format specifier and writes it at
// the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.printf(LevelTrace, format, args...) }

// Debug formats a message using the default formats for its operands and
// writes it at the debug level.
func (l *Logger) Debug(args ...interface{}) { l.print(LevelDebug, args...) }

// Debugf formats a message according to a format specifier and writes it at
// the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.printf(LevelDebug, format, args...) }

// Info formats a message using the default formats for its operands and
// writes it at the info level.
func (l *Logger) Info(args ...interface{}) { l.print(LevelInfo, args...) }

// Infof formats a message according to a format specifier and writes it at
// the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.printf(LevelInfo, format, args...) }

// Warn formats a message using the default formats for its operands and
// writes it at the warn level.
func (l *Logger) Warn(args ...interface{}) { l.print(LevelWarn, args...) }

// Warnf formats a message according to a format specifier and writes it at
// the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.printf(LevelWarn, format, args...) }

// Error formats a message using the default formats for its operands and
// writes it at the error level.
func (l *Logger) Error(args ...interface{}) { l.print(LevelError, args...) }

// Errorf formats a message according to a format specifier and writes it at
// the error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.printf(LevelError, format, args...) }

// Critical formats a message using the default formats for its operands and
// writes it at the critical level.
func (l *Logger) Critical(args ...interface{}) { l.print(LevelCritical, args...) }

// Criticalf formats a message according to a format specifier and writes it
// at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) { l.printf(LevelCritical, format, args...) }

var (
	// backendLog is the shared logging backend all subsystem loggers in
	// the application write to. Standard error is attached so subsystems
	// are visible before (or without) a log file being configured.
	backendLog = NewBackend()

	subsystemsMtx sync.Mutex
	subsystems    = make(map[string]*Logger)
)

func init() {
	_ = backendLog.AddLogWriter(nopWriteCloser{os.Stderr}, LevelWarn)
}

// nopWriteCloser adapts a writer that must not be closed, such as standard
// error, to the backend's io.WriteCloser requirement.
type nopWriteCloser struct {
	w interface{ Write(p []byte) (int, error) }
}

func (nwc nopWriteCloser) Write(p []byte) (int, error) { return nwc.w.Write(p) }
func (nopWriteCloser) Close() error                    { return nil }

// RegisterSubSystem returns a logger for subsystemTag, creating it on the
// shared backend if this is the first request for that tag.
func RegisterSubSystem(subsystemTag string) *Logger {
	subsystemsMtx.Lock()
	defer subsystemsMtx.Unlock()
	logger, ok := subsystems[subsystemTag]
	if !ok {
		logger = backendLog.Logger(subsystemTag)
		subsystems[subsystemTag] = logger
	}
	return logger
}

// InitLogDir attaches the given log file to the shared backend. It is called
// once by main-package setup code.
func InitLogDir(logFile string) error {
	return backendLog.AddLogFile(logFile, LevelTrace)
}

// SetLogLevels sets the logging level of all registered subsystems. An error
// is returned if the level string is not recognized.
func SetLogLevels(logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("unknown log level %q", logLevel)
	}
	subsystemsMtx.Lock()
	defer subsystemsMtx.Unlock()
	for _, logger := range subsystems {
		logger.SetLevel(level)
	}
	return nil
}
