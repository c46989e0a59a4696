package framework

import (
	"sync"

	"github.com/jowi/testlib/logging"
)

var (
	captureLock   sync.Mutex
	activeCapture *logging.CapturingLogger
)

// Debugf records a debug message for the test that is currently running. The messages are
// attached to its TestResult, and a runner decides whether to show them. Outside of a running
// test, Debugf does nothing.
func Debugf(format string, args ...interface{}) {
	captureLock.Lock()
	c := activeCapture
	captureLock.Unlock()
	if c != nil {
		c.Printf(format, args...)
	}
}

// DebugLogger returns a Logger that writes to Debugf, for code that takes a logging.Logger.
func DebugLogger() logging.Logger {
	return debugLogger{}
}

type debugLogger struct{}

func (debugLogger) Printf(message string, args ...interface{}) {
	Debugf(message, args...)
}

func beginCapture() *logging.CapturingLogger {
	c := &logging.CapturingLogger{}
	captureLock.Lock()
	activeCapture = c
	captureLock.Unlock()
	return c
}

func endCapture(c *logging.CapturingLogger) {
	captureLock.Lock()
	if activeCapture == c {
		activeCapture = nil
	}
	captureLock.Unlock()
}
