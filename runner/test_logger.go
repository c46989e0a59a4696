package runner

import "github.com/jowi/testlib/framework"

// TestLogger receives the progress of a suite run.
type TestLogger interface {
	TestStarted(index int, name string)
	TestFinished(index int, name string, result framework.TestResult)
	TestSkipped(index int, name string, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(int, string)                        {}
func (n nullTestLogger) TestFinished(int, string, framework.TestResult) {}
func (n nullTestLogger) TestSkipped(int, string, string)                {}
