package framework

import "fmt"

// AssertionFailure is raised by assertions when an expected condition does not hold. It is
// always classified under its own kind, ahead of the generic error kind.
type AssertionFailure struct {
	Message string
}

func (a *AssertionFailure) Error() string {
	return a.Message
}

// Fail stops the running test with an assertion failure.
func Fail(message string) {
	panic(&AssertionFailure{Message: message})
}

// Failf is like Fail with a format string.
func Failf(format string, args ...interface{}) {
	Fail(fmt.Sprintf(format, args...))
}

// Asserter adapts the assertion-failure contract to testify: it implements require.TestingT,
// so a registered test can write
//
//	require.Equal(framework.T, expected, actual)
//
// Any reported error stops the test immediately, for assert and require alike, since a test
// function has no other channel for accumulating errors.
type Asserter struct{}

// T is the Asserter to pass to assert and require functions inside registered tests.
var T Asserter

func (Asserter) Errorf(format string, args ...interface{}) {
	Failf(format, args...)
}

func (Asserter) FailNow() {
	Fail("test failed with no failure message")
}

// Helper makes Asserter satisfy testify's tHelper interface.
func (Asserter) Helper() {}
