package runner

import (
	"github.com/jowi/testlib/framework"
)

// Results is the tally of a suite run, in run order.
type Results struct {
	Tests    []TestOutcome
	Failures []TestOutcome
	Skipped  []TestOutcome
}

// TestOutcome is what happened to one entry of the suite. Result is the zero value for a
// skipped test.
type TestOutcome struct {
	Index   int
	Name    string
	Result  framework.TestResult
	Skipped bool
}

func (r *Results) add(o TestOutcome) {
	r.Tests = append(r.Tests, o)
	switch {
	case o.Skipped:
		r.Skipped = append(r.Skipped, o)
	case o.Result.IsError():
		r.Failures = append(r.Failures, o)
	}
}

// Ran is the number of tests that were run, as opposed to skipped.
func (r Results) Ran() int {
	return len(r.Tests) - len(r.Skipped)
}

func (r Results) Succeeded() int {
	return r.Ran() - len(r.Failures)
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// FailedNames returns the names of the failed tests in run order.
func (r Results) FailedNames() []string {
	names := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		names = append(names, f.Name)
	}
	return names
}
