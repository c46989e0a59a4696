package runner

import "github.com/jowi/testlib/framework"

const skippedByFilter = "excluded by filter parameters"

// RunSuite runs the setup hook, then every entry of the suite that filter accepts, then the
// teardown hook. A nil filter runs everything and a nil logger reports nothing.
func RunSuite(
	ctx *framework.TestContext,
	args []string,
	filter Filter,
	testLogger TestLogger,
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	var results Results

	ctx.Setup(args)
	for i, e := range ctx.Tests.Entries() {
		name := e.Name()
		if filter != nil && !filter(i, name) {
			testLogger.TestSkipped(i, name, skippedByFilter)
			results.add(TestOutcome{Index: i, Name: name, Skipped: true})
			continue
		}
		testLogger.TestStarted(i, name)
		result := e.Run()
		results.add(TestOutcome{Index: i, Name: name, Result: result})
		testLogger.TestFinished(i, name, result)
	}
	ctx.TearDown()

	return results
}
