// Package framework contains the test execution engine.
//
// The general model is:
//
// 1. Test functions are registered during package initialization, usually with Register in a
// package-level variable declaration. Each becomes a TestEntry owned by the TestSuite of the
// process-wide TestContext.
//
// 2. A TestEntry runs its function once, measures how long it took, and converts anything the
// function raised (a panic, a returned error, or runtime.Goexit) into a FailureInfo. Nothing
// escapes TestEntry.Run.
//
// 3. Failures are classified by a Catcher against an ordered list of Kinds: the kinds declared
// for the test with Catch, then assertion failures, errors, and finally anything at all. The
// list is sorted once so that a kind is never tried before its subtypes, which makes the
// reported kind the most specific one that matches.
//
// Selecting, running and reporting tests is left to a runner such as the runner package, which
// calls TestContext.Setup and TestContext.TearDown around the whole suite.
package framework
