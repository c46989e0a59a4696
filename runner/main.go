package runner

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jowi/testlib/framework"
)

const (
	exitUsage       = 2
	maxFailedStatus = 125
)

// Main runs a test program against ctx and returns its exit status: the number of failed
// tests (capped at 125), 0 if all ran tests passed, or 2 for invalid arguments.
//
// A test program's main function is usually just
//
//	func main() {
//		os.Exit(runner.Main(framework.Default(), os.Args, os.Stdout))
//	}
func Main(ctx *framework.TestContext, args []string, out io.Writer) int {
	var params commandParams
	if err := params.Read(args, out); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	settings := Settings{}
	if params.configPath != "" {
		s, err := LoadSettings(params.configPath)
		if err != nil {
			fmt.Fprintf(out, "Invalid settings: %s\n", err)
			return exitUsage
		}
		settings = s
	}
	settings = settings.Merge(params.settings)
	if err := settings.Apply(ctx); err != nil {
		fmt.Fprintf(out, "Invalid settings: %s\n", err)
		return exitUsage
	}
	noColor := settings.NoColor.BoolValue()

	if params.list {
		PrintList(out, ctx.Tests, noColor)
		return 0
	}

	filters := params.filters
	if !filters.Include.IsDefined() {
		filters.Exclude.Add(settings.Exclude...)
	}
	if err := filters.Validate(ctx.Tests); err != nil {
		fmt.Fprintf(out, "Invalid parameters: %s\n", err)
		return exitUsage
	}

	if params.debugAll {
		ctx.SetDebugLogger(log.New(out, "", log.LstdFlags))
	}

	PrintFilterDescription(out, filters)
	testLogger := &ConsoleTestLogger{
		Out:                  out,
		FormatDuration:       ctx.FormatDuration,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		NoColor:              noColor,
	}
	newPalette(noColor).banner.Fprintln(out, "Running test suite")

	results := RunSuite(ctx, args, filters.AsFilter, testLogger)

	PrintResults(out, results, noColor)
	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Rerun the failed tests with:\n  %s\n", rerunCommand(programName(args), results.FailedNames()))
	}
	return exitStatus(results)
}

func exitStatus(results Results) int {
	n := len(results.Failures)
	if n > maxFailedStatus {
		return maxFailedStatus
	}
	return n
}

// MainDefault runs the default context with the process arguments and exits.
func MainDefault() {
	os.Exit(Main(framework.Default(), os.Args, os.Stdout))
}
