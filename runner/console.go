package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/jowi/testlib/framework"
)

const ruleWidth = 80

const (
	labelOK      = "OK!"
	labelError   = "ERR!"
	labelSkipped = "EXC!"
)

type palette struct {
	index  *color.Color
	ok     *color.Color
	err    *color.Color
	skip   *color.Color
	rule   *color.Color
	banner *color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		index:  color.New(color.FgHiBlue),
		ok:     color.New(color.FgHiGreen),
		err:    color.New(color.FgHiRed),
		skip:   color.New(color.FgHiYellow),
		rule:   color.New(color.FgHiYellow),
		banner: color.New(color.FgHiCyan),
	}
	if noColor {
		for _, c := range []*color.Color{p.index, p.ok, p.err, p.skip, p.rule, p.banner} {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) prefix(out io.Writer, index int, label string, c *color.Color) {
	p.index.Fprintf(out, "[%3d]", index)
	c.Fprintf(out, "[%-4s]", label)
}

func (p *palette) line(out io.Writer, c *color.Color) {
	c.Fprintln(out, strings.Repeat("=", ruleWidth))
}

// ConsoleTestLogger prints one line per test, and the failure kind and message of every failed
// test.
type ConsoleTestLogger struct {
	Out                  io.Writer
	FormatDuration       func(time.Duration) string
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	NoColor              bool

	colors *palette
}

func (c *ConsoleTestLogger) palette() *palette {
	if c.colors == nil {
		c.colors = newPalette(c.NoColor)
	}
	return c.colors
}

func (c *ConsoleTestLogger) formatDuration(d time.Duration) string {
	if c.FormatDuration == nil {
		return framework.Microseconds.Format(d)
	}
	return c.FormatDuration(d)
}

func (c *ConsoleTestLogger) TestStarted(index int, name string) {}

func (c *ConsoleTestLogger) TestFinished(index int, name string, result framework.TestResult) {
	p := c.palette()
	failure, failed := result.Failure()
	if failed {
		p.prefix(c.Out, index, labelError, p.err)
	} else {
		p.prefix(c.Out, index, labelOK, p.ok)
	}
	fmt.Fprintf(c.Out, "%s (%s)\n", name, c.formatDuration(result.Elapsed()))

	if failed {
		p.line(c.Out, p.rule)
		p.err.Fprintln(c.Out, failure.Kind)
		fmt.Fprintln(c.Out)
		for _, line := range strings.Split(failure.Message, "\n") {
			fmt.Fprintf(c.Out, "  %s\n", line)
		}
		p.line(c.Out, p.rule)
	}

	output := result.Output()
	if len(output) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		output.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(index int, name string, reason string) {
	p := c.palette()
	p.prefix(c.Out, index, labelSkipped, p.skip)
	if reason == "" {
		fmt.Fprintf(c.Out, "%s\n", name)
	} else {
		fmt.Fprintf(c.Out, "%s (%s)\n", name, reason)
	}
}

// PrintList writes the names of all tests in the suite with their index.
func PrintList(out io.Writer, suite *framework.TestSuite, noColor bool) {
	p := newPalette(noColor)
	fmt.Fprintf(out, "Found %d tests:\n", suite.Size())
	for i, name := range suite.Names() {
		p.index.Fprintf(out, "[%3d]", i)
		fmt.Fprintf(out, " %s\n", name)
	}
}

// PrintResults writes the final tally of a run.
func PrintResults(out io.Writer, results Results, noColor bool) {
	p := newPalette(noColor)
	p.line(out, p.banner)
	fmt.Fprintf(out, "Ran %3d tests\n", results.Ran())
	p.ok.Fprintf(out, "[%-4s]", labelOK)
	fmt.Fprintf(out, " %3d tests\n", results.Succeeded())
	p.err.Fprintf(out, "[%-4s]", labelError)
	fmt.Fprintf(out, " %3d tests\n", len(results.Failures))
	p.skip.Fprintf(out, "[%-4s]", labelSkipped)
	fmt.Fprintf(out, " %3d tests\n", len(results.Skipped))
}
