package runner

import (
	"flag"
	"io"
	"strings"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type commandParams struct {
	filters    NameFilters
	list       bool
	configPath string
	settings   Settings
	debug      bool
	debugAll   bool
}

// Read parses the command line; args[0] is the program name. Usage and parse errors are
// written to output.
func (c *commandParams) Read(args []string, output io.Writer) error {
	var timeUnit string
	var threads int
	var noColor bool

	fs := flag.NewFlagSet(programName(args), flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(&c.filters.Include, "filter", "name of a test to run (can be given multiple times)")
	fs.Var(&c.filters.Exclude, "exclude", "name of a test to skip (can be given multiple times)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.list, "list", false, "list all tests and exit, ignoring other arguments")
	fs.StringVar(&c.configPath, "config", "", "path of a YAML settings file")
	fs.StringVar(&timeUnit, "unit", "", "time unit for durations: us, ms or s")
	fs.IntVar(&threads, "threads", 1, "number of test threads to record in the context")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.debug, "debug", false, "show debug output of failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output of all tests and framework diagnostics")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "unit":
			c.settings.TimeUnit = ldvalue.NewOptionalString(timeUnit)
		case "threads":
			c.settings.ThreadCount = ldvalue.NewOptionalInt(threads)
		case "no-color":
			c.settings.NoColor = ldvalue.Bool(noColor)
		}
	})
	return nil
}

func programName(args []string) string {
	if len(args) == 0 {
		return "testlib"
	}
	return args[0]
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand returns a shell command line that runs only the given tests.
func rerunCommand(program string, names []string) string {
	var b commandBuilder
	b.add(program)
	for _, name := range names {
		b.add("-filter", name)
	}
	return b.String()
}
