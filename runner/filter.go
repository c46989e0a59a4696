package runner

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jowi/testlib/framework"
)

var (
	// ErrConflictingFilters is returned when both an include and an exclude list are given.
	ErrConflictingFilters = errors.New("only one of -filter or -exclude can be given")

	// ErrUnknownTestName is returned when a filter names a test that is not in the suite.
	ErrUnknownTestName = errors.New("not a valid test name")
)

// Filter decides whether the test at index with the given name should run.
type Filter func(index int, name string) bool

// NameFilters selects tests by exact name and by pattern. When Include is defined only those
// tests run; otherwise every test not in Exclude runs. MustMatch and MustNotMatch further
// narrow the selection.
type NameFilters struct {
	Include      NameList
	Exclude      NameList
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (f NameFilters) AsFilter(index int, name string) bool {
	if f.Include.IsDefined() {
		if !f.Include.Contains(name) {
			return false
		}
	} else if f.Exclude.Contains(name) {
		return false
	}
	return (!f.MustMatch.IsDefined() || f.MustMatch.AnyMatch(name)) &&
		!f.MustNotMatch.AnyMatch(name)
}

func (f NameFilters) isDefined() bool {
	return f.Include.IsDefined() || f.Exclude.IsDefined() ||
		f.MustMatch.IsDefined() || f.MustNotMatch.IsDefined()
}

// Validate checks that the filters are not contradictory and that they only name tests
// that exist in the suite.
func (f NameFilters) Validate(suite *framework.TestSuite) error {
	if f.Include.IsDefined() && f.Exclude.IsDefined() {
		return ErrConflictingFilters
	}
	for _, list := range []NameList{f.Include, f.Exclude} {
		for _, name := range list.Names() {
			if _, ok := suite.Find(name); !ok {
				return fmt.Errorf("'%s' is %w. Use -list for the full list of tests", name, ErrUnknownTestName)
			}
		}
	}
	return nil
}

// NameList is a flag.Value collecting a name each time the flag is given.
type NameList struct {
	names []string
}

func (n NameList) String() string {
	var ss []string
	for _, name := range n.names {
		ss = append(ss, `"`+name+`"`)
	}
	return strings.Join(ss, ", ")
}

// Set is called by the command line parser
func (n *NameList) Set(value string) error {
	if value == "" {
		return errors.New("test name must not be empty")
	}
	n.Add(value)
	return nil
}

func (n *NameList) Add(names ...string) {
	n.names = append(n.names, names...)
}

func (n NameList) Names() []string {
	return append([]string(nil), n.names...)
}

func (n NameList) IsDefined() bool {
	return len(n.names) != 0
}

func (n NameList) Contains(name string) bool {
	for _, s := range n.names {
		if s == name {
			return true
		}
	}
	return false
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func PrintFilterDescription(out io.Writer, filters NameFilters) {
	if !filters.isDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.Include.IsDefined() {
		fmt.Fprintf(out, "  skip any not named %s\n", filters.Include)
	}
	if filters.Exclude.IsDefined() {
		fmt.Fprintf(out, "  skip any named %s\n", filters.Exclude)
	}
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
