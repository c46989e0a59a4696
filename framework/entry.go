package framework

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/jowi/testlib/logging"
)

// ErrInvalidTestFunc is returned when a value that is not a test function is registered.
var ErrInvalidTestFunc = errors.New("test function must be a non-nil func() or func() error")

var (
	plainFuncType = reflect.TypeOf(func() {})
	errorFuncType = reflect.TypeOf(func() error { return nil })
)

// GenericTestEntry is a single runnable test. Run must never panic: every failure of the test
// is reported through the returned TestResult.
type GenericTestEntry interface {
	Name() string
	Run() TestResult
}

// TestResult is the outcome of one run of a test entry.
type TestResult struct {
	elapsed time.Duration
	failure *FailureInfo
	output  logging.CapturedOutput
}

// NewTestResult creates a TestResult, for GenericTestEntry implementations other than
// TestEntry. A nil failure means the test passed.
func NewTestResult(elapsed time.Duration, failure *FailureInfo) TestResult {
	if elapsed < 0 {
		elapsed = 0
	}
	r := TestResult{elapsed: elapsed}
	if failure != nil {
		f := *failure
		r.failure = &f
	}
	return r
}

func (r TestResult) Elapsed() time.Duration {
	return r.elapsed
}

// Failure returns the failure of the run, if there was one.
func (r TestResult) Failure() (FailureInfo, bool) {
	if r.failure == nil {
		return FailureInfo{}, false
	}
	return *r.failure, true
}

func (r TestResult) IsOK() bool {
	return r.failure == nil
}

func (r TestResult) IsError() bool {
	return r.failure != nil
}

// Output returns the messages logged with Debugf while the test was running.
func (r TestResult) Output() logging.CapturedOutput {
	return r.output
}

// EntryOption customizes a TestEntry at registration.
type EntryOption func(*entryConfig)

type entryConfig struct {
	name  string
	kinds []Kind
}

// Named sets the display name of a test. Without it, the name of the test function is used.
func Named(name string) EntryOption {
	return func(c *entryConfig) {
		c.name = name
	}
}

// Catch declares additional failure kinds for a test. They are classified before the built-in
// kinds unless they are supertypes of them.
func Catch(kinds ...Kind) EntryOption {
	return func(c *entryConfig) {
		c.kinds = append(c.kinds, kinds...)
	}
}

// TestEntry binds a test function, its name and its failure kinds.
type TestEntry struct {
	fn      func() error
	name    string
	catcher *Catcher
}

// NewTestEntry creates a TestEntry for fn, which must be a func() or a func() error (or a named
// type with one of those underlying types). A non-nil error returned by fn counts as a failure
// just like a panic.
func NewTestEntry(fn interface{}, opts ...EntryOption) (*TestEntry, error) {
	call, err := asTestFunc(fn)
	if err != nil {
		return nil, err
	}
	var cfg entryConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.name == "" {
		cfg.name = funcName(fn)
	}
	return &TestEntry{
		fn:      call,
		name:    cfg.name,
		catcher: NewCatcher(cfg.kinds...),
	}, nil
}

func (e *TestEntry) Name() string {
	return e.name
}

// Kinds returns the failure kinds of the entry in the order they are tried.
func (e *TestEntry) Kinds() []Kind {
	return e.catcher.Kinds()
}

// Run runs the test function once and reports how long it took and how it failed, if it did.
func (e *TestEntry) Run() TestResult {
	capture := beginCapture()
	defer endCapture(capture)

	start := time.Now()
	failure, failed := e.catcher.Run(e.fn)
	elapsed := time.Since(start)

	result := TestResult{elapsed: elapsed, output: capture.Output()}
	if failed {
		result.failure = &failure
	}
	return result
}

func asTestFunc(fn interface{}) (func() error, error) {
	switch f := fn.(type) {
	case func():
		if f != nil {
			return func() error {
				f()
				return nil
			}, nil
		}
	case func() error:
		if f != nil {
			return f, nil
		}
	default:
		v := reflect.ValueOf(fn)
		if v.Kind() != reflect.Func || v.IsNil() {
			break
		}
		if v.Type().ConvertibleTo(plainFuncType) {
			return asTestFunc(v.Convert(plainFuncType).Interface())
		}
		if v.Type().ConvertibleTo(errorFuncType) {
			return asTestFunc(v.Convert(errorFuncType).Interface())
		}
	}
	return nil, fmt.Errorf("%w (got %T)", ErrInvalidTestFunc, fn)
}

// funcName derives a display name from the symbol of fn, without its package path: a function
// TestParse in package parser is named "TestParse", a closure in its init "init.func1".
func funcName(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		name := f.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		if i := strings.Index(name, "."); i >= 0 {
			name = name[i+1:]
		}
		name = strings.TrimSuffix(name, "-fm")
		if name != "" {
			return name
		}
	}
	return v.Type().String()
}
