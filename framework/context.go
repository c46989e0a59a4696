package framework

import (
	"sync"
	"time"

	"github.com/jowi/testlib/logging"
)

// TestContext holds the suite and the settings of a test program.
//
// The process-wide instance returned by Default is built on first use. It is written during
// package initialization (registration, hooks) and by the runner before the tests start; after
// that the runner only reads it. TestContext is not safe for concurrent mutation.
type TestContext struct {
	Tests *TestSuite

	timeUnit    TimeUnit
	threadCount int
	setup       func(args []string)
	teardown    func()
	logger      logging.Logger
}

var (
	defaultContext     *TestContext
	defaultContextOnce sync.Once
)

// Default returns the process-wide TestContext.
func Default() *TestContext {
	defaultContextOnce.Do(func() {
		defaultContext = NewTestContext()
	})
	return defaultContext
}

// NewTestContext returns an empty context with one thread, microsecond reporting and no-op
// hooks. Most programs use Default; separate contexts are useful for isolation in tests.
func NewTestContext() *TestContext {
	return &TestContext{
		Tests:       NewTestSuite(),
		timeUnit:    Microseconds,
		threadCount: 1,
		setup:       func([]string) {},
		teardown:    func() {},
		logger:      logging.NullLogger(),
	}
}

// AddSetup installs the hook run once before the whole suite. A later call replaces it.
func (c *TestContext) AddSetup(fn func(args []string)) *TestContext {
	if fn == nil {
		fn = func([]string) {}
	}
	c.setup = fn
	return c
}

// AddTeardown installs the hook run once after the whole suite. A later call replaces it.
func (c *TestContext) AddTeardown(fn func()) *TestContext {
	if fn == nil {
		fn = func() {}
	}
	c.teardown = fn
	return c
}

func (c *TestContext) SetTimeUnit(u TimeUnit) *TestContext {
	c.timeUnit = u
	return c
}

// SetThreadCount stores the requested number of test threads. Tests always run one at a time;
// the value is kept for runners that support parallel execution.
func (c *TestContext) SetThreadCount(n int) *TestContext {
	c.threadCount = n
	return c
}

// SetDebugLogger sets the logger for framework diagnostics. A nil logger discards them.
func (c *TestContext) SetDebugLogger(l logging.Logger) *TestContext {
	c.logger = logging.LoggerWithPrefix(l, "[framework] ")
	return c
}

func (c *TestContext) TimeUnit() TimeUnit {
	return c.timeUnit
}

func (c *TestContext) ThreadCount() int {
	return c.threadCount
}

// Setup runs the setup hook. A panicking hook is not recovered.
func (c *TestContext) Setup(args []string) {
	c.logger.Printf("Running setup hook for %d tests", c.Tests.Size())
	c.setup(args)
}

// TearDown runs the teardown hook. A panicking hook is not recovered.
func (c *TestContext) TearDown() {
	c.logger.Printf("Running teardown hook")
	c.teardown()
}

// FormatDuration renders d using the configured time unit, e.g. "1.50 ms".
func (c *TestContext) FormatDuration(d time.Duration) string {
	return c.timeUnit.Format(d)
}

// Register adds a test to the suite of the default context. It is meant for package-level
// variable declarations, so that tests are registered during initialization:
//
//	var _ = framework.Register(func() {
//		require.Equal(framework.T, 4, 2+2)
//	}, framework.Named("addition"))
func Register(fn interface{}, opts ...EntryOption) *TestSuite {
	return Default().Tests.Add(fn, opts...)
}

// OnSetup installs the setup hook of the default context.
func OnSetup(fn func(args []string)) *TestContext {
	return Default().AddSetup(fn)
}

// OnTeardown installs the teardown hook of the default context.
func OnTeardown(fn func()) *TestContext {
	return Default().AddTeardown(fn)
}
