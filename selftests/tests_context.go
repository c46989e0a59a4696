package selftests

import (
	"errors"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jowi/testlib/framework"
)

// setupMarker is set by the setup hook and cleared by the teardown hook.
var setupMarker bool

var _ = framework.OnSetup(func(args []string) {
	setupMarker = true
})

var _ = framework.OnTeardown(func() {
	setupMarker = false
})

var _ = framework.Register(createWithFunctionName)

func createWithFunctionName() {
	e, ok := framework.Default().Tests.Find("createWithFunctionName")
	require.True(framework.T, ok, "test registered without a name should be named after its function")
	assert.Equal(framework.T, "createWithFunctionName", e.Name())
}

var _ = framework.Register(func() {
	_, ok := framework.Default().Tests.Find("custom name")
	require.True(framework.T, ok)
}, framework.Named("custom name"))

var _ = framework.Register(func() {
	require.True(framework.T, setupMarker, "setup hook should run before any test")
	assert.GreaterOrEqual(framework.T, framework.Default().ThreadCount(), 1)
}, framework.Named("setup hook ran"))

var _ = framework.Register(func() {
	entry, err := framework.NewTestEntry(func() error { return errors.New("LOL") })
	require.NoError(framework.T, err)

	result := entry.Run()
	require.True(framework.T, result.IsError())
	failure, _ := result.Failure()
	assert.Equal(framework.T, "*errors.errorString", failure.Kind)
	assert.Equal(framework.T, "LOL", failure.Message)
}, framework.Named("run returning error"))

var _ = framework.Register(func() {
	ctx := framework.Default()
	prev := ctx.TimeUnit()
	defer ctx.SetTimeUnit(prev)

	ctx.SetTimeUnit(framework.Microseconds)
	assert.Equal(framework.T, "1.00 μs", ctx.FormatDuration(time.Microsecond))
	ctx.SetTimeUnit(framework.Milliseconds)
	assert.Equal(framework.T, "1.00 ms", ctx.FormatDuration(time.Millisecond))
	ctx.SetTimeUnit(framework.Seconds)
	assert.Equal(framework.T, "1.00 s", ctx.FormatDuration(time.Second))
}, framework.Named("time format"))
