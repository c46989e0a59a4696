package selftests

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jowi/testlib/framework"
)

type storageError struct {
	op string
}

func (e *storageError) Error() string { return "storage failure during " + e.op }

var (
	errStorage  = errors.New("storage unavailable")
	errDiskFull = fmt.Errorf("disk full: %w", errStorage)
)

var _ = framework.Register(func() {
	entry, err := framework.NewTestEntry(
		func() { panic(fmt.Errorf("saving snapshot: %w", &storageError{op: "write"})) },
		framework.Catch(framework.KindOf[error](), framework.KindOf[*storageError]()),
	)
	require.NoError(framework.T, err)

	failure, failed := entry.Run().Failure()
	require.True(framework.T, failed)
	assert.Equal(framework.T, "*selftests.storageError", failure.Kind)
	assert.Equal(framework.T, "saving snapshot: storage failure during write", failure.Message)
}, framework.Named("declared type kind beats error"))

var _ = framework.Register(func() {
	entry, err := framework.NewTestEntry(
		func() error { return fmt.Errorf("flushing: %w", errDiskFull) },
		framework.Catch(
			framework.SentinelKind("ErrStorage", errStorage),
			framework.SentinelKind("ErrDiskFull", errDiskFull),
		),
	)
	require.NoError(framework.T, err)

	failure, failed := entry.Run().Failure()
	require.True(framework.T, failed)
	assert.Equal(framework.T, "ErrDiskFull", failure.Kind)
}, framework.Named("wrapped sentinel beats its parent"))

var _ = framework.Register(func() {
	entry, err := framework.NewTestEntry(func() { panic(42) })
	require.NoError(framework.T, err)

	failure, failed := entry.Run().Failure()
	require.True(framework.T, failed)
	assert.Equal(framework.T, "int", failure.Kind)
	assert.Equal(framework.T, "42", failure.Message)
}, framework.Named("catch-all reports native type"))

var _ = framework.Register(func() {
	entry, err := framework.NewTestEntry(func() { framework.Fail("nope") })
	require.NoError(framework.T, err)

	failure, failed := entry.Run().Failure()
	require.True(framework.T, failed)
	assert.Equal(framework.T, "*framework.AssertionFailure", failure.Kind)
	assert.Equal(framework.T, "nope", failure.Message)
}, framework.Named("assertion failure kind"))
