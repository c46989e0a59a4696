package selftests

import (
	"errors"

	"github.com/stretchr/testify/assert"

	"github.com/jowi/testlib/framework"
)

var _ = framework.Register(func() {
	assert.Equal(framework.T, 1, 1)
	assert.Equal(framework.T, "asdf", "asdf")
	assert.Equal(framework.T, []int{1, 2, 3}, []int{1, 2, 3})
}, framework.Named("assert equal"))

var _ = framework.Register(func() {
	assert.NotEqual(framework.T, 1, 2)
	assert.NotEqual(framework.T, "asdf", "qwer")
	assert.NotEqual(framework.T, []int{1, 2, 3}, []int{2, 3, 4})
}, framework.Named("assert not equal"))

var _ = framework.Register(func() {
	assert.Less(framework.T, 1, 2)
	assert.Less(framework.T, 1.0, 2.0)
}, framework.Named("assert less"))

var _ = framework.Register(func() {
	assert.True(framework.T, true)
	assert.False(framework.T, false)
}, framework.Named("assert true and false"))

var _ = framework.Register(func() {
	assert.InDelta(framework.T, 1.0, 1.005, 0.01)
}, framework.Named("assert close"))

var _ = framework.Register(func() {
	assert.Panics(framework.T, func() { panic(errors.New("")) })
	assert.PanicsWithError(framework.T, "nope", func() { framework.Fail("nope") })
}, framework.Named("assert panics"))

var _ = framework.Register(func() {
	entry, err := framework.NewTestEntry(func() { assert.Equal(framework.T, 1, 2) })
	assert.NoError(framework.T, err)

	result := entry.Run()
	assert.True(framework.T, result.IsError())
	failure, _ := result.Failure()
	assert.Equal(framework.T, "*framework.AssertionFailure", failure.Kind)
	assert.Contains(framework.T, failure.Message, "Not equal")
}, framework.Named("failed assertion is contained"))
