package selftests_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jowi/testlib/framework"
	"github.com/jowi/testlib/runner"
	_ "github.com/jowi/testlib/selftests"
)

func TestRegisteredSelfTestsPass(t *testing.T) {
	ctx := framework.Default()
	require.NotZero(t, ctx.Tests.Size())

	results := runner.RunSuite(ctx, []string{"selftests"}, nil, nil)

	for _, f := range results.Failures {
		failure, _ := f.Result.Failure()
		t.Errorf("[%d] %s failed: %s", f.Index, f.Name, failure)
	}
	assert.Equal(t, ctx.Tests.Size(), results.Ran())
}

func TestSelfTestNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range framework.Default().Tests.Names() {
		assert.False(t, seen[name], "duplicate test name %q", name)
		seen[name] = true
	}
}
