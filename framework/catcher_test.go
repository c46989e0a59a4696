package framework

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct {
	code int
}

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

type otherError struct{}

func (e *otherError) Error() string { return "other" }

type temporary interface {
	error
	Temporary() bool
}

type timeoutError struct{}

func (e *timeoutError) Error() string   { return "timed out" }
func (e *timeoutError) Temporary() bool { return true }

var (
	errParent  = errors.New("parent")
	errChild   = fmt.Errorf("child: %w", errParent)
	errCodeOne = &codeError{code: 1}
)

func declaredKinds() []Kind {
	return []Kind{
		KindOf[error](),
		SentinelKind("parent", errParent),
		KindOf[*codeError](),
		SentinelKind("child", errChild),
		KindOf[temporary](),
		SentinelKind("code one", errCodeOne),
		KindOf[*timeoutError](),
		KindOf[*otherError](),
	}
}

func permutations(kinds []Kind) [][]Kind {
	if len(kinds) <= 1 {
		return [][]Kind{append([]Kind(nil), kinds...)}
	}
	var out [][]Kind
	for i := range kinds {
		rest := make([]Kind, 0, len(kinds)-1)
		rest = append(rest, kinds[:i]...)
		rest = append(rest, kinds[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Kind{kinds[i]}, p...))
		}
	}
	return out
}

func kindNames(kinds []Kind) []string {
	var names []string
	for _, k := range kinds {
		names = append(names, k.Name())
	}
	return names
}

func TestCatcherNeverTriesSupertypeBeforeSubtype(t *testing.T) {
	for _, perm := range permutations(declaredKinds()[:6]) {
		kinds := NewCatcher(perm...).Kinds()
		for i := range kinds {
			for j := i + 1; j < len(kinds); j++ {
				assert.False(t, kinds[i].strictSupertypeOf(kinds[j]),
					"%s was ordered before its subtype %s in %v", kinds[i], kinds[j], kindNames(kinds))
			}
		}
	}
}

func TestCatcherReportsMostSpecificKindInAnyDeclarationOrder(t *testing.T) {
	cases := []struct {
		raised   interface{}
		expected string
	}{
		{fmt.Errorf("loading: %w", errChild), "child"},
		{errParent, "parent"},
		{fmt.Errorf("wrapped: %w", errCodeOne), "code one"},
		{&codeError{code: 2}, "*framework.codeError"},
		{&timeoutError{}, "*framework.timeoutError"},
		{errors.New("plain"), "*errors.errorString"},
		{&AssertionFailure{Message: "no"}, "*framework.AssertionFailure"},
		{"a string", "string"},
	}
	for _, perm := range permutations(declaredKinds()[:6]) {
		c := NewCatcher(perm...)
		for _, tc := range cases {
			assert.Equal(t, tc.expected, c.Classify(tc.raised).Kind, "order %v", kindNames(perm))
		}
	}
}

func TestCatcherAppendsBuiltInKinds(t *testing.T) {
	assert.Equal(t,
		[]string{"*framework.AssertionFailure", "error", "interface {}"},
		kindNames(NewCatcher().Kinds()))
}

func TestCatcherKeepsDeclarationOrderOfUnrelatedKinds(t *testing.T) {
	c := NewCatcher(KindOf[*otherError](), KindOf[*codeError]())
	assert.Equal(t,
		[]string{"*framework.otherError", "*framework.codeError", "*framework.AssertionFailure", "error", "interface {}"},
		kindNames(c.Kinds()))

	c = NewCatcher(KindOf[*codeError](), KindOf[*otherError]())
	assert.Equal(t,
		[]string{"*framework.codeError", "*framework.otherError", "*framework.AssertionFailure", "error", "interface {}"},
		kindNames(c.Kinds()))
}

func TestCatcherMovesSupertypeAfterSubtype(t *testing.T) {
	c := NewCatcher(KindOf[temporary](), KindOf[*timeoutError]())
	assert.Equal(t,
		[]string{"*framework.timeoutError", "framework.temporary", "*framework.AssertionFailure", "error", "interface {}"},
		kindNames(c.Kinds()))
}

func TestCatcherRemovesDuplicateKinds(t *testing.T) {
	c := NewCatcher(KindOf[error](), KindOf[*codeError](), KindOf[error](), KindOf[*AssertionFailure]())
	assert.Equal(t,
		[]string{"*framework.codeError", "*framework.AssertionFailure", "error", "interface {}"},
		kindNames(c.Kinds()))

	c = NewCatcher(SentinelKind("first", errParent), SentinelKind("second", errParent))
	assert.Equal(t, []string{"first", "*framework.AssertionFailure", "error", "interface {}"}, kindNames(c.Kinds()))
}

func TestCatcherIgnoresZeroKind(t *testing.T) {
	assert.Len(t, NewCatcher(Kind{}).Kinds(), 3)
}

func TestCatcherRunSuccess(t *testing.T) {
	calls := 0
	_, failed := NewCatcher().Run(func() error {
		calls++
		return nil
	})
	assert.False(t, failed)
	assert.Equal(t, 1, calls)
}

func TestCatcherRunReturnedError(t *testing.T) {
	calls := 0
	failure, failed := NewCatcher(SentinelKind("parent", errParent)).Run(func() error {
		calls++
		return fmt.Errorf("during run: %w", errParent)
	})
	require.True(t, failed)
	assert.Equal(t, 1, calls)
	assert.Equal(t, FailureInfo{Kind: "parent", Message: "during run: parent"}, failure)
}

func TestCatcherRunPanic(t *testing.T) {
	failure, failed := NewCatcher().Run(func() error {
		panic(&codeError{code: 3})
	})
	require.True(t, failed)
	assert.Equal(t, FailureInfo{Kind: "*framework.codeError", Message: "code 3"}, failure)
}

func TestCatcherCatchAllKeepsNativeTypeName(t *testing.T) {
	type point struct{ X, Y int }
	for _, raised := range []interface{}{42, 1.5, point{1, 2}, []string{"a"}} {
		failure, failed := NewCatcher(KindOf[*codeError]()).Run(func() error {
			panic(raised)
		})
		require.True(t, failed)
		assert.Equal(t, fmt.Sprintf("%T", raised), failure.Kind)
		assert.NotEmpty(t, failure.Message)
	}
}

func TestCatcherRunPanicWithNil(t *testing.T) {
	failure, failed := NewCatcher().Run(func() error {
		panic(nil)
	})
	require.True(t, failed)
	assert.NotEmpty(t, failure.Kind)
	assert.NotEmpty(t, failure.Message)
}

func TestCatcherRunGoexit(t *testing.T) {
	failure, failed := NewCatcher().Run(func() error {
		runtime.Goexit()
		return nil
	})
	require.True(t, failed)
	assert.Equal(t, ErrTestExited.Error(), failure.Message)
}

func TestCatcherWithoutMatchingKindIsFatal(t *testing.T) {
	c := &Catcher{}
	assert.Panics(t, func() { c.Classify(errors.New("x")) })
}

type innerError struct{}

func (e *innerError) Error() string { return "inner" }

type outerError struct {
	inner error
}

func (e *outerError) Error() string { return "outer: " + e.inner.Error() }
func (e *outerError) Unwrap() error { return e.inner }

func TestCatcherPrefersWrapperTypeOverWrappedTypeInAnyDeclarationOrder(t *testing.T) {
	kinds := []Kind{
		KindOf[*innerError](),
		KindOf[*outerError](),
		KindOf[error](),
		KindOf[temporary](),
		SentinelKind("parent", errParent),
	}
	cases := []struct {
		raised   interface{}
		expected string
	}{
		{&outerError{inner: &innerError{}}, "*framework.outerError"},
		{fmt.Errorf("context: %w", &outerError{inner: &innerError{}}), "*framework.outerError"},
		{&innerError{}, "*framework.innerError"},
		{fmt.Errorf("context: %w", &innerError{}), "*framework.innerError"},
		{&outerError{inner: errParent}, "*framework.outerError"},
		{fmt.Errorf("context: %w", errParent), "parent"},
		{&outerError{inner: &timeoutError{}}, "*framework.outerError"},
		{errors.Join(errors.New("first"), &innerError{}), "*framework.innerError"},
	}
	for _, perm := range permutations(kinds) {
		c := NewCatcher(perm...)
		for _, tc := range cases {
			assert.Equal(t, tc.expected, c.Classify(tc.raised).Kind, "raised %T, order %v", tc.raised, kindNames(perm))
		}
	}
}

func TestCatcherDoesNotLetErrorShadowWrappedDeclaredType(t *testing.T) {
	c := NewCatcher(KindOf[error](), KindOf[*innerError]())
	failure := c.Classify(fmt.Errorf("saving: %w", &innerError{}))
	assert.Equal(t, FailureInfo{Kind: "*framework.innerError", Message: "saving: inner"}, failure)
}
