package framework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	assert.Equal(t, "*framework.codeError", KindOf[*codeError]().Name())
	assert.Equal(t, "error", KindOf[error]().Name())
	assert.Equal(t, "parent", SentinelKind("parent", errParent).Name())
	assert.Equal(t, "parent", SentinelKind("", errParent).Name())
	assert.Equal(t, "sentinel(parent)", SentinelKind("parent", errParent).String())
}

func TestSentinelKindRequiresTarget(t *testing.T) {
	assert.Panics(t, func() { SentinelKind("nothing", nil) })
}

func TestKindIsSupertypeOf(t *testing.T) {
	cases := []struct {
		name       string
		super, sub Kind
	}{
		{"interface over implementing type", KindOf[error](), KindOf[*codeError]()},
		{"interface over embedding interface", KindOf[error](), KindOf[temporary]()},
		{"catch-all over error", KindOf[interface{}](), KindOf[error]()},
		{"interface over sentinel", KindOf[error](), SentinelKind("parent", errParent)},
		{"sentinel over wrapping sentinel", SentinelKind("parent", errParent), SentinelKind("child", errChild)},
		{"error type over sentinel of that type", KindOf[*codeError](), SentinelKind("code one", errCodeOne)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, c.super.IsSupertypeOf(c.sub))
			assert.False(t, c.sub.IsSupertypeOf(c.super))
		})
	}
}

func TestKindIsNotSupertypeOfItselfOrUnrelatedKinds(t *testing.T) {
	for _, k := range declaredKinds() {
		assert.False(t, k.IsSupertypeOf(k), "%s", k)
	}
	assert.False(t, KindOf[*codeError]().IsSupertypeOf(KindOf[*otherError]()))
	assert.False(t, KindOf[*codeError]().IsSupertypeOf(SentinelKind("parent", errParent)))
	assert.False(t, KindOf[temporary]().IsSupertypeOf(KindOf[*codeError]()))
	assert.False(t, SentinelKind("child", errChild).IsSupertypeOf(SentinelKind("parent", errParent)))
	assert.False(t, SentinelKind("code one", errCodeOne).IsSupertypeOf(KindOf[*codeError]()))
}

func TestKindMatchUnwrapsErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &codeError{code: 7})

	matched, ok := KindOf[*codeError]().match(wrapped)
	assert.True(t, ok)
	assert.Equal(t, &codeError{code: 7}, matched)

	_, ok = KindOf[*otherError]().match(wrapped)
	assert.False(t, ok)

	_, ok = SentinelKind("parent", errParent).match(fmt.Errorf("x: %w", errChild))
	assert.True(t, ok)

	_, ok = SentinelKind("parent", errParent).match("parent")
	assert.False(t, ok)
}

func TestKindMatchNonErrorValues(t *testing.T) {
	_, ok := KindOf[int]().match(3)
	assert.True(t, ok)

	_, ok = KindOf[int]().match("3")
	assert.False(t, ok)

	_, ok = KindOf[fmt.Stringer]().match(errors.New("not a stringer"))
	assert.False(t, ok)
}

func TestOnlyCatchAllMatchesNil(t *testing.T) {
	_, ok := KindOf[interface{}]().match(nil)
	assert.True(t, ok)
	_, ok = KindOf[error]().match(nil)
	assert.False(t, ok)
}
