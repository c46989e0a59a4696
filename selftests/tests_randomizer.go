package selftests

import (
	"strings"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/jowi/testlib/framework"
	"github.com/jowi/testlib/randomizer"
)

var _ = framework.Register(func() {
	choices := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v := randomizer.Pick(choices)
	framework.Debugf("picked %d", v)
	assert.True(framework.T, v >= 1 && v <= 10)
}, framework.Named("random pick"))

var _ = framework.Register(func() {
	v := randomizer.String(10)
	assert.Len(framework.T, v, 10)
	assert.Equal(framework.T, -1, strings.IndexFunc(v, unicode.IsUpper))
}, framework.Named("random string"))

var _ = framework.Register(func() {
	v := randomizer.Integer(1, 10)
	assert.True(framework.T, v >= 1 && v <= 10)
}, framework.Named("random integer"))

var _ = framework.Register(func() {
	v := randomizer.Real(1.0, 10.0)
	assert.True(framework.T, v >= 1.0 && v <= 10.0)
}, framework.Named("random real"))
