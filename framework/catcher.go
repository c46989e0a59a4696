package framework

import (
	"errors"
	"fmt"
)

// ErrTestExited is the failure recorded when a test function stops its goroutine with
// runtime.Goexit instead of returning or panicking.
var ErrTestExited = errors.New("test function exited its goroutine without returning")

// Catcher runs a function and classifies whatever it raises against an ordered list of kinds.
//
// The order is fixed when the Catcher is built: after the declared kinds come the assertion
// failure kind, the error interface and the catch-all, and then the list is sorted so that no
// kind is ever tried before one of its subtypes. Kinds that are not related keep their
// declaration order. Classification then scans the list for each link of the wrap chain, with no
// further reasoning about subtypes.
type Catcher struct {
	kinds []Kind
}

// NewCatcher builds a Catcher for the given kinds. Zero-value kinds are ignored and
// duplicates keep their first position.
func NewCatcher(kinds ...Kind) *Catcher {
	all := make([]Kind, 0, len(kinds)+3)
	for _, k := range kinds {
		if k.valid() {
			all = append(all, k)
		}
	}
	all = append(all, assertionKind, errorKind, anyKind)
	return &Catcher{kinds: orderKinds(dedupeKinds(all))}
}

// Kinds returns the kinds in the order they are tried.
func (c *Catcher) Kinds() []Kind {
	return append([]Kind(nil), c.kinds...)
}

// Run calls fn exactly once. If fn returns a non-nil error or panics, the raised value is
// classified and returned with ok set to true.
func (c *Catcher) Run(fn func() error) (failure FailureInfo, ok bool) {
	raised, failed := invoke(fn)
	if !failed {
		return FailureInfo{}, false
	}
	return c.Classify(raised), true
}

// Classify returns the FailureInfo for v. The links of v's wrap chain are tried from the
// outside in, each against the kinds in order, so a wrapper error is reported as its own type
// rather than as a type it wraps. Kinds that every error satisfies, such as error itself, only
// take part in the final pass, where the first kind that matches anywhere in the chain wins.
// The message is always taken from v itself, so context added by error wrapping is kept.
func (c *Catcher) Classify(v interface{}) FailureInfo {
	if k, matched, ok := c.firstDirectMatch(v); ok {
		return FailureInfo{Kind: k.reportedName(matched), Message: messageOf(v)}
	}
	for _, k := range c.kinds {
		if matched, ok := k.match(v); ok {
			return FailureInfo{Kind: k.reportedName(matched), Message: messageOf(v)}
		}
	}
	panic(fmt.Sprintf("framework: no failure kind matched a value of type %s", typeName(v)))
}

// firstDirectMatch walks v and its wrap chain depth-first, in the order errors.As does.
func (c *Catcher) firstDirectMatch(v interface{}) (Kind, interface{}, bool) {
	if v == nil {
		return Kind{}, nil, false
	}
	for _, k := range c.kinds {
		if matched, ok := k.matchDirect(v); ok {
			return k, matched, true
		}
	}
	switch x := v.(type) {
	case interface{ Unwrap() error }:
		if inner := x.Unwrap(); inner != nil {
			return c.firstDirectMatch(inner)
		}
	case interface{ Unwrap() []error }:
		for _, inner := range x.Unwrap() {
			if inner == nil {
				continue
			}
			if k, matched, ok := c.firstDirectMatch(inner); ok {
				return k, matched, true
			}
		}
	}
	return Kind{}, nil, false
}

type outcome struct {
	raised interface{}
	failed bool
}

// invoke runs fn on its own goroutine so that runtime.Goexit is contained as well as panics,
// and blocks until fn is finished.
func invoke(fn func() error) (interface{}, bool) {
	done := make(chan outcome, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			r := recover()
			if r == nil {
				r = ErrTestExited
			}
			done <- outcome{raised: r, failed: true}
		}()
		err := fn()
		returned = true
		done <- outcome{raised: err, failed: err != nil}
	}()
	o := <-done
	return o.raised, o.failed
}

func dedupeKinds(kinds []Kind) []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		dup := false
		for _, seen := range out {
			if seen.same(k) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, k)
		}
	}
	return out
}

// orderKinds repeatedly takes the earliest remaining kind that has no strict subtype among
// the remaining kinds. If the relation is cyclic, the earliest remaining kind is taken.
func orderKinds(kinds []Kind) []Kind {
	remaining := append([]Kind(nil), kinds...)
	ordered := make([]Kind, 0, len(kinds))
	for len(remaining) > 0 {
		pick := 0
		for i, k := range remaining {
			if !hasStrictSubtype(k, remaining) {
				pick = i
				break
			}
		}
		ordered = append(ordered, remaining[pick])
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}
	return ordered
}

func hasStrictSubtype(k Kind, among []Kind) bool {
	for _, o := range among {
		if k.strictSupertypeOf(o) {
			return true
		}
	}
	return false
}
