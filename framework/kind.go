package framework

import (
	"errors"
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Kind is a category of failure that a test entry knows how to classify.
//
// A Kind is either a Go type, created with KindOf, or a sentinel error value, created with
// SentinelKind. Kinds are related by a subtype order:
//
//   - an interface type is a supertype of every type (and interface) that implements it
//   - an interface type that is satisfied by a sentinel's value is a supertype of that sentinel
//   - a concrete error type is a supertype of a sentinel whose wrap chain contains that type
//   - sentinel A is a supertype of sentinel B if errors.Is(B, A)
//
// The zero value is not a usable Kind.
type Kind struct {
	name     string
	typ      reflect.Type
	sentinel error
}

// KindOf returns the Kind for values of type T. A panic value or returned error matches it if
// its dynamic type is assignable to T, or, for interfaces and error types, if errors.As finds a
// T in its wrap chain.
func KindOf[T any]() Kind {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return Kind{name: typ.String(), typ: typ}
}

// SentinelKind returns a Kind matching every error for which errors.Is(err, target) holds. If
// name is empty, the target's message is used as the kind name.
func SentinelKind(name string, target error) Kind {
	if target == nil {
		panic("framework: SentinelKind requires a non-nil target error")
	}
	if name == "" {
		name = target.Error()
	}
	return Kind{name: name, sentinel: target}
}

var (
	assertionKind = KindOf[*AssertionFailure]()
	errorKind     = KindOf[error]()
	anyKind       = KindOf[interface{}]()
)

// Name returns the name the kind was declared with.
func (k Kind) Name() string {
	return k.name
}

func (k Kind) String() string {
	if k.typ == nil {
		return fmt.Sprintf("sentinel(%s)", k.name)
	}
	return k.name
}

// IsSupertypeOf reports whether every failure matched by o is also matched by k. A kind is
// never a supertype of itself.
func (k Kind) IsSupertypeOf(o Kind) bool {
	if k.same(o) {
		return false
	}
	switch {
	case k.typ != nil && o.typ != nil:
		return k.typ.Kind() == reflect.Interface && o.typ.Implements(k.typ)
	case k.typ != nil:
		if k.typ.Kind() == reflect.Interface {
			return reflect.TypeOf(o.sentinel).Implements(k.typ)
		}
		return k.unwrappable() && errors.As(o.sentinel, reflect.New(k.typ).Interface())
	case o.typ != nil:
		return false
	default:
		return errors.Is(o.sentinel, k.sentinel)
	}
}

func (k Kind) strictSupertypeOf(o Kind) bool {
	return k.IsSupertypeOf(o) && !o.IsSupertypeOf(k)
}

func (k Kind) same(o Kind) bool {
	if k.typ != nil || o.typ != nil {
		return k.typ == o.typ
	}
	return sameError(k.sentinel, o.sentinel)
}

// unwrappable reports whether errors.As accepts a pointer to k.typ as its target.
func (k Kind) unwrappable() bool {
	return k.typ.Kind() == reflect.Interface || k.typ.Implements(errorType)
}

func (k Kind) valid() bool {
	return k.typ != nil || k.sentinel != nil
}

func (k Kind) isCatchAll() bool {
	return k.typ != nil && k.typ.Kind() == reflect.Interface && k.typ.NumMethod() == 0
}

// match returns the value k extracted from v, which is v itself or an error in its chain.
func (k Kind) match(v interface{}) (interface{}, bool) {
	if v == nil {
		return nil, k.isCatchAll()
	}
	if k.typ == nil {
		if err, ok := v.(error); ok && errors.Is(err, k.sentinel) {
			return err, true
		}
		return nil, false
	}
	if reflect.TypeOf(v).AssignableTo(k.typ) {
		return v, true
	}
	err, ok := v.(error)
	if !ok || !k.unwrappable() {
		return nil, false
	}
	target := reflect.New(k.typ)
	if errors.As(err, target.Interface()) {
		return target.Elem().Interface(), true
	}
	return nil, false
}

// matchDirect is match without looking inside v: v's own type must be assignable to k, or v
// must be k's sentinel. Interfaces that every error implements never match directly.
func (k Kind) matchDirect(v interface{}) (interface{}, bool) {
	if v == nil {
		return nil, false
	}
	if k.typ == nil {
		err, ok := v.(error)
		return err, ok && isSentinel(err, k.sentinel)
	}
	if k.typ.Kind() == reflect.Interface && errorType.Implements(k.typ) {
		return nil, false
	}
	if reflect.TypeOf(v).AssignableTo(k.typ) {
		return v, true
	}
	return nil, false
}

// reportedName is the kind name recorded for a failure that k matched. Interface kinds report
// the concrete type they caught.
func (k Kind) reportedName(matched interface{}) string {
	if k.typ != nil && k.typ.Kind() == reflect.Interface {
		return typeName(matched)
	}
	return k.name
}

// isSentinel is errors.Is for err alone, without unwrapping it.
func isSentinel(err, target error) bool {
	if sameError(err, target) {
		return true
	}
	if x, ok := err.(interface{ Is(error) bool }); ok {
		return x.Is(target)
	}
	return false
}

func sameError(a, b error) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	return ta == tb && ta.Comparable() && a == b
}
