package framework

import (
	"fmt"
	"reflect"
)

// FailureInfo describes a failure independently of the concrete type of the value that was
// raised. Kind is the Go type name of the failure, as reported by reflect.
type FailureInfo struct {
	Kind    string
	Message string
}

// NewFailureInfo builds a FailureInfo from any raised value, using its dynamic type for the
// kind name and its Error or String method, if any, for the message.
func NewFailureInfo(v interface{}) FailureInfo {
	return FailureInfo{Kind: typeName(v), Message: messageOf(v)}
}

func (f FailureInfo) String() string {
	if f.Message == "" {
		return f.Kind
	}
	return f.Kind + ": " + f.Message
}

func typeName(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func messageOf(v interface{}) (message string) {
	// Error and String can panic, e.g. on a typed nil receiver.
	defer func() {
		if r := recover(); r != nil {
			message = fmt.Sprintf("<message unavailable: %v>", r)
		}
	}()
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
