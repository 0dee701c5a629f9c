package error

import (
	"errors"
	"fmt"
)

// annotatable is satisfied by every *Error[T], whatever its payload type.
type annotatable interface {
	error
	push(entry Entry)
	fullPaths() bool
}

// Ensure converts any error to *Error[error].
//
// Behavior:
//   - nil input => nil output
//   - if an *Error[error] is in err's chain => returned as-is (same pointer)
//   - otherwise err becomes the payload of a new Error with an empty trail
func Ensure(err error) *Error[error] {
	if err == nil {
		return nil
	}

	var e *Error[error]
	if errors.As(err, &e) {
		return e
	}

	return New(err)
}

// Annotate attaches text to err for code that returns plain errors.
//
// Behavior:
//   - nil input => nil output
//   - if err is itself a contextual error of any payload type => entry appended in place
//   - otherwise err is wrapped in a new *Error[error] first
//
// The recorded location is that of the code calling Annotate.
func Annotate(err error, text string) error {
	if err == nil {
		return nil
	}

	a := promote(err)
	a.push(newEntry(text, caller(1, a.fullPaths())))

	return a
}

// Annotatef is Annotate with a fmt.Sprintf message.
func Annotatef(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	a := promote(err)
	a.push(newEntry(fmt.Sprintf(format, args...), caller(1, a.fullPaths())))

	return a
}

func promote(err error) annotatable {
	if a, ok := err.(annotatable); ok {
		return a
	}

	return New(err)
}
