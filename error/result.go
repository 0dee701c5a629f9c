package error

import "fmt"

// Result is a success value or a failure carrying an *Error[T].
type Result[V, T any] struct {
	value V
	err   *Error[T]
}

var _ ContextMessage[Result[int, error]] = Result[int, error]{}

// Ok returns a successful Result.
func Ok[V, T any](value V) Result[V, T] { return Result[V, T]{value: value} }

// Err turns a contextual error into a failed Result. A nil err yields a zero success.
func Err[V, T any](err *Error[T]) Result[V, T] { return Result[V, T]{err: err} }

// Fail promotes payload into a contextual error with an empty trail and returns it as a
// failed Result.
func Fail[V, T any](payload T) Result[V, T] { return Err[V](From(payload)) }

func (r Result[V, T]) IsOk() bool { return r.err == nil }

// Value returns the success value, or the zero V for a failure.
func (r Result[V, T]) Value() V { return r.value }

// Err returns the contained error, nil on success.
func (r Result[V, T]) Err() *Error[T] { return r.err }

// Unpack returns the Result in Go's (value, error) form. The error is an untyped nil on
// success, never a typed nil pointer.
func (r Result[V, T]) Unpack() (V, error) {
	if r.err == nil {
		return r.value, nil
	}

	return r.value, r.err
}

// AttachContextMessage implements ContextMessage. Success values are returned unchanged.
func (r Result[V, T]) AttachContextMessage(entry Entry) Result[V, T] {
	if r.err == nil {
		return r
	}

	r.err.push(entry)

	return r
}

// Context attaches text to a failure, tagged with the location of the code calling Context.
func (r Result[V, T]) Context(text string) Result[V, T] {
	if r.err == nil {
		return r
	}

	r.err.push(newEntry(text, caller(1, r.err.cfg.fullPath)))

	return r
}

// Contextf is Context with a fmt.Sprintf message.
func (r Result[V, T]) Contextf(format string, args ...any) Result[V, T] {
	if r.err == nil {
		return r
	}

	r.err.push(newEntry(fmt.Sprintf(format, args...), caller(1, r.err.cfg.fullPath)))

	return r
}

func (r Result[V, T]) fullPaths() bool { return r.err.fullPaths() }
