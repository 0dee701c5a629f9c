package error

import (
	"fmt"
	"strings"

	"github.com/next-trace/scg-errctx/contract"
)

// Error wraps a root-cause payload of type T together with a context trail.
//
// Fields:
//   - err:     the payload, owned and never transformed
//   - context: annotations in insertion order, append-only
//   - cfg:     render order and location style chosen at construction
//
// An Error is threaded through call layers by pointer; Context mutates the receiver and
// returns it, so ownership moves along the chain. It is not safe for concurrent use.
type Error[T any] struct {
	err     T
	context []Entry
	cfg     config
}

// compile-time guarantee that *Error implements contract.Annotated
var _ contract.Annotated = (*Error[error])(nil)

// ------ constructors

// New wraps err with an empty context trail.
func New[T any](err T, opts ...Option) *Error[T] {
	e := &Error[T]{err: err}
	for _, o := range opts {
		o(&e.cfg)
	}

	return e
}

// From promotes a raw payload into an Error with default options.
func From[T any](err T) *Error[T] { return New(err) }

// ------ annotation (chainable, mutate receiver intentionally)

// Context appends text to the trail, tagged with the location of the code calling Context,
// and returns the same receiver for chaining.
func (e *Error[T]) Context(text string) *Error[T] {
	if e == nil {
		return nil
	}

	e.push(newEntry(text, caller(1, e.cfg.fullPath)))

	return e
}

// Contextf is Context with a fmt.Sprintf message.
func (e *Error[T]) Contextf(format string, args ...any) *Error[T] {
	if e == nil {
		return nil
	}

	e.push(newEntry(fmt.Sprintf(format, args...), caller(1, e.cfg.fullPath)))

	return e
}

// AttachContextMessage implements ContextMessage. The entry's location was captured by
// whoever built it.
func (e *Error[T]) AttachContextMessage(entry Entry) *Error[T] {
	e.push(entry)
	return e
}

func (e *Error[T]) push(entry Entry) {
	if e == nil {
		return
	}

	e.context = append(e.context, entry)
}

func (e *Error[T]) fullPaths() bool { return e != nil && e.cfg.fullPath }

// ------ getters

// Payload returns the wrapped root cause.
func (e *Error[T]) Payload() T {
	if e == nil {
		var zero T
		return zero
	}

	return e.err
}

// Len returns the number of context entries.
func (e *Error[T]) Len() int {
	if e == nil {
		return 0
	}

	return len(e.context)
}

// Trail returns a copy of the context entries in insertion order.
func (e *Error[T]) Trail() []Entry {
	if e == nil || len(e.context) == 0 {
		return nil
	}

	out := make([]Entry, len(e.context))
	copy(out, e.context)

	return out
}

// Entries implements contract.Annotated.
func (e *Error[T]) Entries() []contract.Entry {
	if e == nil || len(e.context) == 0 {
		return nil
	}

	out := make([]contract.Entry, len(e.context))
	for i, entry := range e.context {
		out[i] = entry
	}

	return out
}

// Order returns the configured render order.
func (e *Error[T]) Order() Order {
	if e == nil {
		return NewestFirst
	}

	return e.cfg.order
}

// ------ standard error interface

// Error renders "<newest message>: ... : <oldest message>: <payload>", matching the
// outer-to-inner convention of fmt.Errorf wrapping. It ignores the configured Order.
func (e *Error[T]) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	for i := len(e.context) - 1; i >= 0; i-- {
		b.WriteString(e.context[i].message)
		b.WriteString(": ")
	}

	b.WriteString(fmt.Sprint(any(e.err)))

	return b.String()
}

// Unwrap returns the payload when it is an error, so errors.Is / errors.As see through
// the wrapper. Non-error payloads unwrap to nil.
func (e *Error[T]) Unwrap() error {
	if e == nil {
		return nil
	}

	if err, ok := any(e.err).(error); ok {
		return err
	}

	return nil
}

// ordered returns the trail in render order. The result may alias e.context.
func (e *Error[T]) ordered() []Entry {
	if e.cfg.order == OldestFirst {
		return e.context
	}

	out := make([]Entry, len(e.context))
	for i, entry := range e.context {
		out[len(out)-1-i] = entry
	}

	return out
}
