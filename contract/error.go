// Package contract exposes the minimal, non-generic surface of an annotated error.
//
// Packages that only need to inspect or report an annotation trail can depend on these
// interfaces without knowing the payload type of the concrete error.
package contract

// Entry is one context annotation: a message and the source position that attached it.
type Entry interface {
	Message() string
	// Location is "dir/file.go:line" (or a full path when configured). Never empty.
	Location() string
}

// Annotated is implemented by errors carrying a context trail.
//
// Implementations must:
//   - Return a fresh slice from Entries, in insertion (oldest-first) order.
//   - Support errors.Unwrap via Unwrap() when the payload is itself an error.
type Annotated interface {
	error
	Entries() []Entry
	Unwrap() error
}
