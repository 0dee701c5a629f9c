package error

import "github.com/next-trace/scg-errctx/contract"

// Entry is a single context annotation. It is immutable once created and can only be
// built inside this package, by the operations that capture a caller location.
type Entry struct {
	message  string
	location string
}

var _ contract.Entry = Entry{}

func newEntry(message, location string) Entry {
	return Entry{message: message, location: location}
}

func (e Entry) Message() string  { return e.message }
func (e Entry) Location() string { return e.location }

// String renders the entry as "<message> (<location>)".
func (e Entry) String() string {
	return e.message + " (" + e.location + ")"
}
