package error

import "fmt"

// ContextMessage is implemented by containers that can carry a contextual error, such as
// Result. Implementations supply only the primitive; Context and Contextf build the entry
// and capture the caller location for them.
type ContextMessage[S any] interface {
	// AttachContextMessage appends entry to the contained error, if any, and returns the
	// container. Containers without an error return themselves unchanged.
	AttachContextMessage(entry Entry) S
}

// Context attaches text to s, tagged with the location of the code calling Context.
func Context[S ContextMessage[S]](s S, text string) S {
	return s.AttachContextMessage(newEntry(text, caller(1, usesFullPaths(s))))
}

// Contextf is Context with a fmt.Sprintf message.
func Contextf[S ContextMessage[S]](s S, format string, args ...any) S {
	return s.AttachContextMessage(newEntry(fmt.Sprintf(format, args...), caller(1, usesFullPaths(s))))
}
