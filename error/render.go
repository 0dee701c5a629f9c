package error

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// causedByHeader separates the payload from the trail in the rendered form.
const causedByHeader = "Caused by:"

// Render writes the payload's %+v text, a blank line, the "Caused by:" header, one
// "- <message> (<location>)" line per entry in the configured order and a final newline.
// Write failures are returned unchanged.
func (e *Error[T]) Render(w io.Writer) error {
	if e == nil {
		_, err := io.WriteString(w, "<nil>")
		return err
	}

	if _, err := fmt.Fprintf(w, "%+v\n\n%s\n", any(e.err), causedByHeader); err != nil {
		return err
	}

	for _, entry := range e.ordered() {
		if _, err := fmt.Fprintf(w, "- %s\n", entry); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// DebugString returns the Render output as a string.
func (e *Error[T]) DebugString() string {
	var b strings.Builder
	// strings.Builder never fails a write
	_ = e.Render(&b)

	return b.String()
}

// Format implements fmt.Formatter:
//   - %v, %s: Error()
//   - %q:     quoted Error()
//   - %+v:    DebugString()
func (e *Error[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.DebugString())
			return
		}

		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.Error())
	}
}

type debugStringer interface {
	error
	DebugString() string
}

// DebugString returns the full rendering of the first contextual error in err's chain,
// or err.Error() when the chain has none.
func DebugString(err error) string {
	if err == nil {
		return ""
	}

	var d debugStringer
	if errors.As(err, &d) {
		return d.DebugString()
	}

	return err.Error()
}
