// Package error provides a generic error wrapper that carries a trail of context messages.
//
// An Error[T] owns one root-cause payload of any type T and an append-only list of
// entries. Each entry pairs a human-readable message with the source position of the
// code that attached it, so the final report shows which call path produced a failure.
//
// Key characteristics:
//   - Payload is never transformed, only annotated
//   - Context/Contextf record the location of their immediate caller
//   - Error() follows Go's "outer: inner: cause" convention
//   - %+v (and DebugString) render the payload followed by a "Caused by:" trail
//   - Unwrap exposes error payloads to errors.Is / errors.As
//   - Result[V, T] and the ContextMessage capability annotate failure outcomes in place
//   - zap integration through zapcore.ObjectMarshaler and Field
//
// Typical use at an early return:
//
//	cfg, err := load(path)
//	if err != nil {
//		return nil, apiError.Annotate(err, "loading service config")
//	}
//
// The rendered form is:
//
//	<payload>
//
//	Caused by:
//	- loading service config (service/config.go:42)
//	- reading file (service/config.go:17)
//
// Entries render newest first by default; WithOrder(OldestFirst) selects insertion order.
package error
