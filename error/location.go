package error

import (
	"runtime"

	"go.uber.org/zap/zapcore"
)

// unknownLocation is recorded when the runtime cannot resolve the calling frame.
const unknownLocation = "unknown"

// caller returns the source position skip frames above the function that calls it.
// caller(1) inside Context therefore names the code that invoked Context.
func caller(skip int, fullPath bool) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return unknownLocation
	}

	ec := zapcore.EntryCaller{Defined: ok, PC: pc, File: file, Line: line}
	if fullPath {
		return ec.FullPath()
	}

	return ec.TrimmedPath()
}

// usesFullPaths reports whether v was configured with WithFullPaths.
func usesFullPaths(v any) bool {
	p, ok := v.(interface{ fullPaths() bool })
	return ok && p.fullPaths()
}
