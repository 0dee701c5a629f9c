package error

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject implements zapcore.ObjectMarshaler. The trail is logged in the
// configured render order.
func (e *Error[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	enc.AddString("payload", fmt.Sprint(any(e.err)))

	return enc.AddArray("context", trail(e.ordered()))
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e Entry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.message)
	enc.AddString("location", e.location)

	return nil
}

type trail []Entry

func (t trail) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, entry := range t {
		if err := enc.AppendObject(entry); err != nil {
			return err
		}
	}

	return nil
}

type loggable interface {
	error
	zapcore.ObjectMarshaler
}

// Field returns a zap field for err. Contextual errors anywhere in the chain are logged
// as an object with payload and context; other errors fall back to zap.NamedError.
func Field(key string, err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}

	var l loggable
	if errors.As(err, &l) {
		return zap.Object(key, l)
	}

	return zap.NamedError(key, err)
}
