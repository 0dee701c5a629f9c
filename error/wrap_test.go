package error_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiError "github.com/next-trace/scg-errctx/error"
)

func TestEnsure(t *testing.T) {
	t.Parallel()

	if got := apiError.Ensure(nil); got != nil {
		t.Fatalf("Ensure(nil) => %v; want nil", got)
	}

	e := apiError.New(io.EOF).Context("read")
	if got := apiError.Ensure(e); got != e {
		t.Fatalf("Ensure(*Error) returned different pointer")
	}

	if got := apiError.Ensure(fmt.Errorf("handler: %w", e)); got != e {
		t.Fatalf("Ensure must find *Error in the chain")
	}

	plain := errors.New("boom")
	wrapped := apiError.Ensure(plain)

	require.NotNil(t, wrapped)
	assert.Equal(t, plain, wrapped.Payload())
	assert.Zero(t, wrapped.Len())
	assert.ErrorIs(t, wrapped, plain)
}

func TestAnnotate_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, apiError.Annotate(nil, "x"))
	assert.NoError(t, apiError.Annotatef(nil, "x %d", 1))
}

func TestAnnotate_PromotesPlainError(t *testing.T) {
	t.Parallel()

	err, l := apiError.Annotate(io.ErrUnexpectedEOF, "read header"), line()

	var e *apiError.Error[error]
	require.True(t, errors.As(err, &e))
	assert.Equal(t, io.ErrUnexpectedEOF, e.Payload())
	require.Equal(t, 1, e.Len())
	assert.Equal(t, at("wrap_test.go", l), e.Trail()[0].Location())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestAnnotate_AppendsInPlace(t *testing.T) {
	t.Parallel()

	e := apiError.New("quota exceeded").Context("reserve")

	err := apiError.Annotate(e, "provision volume")
	err = apiError.Annotatef(err, "create claim %q", "data-0")

	got, ok := err.(*apiError.Error[string])
	require.True(t, ok, "Annotate must keep the payload type")
	require.True(t, got == e, "Annotate must append to the same error")
	assert.Equal(t, []string{"reserve", "provision volume", `create claim "data-0"`}, messages(e))
	assert.Equal(t, `create claim "data-0": provision volume: reserve: quota exceeded`, err.Error())
}

func TestAnnotate_KeepsFullPaths(t *testing.T) {
	t.Parallel()

	e := apiError.New(io.EOF, apiError.WithFullPaths())
	_ = apiError.Annotate(e, "a")

	assert.Contains(t, e.Trail()[0].Location(), "/error/wrap_test.go:")
}

func TestAnnotate_WrappedChainGetsNewLayer(t *testing.T) {
	t.Parallel()

	inner := apiError.New(io.EOF).Context("inner")
	err := apiError.Annotate(fmt.Errorf("middle: %w", inner), "outer")

	assert.Equal(t, "outer: middle: inner: EOF", err.Error())
	assert.Equal(t, 1, inner.Len())
	assert.ErrorIs(t, err, io.EOF)
}
