package error_test

import (
	"errors"
	"fmt"
	"io"

	apiError "github.com/next-trace/scg-errctx/error"
)

func ExampleNew() {
	err := apiError.New(errors.New("connection refused"))
	fmt.Printf("%+v", err)
	// Output:
	// connection refused
	//
	// Caused by:
}

func ExampleAnnotate() {
	err := apiError.Annotate(io.ErrUnexpectedEOF, "reading header")
	err = apiError.Annotate(err, "loading snapshot")

	fmt.Println(err)
	fmt.Println(errors.Is(err, io.ErrUnexpectedEOF))
	// Output:
	// loading snapshot: reading header: unexpected EOF
	// true
}

func ExampleResult() {
	r := apiError.Fail[int]("volume busy")
	r = r.Context("detach volume")

	_, err := r.Unpack()
	fmt.Println(err)
	// Output: detach volume: volume busy
}
