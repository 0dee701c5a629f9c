// Package main demonstrates usage of the scg-errctx package.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apiError "github.com/next-trace/scg-errctx/error"
)

type settings struct {
	port int
}

func readSettings(path string) (*settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apiError.Annotatef(err, "reading %s", path)
	}

	port, err := strconv.Atoi(string(raw))
	if err != nil {
		return nil, apiError.Annotate(err, "parsing port")
	}

	return &settings{port: port}, nil
}

func loadSettings(path string) apiError.Result[*settings, error] {
	s, err := readSettings(path)
	if err != nil {
		return apiError.Err[*settings](apiError.Ensure(err)).Context("loading listener settings")
	}

	return apiError.Ok[*settings, error](s)
}

func main() {
	logger, err := newConsoleLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Direct construction with a non-error payload
	e := apiError.New("quota exceeded").
		Context("reserving volume").
		Context("provisioning claim data-0")
	fmt.Printf("%+v", e)

	// Early-return style through plain Go errors
	res := loadSettings("/nonexistent/listener.conf")
	if _, err := res.Unpack(); err != nil {
		fmt.Println(errors.Is(err, fs.ErrNotExist), err)
		logger.Error("startup failed", apiError.Field("error", err))
	}
}

// newConsoleLogger returns a human-friendly console logger without caller info; the
// contextual error carries its own locations.
func newConsoleLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	return cfg.Build()
}
