package main

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const defaultLogLevel = "info"

// newLogger returns a logfmt logger on w that drops records below lvl
// (debug, info, warn or error).
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	allowed, err := level.Parse(lvl)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", lvl, err)
	}

	var logger log.Logger
	{
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
		logger = level.NewFilter(logger, level.Allow(allowed))
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
		logger = log.With(logger, "caller", log.DefaultCaller)
	}

	return logger, nil
}
