package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the logger handed to the game. Output is discarded unless
// Debug is set. The returned closer releases the log file, if any.
func (l Logging) NewLogger() (*log.Logger, io.Closer, error) {
	if !l.Debug {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}

	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	if l.File == "" {
		return log.New(os.Stderr, "", flags), nopCloser{}, nil
	}

	f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", flags), f, nil
}
