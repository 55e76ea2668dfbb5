// Copyright (c) CertLedger
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a structured logger based on log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger writing to w with the given level.
// Supported levels are debug, info, warn and error.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// ExitWithError exits the process with the given code, allowing
// deferred cleanup in main to run before termination.
func ExitWithError(exitCode *int) {
	if *exitCode != 0 {
		os.Exit(*exitCode)
	}
}
