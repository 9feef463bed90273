// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx holds the slog level used by the cad packages and
// returns package scoped loggers that honor it.
package logx

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// UserLevel is the verbosity level of the cad packages. Messages
// below this level are dropped. It defaults to [slog.LevelInfo] and
// can be changed at any time with [SetLevel] or directly.
var UserLevel = new(slog.LevelVar)

// SetLevel sets [UserLevel] to the given level.
func SetLevel(level slog.Level) {
	UserLevel.Set(level)
}

// handler holds the handler of new loggers. It starts out writing
// text records to stderr, filtered by [UserLevel].
var handler atomic.Pointer[slog.Handler]

func init() {
	SetHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel}))
}

// SetHandler replaces the handler used by loggers returned from
// [Logger] after the call and returns the previous one. It is mainly
// useful in tests, and safe to call concurrently with [Logger].
func SetHandler(h slog.Handler) slog.Handler {
	if prev := handler.Swap(&h); prev != nil {
		return *prev
	}
	return nil
}

// Logger returns a logger that tags every record with the given
// package name.
func Logger(pkg string) *slog.Logger {
	return slog.New(*handler.Load()).With("pkg", pkg)
}
