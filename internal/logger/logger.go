// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the portal server and CLI.
//
// Request-scoped loggers travel in the context: the HTTP middleware and the
// gRPC interceptor store one carrying trace_id, the auth middleware adds
// owner_id or link_id, and lower layers pick it up with FromContext. Secrets
// (passwords, session tokens, link tokens) are never logged; link tokens
// appear only as a fingerprint.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server's JSON logger on stdout. Entries carry role,
// a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewClientLogger builds the CLI logger. It writes human-readable lines to
// stderr, keeping stdout for command output, and hides everything below
// warn unless verbose is set.
func NewClientLogger(role string, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return &Logger{
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			Level(level).
			With().
			Str("role", role).
			Timestamp().
			Logger(),
	}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithStr returns a child logger that adds key=value to every entry.
func (l *Logger) WithStr(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// ContextWithStr stores in ctx a child of the context logger carrying
// key=value.
func ContextWithStr(ctx context.Context, key, value string) context.Context {
	return FromContext(ctx).WithStr(key, value).WithContext(ctx)
}

// FromRequest returns the logger stored in r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one, zerolog's
// default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
