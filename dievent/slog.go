// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package dievent

import (
	"context"
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger is a container event logger that logs events using a slog
// logger.
type SlogLogger struct {
	Logger *slog.Logger

	ctx        context.Context
	logLevel   slog.Level
	errorLevel *slog.Level
}

// UseContext sets the context that will be used when logging to slog.
func (l *SlogLogger) UseContext(ctx context.Context) {
	l.ctx = ctx
}

// UseLogLevel sets the level of non-error logs emitted by the container to
// level.
func (l *SlogLogger) UseLogLevel(level slog.Level) {
	l.logLevel = level
}

// UseErrorLevel sets the level of error logs emitted by the container to
// level.
func (l *SlogLogger) UseErrorLevel(level slog.Level) {
	l.errorLevel = &level
}

func (l *SlogLogger) context() context.Context {
	if l.ctx == nil {
		return context.Background()
	}
	return l.ctx
}

func (l *SlogLogger) logEvent(msg string, fields ...any) {
	l.Logger.Log(l.context(), l.logLevel, msg, fields...)
}

func (l *SlogLogger) logError(msg string, fields ...any) {
	lvl := slog.LevelError
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}
	l.Logger.Log(l.context(), lvl, msg, fields...)
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		fields := []any{
			slog.String("type", e.TypeName),
			slog.Bool("strict", e.Strict),
		}
		if e.Caller != "" {
			fields = append(fields, slog.String("caller", e.Caller))
		}
		if e.Err != nil {
			l.logError("registration failed", append(fields, slogErr(e.Err))...)
			return
		}
		l.logEvent("registered", append(fields,
			slog.String("strategy", e.Strategy),
			slog.String("scope", scopeName(e.Singleton)),
		)...)
	case *Aliased:
		fields := []any{
			slog.String("base", e.BaseName),
			slog.String("target", e.TargetName),
		}
		if e.ReplacedName != "" {
			fields = append(fields, slog.String("replaced", e.ReplacedName))
		}
		l.logEvent("aliased", fields...)
	case *Constructing:
		l.logEvent("constructing", slog.String("type", e.TypeName))
	case *Constructed:
		if e.Err != nil {
			l.logError("construction failed",
				slog.String("type", e.TypeName),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("constructed",
				slog.String("type", e.TypeName),
				slog.String("runtime", e.Runtime.String()),
			)
		}
	case *Reused:
		l.logEvent("reused", slog.String("type", e.TypeName))
	case *Closed:
		if e.Err != nil {
			l.logError("close failed",
				slog.String("type", e.TypeName),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("closed", slog.String("type", e.TypeName))
		}
	}
}

func slogErr(err error) slog.Attr {
	return slog.Any("error", err)
}
