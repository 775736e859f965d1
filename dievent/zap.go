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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a container event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger

	logLevel   zapcore.Level // default: zapcore.InfoLevel
	errorLevel *zapcore.Level
}

var _ Logger = (*ZapLogger)(nil)

// UseErrorLevel sets the level of error logs emitted by the container to
// level.
func (l *ZapLogger) UseErrorLevel(level zapcore.Level) {
	l.errorLevel = &level
}

// UseLogLevel sets the level of non-error logs emitted by the container to
// level.
func (l *ZapLogger) UseLogLevel(level zapcore.Level) {
	l.logLevel = level
}

func (l *ZapLogger) logEvent(msg string, fields ...zap.Field) {
	l.Logger.Log(l.logLevel, msg, fields...)
}

func (l *ZapLogger) logError(msg string, fields ...zap.Field) {
	lvl := zapcore.ErrorLevel
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}
	l.Logger.Log(lvl, msg, fields...)
}

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		fields := []zap.Field{
			zap.String("type", e.TypeName),
			zap.Bool("strict", e.Strict),
		}
		if e.Caller != "" {
			fields = append(fields, zap.String("caller", e.Caller))
		}
		if e.Err != nil {
			l.logError("registration failed", append(fields, zap.Error(e.Err))...)
			return
		}
		l.logEvent("registered", append(fields,
			zap.String("strategy", e.Strategy),
			zap.String("scope", scopeName(e.Singleton)),
		)...)
	case *Aliased:
		fields := []zap.Field{
			zap.String("base", e.BaseName),
			zap.String("target", e.TargetName),
		}
		if e.ReplacedName != "" {
			fields = append(fields, zap.String("replaced", e.ReplacedName))
		}
		l.logEvent("aliased", fields...)
	case *Constructing:
		l.logEvent("constructing", zap.String("type", e.TypeName))
	case *Constructed:
		if e.Err != nil {
			l.logError("construction failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err),
			)
		} else {
			l.logEvent("constructed",
				zap.String("type", e.TypeName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Reused:
		l.logEvent("reused", zap.String("type", e.TypeName))
	case *Closed:
		if e.Err != nil {
			l.logError("close failed",
				zap.String("type", e.TypeName),
				zap.Error(e.Err),
			)
		} else {
			l.logEvent("closed", zap.String("type", e.TypeName))
		}
	}
}
