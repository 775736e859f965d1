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

// Package ditrace records container constructions as OpenTelemetry spans.
//
// Each constructor call becomes a span, nested under the span of the
// dependent being built, so a trace shows the shape of the object graph
// and where construction time went.
//
//	l := ditrace.New(ctx, otel.GetTracerProvider())
//	c, err := di.New(di.WithLogger(l))
package ditrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lightwire/di/dievent"
)

// TracerName is the instrumentation name of the tracer used by Logger.
const TracerName = "github.com/lightwire/di/ditrace"

// Attribute keys set on spans.
const (
	TypeKey     = attribute.Key("di.type")
	RuntimeKey  = attribute.Key("di.runtime_ns")
	BaseKey     = attribute.Key("di.base")
	StrategyKey = attribute.Key("di.strategy")
)

// Logger is a dievent.Logger that opens a span for every constructor call.
// Like the container it observes, it must only be used from one goroutine
// at a time.
type Logger struct {
	tracer trace.Tracer
	root   context.Context

	// stack holds the contexts of running constructors, innermost last.
	stack []context.Context
}

var _ dievent.Logger = (*Logger)(nil)

// New builds a Logger creating spans from tp. Top-level constructions are
// children of the span in ctx, if any.
func New(ctx context.Context, tp trace.TracerProvider) *Logger {
	return &Logger{
		tracer: tp.Tracer(TracerName),
		root:   ctx,
	}
}

func (l *Logger) current() context.Context {
	if n := len(l.stack); n > 0 {
		return l.stack[n-1]
	}
	return l.root
}

// LogEvent records the event.
func (l *Logger) LogEvent(event dievent.Event) {
	switch e := event.(type) {
	case *dievent.Registered:
		span := trace.SpanFromContext(l.current())
		attrs := []attribute.KeyValue{TypeKey.String(e.TypeName)}
		if e.Err != nil {
			span.AddEvent("registration failed", trace.WithAttributes(
				append(attrs, attribute.String("error", e.Err.Error()))...))
			return
		}
		span.AddEvent("registered", trace.WithAttributes(
			append(attrs, StrategyKey.String(e.Strategy))...))
	case *dievent.Aliased:
		trace.SpanFromContext(l.current()).AddEvent("aliased", trace.WithAttributes(
			BaseKey.String(e.BaseName),
			TypeKey.String(e.TargetName),
		))
	case *dievent.Constructing:
		ctx, _ := l.tracer.Start(l.current(), "construct "+e.TypeName,
			trace.WithAttributes(TypeKey.String(e.TypeName)))
		l.stack = append(l.stack, ctx)
	case *dievent.Constructed:
		n := len(l.stack)
		if n == 0 {
			return
		}
		span := trace.SpanFromContext(l.stack[n-1])
		l.stack = l.stack[:n-1]

		span.SetAttributes(RuntimeKey.Int64(e.Runtime.Nanoseconds()))
		if e.Err != nil {
			span.RecordError(e.Err)
			span.SetStatus(codes.Error, e.Err.Error())
		}
		span.End()
	case *dievent.Reused:
		trace.SpanFromContext(l.current()).AddEvent("reused", trace.WithAttributes(
			TypeKey.String(e.TypeName),
		))
	case *dievent.Closed:
		_, span := l.tracer.Start(l.current(), "close "+e.TypeName,
			trace.WithAttributes(TypeKey.String(e.TypeName)))
		if e.Err != nil {
			span.RecordError(e.Err)
			span.SetStatus(codes.Error, e.Err.Error())
		}
		span.End()
	}
}
