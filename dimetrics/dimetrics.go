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

// Package dimetrics exports container events as Prometheus metrics.
//
//	m, err := dimetrics.New(prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//	c, err := di.New(di.WithLogger(m))
package dimetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/lightwire/di/dievent"
)

// Namespace prefixes every metric name.
const Namespace = "di"

const (
	_resultSuccess = "success"
	_resultError   = "error"
)

// Logger is a dievent.Logger that counts container events.
type Logger struct {
	registrations *prometheus.CounterVec
	aliases       prometheus.Counter
	constructions *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	reuses        *prometheus.CounterVec
	closes        *prometheus.CounterVec
}

var _ dievent.Logger = (*Logger)(nil)

// New builds a Logger and registers its collectors with reg. Every
// registration failure is reported.
func New(reg prometheus.Registerer) (*Logger, error) {
	l := &Logger{
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "registrations_total",
				Help:      "Total number of type registrations",
			},
			[]string{"strategy", "scope", "result"},
		),
		aliases: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "aliases_total",
				Help:      "Total number of base types bound to an implementation",
			},
		),
		constructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "constructions_total",
				Help:      "Total number of constructor calls",
			},
			[]string{"type", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "construction_duration_seconds",
				Help:      "Constructor duration in seconds, including dependencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		reuses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "reuses_total",
				Help:      "Total number of resolutions served by a live singleton",
			},
			[]string{"type"},
		),
		closes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "closes_total",
				Help:      "Total number of instances closed by the container",
			},
			[]string{"type", "result"},
		),
	}

	err := multierr.Combine(
		reg.Register(l.registrations),
		reg.Register(l.aliases),
		reg.Register(l.constructions),
		reg.Register(l.duration),
		reg.Register(l.reuses),
		reg.Register(l.closes),
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// LogEvent records the event.
func (l *Logger) LogEvent(event dievent.Event) {
	switch e := event.(type) {
	case *dievent.Registered:
		if e.Err != nil {
			l.registrations.WithLabelValues("", "", _resultError).Inc()
			return
		}
		scope := "prototype"
		if e.Singleton {
			scope = "singleton"
		}
		l.registrations.WithLabelValues(e.Strategy, scope, _resultSuccess).Inc()
	case *dievent.Aliased:
		l.aliases.Inc()
	case *dievent.Constructed:
		l.constructions.WithLabelValues(e.TypeName, result(e.Err)).Inc()
		if e.Err == nil {
			l.duration.WithLabelValues(e.TypeName).Observe(e.Runtime.Seconds())
		}
	case *dievent.Reused:
		l.reuses.WithLabelValues(e.TypeName).Inc()
	case *dievent.Closed:
		l.closes.WithLabelValues(e.TypeName, result(e.Err)).Inc()
	}
}

func result(err error) string {
	if err != nil {
		return _resultError
	}
	return _resultSuccess
}
