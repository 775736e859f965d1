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

// Package ditest provides helpers for using containers in tests.
package ditest

import (
	"strings"

	"github.com/lightwire/di"
	"github.com/lightwire/di/dievent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
	Cleanup(func())
}

// New builds a container for the test, logging its events to the test log.
// Options given here are applied after the test logger, so WithLogger
// replaces it. The test fails immediately if the container cannot be
// built. Every instance the container constructed is closed when the test
// ends.
func New(tb TB, opts ...di.Option) *di.Container {
	opts = append([]di.Option{
		di.WithLogger(&dievent.ConsoleLogger{W: testWriter{tb}}),
	}, opts...)

	c, err := di.New(opts...)
	if err != nil {
		tb.Errorf("container could not be built: %v", err)
		tb.FailNow()
		return nil
	}

	tb.Cleanup(func() {
		if err := c.Close(); err != nil {
			tb.Errorf("container didn't close cleanly: %v", err)
		}
	})
	return c
}

// Resolve resolves T from c, failing the test if it cannot be resolved.
func Resolve[T any](tb TB, c *di.Container) T {
	v, err := di.Resolve[T](c)
	if err != nil {
		tb.Errorf("could not resolve: %v", err)
		tb.FailNow()
	}
	return v
}

// testWriter sends each written line to the test log.
type testWriter struct{ tb TB }

func (w testWriter) Write(p []byte) (int, error) {
	w.tb.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
