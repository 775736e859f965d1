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

package ditest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lightwire/di"
	"github.com/lightwire/di/dievent"
	"github.com/lightwire/di/internal/dilog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct{ name string }

type engine struct {
	clock  *clock
	closed bool
}

func (e *engine) Construct(c *clock) { e.clock = c }

func (e *engine) Close() error {
	e.closed = true
	return nil
}

type faultyEngine struct{ name string }

func (*faultyEngine) Close() error { return errors.New("great sadness") }

type unbuildable interface{ Build() }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("logs events", func(t *testing.T) {
		t.Parallel()

		spy := newTB()
		c := New(spy)
		require.NotNil(t, c)

		e := Resolve[*engine](spy, c)
		assert.Zero(t, spy.failures)
		assert.Contains(t, spy.logs.String(), "[di] BUILT\t\tditest.engine in")

		spy.cleanup()
		assert.True(t, e.closed, "instances must be closed when the test ends")
		assert.Zero(t, spy.failures)
		assert.Empty(t, spy.errors.String())
	})

	t.Run("WithLogger replaces the test logger", func(t *testing.T) {
		t.Parallel()

		var events dilog.Spy
		spy := newTB()
		c := New(spy, di.WithLogger(&events))

		Resolve[*engine](spy, c)
		assert.Empty(t, spy.logs.String())
		assert.Equal(t, []string{"ditest.clock", "ditest.engine"}, events.Constructed())
	})

	t.Run("fails on build errors", func(t *testing.T) {
		t.Parallel()

		spy := newTB()
		c := New(spy, di.Declare[unbuildable]())
		assert.Nil(t, c)
		assert.Equal(t, 1, spy.failures)
		assert.Contains(t, spy.errors.String(), "container could not be built")
		assert.Contains(t, spy.errors.String(), "ditest.unbuildable")
	})

	t.Run("reports close errors", func(t *testing.T) {
		t.Parallel()

		spy := newTB()
		c := New(spy)
		e := Resolve[*faultyEngine](spy, c)

		spy.cleanup()
		assert.Contains(t, spy.errors.String(), "container didn't close cleanly: great sadness")
		assert.NotNil(t, e)
	})

	t.Run("with testing.T", func(t *testing.T) {
		t.Parallel()

		c := New(t, di.WithLogger(dievent.NopLogger))
		e := Resolve[*engine](t, c)
		assert.Same(t, e.clock, Resolve[*clock](t, c))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	spy := newTB()
	c := New(spy)

	v := Resolve[unbuildable](spy, c)
	assert.Nil(t, v)
	assert.Equal(t, 1, spy.failures)
	assert.Contains(t, spy.errors.String(), "could not resolve")
	assert.Contains(t, spy.errors.String(), "ditest.unbuildable")

	require.NoError(t, c.Register(reflect.TypeFor[clock]()))
}
