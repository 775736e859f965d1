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

package di

import (
	"io"

	"go.uber.org/multierr"

	"github.com/lightwire/di/dievent"
	"github.com/lightwire/di/internal/direflect"
)

// Close closes every instance the container constructed that implements
// io.Closer and is still alive, newest first, so dependents are closed
// before their dependencies. Instances already garbage collected are
// skipped. Close keeps going after errors and returns all of them.
//
// Close ends the life of the container. Afterwards every resolution and
// registration fails with ErrClosed, including of singletons that are
// still alive, and further calls to Close do nothing.
func (c *Container) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	closers := c.closers
	c.closers = nil

	var errs error
	for i := len(closers) - 1; i >= 0; i-- {
		v, ok := closers[i].Value()
		if !ok {
			continue
		}
		err := v.Interface().(io.Closer).Close()
		c.log.LogEvent(&dievent.Closed{
			TypeName: direflect.TypeName(v.Type().Elem()),
			Err:      err,
		})
		errs = multierr.Append(errs, err)
	}
	return errs
}
