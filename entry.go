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
	"reflect"

	"github.com/lightwire/di/internal/direflect"
	"github.com/lightwire/di/internal/weakref"
)

// entry is the registry record for one type identity.
type entry struct {
	key reflect.Type

	// factory is nil until the type is registered.
	factory  factory
	strategy Strategy

	// instance is set for values the container holds strongly, which is
	// only the container itself.
	instance reflect.Value

	singleton  bool
	inProgress bool

	// alias is the entry of the most recently registered type that
	// declared this one as a base.
	alias *entry

	// cached is set for singletons once construction succeeded.
	cached *weakref.Ref
}

func (e *entry) name() string {
	return direflect.TypeName(e.key)
}

// registered reports whether resolving e can succeed without registering
// it first.
func (e *entry) registered() bool {
	return e.factory != nil || e.alias != nil
}

// terminal returns the entry that builds instances for e. Aliases always
// point at an entry with a factory, so at most one hop is needed.
func (e *entry) terminal() *entry {
	if e.factory == nil && e.alias != nil {
		return e.alias
	}
	return e
}

// entryFor returns the entry for key, creating it if needed.
func (c *Container) entryFor(key reflect.Type) *entry {
	if e, ok := c.entries[key]; ok {
		return e
	}
	e := &entry{key: key}
	c.entries[key] = e
	return e
}

// keyOf normalizes t to the type identity used by the registry.
func keyOf(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Interface {
		return t
	}
	return direflect.Indirect(t)
}
