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
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Dump writes one line per registry entry to w, describing its factory,
// alias and cached instance. The output is meant for debugging and its
// format may change.
func (c *Container) Dump(w io.Writer) error {
	entries := make([]*entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name() < entries[j].name()
	})

	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) String() string {
	var b bytes.Buffer
	_ = c.Dump(&b)
	return b.String()
}

func (e *entry) String() string {
	factory := "none"
	switch {
	case e.instance.IsValid():
		factory = "instance"
	case e.factory != nil:
		factory = e.strategy.String()
	}

	scope := "-"
	if e.factory != nil {
		scope = Prototype.String()
		if e.singleton {
			scope = Singleton.String()
		}
	}

	alias := "<none>"
	if e.alias != nil {
		alias = e.alias.name()
	}

	cached := "none"
	if e.cached != nil {
		cached = "dead"
		if e.cached.Alive() {
			cached = "alive"
		}
	}

	return fmt.Sprintf("%v - factory: %v, scope: %v, alias: %v, cached: %v, building: %v",
		e.name(), factory, scope, alias, cached, e.inProgress)
}
