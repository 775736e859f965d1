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

import "time"

// Event defines an event emitted by the container.
type Event interface {
	event() // Only the container can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()   {}
func (*Aliased) event()      {}
func (*Constructing) event() {}
func (*Constructed) event()  {}
func (*Reused) event()       {}
func (*Closed) event()       {}

// Registered is emitted after the container selected, or failed to select,
// a construction strategy for a type.
type Registered struct {
	// TypeName is the name of the registered type.
	TypeName string

	// Strategy is the construction strategy chosen for the type.
	Strategy string

	// Singleton reports whether instances are shared while alive.
	Singleton bool

	// Strict is true when the type was declared up front rather than
	// discovered as a dependency.
	Strict bool

	// Caller is the function that declared the type, for strict
	// registrations.
	Caller string

	// Err is non-nil if the type could not be registered.
	Err error
}

// Aliased is emitted when a registered type is recorded as the
// implementation of one of its declared bases.
type Aliased struct {
	BaseName   string
	TargetName string

	// ReplacedName is the previous implementation of the base, if any.
	ReplacedName string
}

// Constructing is emitted before a constructor runs.
type Constructing struct {
	TypeName string
}

// Constructed is emitted after a constructor returned.
type Constructed struct {
	TypeName string
	Runtime  time.Duration
	Err      error
}

// Reused is emitted when a live singleton satisfies a resolution.
type Reused struct {
	TypeName string
}

// Closed is emitted after the container closed a constructed instance.
type Closed struct {
	TypeName string
	Err      error
}
