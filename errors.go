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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lightwire/di/internal/direflect"
)

// Sentinel errors reported by the container. Use errors.Is to match them;
// the concrete errors carry the offending type names.
var (
	// ErrDuplicateFactory is returned when a type that already has a
	// factory is registered again.
	ErrDuplicateFactory = errors.New("factory already registered")

	// ErrUnknownStrategy is returned when no construction strategy applies
	// to a type.
	ErrUnknownStrategy = errors.New("unknown construction strategy")

	// ErrCyclicDependency is returned when a type is requested again while
	// its own constructor is still running.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrInstanceReclaimed is returned when a singleton was garbage
	// collected because every caller released it. The container does not
	// build a second instance.
	ErrInstanceReclaimed = errors.New("instance reclaimed by caller")

	// ErrInvalidScope is returned when a type declares a Scope other than
	// Singleton or Prototype.
	ErrInvalidScope = errors.New("invalid scope declaration")

	// ErrInvalidBase is returned when a type declares a base it neither
	// implements nor embeds.
	ErrInvalidBase = errors.New("invalid base declaration")

	// ErrTypeMismatch is returned when a resolved instance cannot be
	// presented as the requested type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConstructorFailed is returned when a Construct method returned an
	// error or panicked.
	ErrConstructorFailed = errors.New("constructor failed")

	// ErrInvalidSlot is returned when Inject receives something other than
	// a non-nil pointer to a pointer or interface variable.
	ErrInvalidSlot = errors.New("invalid injection slot")

	// ErrInvalidProvider is returned when Provide receives something other
	// than a function returning a pointer to a concrete type and an
	// optional error.
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrClosed is returned by containers that were closed.
	ErrClosed = errors.New("container closed")
)

// typeError is a failure attributed to a single type.
type typeError struct {
	kind   error
	typ    reflect.Type
	detail string
	cause  error
}

var _ error = (*typeError)(nil)

func (e *typeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v for type %v", e.kind, direflect.TypeName(e.typ))
	if e.detail != "" {
		b.WriteString(": ")
		b.WriteString(e.detail)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *typeError) Is(target error) bool { return target == e.kind }

func (e *typeError) Unwrap() error { return e.cause }

func newTypeError(kind error, t reflect.Type, format string, args ...interface{}) *typeError {
	return &typeError{kind: kind, typ: t, detail: fmt.Sprintf(format, args...)}
}

// cycleError reports the resolution path that led back to a type under
// construction.
type cycleError struct {
	path []reflect.Type
}

func (e *cycleError) Error() string {
	names := make([]string, len(e.path))
	for i, t := range e.path {
		names[i] = direflect.TypeName(t)
	}
	return fmt.Sprintf("%v detected: %v", ErrCyclicDependency, strings.Join(names, " -> "))
}

func (e *cycleError) Is(target error) bool { return target == ErrCyclicDependency }

// dependencyError wraps the failure to resolve one of a type's declared
// dependencies.
type dependencyError struct {
	typ   reflect.Type
	dep   reflect.Type
	cause error
}

func (e *dependencyError) Error() string {
	return fmt.Sprintf("could not build %v: failed to resolve dependency %v: %v",
		direflect.TypeName(e.typ), direflect.TypeName(e.dep), e.cause)
}

func (e *dependencyError) Unwrap() error { return e.cause }

// RootCause returns the innermost error reported by the container for a
// failed resolution, skipping the wrapping added at each level of the
// dependency chain.
func RootCause(err error) error {
	for {
		var dep *dependencyError
		if !errors.As(err, &dep) {
			return err
		}
		err = dep.cause
	}
}
