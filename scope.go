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
	"fmt"
	"reflect"
)

// Scope controls whether the container shares instances of a type.
type Scope int

const (
	// Singleton types have at most one live instance visible through the
	// container. This is the default.
	Singleton Scope = iota + 1

	// Prototype types are built afresh on every resolution.
	Prototype
)

func (s Scope) String() string {
	switch s {
	case Singleton:
		return "singleton"
	case Prototype:
		return "prototype"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Scoped is implemented by types that declare their scope. The method is
// called on a zero value and must only report a constant.
//
//	func (Session) Scope() di.Scope { return di.Prototype }
//
// Structs inherit the declaration of an embedded type and may override it
// with their own.
type Scoped interface {
	Scope() Scope
}

// declaredScope reports whether t is singleton-scoped, given a zero probe
// of *t.
func declaredScope(t reflect.Type, probe interface{}) (singleton bool, err error) {
	s, ok := probe.(Scoped)
	if !ok {
		return true, nil
	}
	switch scope := s.Scope(); scope {
	case Singleton:
		return true, nil
	case Prototype:
		return false, nil
	default:
		return false, newTypeError(ErrInvalidScope, t,
			"%v is neither %v nor %v", scope, Singleton, Prototype)
	}
}
