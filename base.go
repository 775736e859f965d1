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
)

// Derived is implemented by types that satisfy other type identities. When
// such a type is registered, resolving any of its bases yields the derived
// instance, unless the base has a factory of its own.
//
// A base is either an interface implemented by the derived pointer type, or
// a struct embedded in the derived type. Struct bases may declare bases of
// their own; those are followed as well.
//
//	func (*MockStore) Bases() []reflect.Type {
//		return []reflect.Type{reflect.TypeFor[Store]()}
//	}
type Derived interface {
	Bases() []reflect.Type
}

// declaredBases collects the ancestors of t, validating each against t.
func declaredBases(t reflect.Type, probe interface{}) ([]reflect.Type, error) {
	var (
		bases []reflect.Type
		seen  = map[reflect.Type]bool{t: true}
	)

	var walk func(probe interface{}) error
	walk = func(probe interface{}) error {
		d, ok := probe.(Derived)
		if !ok {
			return nil
		}
		for _, b := range d.Bases() {
			if b == nil {
				return newTypeError(ErrInvalidBase, t, "nil base")
			}
			if b.Kind() != reflect.Interface {
				b = direflect.Indirect(b)
			}
			if seen[b] {
				continue
			}
			seen[b] = true

			switch b.Kind() {
			case reflect.Interface:
				if !reflect.PointerTo(t).Implements(b) {
					return newTypeError(ErrInvalidBase, t,
						"%v does not implement %v", reflect.PointerTo(t), b)
				}
				bases = append(bases, b)
			case reflect.Struct:
				if !direflect.Embeds(t, b) {
					return newTypeError(ErrInvalidBase, t,
						"%v is not embedded in %v", b, t)
				}
				bases = append(bases, b)
				if err := walk(reflect.New(b).Interface()); err != nil {
					return err
				}
			default:
				return newTypeError(ErrInvalidBase, t,
					"%v is neither an interface nor a struct", b)
			}
		}
		return nil
	}

	if err := walk(probe); err != nil {
		return nil, err
	}
	return bases, nil
}

// present converts v, a pointer to a constructed instance, into the
// requested type: the same pointer type, an interface it implements, or a
// pointer to a struct it embeds.
func present(v reflect.Value, want reflect.Type) (reflect.Value, error) {
	if v.Type() == want {
		return v, nil
	}
	switch want.Kind() {
	case reflect.Interface:
		if v.Type().Implements(want) {
			out := reflect.New(want).Elem()
			out.Set(v)
			return out, nil
		}
	case reflect.Pointer:
		if p, ok := direflect.Embedded(v, want.Elem()); ok {
			return p, nil
		}
	}
	return reflect.Value{}, newTypeError(ErrTypeMismatch, want,
		"cannot present %v as %v", v.Type(), want)
}
