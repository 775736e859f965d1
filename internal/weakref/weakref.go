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

// Package weakref holds non-owning observations of heap values whose
// static type is only known through reflection.
//
// The standard library's weak.Pointer is parameterized by the pointee type,
// which the container only learns at run time. The runtime's weak handles
// are keyed by object address alone, so a Ref records the handle against
// the first byte of the object and restores the original pointer type when
// the observation is upgraded.
//
// The runtime packs small pointer-free values into shared blocks, and a
// block is only reclaimed once every value in it is unreachable. Values
// meant to be observed must therefore be allocated with New.
package weakref

import (
	"fmt"
	"reflect"
	"unsafe"
	"weak"
)

// Ref is a weak observation of the value a pointer refers to. The zero Ref
// observes nothing and is never alive.
type Ref struct {
	typ  reflect.Type // pointer type of the observed value
	ptr  weak.Pointer[byte]
	pin  reflect.Value // zero-size values only
	zero bool
}

// _tinySize is the size below which the runtime may pack pointer-free
// allocations together.
const _tinySize = 16

var _pinType = reflect.TypeFor[unsafe.Pointer]()

// New returns a pointer to a new zero value of t that has a heap allocation
// of its own, so that observing it with Make tracks exactly that value.
func New(t reflect.Type) reflect.Value {
	if t.Size() == 0 || t.Size() >= _tinySize || hasPointers(t) {
		return reflect.New(t)
	}
	// A pointer field moves the allocation out of the shared blocks. The
	// value stays at offset zero, the start of the allocation.
	padded := reflect.StructOf([]reflect.StructField{
		{Name: "V", Type: t},
		{Name: "Pin", Type: _pinType},
	})
	return reflect.New(padded).Elem().Field(0).Addr()
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	default:
		return false
	}
}

// Make observes the value v points to. v must be a non-nil pointer to the
// start of a heap allocation, such as the result of New. Small pointer-free
// values allocated any other way may stay observable after they became
// unreachable.
//
// Zero-size values all share a single address that is never reclaimed, so
// they are held strongly.
func Make(v reflect.Value) Ref {
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic(fmt.Sprintf("weakref: cannot observe %v", v))
	}
	if v.Type().Elem().Size() == 0 {
		return Ref{typ: v.Type(), pin: v, zero: true}
	}
	return Ref{
		typ: v.Type(),
		ptr: weak.Make((*byte)(v.UnsafePointer())),
	}
}

// Value upgrades the observation to a strong reference. It reports false
// once the garbage collector has found the allocation unreachable.
func (r Ref) Value() (reflect.Value, bool) {
	if r.zero {
		return r.pin, true
	}
	if r.typ == nil {
		return reflect.Value{}, false
	}
	p := r.ptr.Value()
	if p == nil {
		return reflect.Value{}, false
	}
	return reflect.NewAt(r.typ.Elem(), unsafe.Pointer(p)), true
}

// Alive reports whether the observed value is still reachable.
func (r Ref) Alive() bool {
	_, ok := r.Value()
	return ok
}

// Type returns the pointer type of the observed value.
func (r Ref) Type() reflect.Type { return r.typ }
