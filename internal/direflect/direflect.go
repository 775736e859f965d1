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

package direflect

import (
	"reflect"
	"runtime"
	"strings"
	"unsafe"
)

// Indirect strips every level of pointer indirection from t. It is the
// identity under which the container indexes types.
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// TypeName returns a readable name for t.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// FuncName returns a readable name for the function fn.
func FuncName(fn interface{}) string {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return "n/a"
	}
	return runtime.FuncForPC(fv.Pointer()).Name() + "()"
}

// Embeds reports whether the struct type outer embeds base, by value or
// by pointer, directly or through promoted fields.
func Embeds(outer, base reflect.Type) bool {
	_, ok := embeddedField(outer, base)
	return ok
}

// Embedded returns a pointer to the base struct embedded in the struct v
// points to. It reports false when v does not embed base or when the path
// to it crosses a nil embedded pointer.
func Embedded(v reflect.Value, base reflect.Type) (reflect.Value, bool) {
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, false
	}
	f, ok := embeddedField(v.Type().Elem(), base)
	if !ok {
		return reflect.Value{}, false
	}
	fv, err := v.Elem().FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, false
	}

	// Unexported embedded fields yield read-only values, so the pointer is
	// rebuilt from the field's address instead of going through Addr.
	if f.Type.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, false
		}
		return reflect.NewAt(base, fv.UnsafePointer()), true
	}
	return reflect.NewAt(base, unsafe.Pointer(fv.UnsafeAddr())), true
}

func embeddedField(outer, base reflect.Type) (reflect.StructField, bool) {
	if outer == nil || outer.Kind() != reflect.Struct || base.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	f, ok := outer.FieldByName(base.Name())
	if !ok || !f.Anonymous {
		return reflect.StructField{}, false
	}
	if f.Type != base && f.Type != reflect.PointerTo(base) {
		return reflect.StructField{}, false
	}
	return f, true
}

// Caller returns the name of the first function on the stack outside this
// module, which is where a declaration was made.
func Caller() string {
	// Ascend at most 8 frames looking for a caller outside the container.
	pcs := make([]uintptr, 8)

	// Don't include this frame.
	n := runtime.Callers(1, pcs)
	if n == 0 {
		return "n/a"
	}

	frames := runtime.CallersFrames(pcs[:n])
	for f, more := frames.Next(); more; f, more = frames.Next() {
		if shouldIgnoreFrame(f) {
			continue
		}
		return f.Function
	}
	return "n/a"
}

// Ascend the call stack until we leave the container's production code.
// This allows us to avoid hard-coding a frame skip, which makes this code
// work well even when it's wrapped.
func shouldIgnoreFrame(f runtime.Frame) bool {
	if strings.HasSuffix(f.File, "_test.go") {
		return false
	}
	for _, prefix := range _ignoredPrefixes {
		if strings.HasPrefix(f.Function, prefix) {
			return true
		}
	}
	return false
}

var _ignoredPrefixes = []string{
	"github.com/lightwire/di.",
	"github.com/lightwire/di/",
	"runtime.",
}
