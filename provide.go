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

	"go.uber.org/multierr"

	"github.com/lightwire/di/internal/direflect"
)

// Provide registers constructor functions, as the Provide option does for
// New. Every failure is reported, combined into one error.
//
//	err := c.Provide(func() *http.Client { return &http.Client{Timeout: time.Second} })
func (c *Container) Provide(constructors ...interface{}) error {
	caller := direflect.Caller()

	var errs error
	for _, ctor := range constructors {
		errs = multierr.Append(errs, c.provide(ctor, caller))
	}
	return errs
}

func (c *Container) provide(ctor interface{}, caller string) error {
	t, params, err := providerSignature(ctor)
	if err != nil {
		return err
	}

	fn := reflect.ValueOf(ctor)
	return c.register(c.entryFor(t), true, caller, func(reflect.Type) (Strategy, factory, error) {
		return StrategyProvider, c.providerFactory(t, fn, params), nil
	})
}

// providerSignature validates ctor and returns the type it builds along
// with its parameter types.
func providerSignature(ctor interface{}) (reflect.Type, []reflect.Type, error) {
	name := direflect.FuncName(ctor)
	ft := reflect.TypeOf(ctor)
	if ft == nil || ft.Kind() != reflect.Func {
		return nil, nil, fmt.Errorf("%w: %v is not a function", ErrInvalidProvider, direflect.TypeName(ft))
	}
	if reflect.ValueOf(ctor).IsNil() {
		return nil, nil, fmt.Errorf("%w: nil %v", ErrInvalidProvider, ft)
	}
	if ft.IsVariadic() {
		return nil, nil, fmt.Errorf("%w: %v must not be variadic", ErrInvalidProvider, name)
	}

	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == _errorType:
	default:
		return nil, nil, fmt.Errorf("%w: %v must return a pointer and an optional error, got %v",
			ErrInvalidProvider, name, ft)
	}
	out := ft.Out(0)
	if out.Kind() != reflect.Pointer || checkResolvable(out) != nil {
		return nil, nil, fmt.Errorf("%w: %v must return a pointer to a concrete type, not %v",
			ErrInvalidProvider, name, out)
	}

	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		p := ft.In(i)
		if err := checkResolvable(p); err != nil {
			return nil, nil, fmt.Errorf("%w: parameter %d of %v: %v is not a pointer or an interface",
				ErrInvalidProvider, i, name, p)
		}
		params[i] = p
	}
	return out.Elem(), params, nil
}

// providerFactory resolves params left to right through the container, then
// calls fn with them.
func (c *Container) providerFactory(t reflect.Type, fn reflect.Value, params []reflect.Type) factory {
	return func() (reflect.Value, error) {
		args, err := c.resolveParams(t, params)
		if err != nil {
			return reflect.Value{}, err
		}

		out := fn.Call(args)
		if len(out) == 2 && !out[1].IsNil() {
			return reflect.Value{}, &typeError{
				kind:  ErrConstructorFailed,
				typ:   t,
				cause: out[1].Interface().(error),
			}
		}
		if out[0].IsNil() {
			return reflect.Value{}, newTypeError(ErrConstructorFailed, t,
				"%v returned nil", direflect.FuncName(fn.Interface()))
		}
		return out[0], nil
	}
}
