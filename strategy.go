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

	"github.com/lightwire/di/internal/direflect"
	"github.com/lightwire/di/internal/weakref"
)

// Strategy is the way the container builds instances of a type.
type Strategy int

const (
	// StrategyUnknown means no way to build the type was found.
	StrategyUnknown Strategy = iota

	// StrategyDependencies builds the type by resolving the parameters of
	// its Construct method in order and passing them positionally.
	StrategyDependencies

	// StrategyZeroArg builds the type from its zero value, calling a
	// parameterless Construct method if it declares one.
	StrategyZeroArg

	// StrategyContainer builds the type by handing the container to its
	// Construct method, which pulls its own dependencies.
	StrategyContainer

	// StrategyProvider builds the type by calling a function registered
	// with Provide, resolving its parameters in order.
	StrategyProvider
)

func (s Strategy) String() string {
	switch s {
	case StrategyDependencies:
		return "dependencies"
	case StrategyZeroArg:
		return "zero-argument"
	case StrategyContainer:
		return "container"
	case StrategyProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// constructMethod is the name of the method through which a type declares
// how it is built.
const constructMethod = "Construct"

var (
	_containerType = reflect.TypeOf((*Container)(nil))
	_errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// factory produces a pointer to a new instance.
type factory func() (reflect.Value, error)

// selectStrategy picks exactly one construction strategy for t, checking
// the declarations in order of precedence.
func (c *Container) selectStrategy(t reflect.Type) (Strategy, factory, error) {
	if t.Kind() == reflect.Interface {
		return StrategyUnknown, nil, newTypeError(ErrUnknownStrategy, t,
			"interface with no registered implementation")
	}

	m, ok := reflect.PointerTo(t).MethodByName(constructMethod)
	if !ok {
		return StrategyZeroArg, zeroValueFactory(t), nil
	}
	params, err := constructParams(t, m)
	if err != nil {
		return StrategyUnknown, nil, err
	}

	switch {
	case len(params) > 0 && !isContainerHandle(params):
		return StrategyDependencies, c.constructFactory(t, m, params), nil
	case len(params) == 0:
		return StrategyZeroArg, c.constructFactory(t, m, nil), nil
	default:
		return StrategyContainer, c.constructFactory(t, m, params), nil
	}
}

func isContainerHandle(params []reflect.Type) bool {
	return len(params) == 1 && params[0] == _containerType
}

// constructParams validates the shape of t's Construct method and returns
// its parameter types, excluding the receiver.
func constructParams(t reflect.Type, m reflect.Method) ([]reflect.Type, error) {
	if _, ok := t.MethodByName(constructMethod); ok {
		return nil, newTypeError(ErrUnknownStrategy, t,
			"%v must be declared on %v", constructMethod, reflect.PointerTo(t))
	}

	mt := m.Type
	if mt.IsVariadic() {
		return nil, newTypeError(ErrUnknownStrategy, t,
			"%v must not be variadic", constructMethod)
	}
	switch {
	case mt.NumOut() == 0:
	case mt.NumOut() == 1 && mt.Out(0) == _errorType:
	default:
		return nil, newTypeError(ErrUnknownStrategy, t,
			"%v must return nothing or a single error, got %v", constructMethod, mt)
	}

	// In(0) is the receiver.
	params := make([]reflect.Type, 0, mt.NumIn()-1)
	for i := 1; i < mt.NumIn(); i++ {
		p := mt.In(i)
		if err := checkResolvable(p); err != nil {
			return nil, newTypeError(ErrUnknownStrategy, t,
				"parameter %d of %v: %v is not a pointer or an interface", i, constructMethod, p)
		}
		params = append(params, p)
	}
	return params, nil
}

func zeroValueFactory(t reflect.Type) factory {
	return func() (reflect.Value, error) {
		return weakref.New(t), nil
	}
}

// constructFactory resolves params left to right through the container,
// then calls Construct on a fresh zero value.
func (c *Container) constructFactory(t reflect.Type, m reflect.Method, params []reflect.Type) factory {
	return func() (reflect.Value, error) {
		inst := weakref.New(t)
		args, err := c.resolveParams(t, params, inst)
		if err != nil {
			return reflect.Value{}, err
		}

		out := m.Func.Call(args)
		if len(out) == 1 && !out[0].IsNil() {
			return reflect.Value{}, &typeError{
				kind:  ErrConstructorFailed,
				typ:   t,
				cause: out[0].Interface().(error),
			}
		}
		return inst, nil
	}
}

// resolveParams resolves params left to right, appending the results to
// the given leading arguments.
func (c *Container) resolveParams(t reflect.Type, params []reflect.Type, lead ...reflect.Value) ([]reflect.Value, error) {
	args := make([]reflect.Value, 0, len(lead)+len(params))
	args = append(args, lead...)
	for _, p := range params {
		v, err := c.resolve(p)
		if err != nil {
			return nil, &dependencyError{typ: t, dep: p, cause: err}
		}
		args = append(args, v)
	}
	return args, nil
}

// checkResolvable reports whether instances can be handed out as t: a
// pointer to a concrete type, or an interface.
func checkResolvable(t reflect.Type) error {
	switch {
	case t == nil:
		return fmt.Errorf("%w: cannot resolve a nil type", ErrTypeMismatch)
	case t.Kind() == reflect.Interface:
		return nil
	case t.Kind() == reflect.Pointer:
		switch t.Elem().Kind() {
		case reflect.Pointer, reflect.Interface:
		default:
			return nil
		}
	}
	return newTypeError(ErrTypeMismatch, t,
		"only pointers to concrete types and interfaces can be resolved, not %v", direflect.TypeName(t))
}
