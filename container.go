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
	"io"
	"reflect"

	"go.uber.org/multierr"

	"github.com/lightwire/di/dievent"
	"github.com/lightwire/di/internal/diclock"
	"github.com/lightwire/di/internal/direflect"
	"github.com/lightwire/di/internal/weakref"
)

var _closerType = reflect.TypeOf((*io.Closer)(nil)).Elem()

// Container builds object graphs on demand. Every type it is asked for is
// registered on first sight, so most programs never declare anything up
// front.
//
// A Container is not safe for concurrent use. Constructors run on the
// goroutine that called Resolve and may resolve further types from the
// same container.
type Container struct {
	entries map[reflect.Type]*entry

	// path holds the types whose constructors are running, outermost
	// first.
	path []reflect.Type

	// closers observes constructed io.Closers in the order their
	// constructors returned. Dead observations are dropped once the list
	// reaches compactAt.
	closers   []weakref.Ref
	compactAt int
	closed    bool

	log               dievent.Logger
	clock             diclock.Clock
	recoverFromPanics bool
}

// New builds a container. Types declared with Declare are registered
// immediately, and New reports every one that cannot be.
func New(opts ...Option) (*Container, error) {
	o := options{
		logger: dievent.NopLogger,
		clock:  diclock.System,
	}
	for _, opt := range opts {
		opt.apply(&o)
	}
	if o.logger == nil {
		o.logger = dievent.NopLogger
	}

	c := &Container{
		entries:           make(map[reflect.Type]*entry),
		log:               o.logger,
		clock:             o.clock,
		recoverFromPanics: o.recoverFromPanics,
	}

	self := c.entryFor(_containerType.Elem())
	self.instance = reflect.ValueOf(c)
	self.factory = func() (reflect.Value, error) { return self.instance, nil }
	self.singleton = true

	var errs error
	for _, d := range o.declared {
		if d.provided {
			errs = multierr.Append(errs, c.provide(d.ctor, d.caller))
		} else {
			errs = multierr.Append(errs, c.declare(d.typ, d.caller))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// Resolve returns an instance of T, building it and its dependencies if
// needed. T is a pointer to a concrete type or an interface.
//
//	srv, err := di.Resolve[*Server](c)
//
// Singletons are shared for as long as someone holds them. Once every
// caller has dropped a singleton and it was garbage collected, resolving
// it fails with ErrInstanceReclaimed. Instances the container allocates
// are tracked individually. A small pointer-free value returned by a
// Provide function may share its allocation with unrelated values and
// stay visible until all of them are collected.
//
// Resolving from a closed container fails with ErrClosed.
func Resolve[T any](c *Container) (T, error) {
	var out T
	v, err := c.resolve(reflect.TypeFor[T]())
	if err != nil {
		return out, err
	}
	return v.Interface().(T), nil
}

// MustResolve is like Resolve but panics if T cannot be resolved.
func MustResolve[T any](c *Container) T {
	out, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return out
}

// Inject resolves the type of each slot and stores the result in it. Each
// slot is a non-nil pointer to a variable of pointer or interface type.
// Inject stops at the first slot that cannot be resolved.
//
// Inject is intended for Construct methods that receive the container:
//
//	func (s *Service) Construct(c *di.Container) error {
//		return c.Inject(&s.store, &s.log)
//	}
func (c *Container) Inject(slots ...interface{}) error {
	for i, slot := range slots {
		sv := reflect.ValueOf(slot)
		if sv.Kind() != reflect.Pointer || sv.IsNil() {
			return fmt.Errorf("%w: slot %d is %T, not a non-nil pointer", ErrInvalidSlot, i, slot)
		}
		t := sv.Type().Elem()
		if err := checkResolvable(t); err != nil {
			return fmt.Errorf("%w: slot %d: %w", ErrInvalidSlot, i, err)
		}

		v, err := c.resolve(t)
		if err != nil {
			return err
		}
		sv.Elem().Set(v)
	}
	return nil
}

// Register declares the given types strictly. Each is registered right
// away and every failure is reported, combined into one error. Pointer
// indirection in the given types is ignored.
//
//	err := c.Register(reflect.TypeFor[Server](), reflect.TypeFor[*Handler]())
func (c *Container) Register(types ...reflect.Type) error {
	caller := direflect.Caller()

	var errs error
	for _, t := range types {
		errs = multierr.Append(errs, c.declare(t, caller))
	}
	return errs
}

func (c *Container) declare(t reflect.Type, caller string) error {
	if t == nil {
		return fmt.Errorf("%w: cannot register a nil type", ErrUnknownStrategy)
	}
	return c.register(c.entryFor(keyOf(t)), true, caller, c.selectStrategy)
}

// selector picks the construction strategy of a type.
type selector func(reflect.Type) (Strategy, factory, error)

// register selects a construction strategy for e and records its scope and
// bases. Nothing is recorded unless all of them are valid.
func (c *Container) register(e *entry, strict bool, caller string, sel selector) error {
	if c.closed {
		return newTypeError(ErrClosed, e.key, "cannot register after Close")
	}
	if e.factory != nil {
		err := newTypeError(ErrDuplicateFactory, e.key, "registered as %v", e.strategy)
		c.log.LogEvent(&dievent.Registered{
			TypeName: e.name(),
			Strict:   strict,
			Caller:   caller,
			Err:      err,
		})
		return err
	}

	strategy, f, singleton, bases, err := c.inspect(e.key, sel)
	if err != nil {
		c.log.LogEvent(&dievent.Registered{
			TypeName: e.name(),
			Strict:   strict,
			Caller:   caller,
			Err:      err,
		})
		return err
	}

	e.factory = f
	e.strategy = strategy
	e.singleton = singleton
	c.log.LogEvent(&dievent.Registered{
		TypeName:  e.name(),
		Strategy:  strategy.String(),
		Singleton: singleton,
		Strict:    strict,
		Caller:    caller,
	})

	for _, b := range bases {
		be := c.entryFor(b)
		ev := &dievent.Aliased{BaseName: be.name(), TargetName: e.name()}
		if be.alias != nil && be.alias != e {
			ev.ReplacedName = be.alias.name()
		}
		be.alias = e
		c.log.LogEvent(ev)
	}
	return nil
}

func (c *Container) inspect(t reflect.Type, sel selector) (
	strategy Strategy,
	f factory,
	singleton bool,
	bases []reflect.Type,
	err error,
) {
	strategy, f, err = sel(t)
	if err != nil {
		return StrategyUnknown, nil, false, nil, err
	}

	probe := reflect.New(t).Interface()
	if singleton, err = declaredScope(t, probe); err != nil {
		return StrategyUnknown, nil, false, nil, err
	}
	if bases, err = declaredBases(t, probe); err != nil {
		return StrategyUnknown, nil, false, nil, err
	}
	return strategy, f, singleton, bases, nil
}

// resolve returns an instance presented as t.
func (c *Container) resolve(t reflect.Type) (reflect.Value, error) {
	if c.closed {
		return reflect.Value{}, newTypeError(ErrClosed, t, "cannot resolve after Close")
	}
	if err := checkResolvable(t); err != nil {
		return reflect.Value{}, err
	}
	v, err := c.instance(keyOf(t))
	if err != nil {
		return reflect.Value{}, err
	}
	return present(v, t)
}

// instance returns a pointer to an instance of the type registered for key.
func (c *Container) instance(key reflect.Type) (reflect.Value, error) {
	e := c.entryFor(key)
	if !e.registered() {
		if err := c.register(e, false, "", c.selectStrategy); err != nil {
			return reflect.Value{}, err
		}
	}

	e = e.terminal()
	if e.instance.IsValid() {
		return e.instance, nil
	}

	if e.cached != nil {
		if v, ok := e.cached.Value(); ok {
			c.log.LogEvent(&dievent.Reused{TypeName: e.name()})
			return v, nil
		}
		return reflect.Value{}, newTypeError(ErrInstanceReclaimed, e.key,
			"the singleton was garbage collected after its last holder released it")
	}

	return c.construct(e)
}

// construct runs e's factory under the cycle guard.
func (c *Container) construct(e *entry) (reflect.Value, error) {
	if e.inProgress {
		return reflect.Value{}, c.cycle(e.key)
	}

	e.inProgress = true
	c.path = append(c.path, e.key)
	defer func() {
		e.inProgress = false
		c.path = c.path[:len(c.path)-1]
	}()

	c.log.LogEvent(&dievent.Constructing{TypeName: e.name()})
	begin := c.clock.Now()
	var (
		v        reflect.Value
		err      error
		returned bool
	)
	defer func() {
		if !returned {
			err = newTypeError(ErrConstructorFailed, e.key, "panic in %v", constructMethod)
		}
		c.log.LogEvent(&dievent.Constructed{
			TypeName: e.name(),
			Runtime:  c.clock.Since(begin),
			Err:      err,
		})
	}()

	v, err = c.invoke(e)
	returned = true
	if err != nil {
		return reflect.Value{}, err
	}

	if e.singleton {
		ref := weakref.Make(v)
		e.cached = &ref
	}
	if v.Type().Implements(_closerType) {
		c.trackCloser(v)
	}
	return v, nil
}

// trackCloser observes v for Close, first dropping dead observations if the
// list has doubled since they were last dropped.
func (c *Container) trackCloser(v reflect.Value) {
	if len(c.closers) >= c.compactAt {
		live := c.closers[:0]
		for _, ref := range c.closers {
			if ref.Alive() {
				live = append(live, ref)
			}
		}
		clear(c.closers[len(live):])
		c.closers = live
		c.compactAt = max(2*len(live), _minCompaction)
	}
	c.closers = append(c.closers, weakref.Make(v))
}

const _minCompaction = 16

func (c *Container) invoke(e *entry) (v reflect.Value, err error) {
	if c.recoverFromPanics {
		defer func() {
			if r := recover(); r != nil {
				err = newTypeError(ErrConstructorFailed, e.key, "panic: %q in %v", fmt.Sprint(r), constructMethod)
			}
		}()
	}
	return e.factory()
}

// cycle reports the resolution path from the first visit of key back to
// key.
func (c *Container) cycle(key reflect.Type) error {
	start := 0
	for i, t := range c.path {
		if t == key {
			start = i
			break
		}
	}
	path := make([]reflect.Type, 0, len(c.path)-start+1)
	path = append(path, c.path[start:]...)
	path = append(path, key)
	return &cycleError{path: path}
}
