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
	"strings"

	"github.com/lightwire/di/dievent"
	"github.com/lightwire/di/internal/diclock"
	"github.com/lightwire/di/internal/direflect"
)

// Option configures a Container.
type Option interface {
	fmt.Stringer

	apply(*options)
}

type options struct {
	logger            dievent.Logger
	clock             diclock.Clock
	recoverFromPanics bool
	declared          []declaration
}

// declaration is either a type to register or, for Provide, a constructor
// function.
type declaration struct {
	typ      reflect.Type
	ctor     interface{}
	provided bool
	caller   string
}

// WithLogger specifies the logger that receives the container's events.
// Without it, events are discarded.
//
//	c, err := di.New(di.WithLogger(&dievent.ConsoleLogger{W: os.Stderr}))
func WithLogger(logger dievent.Logger) Option {
	return loggerOption{logger}
}

type loggerOption struct{ logger dievent.Logger }

func (o loggerOption) apply(opts *options) {
	opts.logger = o.logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("di.WithLogger(%v)", o.logger)
}

// RecoverFromPanics makes the container recover from panics raised by
// Construct methods and report them as errors matching
// ErrConstructorFailed.
func RecoverFromPanics() Option {
	return recoverFromPanicsOption{}
}

type recoverFromPanicsOption struct{}

func (recoverFromPanicsOption) apply(opts *options) {
	opts.recoverFromPanics = true
}

func (recoverFromPanicsOption) String() string {
	return "di.RecoverFromPanics()"
}

// Declare registers T up front. If no construction strategy applies to T,
// or its scope or bases are malformed, New fails instead of the first
// resolution. T may be given with or without pointer indirection.
//
//	c, err := di.New(
//		di.Declare[Server](),
//		di.Declare[*Handler](),
//	)
func Declare[T any]() Option {
	return declareOption{
		typ:    reflect.TypeFor[T](),
		caller: direflect.Caller(),
	}
}

type declareOption struct {
	typ    reflect.Type
	caller string
}

func (o declareOption) apply(opts *options) {
	opts.declared = append(opts.declared, declaration{typ: o.typ, caller: o.caller})
}

func (o declareOption) String() string {
	return fmt.Sprintf("di.Declare[%v]()", direflect.TypeName(o.typ))
}

// Provide registers constructor functions for types that cannot declare a
// Construct method themselves, such as types from other packages. Each
// constructor takes pointers or interfaces and returns a pointer to the
// type it builds, optionally followed by an error:
//
//	c, err := di.New(
//		di.Provide(func(cfg *Config) (*sql.DB, error) {
//			return sql.Open("postgres", cfg.DSN)
//		}),
//	)
//
// The Scope and Bases declarations of the returned type apply as usual.
// New fails if a constructor is malformed or its type already has a
// factory.
//
// Constructors must return freshly allocated values. The container only
// observes singletons weakly, which is not possible for pointers to
// package-level variables.
func Provide(constructors ...interface{}) Option {
	return provideOption{
		constructors: constructors,
		caller:       direflect.Caller(),
	}
}

type provideOption struct {
	constructors []interface{}
	caller       string
}

func (o provideOption) apply(opts *options) {
	for _, ctor := range o.constructors {
		opts.declared = append(opts.declared, declaration{
			ctor:     ctor,
			provided: true,
			caller:   o.caller,
		})
	}
}

func (o provideOption) String() string {
	items := make([]string, len(o.constructors))
	for i, ctor := range o.constructors {
		items[i] = direflect.FuncName(ctor)
	}
	return fmt.Sprintf("di.Provide(%s)", strings.Join(items, ", "))
}

type clockOption struct{ clock diclock.Clock }

func (o clockOption) apply(opts *options) {
	opts.clock = o.clock
}

func (o clockOption) String() string {
	return fmt.Sprintf("withClock(%v)", o.clock)
}

// withClock overrides the clock used to time constructors.
func withClock(clock diclock.Clock) Option {
	return clockOption{clock}
}
