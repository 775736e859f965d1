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

// Package di is a dependency injection container that wires object graphs
// on demand.
//
// Ask the container for a type and it builds that type along with
// everything it depends on, without any wiring code:
//
//	c, err := di.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv, err := di.Resolve[*Server](c)
//
// # Declaring how a type is built
//
// Types opt into the container with methods on their pointer receiver.
// None of them are required.
//
// A Construct method with parameters lists the dependencies of a type. The
// container resolves each parameter in order and passes the results:
//
//	type Server struct {
//		store Store
//		log   *Logger
//	}
//
//	func (s *Server) Construct(store Store, log *Logger) error {
//		s.store, s.log = store, log
//		return nil
//	}
//
// A Construct method without parameters initializes the zero value. A type
// with no Construct method at all is used as its zero value.
//
// A Construct method taking only the container pulls its own dependencies,
// usually with Container.Inject:
//
//	func (h *Handler) Construct(c *di.Container) error {
//		return c.Inject(&h.server, &h.log)
//	}
//
// Construct must have a pointer receiver, take pointers or interfaces and
// return nothing or an error. Every parameter must be a type the container
// can resolve.
//
// Types that cannot carry a Construct method, usually because they belong
// to another package, are built by functions registered with Provide:
//
//	c, err := di.New(di.Provide(func(cfg *Config) (*sql.DB, error) {
//		return sql.Open("postgres", cfg.DSN)
//	}))
//
// # Scopes
//
// By default types are singletons: while any caller holds an instance, the
// container hands out that same instance. Types implementing Scoped may
// declare themselves Prototype instead, getting a new instance on every
// resolution.
//
// The container never keeps a singleton alive. It only observes it weakly,
// so a singleton lives as long as the callers and dependents that hold it.
// If all of them let go and the garbage collector reclaims it, later
// resolutions fail with ErrInstanceReclaimed rather than quietly building a
// second instance. Keep the root of your object graph referenced for as
// long as you use the container.
//
// # Interfaces and embedded structs
//
// An interface cannot be built by itself. Types implementing Derived bind
// themselves to the interfaces they implement, and to the structs they
// embed:
//
//	func (*PostgresStore) Bases() []reflect.Type {
//		return []reflect.Type{reflect.TypeFor[Store]()}
//	}
//
// Once a PostgresStore is registered, resolving Store yields the
// PostgresStore singleton. Registration happens the first time a type is
// resolved, or up front with Declare and Container.Register.
//
// # Errors
//
// Resolution errors match the sentinel errors of this package with
// errors.Is. A constructor that depends on itself, directly or through
// other types, fails with ErrCyclicDependency instead of recursing forever.
//
// # Teardown
//
// Container.Close closes, newest first, every instance the container built
// that implements io.Closer and is still alive. A closed container hands
// out nothing more and fails with ErrClosed.
//
// # Concurrency
//
// A Container must only be used from one goroutine at a time.
package di
