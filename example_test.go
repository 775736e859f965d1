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

package di_test

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"runtime"

	"github.com/lightwire/di"
	"github.com/lightwire/di/dievent"
)

type Store interface {
	Get(key string) string
}

type MemoryStore struct {
	data map[string]string
}

func (s *MemoryStore) Construct() {
	s.data = map[string]string{"greeting": "hello, world"}
}

func (s *MemoryStore) Get(key string) string { return s.data[key] }

func (*MemoryStore) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[Store]()}
}

type Handler struct {
	store Store
}

func (h *Handler) Construct(store Store) {
	h.store = store
}

func (h *Handler) Close() error {
	fmt.Println("handler closed")
	return nil
}

func Example() {
	c, err := di.New(di.Declare[MemoryStore]())
	if err != nil {
		log.Fatal(err)
	}

	h, err := di.Resolve[*Handler](c)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(h.store.Get("greeting"))

	// The container only observes instances, so h must outlive Close.
	if err := c.Close(); err != nil {
		log.Fatal(err)
	}
	runtime.KeepAlive(h)

	// Output:
	// hello, world
	// handler closed
}

func ExampleWithLogger() {
	c, err := di.New(di.WithLogger(&dievent.ConsoleLogger{W: os.Stdout}))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := di.Resolve[Store](c); err != nil {
		fmt.Println("error:", di.RootCause(err))
	}

	// Output:
	// [di] ERROR		Failed to register di_test.Store: unknown construction strategy for type di_test.Store: interface with no registered implementation
	// error: unknown construction strategy for type di_test.Store: interface with no registered implementation
}

func ExampleContainer_Inject() {
	c, err := di.New(di.Declare[MemoryStore]())
	if err != nil {
		log.Fatal(err)
	}

	var (
		store   Store
		handler *Handler
	)
	if err := c.Inject(&store, &handler); err != nil {
		log.Fatal(err)
	}
	fmt.Println(handler.store == store)

	// Output:
	// true
}
