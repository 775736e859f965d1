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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightwire/di"
	"github.com/lightwire/di/dievent"
	"github.com/lightwire/di/internal/dilog"
)

type greeter interface{ Greet() string }

type englishGreeter struct{ word string }

func (g *englishGreeter) Construct()    { g.word = "hello" }
func (g *englishGreeter) Greet() string { return g.word }

func (*englishGreeter) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[greeter]()}
}

type frenchGreeter struct{ word string }

func (g *frenchGreeter) Construct()    { g.word = "bonjour" }
func (g *frenchGreeter) Greet() string { return g.word }
func (g *frenchGreeter) String() string {
	return "frenchGreeter"
}

func (*frenchGreeter) Bases() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[greeter](),
		reflect.TypeFor[fmt.Stringer](),
	}
}

type animal struct{ name string }

type mammal struct {
	animal
	legs int
}

func (*mammal) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[animal]()}
}

type dog struct {
	mammal
	breed string
}

func (d *dog) Construct() {
	d.name = "dog"
	d.legs = 4
}

func (*dog) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[*mammal]()}
}

type liar struct{ word string }

func (*liar) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[greeter]()}
}

type stranger struct{ name string }

func (*stranger) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[animal]()}
}

type numbered struct{ n string }

func (*numbered) Bases() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[int]()}
}

type nilBase struct{ n string }

func (*nilBase) Bases() []reflect.Type {
	return []reflect.Type{nil}
}

func TestBases(t *testing.T) {
	t.Parallel()

	t.Run("interface bound after registration", func(t *testing.T) {
		t.Parallel()

		c := newContainer(t)
		_, err := di.Resolve[greeter](c)
		require.ErrorIs(t, err, di.ErrUnknownStrategy, "nothing implements greeter yet")

		g, err := di.Resolve[*englishGreeter](c)
		require.NoError(t, err)

		base, err := di.Resolve[greeter](c)
		require.NoError(t, err)
		assert.Same(t, g, base)
		assert.Equal(t, "hello", base.Greet())
	})

	t.Run("interface bound up front", func(t *testing.T) {
		t.Parallel()

		var spy dilog.Spy
		c, err := di.New(di.WithLogger(&spy), di.Declare[englishGreeter]())
		require.NoError(t, err)
		assert.Empty(t, spy.Constructed())

		g := di.MustResolve[greeter](c)
		assert.Same(t, di.MustResolve[*englishGreeter](c), g)
		assert.Equal(t, []string{"di_test.englishGreeter"}, spy.Constructed())
	})

	t.Run("embedded chain shares one instance", func(t *testing.T) {
		t.Parallel()

		c := newContainer(t)
		d, err := di.Resolve[*dog](c)
		require.NoError(t, err)

		m, err := di.Resolve[*mammal](c)
		require.NoError(t, err)
		assert.Same(t, &d.mammal, m)
		assert.Equal(t, 4, m.legs)

		a, err := di.Resolve[*animal](c)
		require.NoError(t, err)
		assert.Same(t, &d.animal, a)
		assert.Equal(t, "dog", a.name)
	})

	t.Run("each base keeps its own edge", func(t *testing.T) {
		t.Parallel()

		var spy dilog.Spy
		c := newContainer(t, di.WithLogger(&spy))

		english := di.MustResolve[*englishGreeter](c)
		french := di.MustResolve[*frenchGreeter](c)

		assert.Same(t, french, di.MustResolve[greeter](c), "last registration wins")
		assert.Same(t, french, di.MustResolve[fmt.Stringer](c))
		assert.Equal(t, "hello", english.Greet())

		var replaced []string
		for _, e := range spy.Events().SelectByTypeName("Aliased") {
			if a := e.(*dievent.Aliased); a.ReplacedName != "" {
				replaced = append(replaced, a.BaseName+" was "+a.ReplacedName)
			}
		}
		assert.Equal(t, []string{"di_test.greeter was di_test.englishGreeter"}, replaced)
	})

	t.Run("own factory wins over alias", func(t *testing.T) {
		t.Parallel()

		c := newContainer(t)
		m := di.MustResolve[*mammal](c)
		d := di.MustResolve[*dog](c)

		assert.NotSame(t, &d.mammal, m)
		assert.Same(t, m, di.MustResolve[*mammal](c))
	})

	t.Run("invalid bases", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			desc    string
			resolve func(*di.Container) error
			want    string
		}{
			{
				desc: "interface not implemented",
				resolve: func(c *di.Container) error {
					_, err := di.Resolve[*liar](c)
					return err
				},
				want: "*di_test.liar does not implement di_test.greeter",
			},
			{
				desc: "struct not embedded",
				resolve: func(c *di.Container) error {
					_, err := di.Resolve[*stranger](c)
					return err
				},
				want: "di_test.animal is not embedded in di_test.stranger",
			},
			{
				desc: "neither interface nor struct",
				resolve: func(c *di.Container) error {
					_, err := di.Resolve[*numbered](c)
					return err
				},
				want: "int is neither an interface nor a struct",
			},
			{
				desc: "nil",
				resolve: func(c *di.Container) error {
					_, err := di.Resolve[*nilBase](c)
					return err
				},
				want: "nil base",
			},
		}

		for _, tt := range tests {
			t.Run(tt.desc, func(t *testing.T) {
				c := newContainer(t)
				err := tt.resolve(c)
				require.Error(t, err)
				assert.ErrorIs(t, err, di.ErrInvalidBase)
				assert.Contains(t, err.Error(), tt.want)

				// Registration is all or nothing.
				assert.Contains(t, c.String(), "factory: none")
			})
		}
	})
}
