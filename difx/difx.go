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

// Package difx exposes types built by a container to Fx applications and
// dig containers.
//
//	c, err := di.New()
//	...
//	app := fx.New(
//		difx.Module(c),
//		difx.Provide[*Server](c),
//		fx.Invoke(func(*Server) {}),
//	)
//
// Values handed to Fx are resolved lazily, when the Fx graph first needs
// them, and Fx keeps them alive from then on.
package difx

import (
	"context"

	"go.uber.org/dig"
	"go.uber.org/fx"

	"github.com/lightwire/di"
)

// ModuleName is the name of the Fx module returned by Module.
const ModuleName = "di"

// Provide returns an Fx option providing T by resolving it from c.
func Provide[T any](c *di.Container) fx.Option {
	return fx.Provide(constructor[T](c))
}

// ProvideTo provides T to a dig container by resolving it from c.
func ProvideTo[T any](dc *dig.Container, c *di.Container) error {
	return dc.Provide(constructor[T](c))
}

func constructor[T any](c *di.Container) func() (T, error) {
	return func() (T, error) {
		return di.Resolve[T](c)
	}
}

// Module returns an Fx module that supplies c to the application and
// closes c when the application stops. Additional options are scoped to
// the module.
func Module(c *di.Container, opts ...fx.Option) fx.Option {
	return fx.Module(ModuleName, append([]fx.Option{
		fx.Supply(c),
		fx.Invoke(registerHooks),
	}, opts...)...)
}

func registerHooks(lc fx.Lifecycle, c *di.Container) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
}
