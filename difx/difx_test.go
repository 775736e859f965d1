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

package difx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"

	"github.com/lightwire/di"
	"github.com/lightwire/di/ditest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type Config struct{ addr string }

func (c *Config) Construct() { c.addr = ":8080" }

type Server struct {
	cfg    *Config
	closed bool
}

func (s *Server) Construct(cfg *Config) { s.cfg = cfg }

func (s *Server) Close() error {
	s.closed = true
	return nil
}

func (s *Server) Addr() string { return s.cfg.addr }

type unbuildable interface{ Build() }

func TestProvide(t *testing.T) {
	t.Parallel()

	c := ditest.New(t)

	var (
		srv *Server
		cfg *Config
	)
	app := fxtest.New(t,
		fx.NopLogger,
		Provide[*Server](c),
		Provide[*Config](c),
		fx.Populate(&srv, &cfg),
	)
	app.RequireStart().RequireStop()

	require.NotNil(t, srv)
	assert.Same(t, cfg, srv.cfg)
	assert.Same(t, srv, ditest.Resolve[*Server](t, c))
}

func TestProvideError(t *testing.T) {
	t.Parallel()

	c := ditest.New(t)
	app := fx.New(
		fx.NopLogger,
		Provide[unbuildable](c),
		fx.Invoke(func(unbuildable) {}),
	)
	err := app.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, di.ErrUnknownStrategy)
}

func TestProvideTo(t *testing.T) {
	t.Parallel()

	c := ditest.New(t)
	dc := dig.New()
	require.NoError(t, ProvideTo[*Server](dc, c))

	var srv *Server
	require.NoError(t, dc.Invoke(func(s *Server) { srv = s }))
	assert.Equal(t, ":8080", srv.Addr())

	err := ProvideTo[*Server](dc, c)
	assert.Error(t, err, "dig rejects a second provider for the same type")

	require.NoError(t, ProvideTo[unbuildable](dc, c))
	err = dc.Invoke(func(unbuildable) {})
	assert.True(t, errors.Is(dig.RootCause(err), di.ErrUnknownStrategy))
}

func TestModule(t *testing.T) {
	t.Parallel()

	c, err := di.New()
	require.NoError(t, err)

	var (
		srv      *Server
		supplied *di.Container
	)
	app := fxtest.New(t,
		fx.NopLogger,
		Module(c, Provide[*Server](c)),
		fx.Populate(&srv, &supplied),
	)
	assert.Same(t, c, supplied)

	app.RequireStart()
	assert.False(t, srv.closed)
	app.RequireStop()
	assert.True(t, srv.closed, "stopping the app closes the container")

	_, err = di.Resolve[*Server](c)
	assert.ErrorIs(t, err, di.ErrClosed)
}
