// Package nodegroup builds complete node groups from expression strings: a
// parametric curve, a parametric surface, and a parametric 4x4 transformation
// matrix. Each builder creates a fresh graph, wires the parameter-mapping
// scaffold, compiles the user expressions against the parameter sockets, and
// validates the result. Rebuilding always produces a new graph; the caller
// owns disposal of the old one.
package nodegroup

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alessiofumagalli/exprgraph"
	"github.com/alessiofumagalli/exprgraph/gnode"
)

// Builder constructs node groups from expressions.
type Builder struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogHandler sets the slog handler used for build logging.
func WithLogHandler(h slog.Handler) Option {
	return func(b *Builder) error {
		if h == nil {
			return fmt.Errorf("log handler is nil")
		}
		b.logHandler = h
		return nil
	}
}

// WithLogger sets a prepared logger, overriding WithLogHandler.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) error {
		if l == nil {
			return fmt.Errorf("logger is nil")
		}
		b.logger = l
		return nil
	}
}

// New creates a Builder with the provided options.
func New(opts ...Option) (*Builder, error) {
	b := &Builder{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	if b.logger != nil {
		b.logHandler = b.logger.Handler()
	} else {
		if b.logHandler == nil {
			b.logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
		}
		b.logger = slog.New(b.logHandler).With("component", "nodegroup")
	}
	return b, nil
}

// compile compiles one expression into g, wrapping any failure with the name
// of the group component the expression defines.
func (b *Builder) compile(g *gnode.Graph, component, src string, vars map[string]*gnode.Socket, x, y float64) (*gnode.Socket, error) {
	s, err := gnode.CompileExpr(g, src, vars, x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", component, err)
	}
	b.logger.Debug("compiled expression", "target", component, "expr", src)
	return s, nil
}

// mapRange emits min + value*(max-min) and returns its output socket. This is
// the chain every group uses to map a normalized parameter onto [min, max].
func mapRange(g *gnode.Graph, value, min, max *gnode.Socket, x, y float64) (*gnode.Socket, error) {
	span := g.NewMath(exprgraph.OpSubtract)
	span.X, span.Y = x, y
	scaled := g.NewMath(exprgraph.OpMultiply)
	scaled.X, scaled.Y = x+200, y
	sum := g.NewMath(exprgraph.OpAdd)
	sum.X, sum.Y = x+400, y
	for _, link := range []struct{ from, to *gnode.Socket }{
		{max, span.In(0)},
		{min, span.In(1)},
		{value, scaled.In(0)},
		{span.Out(0), scaled.In(1)},
		{min, sum.In(0)},
		{scaled.Out(0), sum.In(1)},
	} {
		if err := g.Connect(link.from, link.to); err != nil {
			return nil, err
		}
	}
	return sum.Out(0), nil
}
