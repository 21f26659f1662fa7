package exprgraph

import "strings"

// Context is a set of variable bindings for evaluating expressions. Variable
// names are case-insensitive. A Context may be reused across evaluations but
// is not safe to use concurrently.
type Context struct {
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption(*Context)
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (o varopt) ctxOption(ctx *Context)  { ctx.names[strings.ToLower(o.name)] = o.val }
func (o varsopt) ctxOption(ctx *Context) {
	for k, v := range o {
		ctx.names[strings.ToLower(k)] = v
	}
}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{names: make(map[string]float64)}
	for _, opt := range opts {
		opt.ctxOption(ctx)
	}
	return ctx
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	ctx.names[strings.ToLower(name)] = value
	return ctx
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[strings.ToLower(name)]
	return v, ok
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := &Context{names: make(map[string]float64, len(ctx.names))}
	for k, v := range ctx.names {
		n.names[k] = v
	}
	for _, opt := range opts {
		opt.ctxOption(n)
	}
	return n
}

// evalFactory is the numeric backend: operands are plain float64 values and
// applying an operation computes it immediately.
type evalFactory struct{}

func (evalFactory) Constant(v float64) (float64, error) { return v, nil }

func (evalFactory) Apply(op Op, args []float64) (float64, error) {
	return op.Eval(args), nil
}

// Eval evaluates an expression against the context's variables. Identifiers
// resolve first to variables, then to the constants pi, e and tau; anything
// else is a NameError. Division by a zero divisor yields 0.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	return run(e.rpn, ctx.names, evalFactory{})
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(e)
}

// NameError is an error from a lookup of an identifier that is neither a
// bound variable, a reserved constant, nor a known function.
type NameError struct {
	// Name is the name that was missing, lower-cased.
	Name string
	// Func is whether the name was used as a function.
	Func bool
}

func (err *NameError) Error() string {
	if err.Func {
		return "unknown function: " + err.Name
	}
	return "unknown variable: " + err.Name
}
