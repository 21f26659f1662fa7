package exprgraph

import (
	"strconv"
	"strings"
)

// Factory is the capability a backend provides to the postfix driver. The
// float64 evaluator and any node-graph builder are both factories; running the
// same driver over either one guarantees that the two interpretations of an
// expression agree on which inputs they accept.
type Factory[T any] interface {
	// Constant produces the operand for a literal or a reserved constant.
	Constant(v float64) (T, error)
	// Apply produces the operand for op applied to args. len(args) is
	// op.Arity(), and args are in source order (args[0] is the left operand).
	// args aliases the driver's operand stack and is only valid during the
	// call; an implementation that retains the operands must copy the slice.
	Apply(op Op, args []T) (T, error)
}

// Compile interprets the expression's postfix program against a factory.
// Identifiers are resolved case-insensitively: first through vars, whose value
// is pushed verbatim (a bound variable never allocates anything, so repeated
// references fan out from the one supplied operand), then through the reserved
// constants pi, e and tau, which go through Factory.Constant like literals.
// Every operator, negation, and function token calls Factory.Apply exactly
// once, so a graph-building factory allocates one new node per such token.
//
// Compile does not undo a factory's side effects on error, and calling it
// twice performs every allocation twice; callers wanting a fresh graph must
// start with a fresh container.
func Compile[T any](e *Expr, vars map[string]T, f Factory[T]) (T, error) {
	lowered := make(map[string]T, len(vars))
	for k, v := range vars {
		lowered[strings.ToLower(k)] = v
	}
	return run(e.rpn, lowered, f)
}

// run is the postfix driver. vars keys must be lower-case.
func run[T any](rpn []rpnToken, vars map[string]T, f Factory[T]) (T, error) {
	var zero T
	if len(rpn) == 0 {
		// An empty program, e.g. "()", evaluates to zero.
		return f.Constant(0)
	}
	stack := make([]T, 0, len(rpn))
	pop := func(op Op) ([]T, error) {
		n := op.Arity()
		if len(stack) < n {
			return nil, &MalformedError{Op: op}
		}
		args := stack[len(stack)-n:]
		stack = stack[:len(stack)-n]
		return args, nil
	}
	apply := func(op Op) error {
		args, err := pop(op)
		if err != nil {
			return err
		}
		v, err := f.Apply(op, args)
		if err != nil {
			return err
		}
		stack = append(stack, v)
		return nil
	}
	for _, tok := range rpn {
		switch tok.kind {
		case rpnNum:
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				// The lexer only emits well-formed literals.
				panic("exprgraph: invalid number " + strconv.Quote(tok.text))
			}
			t, err := f.Constant(v)
			if err != nil {
				return zero, err
			}
			stack = append(stack, t)
		case rpnIdent:
			name := strings.ToLower(tok.text)
			if t, ok := vars[name]; ok {
				stack = append(stack, t)
				continue
			}
			if v, ok := constants[name]; ok {
				t, err := f.Constant(v)
				if err != nil {
					return zero, err
				}
				stack = append(stack, t)
				continue
			}
			return zero, &NameError{Name: name}
		case rpnOp:
			if err := apply(binops[tok.text]); err != nil {
				return zero, err
			}
		case rpnNeg:
			if err := apply(OpNegate); err != nil {
				return zero, err
			}
		case rpnFunc:
			op, err := funcOp(strings.ToLower(tok.text), tok.arity)
			if err != nil {
				return zero, err
			}
			if err := apply(op); err != nil {
				return zero, err
			}
		default:
			panic("exprgraph: invalid postfix token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return zero, &MalformedError{Rest: len(stack)}
	}
	return stack[0], nil
}
