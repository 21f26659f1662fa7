package gnode

import "fmt"

// EvalSocket computes the scalar value flowing out of a socket. overrides maps
// sockets to externally supplied values; an overridden socket never looks at
// its node, which is how group-input and variable-source ports are fed during
// testing. An unlinked input without a default reads as 0, matching the host's
// socket behavior.
//
// Only KindValue and KindMath nodes are computable; reaching any other kind
// without an override is an error, as is a cycle.
func (g *Graph) EvalSocket(s *Socket, overrides map[*Socket]float64) (float64, error) {
	e := evaluator{memo: make(map[*Socket]float64), overrides: overrides}
	return e.socket(s)
}

type evaluator struct {
	memo      map[*Socket]float64
	overrides map[*Socket]float64
	busy      []*Node
}

func (e *evaluator) socket(s *Socket) (float64, error) {
	if v, ok := e.overrides[s]; ok {
		return v, nil
	}
	if !s.outDir {
		if s.src != nil {
			return e.socket(s.src)
		}
		if s.hasDef {
			return s.def, nil
		}
		return 0, nil
	}
	if v, ok := e.memo[s]; ok {
		return v, nil
	}
	v, err := e.node(s.node)
	if err != nil {
		return 0, err
	}
	e.memo[s] = v
	return v, nil
}

func (e *evaluator) node(n *Node) (float64, error) {
	for _, b := range e.busy {
		if b == n {
			return 0, fmt.Errorf("%w: at %v", ErrCycle, n)
		}
	}
	e.busy = append(e.busy, n)
	defer func() { e.busy = e.busy[:len(e.busy)-1] }()
	switch n.Kind {
	case KindValue:
		return n.Value, nil
	case KindMath:
		args := make([]float64, len(n.in))
		for i, in := range n.in {
			v, err := e.socket(in)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return n.Op.Eval(args), nil
	default:
		return 0, fmt.Errorf("cannot evaluate %v node without an override", n.Kind)
	}
}
