// Package gnode is an in-memory computation-graph container standing in for a
// host node tree. The expression compiler populates it with value and math
// nodes; group builders add the surrounding scaffolding (group inputs,
// geometry primitives, combine nodes). The container only records structure:
// nodes, typed sockets, and single-source links. It can check itself for
// cycles and evaluate scalar subgraphs, which is how the numeric evaluator and
// the graph compiler are checked against each other.
package gnode

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alessiofumagalli/exprgraph"
)

// Kind identifies what a node does. KindValue and KindMath are the node kinds
// the expression compiler emits; the rest are scaffolding used by group
// builders and are opaque to scalar evaluation.
type Kind int

const (
	KindValue Kind = iota
	KindMath
	KindGroupInput
	KindGroupOutput
	KindIndex
	KindMeshLine
	KindMeshGrid
	KindMeshToPoints
	KindPointsToCurves
	KindSetPosition
	KindSeparateXYZ
	KindCombineXYZ
	KindCombineMatrix
)

var kindNames = [...]string{
	KindValue:          "Value",
	KindMath:           "Math",
	KindGroupInput:     "GroupInput",
	KindGroupOutput:    "GroupOutput",
	KindIndex:          "Index",
	KindMeshLine:       "MeshLine",
	KindMeshGrid:       "MeshGrid",
	KindMeshToPoints:   "MeshToPoints",
	KindPointsToCurves: "PointsToCurves",
	KindSetPosition:    "SetPosition",
	KindSeparateXYZ:    "SeparateXYZ",
	KindCombineXYZ:     "CombineXYZ",
	KindCombineMatrix:  "CombineMatrix",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

var (
	ErrNotOutput   = errors.New("link source is not an output socket")
	ErrNotInput    = errors.New("link target is not an input socket")
	ErrInputLinked = errors.New("input socket already has a link")
	ErrCrossGraph  = errors.New("sockets belong to different graphs")
	ErrCycle       = errors.New("graph contains a cycle")
)

// Graph is a container of nodes and the links between their sockets. The zero
// value is not usable; use New.
type Graph struct {
	nodes []*Node
}

func New() *Graph {
	return &Graph{}
}

// Node is one operation in a graph. Op is meaningful for KindMath nodes and
// Value for KindValue nodes. X and Y are editor placement hints with no
// semantic effect.
type Node struct {
	g     *Graph
	id    int
	Kind  Kind
	Op    exprgraph.Op
	Value float64
	Label string
	X, Y  float64
	in    []*Socket
	out   []*Socket
}

func (n *Node) ID() int { return n.id }

// In returns the i-th input socket.
func (n *Node) In(i int) *Socket { return n.in[i] }

// Out returns the i-th output socket.
func (n *Node) Out(i int) *Socket { return n.out[i] }

func (n *Node) NumIn() int  { return len(n.in) }
func (n *Node) NumOut() int { return len(n.out) }

// FindIn returns the input socket with the given name, or nil.
func (n *Node) FindIn(name string) *Socket {
	for _, s := range n.in {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FindOut returns the output socket with the given name, or nil.
func (n *Node) FindOut(name string) *Socket {
	for _, s := range n.out {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (n *Node) String() string {
	switch n.Kind {
	case KindValue:
		return fmt.Sprintf("n%d[Value %g]", n.id, n.Value)
	case KindMath:
		return fmt.Sprintf("n%d[%v]", n.id, n.Op)
	default:
		if n.Label != "" {
			return fmt.Sprintf("n%d[%v %q]", n.id, n.Kind, n.Label)
		}
		return fmt.Sprintf("n%d[%v]", n.id, n.Kind)
	}
}

// Socket is a connection point on a node. An input socket accepts at most one
// incoming link and may carry a scalar default used when unlinked.
type Socket struct {
	node   *Node
	index  int
	outDir bool
	Name   string
	src    *Socket
	def    float64
	hasDef bool
}

func (s *Socket) Node() *Node { return s.node }

// Source returns the output socket linked into this input, or nil.
func (s *Socket) Source() *Socket { return s.src }

// SetDefault sets the scalar used when an input socket is unlinked.
func (s *Socket) SetDefault(v float64) *Socket {
	s.def = v
	s.hasDef = true
	return s
}

// NewNode adds a node with named input and output sockets.
func (g *Graph) NewNode(kind Kind, label string, inNames, outNames []string) *Node {
	n := &Node{g: g, id: len(g.nodes), Kind: kind, Label: label}
	n.in = make([]*Socket, len(inNames))
	for i, name := range inNames {
		n.in[i] = &Socket{node: n, index: i, Name: name}
	}
	n.out = make([]*Socket, len(outNames))
	for i, name := range outNames {
		n.out[i] = &Socket{node: n, index: i, outDir: true, Name: name}
	}
	g.nodes = append(g.nodes, n)
	return n
}

// NewValue adds a constant-source node holding v.
func (g *Graph) NewValue(v float64) *Node {
	n := g.NewNode(KindValue, "", nil, []string{"Value"})
	n.Value = v
	return n
}

// NewMath adds a math node performing op, with one input socket per operand.
func (g *Graph) NewMath(op exprgraph.Op) *Node {
	names := []string{"A", "B"}[:op.Arity()]
	n := g.NewNode(KindMath, "", names, []string{"Value"})
	n.Op = op
	return n
}

// Nodes returns the graph's nodes in creation order.
func (g *Graph) Nodes() []*Node {
	return append([]*Node(nil), g.nodes...)
}

// Connect links an output socket into an input socket. An output may fan out
// to any number of inputs; an input accepts exactly one link.
func (g *Graph) Connect(from, to *Socket) error {
	if from == nil || !from.outDir {
		return ErrNotOutput
	}
	if to == nil || to.outDir {
		return ErrNotInput
	}
	if from.node.g != g || to.node.g != g {
		return ErrCrossGraph
	}
	if to.src != nil {
		return fmt.Errorf("%w: %v input %d", ErrInputLinked, to.node, to.index)
	}
	to.src = from
	return nil
}

// Validate checks that the graph is acyclic.
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)
	state := make([]int8, len(g.nodes))
	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch state[n.id] {
		case gray:
			return fmt.Errorf("%w: at %v", ErrCycle, n)
		case black:
			return nil
		}
		state[n.id] = gray
		for _, s := range n.in {
			if s.src != nil {
				if err := visit(s.src.node); err != nil {
					return err
				}
			}
		}
		state[n.id] = black
		return nil
	}
	for _, n := range g.nodes {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}
