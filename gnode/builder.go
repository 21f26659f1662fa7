package gnode

import "github.com/alessiofumagalli/exprgraph"

// Placement steps for emitted nodes. X advances once per node; Y cycles over a
// few rows so long expressions stay readable in an editor. Placement has no
// semantic effect.
const (
	placeDX   = 220
	placeDY   = -140
	placeRows = 6
)

// Builder emits expression nodes into a graph. It implements
// exprgraph.Factory, so exprgraph.Compile drives it directly: one value node
// per literal or constant, one math node per operation.
type Builder struct {
	g     *Graph
	x     float64
	baseY float64
	row   int
}

var _ exprgraph.Factory[*Socket] = (*Builder)(nil)

// NewBuilder creates a builder emitting into g, placing nodes from (x, y).
func NewBuilder(g *Graph, x, y float64) *Builder {
	return &Builder{g: g, x: x, baseY: y}
}

func (b *Builder) place(n *Node) {
	n.X = b.x
	n.Y = b.baseY + placeDY*float64(b.row)
	b.x += placeDX
	b.row = (b.row + 1) % placeRows
}

func (b *Builder) Constant(v float64) (*Socket, error) {
	n := b.g.NewValue(v)
	b.place(n)
	return n.Out(0), nil
}

func (b *Builder) Apply(op exprgraph.Op, args []*Socket) (*Socket, error) {
	n := b.g.NewMath(op)
	for i, a := range args {
		if err := b.g.Connect(a, n.In(i)); err != nil {
			return nil, err
		}
	}
	b.place(n)
	return n.Out(0), nil
}

// CompileExpr parses src and compiles it into g starting at (x, y), wiring
// free identifiers through the supplied variable source sockets. The returned
// socket carries the expression's value.
func CompileExpr(g *Graph, src string, vars map[string]*Socket, x, y float64) (*Socket, error) {
	e, err := exprgraph.Parse(src)
	if err != nil {
		return nil, err
	}
	return exprgraph.Compile(e, vars, NewBuilder(g, x, y))
}
