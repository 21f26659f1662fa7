package nodegroup

import (
	"github.com/alessiofumagalli/exprgraph"
	"github.com/alessiofumagalli/exprgraph/gnode"
)

// Curve builds a parametric curve group: the point index of a mesh line is
// mapped to t in [t Min, t Max], the three expressions give x(t), y(t), z(t),
// and the combined vector positions the points before they become a curve.
func (b *Builder) Curve(xExpr, yExpr, zExpr string) (*gnode.Graph, error) {
	g := gnode.New()
	in := g.NewNode(gnode.KindGroupInput, "Group Input", nil,
		[]string{"t Min", "t Max", "Resolution"})
	in.X, in.Y = -1200, 0
	out := g.NewNode(gnode.KindGroupOutput, "Group Output", []string{"Geometry"}, nil)
	out.X, out.Y = 900, 0

	line := g.NewNode(gnode.KindMeshLine, "Mesh Line", []string{"Count"}, []string{"Mesh"})
	line.X, line.Y = -1000, 200
	if err := g.Connect(in.FindOut("Resolution"), line.In(0)); err != nil {
		return nil, err
	}

	// t = t Min + (index / (Resolution-1)) * (t Max - t Min)
	index := g.NewNode(gnode.KindIndex, "Index", nil, []string{"Index"})
	index.X, index.Y = -1000, -180
	denom := g.NewMath(exprgraph.OpSubtract)
	denom.X, denom.Y = -820, -260
	denom.In(1).SetDefault(1)
	if err := g.Connect(in.FindOut("Resolution"), denom.In(0)); err != nil {
		return nil, err
	}
	norm := g.NewMath(exprgraph.OpDivide)
	norm.X, norm.Y = -640, -260
	if err := g.Connect(index.Out(0), norm.In(0)); err != nil {
		return nil, err
	}
	if err := g.Connect(denom.Out(0), norm.In(1)); err != nil {
		return nil, err
	}
	t, err := mapRange(g, norm.Out(0), in.FindOut("t Min"), in.FindOut("t Max"), -820, -80)
	if err != nil {
		return nil, err
	}

	vars := map[string]*gnode.Socket{"t": t}
	xs, err := b.compile(g, "x(t)", xExpr, vars, -280, 240)
	if err != nil {
		return nil, err
	}
	ys, err := b.compile(g, "y(t)", yExpr, vars, -280, 60)
	if err != nil {
		return nil, err
	}
	zs, err := b.compile(g, "z(t)", zExpr, vars, -280, -120)
	if err != nil {
		return nil, err
	}

	combine := g.NewNode(gnode.KindCombineXYZ, "Combine XYZ",
		[]string{"X", "Y", "Z"}, []string{"Vector"})
	combine.X, combine.Y = 300, 60
	points := g.NewNode(gnode.KindMeshToPoints, "Mesh to Points",
		[]string{"Mesh"}, []string{"Points"})
	points.X, points.Y = -820, 200
	setpos := g.NewNode(gnode.KindSetPosition, "Set Position",
		[]string{"Geometry", "Position"}, []string{"Geometry"})
	setpos.X, setpos.Y = 500, 60
	curves := g.NewNode(gnode.KindPointsToCurves, "Points to Curves",
		[]string{"Points"}, []string{"Curves"})
	curves.X, curves.Y = 700, 60
	for _, link := range []struct{ from, to *gnode.Socket }{
		{xs, combine.In(0)},
		{ys, combine.In(1)},
		{zs, combine.In(2)},
		{line.Out(0), points.In(0)},
		{points.Out(0), setpos.In(0)},
		{combine.Out(0), setpos.In(1)},
		{setpos.Out(0), curves.In(0)},
		{curves.Out(0), out.In(0)},
	} {
		if err := g.Connect(link.from, link.to); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b.logger.Debug("built curve group", "nodes", len(g.Nodes()))
	return g, nil
}
