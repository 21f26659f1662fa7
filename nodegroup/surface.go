package nodegroup

import (
	"github.com/alessiofumagalli/exprgraph/gnode"
)

// Surface builds a parametric surface group: a grid's UV map is separated and
// mapped to u in [u Min, u Max] and v in [v Min, v Max], the three expressions
// give x(u,v), y(u,v), z(u,v), and the combined vector positions the grid
// vertices.
func (b *Builder) Surface(xExpr, yExpr, zExpr string) (*gnode.Graph, error) {
	g := gnode.New()
	in := g.NewNode(gnode.KindGroupInput, "Group Input", nil,
		[]string{"u Min", "u Max", "v Min", "v Max", "u Resolution", "v Resolution"})
	in.X, in.Y = -1600, 200
	out := g.NewNode(gnode.KindGroupOutput, "Group Output", []string{"Geometry"}, nil)
	out.X, out.Y = 1000, 200

	grid := g.NewNode(gnode.KindMeshGrid, "Grid",
		[]string{"Vertices X", "Vertices Y"}, []string{"Mesh", "UV Map"})
	grid.X, grid.Y = -1400, 400
	sep := g.NewNode(gnode.KindSeparateXYZ, "Separate XYZ",
		[]string{"Vector"}, []string{"X", "Y", "Z"})
	sep.X, sep.Y = -1200, 600
	for _, link := range []struct{ from, to *gnode.Socket }{
		{in.FindOut("u Resolution"), grid.In(0)},
		{in.FindOut("v Resolution"), grid.In(1)},
		{grid.FindOut("UV Map"), sep.In(0)},
	} {
		if err := g.Connect(link.from, link.to); err != nil {
			return nil, err
		}
	}

	u, err := mapRange(g, sep.FindOut("X"), in.FindOut("u Min"), in.FindOut("u Max"), -1000, 700)
	if err != nil {
		return nil, err
	}
	v, err := mapRange(g, sep.FindOut("Y"), in.FindOut("v Min"), in.FindOut("v Max"), -1000, 400)
	if err != nil {
		return nil, err
	}

	vars := map[string]*gnode.Socket{"u": u, "v": v}
	xs, err := b.compile(g, "x(u,v)", xExpr, vars, -200, 400)
	if err != nil {
		return nil, err
	}
	ys, err := b.compile(g, "y(u,v)", yExpr, vars, -200, 100)
	if err != nil {
		return nil, err
	}
	zs, err := b.compile(g, "z(u,v)", zExpr, vars, -200, -200)
	if err != nil {
		return nil, err
	}

	combine := g.NewNode(gnode.KindCombineXYZ, "Combine XYZ",
		[]string{"X", "Y", "Z"}, []string{"Vector"})
	combine.X, combine.Y = 600, 100
	setpos := g.NewNode(gnode.KindSetPosition, "Set Position",
		[]string{"Geometry", "Position"}, []string{"Geometry"})
	setpos.X, setpos.Y = 800, 100
	for _, link := range []struct{ from, to *gnode.Socket }{
		{xs, combine.In(0)},
		{ys, combine.In(1)},
		{zs, combine.In(2)},
		{grid.FindOut("Mesh"), setpos.In(0)},
		{combine.Out(0), setpos.In(1)},
		{setpos.Out(0), out.In(0)},
	} {
		if err := g.Connect(link.from, link.to); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b.logger.Debug("built surface group", "nodes", len(g.Nodes()))
	return g, nil
}
