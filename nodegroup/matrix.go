package nodegroup

import (
	"fmt"

	"github.com/alessiofumagalli/exprgraph/gnode"
)

// Matrix builds a parametric transformation-matrix group: sixteen expressions
// over the free parameter s, one per entry in row-major order, feeding a
// combine-matrix node. The combine node's inputs are column-major, so the
// compiled entry sockets are wired transposed.
func (b *Builder) Matrix(entries [4][4]string) (*gnode.Graph, error) {
	g := gnode.New()
	in := g.NewNode(gnode.KindGroupInput, "Group Input", nil, []string{"s"})
	in.X, in.Y = -2000, 0
	out := g.NewNode(gnode.KindGroupOutput, "Group Output", []string{"Matrix"}, nil)
	out.X, out.Y = 2500, 0
	vars := map[string]*gnode.Socket{"s": in.Out(0)}

	var socks [4][4]*gnode.Socket
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			component := fmt.Sprintf("m%d%d(s)", row, col)
			y := 1200 - float64(row*4+col)*200
			s, err := b.compile(g, component, entries[row][col], vars, -1000, y)
			if err != nil {
				return nil, err
			}
			socks[row][col] = s
		}
	}

	inNames := make([]string, 0, 16)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			inNames = append(inNames, fmt.Sprintf("Column %d Row %d", col, row))
		}
	}
	combine := g.NewNode(gnode.KindCombineMatrix, "Combine Matrix", inNames, []string{"Matrix"})
	combine.X, combine.Y = 2000, 600
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if err := g.Connect(socks[row][col], combine.In(col*4+row)); err != nil {
				return nil, err
			}
		}
	}
	if err := g.Connect(combine.Out(0), out.In(0)); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b.logger.Debug("built matrix group", "nodes", len(g.Nodes()))
	return g, nil
}

// Identity returns the expression set for the identity matrix, the usual
// starting point for the bottom row and diagonal.
func Identity() [4][4]string {
	var m [4][4]string
	for i := range m {
		for j := range m[i] {
			if i == j {
				m[i][j] = "1"
			} else {
				m[i][j] = "0"
			}
		}
	}
	return m
}
