package gnode_test

import (
	"fmt"
	"os"

	"github.com/alessiofumagalli/exprgraph/gnode"
)

func ExampleCompileExpr() {
	g := gnode.New()
	in := g.NewNode(gnode.KindGroupInput, "Group Input", nil, []string{"t"})
	s, err := gnode.CompileExpr(g, "t*t + 1", map[string]*gnode.Socket{"t": in.Out(0)}, 0, 0)
	if err != nil {
		panic(err)
	}
	v, _ := g.EvalSocket(s, map[*gnode.Socket]float64{in.Out(0): 3})
	fmt.Println(v)
	// Output: 10
}

func ExampleGraph_WriteDOT() {
	g := gnode.New()
	if _, err := gnode.CompileExpr(g, "1+2", nil, 0, 0); err != nil {
		panic(err)
	}
	g.WriteDOT(os.Stdout, "sum")
	// Output:
	// digraph "sum" {
	// 	rankdir=LR;
	// 	node [shape=box];
	// 	n0 [label="1"];
	// 	n1 [label="2"];
	// 	n2 [label="ADD"];
	// 	n0 -> n2 [label="A"];
	// 	n1 -> n2 [label="B"];
	// }
}
