// Command exprgraph evaluates expressions or compiles them into math-node
// graphs.
//
// With expression arguments (or lines on stdin), each expression is evaluated
// against the bindings given with -given and printed. With -dot, the compiled
// node graph is printed as Graphviz DOT instead, with one variable source
// socket per free identifier. With -group or -f, a complete parametric
// curve/surface/matrix node group is built and printed as DOT; a sweep recipe
// instead samples its curve through its matrix and prints the point lattice in
// gnuplot grid form. With a terminal and no input, an interactive prompt
// starts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alessiofumagalli/exprgraph"
	"github.com/alessiofumagalli/exprgraph/gnode"
	"github.com/alessiofumagalli/exprgraph/nodegroup"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, group, recipe string
		dot, verbose                bool
		given                       []string
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&dot, "dot", false, "print compiled node graphs as DOT instead of evaluating")
	flag.StringVar(&group, "group", "", "build a node group: curve, surface, or matrix")
	flag.StringVar(&recipe, "f", "", "build a node group described by a YAML recipe file")
	flag.BoolVar(&verbose, "v", false, "log group building at debug level")
	flag.Func("given", "name=value variable definition (any number of times)", func(s string) error {
		if _, _, ok := strings.Cut(s, "="); !ok {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, s)
		return nil
	})
	flag.Parse()

	ctx := exprgraph.NewContext()
	for _, d := range given {
		name, val, _ := strings.Cut(d, "=")
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			log.Fatalf("setting %s: %v", strings.TrimSpace(name), err)
		}
		ctx.Set(strings.TrimSpace(name), v)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	builder, err := nodegroup.New(nodegroup.WithLogHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case recipe != "":
		r, err := loadRecipe(recipe)
		if err != nil {
			log.Fatal(err)
		}
		if r.Kind == "sweep" {
			pts, err := r.Sweep(builder)
			if err != nil {
				log.Fatal(err)
			}
			writePoints(os.Stdout, verb, pts)
			return
		}
		g, err := r.Build(builder)
		if err != nil {
			log.Fatal(err)
		}
		if err := g.WriteDOT(os.Stdout, r.Kind); err != nil {
			log.Fatal(err)
		}
		return
	case group != "":
		g, err := buildGroup(builder, group, flag.Args())
		if err != nil {
			log.Fatal(err)
		}
		if err := g.WriteDOT(os.Stdout, group); err != nil {
			log.Fatal(err)
		}
		return
	}

	exprs := flag.Args()
	if inname != "" {
		lines, err := readLines(inname)
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(exprs, lines...)
	}
	if len(exprs) == 0 {
		if interactive() {
			repl(ctx)
			return
		}
		lines, err := scanLines(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		exprs = lines
	}
	for _, src := range exprs {
		if dot {
			if err := exprDOT(os.Stdout, src, ctx); err != nil {
				log.Fatal(err)
			}
			continue
		}
		e, err := exprgraph.Parse(src)
		if err != nil {
			log.Fatal(err)
		}
		r, err := ctx.Eval(e)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf(verb+"\n", r)
	}
}

func buildGroup(b *nodegroup.Builder, kind string, args []string) (*gnode.Graph, error) {
	switch kind {
	case "curve":
		if len(args) != 3 {
			return nil, fmt.Errorf("curve needs 3 expressions x(t) y(t) z(t), got %d", len(args))
		}
		return b.Curve(args[0], args[1], args[2])
	case "surface":
		if len(args) != 3 {
			return nil, fmt.Errorf("surface needs 3 expressions x(u,v) y(u,v) z(u,v), got %d", len(args))
		}
		return b.Surface(args[0], args[1], args[2])
	case "matrix":
		if len(args) != 16 {
			return nil, fmt.Errorf("matrix needs 16 expressions in row-major order, got %d", len(args))
		}
		var m [4][4]string
		for i, s := range args {
			m[i/4][i%4] = s
		}
		return b.Matrix(m)
	case "sweep":
		return nil, fmt.Errorf("sweep needs its sample grid; describe it in a recipe file and use -f")
	default:
		return nil, fmt.Errorf("unknown group kind %q (want curve, surface, or matrix)", kind)
	}
}

// writePoints prints a lattice in gnuplot grid form: one point per line, rows
// separated by blank lines.
func writePoints(w io.Writer, verb string, pts [][]nodegroup.Vec3) {
	for i, row := range pts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, p := range row {
			fmt.Fprintf(w, verb+" "+verb+" "+verb+"\n", p.X, p.Y, p.Z)
		}
	}
}

// exprDOT compiles one expression into a standalone graph. Free identifiers
// become sockets on a group-input node; bindings in ctx are ignored here, they
// only matter for evaluation.
func exprDOT(w *os.File, src string, ctx *exprgraph.Context) error {
	e, err := exprgraph.Parse(src)
	if err != nil {
		return err
	}
	g := gnode.New()
	names := e.Vars()
	in := g.NewNode(gnode.KindGroupInput, "Group Input", nil, names)
	in.X, in.Y = -400, 0
	vars := make(map[string]*gnode.Socket, len(names))
	for i, name := range names {
		vars[name] = in.Out(i)
	}
	res, err := exprgraph.Compile(e, vars, gnode.NewBuilder(g, 0, 0))
	if err != nil {
		return err
	}
	out := g.NewNode(gnode.KindGroupOutput, "Group Output", []string{"Value"}, nil)
	if err := g.Connect(res, out.In(0)); err != nil {
		return err
	}
	return g.WriteDOT(w, src)
}

func interactive() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func readLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanLines(f)
}

func scanLines(f *os.File) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
