package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alessiofumagalli/exprgraph/gnode"
	"github.com/alessiofumagalli/exprgraph/nodegroup"
)

// Recipe describes a node group in a YAML file:
//
//	kind: surface
//	x: sin(v)*cos(u)
//	y: sin(v)*sin(u)
//	z: cos(v)
//
// or, for a matrix, four rows of four expressions:
//
//	kind: matrix
//	matrix:
//	  - [cos(s), -sin(s), "0", "0"]
//	  - [sin(s), cos(s), "0", "0"]
//	  - ["0", "0", "1", "0"]
//	  - ["0", "0", "0", "1"]
//
// A sweep recipe combines both: curve expressions in t, matrix entries in s,
// and the sample grid. Ranges default to [0, 1], resolution to 32 points per
// curve, sweeps to 50 matrix samples.
//
//	kind: sweep
//	x: cos(t)
//	y: sin(t)
//	z: "0"
//	matrix: ...
//	t_max: 6.2832
//	sweeps: 20
type Recipe struct {
	Kind   string     `yaml:"kind"`
	X      string     `yaml:"x"`
	Y      string     `yaml:"y"`
	Z      string     `yaml:"z"`
	Matrix [][]string `yaml:"matrix"`

	// Sweep sampling grid.
	TMin       float64 `yaml:"t_min"`
	TMax       float64 `yaml:"t_max"`
	SMin       float64 `yaml:"s_min"`
	SMax       float64 `yaml:"s_max"`
	Resolution int     `yaml:"resolution"`
	Sweeps     int     `yaml:"sweeps"`
}

func loadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := Recipe{TMax: 1, SMax: 1, Resolution: 32, Sweeps: 50}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &r, nil
}

func (r *Recipe) validate() error {
	switch r.Kind {
	case "curve", "surface":
		if r.X == "" || r.Y == "" || r.Z == "" {
			return fmt.Errorf("%s recipe needs x, y, and z expressions", r.Kind)
		}
	case "matrix", "sweep":
		if r.Kind == "sweep" {
			if r.X == "" || r.Y == "" || r.Z == "" {
				return fmt.Errorf("sweep recipe needs x, y, and z expressions")
			}
			if r.Resolution < 1 || r.Sweeps < 1 {
				return fmt.Errorf("sweep recipe needs resolution and sweeps of at least 1")
			}
		}
		if len(r.Matrix) != 4 {
			return fmt.Errorf("%s recipe needs 4 matrix rows, got %d", r.Kind, len(r.Matrix))
		}
		for i, row := range r.Matrix {
			if len(row) != 4 {
				return fmt.Errorf("matrix row %d needs 4 entries, got %d", i, len(row))
			}
		}
	case "":
		return fmt.Errorf("recipe is missing a kind")
	default:
		return fmt.Errorf("unknown recipe kind %q (want curve, surface, matrix, or sweep)", r.Kind)
	}
	return nil
}

func (r *Recipe) Build(b *nodegroup.Builder) (*gnode.Graph, error) {
	switch r.Kind {
	case "curve":
		return b.Curve(r.X, r.Y, r.Z)
	case "surface":
		return b.Surface(r.X, r.Y, r.Z)
	case "matrix":
		return b.Matrix(r.matrix4())
	case "sweep":
		return nil, fmt.Errorf("sweep recipes produce a point lattice, not a node graph")
	default:
		panic("unreachable: recipe validated")
	}
}

// Sweep computes the point lattice of a sweep recipe.
func (r *Recipe) Sweep(b *nodegroup.Builder) ([][]nodegroup.Vec3, error) {
	return b.Sweep([3]string{r.X, r.Y, r.Z}, r.matrix4(),
		r.TMin, r.TMax, r.SMin, r.SMax, r.Resolution, r.Sweeps)
}

func (r *Recipe) matrix4() [4][4]string {
	var m [4][4]string
	for i, row := range r.Matrix {
		for j, s := range row {
			m[i][j] = s
		}
	}
	return m
}
