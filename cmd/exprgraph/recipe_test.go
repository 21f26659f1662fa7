package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alessiofumagalli/exprgraph/nodegroup"
)

func writeRecipe(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadRecipe(t *testing.T) {
	t.Run("curve", func(t *testing.T) {
		r, err := loadRecipe(writeRecipe(t, `
kind: curve
x: cos(t)
y: sin(t)
z: t/10
`))
		require.NoError(t, err)
		assert.Equal(t, "curve", r.Kind)
		assert.Equal(t, "cos(t)", r.X)
		assert.Equal(t, "t/10", r.Z)
	})

	t.Run("matrix", func(t *testing.T) {
		r, err := loadRecipe(writeRecipe(t, `
kind: matrix
matrix:
  - [cos(s), -sin(s), "0", "0"]
  - [sin(s), cos(s), "0", "0"]
  - ["0", "0", "1", "0"]
  - ["0", "0", "0", "1"]
`))
		require.NoError(t, err)
		assert.Equal(t, "-sin(s)", r.Matrix[0][1])
		assert.Equal(t, "1", r.Matrix[3][3])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRecipe(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := loadRecipe(writeRecipe(t, "kind: [curve"))
		assert.Error(t, err)
	})
}

func TestRecipeValidate(t *testing.T) {
	cases := []struct {
		name   string
		recipe Recipe
		want   string
	}{
		{"no kind", Recipe{}, "missing a kind"},
		{"unknown kind", Recipe{Kind: "helix"}, `unknown recipe kind "helix"`},
		{"curve missing z", Recipe{Kind: "curve", X: "t", Y: "t"}, "needs x, y, and z"},
		{"surface missing x", Recipe{Kind: "surface", Y: "v", Z: "0"}, "needs x, y, and z"},
		{"matrix short", Recipe{Kind: "matrix", Matrix: [][]string{{"1"}}}, "needs 4 matrix rows"},
		{"sweep missing exprs", Recipe{Kind: "sweep", Resolution: 8, Sweeps: 8}, "needs x, y, and z"},
		{
			"sweep missing matrix",
			Recipe{Kind: "sweep", X: "t", Y: "t", Z: "t", Resolution: 8, Sweeps: 8},
			"needs 4 matrix rows",
		},
		{
			"sweep zero samples",
			Recipe{Kind: "sweep", X: "t", Y: "t", Z: "t", Resolution: 0, Sweeps: 8},
			"at least 1",
		},
		{
			"matrix ragged row",
			Recipe{Kind: "matrix", Matrix: [][]string{
				{"1", "0", "0", "0"},
				{"0", "1", "0"},
				{"0", "0", "1", "0"},
				{"0", "0", "0", "1"},
			}},
			"row 1 needs 4 entries",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.recipe.validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, c.want)
		})
	}

	identityRows := [][]string{
		{"1", "0", "0", "0"},
		{"0", "1", "0", "0"},
		{"0", "0", "1", "0"},
		{"0", "0", "0", "1"},
	}
	valid := []Recipe{
		{Kind: "curve", X: "t", Y: "t", Z: "t"},
		{Kind: "surface", X: "u", Y: "v", Z: "0"},
		{Kind: "matrix", Matrix: identityRows},
		{Kind: "sweep", X: "t", Y: "t", Z: "t", Matrix: identityRows, Resolution: 2, Sweeps: 2},
	}
	for _, r := range valid {
		assert.NoError(t, r.validate(), "kind %s", r.Kind)
	}
}

func TestRecipeBuild(t *testing.T) {
	b, err := nodegroup.New()
	require.NoError(t, err)

	r := Recipe{Kind: "curve", X: "cos(t)", Y: "sin(t)", Z: "t"}
	g, err := r.Build(b)
	require.NoError(t, err)
	assert.NotEmpty(t, g.Nodes())

	r = Recipe{Kind: "matrix", Matrix: [][]string{
		{"cos(s)", "-sin(s)", "0", "0"},
		{"sin(s)", "cos(s)", "0", "0"},
		{"0", "0", "1", "0"},
		{"0", "0", "0", "1"},
	}}
	g, err = r.Build(b)
	require.NoError(t, err)
	assert.NotEmpty(t, g.Nodes())

	r = Recipe{Kind: "surface", X: "u", Y: "v", Z: "q"}
	_, err = r.Build(b)
	assert.ErrorContains(t, err, "unknown variable: q")

	// Sweep recipes have no graph form.
	r = Recipe{Kind: "sweep"}
	_, err = r.Build(b)
	assert.ErrorContains(t, err, "point lattice")
}

func TestSweepRecipe(t *testing.T) {
	b, err := nodegroup.New()
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		r, err := loadRecipe(writeRecipe(t, `
kind: sweep
x: cos(t)
y: sin(t)
z: "0"
matrix:
  - ["1", "0", "0", "s"]
  - ["0", "1", "0", "0"]
  - ["0", "0", "1", "0"]
  - ["0", "0", "0", "1"]
`))
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.TMin)
		assert.Equal(t, 1.0, r.TMax)
		assert.Equal(t, 32, r.Resolution)
		assert.Equal(t, 50, r.Sweeps)
	})

	t.Run("points", func(t *testing.T) {
		r, err := loadRecipe(writeRecipe(t, `
kind: sweep
x: t
y: "0"
z: "0"
matrix:
  - ["1", "0", "0", "0"]
  - ["0", "1", "0", "s"]
  - ["0", "0", "1", "0"]
  - ["0", "0", "0", "1"]
t_max: 2
s_max: 3
resolution: 3
sweeps: 2
`))
		require.NoError(t, err)
		pts, err := r.Sweep(b)
		require.NoError(t, err)
		require.Len(t, pts, 2)
		assert.Equal(t, []nodegroup.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, pts[0])
		assert.Equal(t, []nodegroup.Vec3{{X: 0, Y: 3, Z: 0}, {X: 1, Y: 3, Z: 0}, {X: 2, Y: 3, Z: 0}}, pts[1])
	})
}

func TestWritePoints(t *testing.T) {
	var sb strings.Builder
	writePoints(&sb, "%g", [][]nodegroup.Vec3{
		{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		{{X: 7, Y: 8, Z: 9}},
	})
	assert.Equal(t, "1 2 3\n4 5 6\n\n7 8 9\n", sb.String())
}

func TestBinding(t *testing.T) {
	cases := []struct {
		line string
		name string
		rhs  string
		ok   bool
	}{
		{"t = 1.5", "t", "1.5", true},
		{"speed=2*pi", "speed", "2*pi", true},
		{"_r2 = t+1", "_r2", "t+1", true},
		{"1+2", "", "", false},
		{"= 5", "", "", false},
		{"t =", "", "", false},
		{"2x = 5", "", "", false},
		{"a b = 5", "", "", false},
	}
	for _, c := range cases {
		name, rhs, ok := binding(c.line)
		if ok != c.ok || name != c.name || rhs != c.rhs {
			t.Errorf("binding(%q) = %q, %q, %v; want %q, %q, %v",
				c.line, name, rhs, ok, c.name, c.rhs, c.ok)
		}
	}
}
