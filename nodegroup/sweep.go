package nodegroup

import (
	"fmt"

	"github.com/alessiofumagalli/exprgraph"
)

// Vec3 is one point of a swept lattice.
type Vec3 struct {
	X, Y, Z float64
}

// Sweep samples a parametric curve at nt values of t and a parametric
// transformation matrix at ns values of s, applying each sampled matrix to
// each curve point. Row r of the result holds the whole curve transformed by
// the matrix at the r-th s sample, so the lattice is a surface swept by the
// moving curve. Everything is computed numerically; no node graph is built.
//
// Single-sample axes pin the parameter to its minimum. Points are transformed
// homogeneously: [x y z 1] through the row-major matrix, then divided by the
// resulting w unless w is 0, in which case the projective components pass
// through undivided.
func (b *Builder) Sweep(curve [3]string, matrix [4][4]string, tMin, tMax, sMin, sMax float64, nt, ns int) ([][]Vec3, error) {
	if nt < 1 || ns < 1 {
		return nil, fmt.Errorf("sweep needs at least 1 sample per axis, got %d x %d", nt, ns)
	}
	names := [3]string{"x(t)", "y(t)", "z(t)"}
	var comps [3]*exprgraph.Expr
	for i, src := range curve {
		e, err := exprgraph.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		comps[i] = e
	}
	var entries [4][4]*exprgraph.Expr
	for row := range matrix {
		for col, src := range matrix[row] {
			e, err := exprgraph.Parse(src)
			if err != nil {
				return nil, fmt.Errorf("m%d%d(s): %w", row, col, err)
			}
			entries[row][col] = e
		}
	}

	// Curve components see only t, matrix entries only s.
	tctx := exprgraph.NewContext()
	sctx := exprgraph.NewContext()
	pts := make([][]Vec3, ns)
	for si := 0; si < ns; si++ {
		s := sMin
		if ns > 1 {
			s += float64(si) / float64(ns-1) * (sMax - sMin)
		}
		sctx.Set("s", s)
		var m [4][4]float64
		for row := range entries {
			for col, e := range entries[row] {
				v, err := sctx.Eval(e)
				if err != nil {
					return nil, fmt.Errorf("m%d%d(s): %w", row, col, err)
				}
				m[row][col] = v
			}
		}
		rowPts := make([]Vec3, nt)
		for ti := 0; ti < nt; ti++ {
			t := tMin
			if nt > 1 {
				t += float64(ti) / float64(nt-1) * (tMax - tMin)
			}
			tctx.Set("t", t)
			var p [3]float64
			for i, e := range comps {
				v, err := tctx.Eval(e)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", names[i], err)
				}
				p[i] = v
			}
			rowPts[ti] = transform(m, p)
		}
		pts[si] = rowPts
	}
	b.logger.Debug("swept curve through matrix", "rows", ns, "cols", nt)
	return pts, nil
}

// transform applies a row-major homogeneous matrix to a point.
func transform(m [4][4]float64, p [3]float64) Vec3 {
	var h [4]float64
	for row := range m {
		h[row] = m[row][0]*p[0] + m[row][1]*p[1] + m[row][2]*p[2] + m[row][3]
	}
	if h[3] != 0 {
		return Vec3{h[0] / h[3], h[1] / h[3], h[2] / h[3]}
	}
	return Vec3{h[0], h[1], h[2]}
}
