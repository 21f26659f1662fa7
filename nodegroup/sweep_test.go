package nodegroup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	b := newBuilder(t)

	t.Run("identity", func(t *testing.T) {
		pts, err := b.Sweep([3]string{"t", "2*t", "3*t"}, Identity(), 0, 1, 0, 1, 3, 2)
		require.NoError(t, err)
		require.Len(t, pts, 2)
		want := []Vec3{{0, 0, 0}, {0.5, 1, 1.5}, {1, 2, 3}}
		assert.Equal(t, want, pts[0])
		assert.Equal(t, want, pts[1])
	})

	t.Run("translation by s", func(t *testing.T) {
		m := Identity()
		m[0][3] = "s"
		pts, err := b.Sweep([3]string{"1", "0", "0"}, m, 0, 0, 0, 2, 1, 3)
		require.NoError(t, err)
		require.Len(t, pts, 3)
		// s samples hit 0, 1, 2; the single curve point is (1, 0, 0).
		assert.Equal(t, []Vec3{{1, 0, 0}}, pts[0])
		assert.Equal(t, []Vec3{{2, 0, 0}}, pts[1])
		assert.Equal(t, []Vec3{{3, 0, 0}}, pts[2])
	})

	t.Run("rotation by s", func(t *testing.T) {
		m := Identity()
		m[0][0], m[0][1] = "cos(s)", "-sin(s)"
		m[1][0], m[1][1] = "sin(s)", "cos(s)"
		// A single s sample pins s to its minimum.
		pts, err := b.Sweep([3]string{"1", "0", "0"}, m, 0, 0, math.Pi/2, 0, 1, 1)
		require.NoError(t, err)
		p := pts[0][0]
		assert.InDelta(t, 0, p.X, 1e-12)
		assert.InDelta(t, 1, p.Y, 1e-12)
		assert.InDelta(t, 0, p.Z, 1e-12)
	})

	t.Run("w divide", func(t *testing.T) {
		m := Identity()
		m[3][3] = "2"
		pts, err := b.Sweep([3]string{"3", "4", "5"}, m, 0, 0, 0, 0, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, Vec3{1.5, 2, 2.5}, pts[0][0])
	})

	t.Run("zero w passes through", func(t *testing.T) {
		m := Identity()
		m[3][3] = "0"
		pts, err := b.Sweep([3]string{"3", "4", "5"}, m, 0, 0, 0, 0, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, Vec3{3, 4, 5}, pts[0][0])
	})

	t.Run("endpoints are exact", func(t *testing.T) {
		pts, err := b.Sweep([3]string{"t", "0", "0"}, Identity(), -3, 7, 0, 0, 21, 1)
		require.NoError(t, err)
		assert.Equal(t, -3.0, pts[0][0].X)
		assert.Equal(t, 7.0, pts[0][20].X)
		assert.Equal(t, 2.0, pts[0][10].X)
	})
}

func TestSweepErrors(t *testing.T) {
	b := newBuilder(t)

	t.Run("curve parse error", func(t *testing.T) {
		_, err := b.Sweep([3]string{"t", "(t", "t"}, Identity(), 0, 1, 0, 1, 2, 2)
		require.Error(t, err)
		assert.ErrorContains(t, err, "y(t)")
	})

	t.Run("matrix parse error", func(t *testing.T) {
		m := Identity()
		m[1][2] = "pow(s)"
		_, err := b.Sweep([3]string{"t", "t", "t"}, m, 0, 1, 0, 1, 2, 2)
		require.Error(t, err)
		assert.ErrorContains(t, err, "m12(s)")
	})

	t.Run("curve cannot see s", func(t *testing.T) {
		_, err := b.Sweep([3]string{"s", "0", "0"}, Identity(), 0, 1, 0, 1, 2, 2)
		require.Error(t, err)
		assert.ErrorContains(t, err, "x(t)")
		assert.ErrorContains(t, err, "unknown variable: s")
	})

	t.Run("matrix cannot see t", func(t *testing.T) {
		m := Identity()
		m[2][3] = "t"
		_, err := b.Sweep([3]string{"0", "0", "0"}, m, 0, 1, 0, 1, 2, 2)
		require.Error(t, err)
		assert.ErrorContains(t, err, "m23(s)")
		assert.ErrorContains(t, err, "unknown variable: t")
	})

	t.Run("sample counts", func(t *testing.T) {
		_, err := b.Sweep([3]string{"t", "t", "t"}, Identity(), 0, 1, 0, 1, 0, 2)
		assert.Error(t, err)
		_, err = b.Sweep([3]string{"t", "t", "t"}, Identity(), 0, 1, 0, 1, 2, 0)
		assert.Error(t, err)
	})
}
