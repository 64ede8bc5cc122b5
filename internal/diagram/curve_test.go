package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiperezh/gosteel/internal/diagram"
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// TestSampleMomentCurve checks the sample grid, the plastic plateau at
// short lengths and the monotone decay past it.
func TestSampleMomentCurve(t *testing.T) {
	p, ok := section.Lookup("W18X50")
	require.True(t, ok)
	m := section.DefaultSteel()

	curve, err := diagram.SampleMomentCurve(p, m, member.Config{}, 800, 81)
	require.NoError(t, err)

	require.Len(t, curve.Points, 81)
	assert.Equal(t, 0.0, curve.Points[0].X)
	assert.InDelta(t, 800.0, curve.Points[80].X, 1e-9)

	assert.Greater(t, curve.Lr, curve.Lp)
	assert.InDelta(t, 0.90*curve.Mp, curve.Points[0].Y, 1e-6, "Lb = 0 sits on the plastic plateau")

	prev := curve.Points[0].Y
	for _, pt := range curve.Points[1:] {
		assert.LessOrEqual(t, pt.Y, prev+1e-9, "Lb=%.1f", pt.X)
		prev = pt.Y
	}
}

// TestSampleColumnCurve checks the column curve starts above zero
// length and decays monotonically.
func TestSampleColumnCurve(t *testing.T) {
	p, ok := section.Lookup("W12X40")
	require.True(t, ok)
	m := section.DefaultSteel()

	curve, err := diagram.SampleColumnCurve(p, m, member.Config{}, 1000, 40)
	require.NoError(t, err)

	require.Len(t, curve.Points, 40)
	assert.Greater(t, curve.Points[0].X, 0.0, "zero length is outside the compression domain")

	prev := curve.Points[0].Y
	for _, pt := range curve.Points[1:] {
		assert.LessOrEqual(t, pt.Y, prev+1e-9, "L=%.1f", pt.X)
		prev = pt.Y
	}
}

// TestSampleCurves_MinimumPoints verifies the sample-count floor.
func TestSampleCurves_MinimumPoints(t *testing.T) {
	p, ok := section.Lookup("W18X50")
	require.True(t, ok)
	m := section.DefaultSteel()

	curve, err := diagram.SampleMomentCurve(p, m, member.Config{}, 500, 0)
	require.NoError(t, err)
	assert.Len(t, curve.Points, 2)
}
