package member_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// TestStrongAxis_PlasticZone: a fully braced beam reaches the plastic
// moment exactly.
func TestStrongAxis_PlasticZone(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	res, err := member.EvaluateFlexure(p, m, member.Config{Lb: 0}, member.StrongAxis)
	require.NoError(t, err)

	assert.Equal(t, member.PlasticMoment, res.Governing.State)
	assert.Equal(t, m.Fy*p.Zx, res.Governing.Nominal)
	assert.Equal(t, 0.90*(m.Fy*p.Zx), res.Governing.Design)
	assert.Greater(t, res.Lr, res.Lp)
}

// TestStrongAxis_ZoneBoundaries: Lb exactly at a breakpoint stays on the
// lower-Lb side, and the strength is continuous across both breakpoints.
func TestStrongAxis_ZoneBoundaries(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	base, err := member.EvaluateFlexure(p, m, member.Config{Lb: 0}, member.StrongAxis)
	require.NoError(t, err)

	atLp, err := member.EvaluateFlexure(p, m, member.Config{Lb: base.Lp}, member.StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, member.PlasticMoment, atLp.Governing.State, "Lb = Lp is still the plastic zone")

	pastLp, err := member.EvaluateFlexure(p, m, member.Config{Lb: base.Lp * 1.000001}, member.StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, member.InelasticLTB, pastLp.Governing.State)
	assert.InEpsilon(t, atLp.Governing.Design, pastLp.Governing.Design, 1e-4,
		"strength must be continuous at Lp")

	atLr, err := member.EvaluateFlexure(p, m, member.Config{Lb: base.Lr}, member.StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, member.InelasticLTB, atLr.Governing.State, "Lb = Lr is still the inelastic zone")

	pastLr, err := member.EvaluateFlexure(p, m, member.Config{Lb: base.Lr * 1.000001}, member.StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, member.ElasticLTB, pastLr.Governing.State)
	assert.InEpsilon(t, atLr.Governing.Design, pastLr.Governing.Design, 1e-3,
		"strength must be continuous at Lr")

	// The inelastic value at Lr collapses to 0.7·Fy·Sx by construction
	assert.InEpsilon(t, 0.70*m.Fy*p.Sx, atLr.Governing.Nominal, 1e-9)
}

// TestStrongAxis_CbCappedAtMp: a large moment gradient factor cannot
// push the nominal moment past Mp in either LTB zone.
func TestStrongAxis_CbCappedAtMp(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	base, err := member.EvaluateFlexure(p, m, member.Config{Lb: 0}, member.StrongAxis)
	require.NoError(t, err)

	inelastic, err := member.EvaluateFlexure(p, m,
		member.Config{Lb: (base.Lp + base.Lr) / 2, Cb: 3.0}, member.StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, base.Mp, inelastic.Governing.Nominal, "inelastic zone capped at Mp")

	elastic, err := member.EvaluateFlexure(p, m,
		member.Config{Lb: base.Lr * 1.05, Cb: 10.0}, member.StrongAxis)
	require.NoError(t, err)
	assert.Equal(t, base.Mp, elastic.Governing.Nominal, "elastic zone capped at Mp")
}

// TestStrongAxis_ElasticZone spot-checks that the elastic critical
// stress is reported and drives the nominal moment.
func TestStrongAxis_ElasticZone(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	base, err := member.EvaluateFlexure(p, m, member.Config{Lb: 0}, member.StrongAxis)
	require.NoError(t, err)

	res, err := member.EvaluateFlexure(p, m, member.Config{Lb: base.Lr * 2}, member.StrongAxis)
	require.NoError(t, err)

	assert.Equal(t, member.ElasticLTB, res.Governing.State)
	assert.Greater(t, res.Fcr, 0.0)
	assert.InDelta(t, res.Fcr*p.Sx, res.Governing.Nominal, 1e-6)
	assert.Less(t, res.Governing.Nominal, base.Mp)
}

// TestWeakAxis_Compact: compact flanges reach the weak-axis plastic
// moment, capped at 1.6·Fy·Sy.
func TestWeakAxis_Compact(t *testing.T) {
	p := testShape(t, "W36X160")
	m := section.DefaultSteel()

	res, err := member.EvaluateFlexure(p, m, member.Config{}, member.WeakAxis)
	require.NoError(t, err)

	assert.Equal(t, member.PlasticMoment, res.Governing.State)
	want := m.Fy * p.Zy
	if c := 1.6 * m.Fy * p.Sy; c < want {
		want = c
	}
	assert.Equal(t, want, res.Governing.Nominal)
}

// TestWeakAxis_NoncompactFlange: the linear interpolation lands between
// 0.7·Fy·Sy and Mp.
func TestWeakAxis_NoncompactFlange(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	res, err := member.EvaluateFlexure(p, m, member.Config{}, member.WeakAxis)
	require.NoError(t, err)

	assert.Equal(t, member.FlangeLocalBuckling, res.Governing.State)
	assert.Less(t, res.Governing.Nominal, res.Mp)
	assert.Greater(t, res.Governing.Nominal, 0.70*m.Fy*p.Sy)
}

// TestWeakAxis_SlenderFlange uses a high yield stress to drive the
// flange slender and checks the elastic local-buckling stress governs.
func TestWeakAxis_SlenderFlange(t *testing.T) {
	p := testShape(t, "W6X15")
	m := section.Material{Fy: 7000, Fu: 8500, E: aisc.Es, G: aisc.Gs}

	res, err := member.EvaluateFlexure(p, m, member.Config{}, member.WeakAxis)
	require.NoError(t, err)

	assert.Equal(t, member.FlangeLocalBuckling, res.Governing.State)
	assert.Greater(t, res.Fcr, 0.0)
	assert.InDelta(t, res.Fcr*p.Sy, res.Governing.Nominal, 1e-6)
	assert.Less(t, res.Governing.Nominal, res.Mp)
}

// TestEvaluateFlexure_Errors covers malformed input.
func TestEvaluateFlexure_Errors(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	_, err := member.EvaluateFlexure(p, m, member.Config{Lb: -1}, member.StrongAxis)
	assert.ErrorIs(t, err, aisc.ErrValidation, "negative Lb")

	bad := p
	bad.Zx = 0
	_, err = member.EvaluateFlexure(bad, m, member.Config{}, member.StrongAxis)
	assert.ErrorIs(t, err, aisc.ErrValidation, "zero plastic modulus")

	_, err = member.EvaluateFlexure(p, m, member.Config{Cb: -2}, member.StrongAxis)
	assert.ErrorIs(t, err, aisc.ErrValidation, "negative Cb")
}
