package member_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// testShape returns a catalog section for tests that only need a valid
// geometry to hang material and demand variations on.
func testShape(t *testing.T, name string) section.Properties {
	t.Helper()
	p, ok := section.Lookup(name)
	require.True(t, ok, "catalog shape %s", name)
	return p
}

// TestEvaluateTension_BothLimitStates checks yielding and rupture
// against hand-computed values. Ag = 100, An = 85, U = 1:
// yielding 0.90·345·100 = 31050, rupture 0.75·450·85 = 28687.5,
// rupture governs.
func TestEvaluateTension_BothLimitStates(t *testing.T) {
	p := testShape(t, "W18X50")
	p.A = 100
	p.An = 85
	m := section.Material{Fy: 345, Fu: 450, E: 200000, G: 77200}

	res, err := member.EvaluateTension(p, m, member.Config{})
	require.NoError(t, err)

	assert.InDelta(t, 34500.0, res.Yielding.Nominal, 1e-9)
	assert.InDelta(t, 31050.0, res.Yielding.Design, 1e-9)
	assert.InDelta(t, 38250.0, res.Rupture.Nominal, 1e-9)
	assert.InDelta(t, 28687.5, res.Rupture.Design, 1e-9)

	assert.Equal(t, member.Rupture, res.Governing.State)
	assert.InDelta(t, 85.0, res.EffectiveNetArea, 1e-9)
}

// TestEvaluateTension_ShearLag verifies U scales the effective net area
// and can flip the governing limit state.
func TestEvaluateTension_ShearLag(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	full, err := member.EvaluateTension(p, m, member.Config{})
	require.NoError(t, err)
	reduced, err := member.EvaluateTension(p, m, member.Config{U: 0.85})
	require.NoError(t, err)

	assert.InDelta(t, 0.85*full.EffectiveNetArea, reduced.EffectiveNetArea, 1e-9)
	assert.InDelta(t, 0.85*full.Rupture.Design, reduced.Rupture.Design, 1e-6)
	// Yielding is untouched by shear lag
	assert.Equal(t, full.Yielding, reduced.Yielding)
}

// TestEvaluateTension_GoverningIsMin asserts the governing design
// strength is never above either limit state.
func TestEvaluateTension_GoverningIsMin(t *testing.T) {
	p := testShape(t, "W12X26")
	p.An = 0.8 * p.A
	m := section.DefaultSteel()

	res, err := member.EvaluateTension(p, m, member.Config{U: 0.9})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Governing.Design, res.Yielding.Design)
	assert.LessOrEqual(t, res.Governing.Design, res.Rupture.Design)
}

// TestEvaluateTension_Errors covers the validation and domain failures.
func TestEvaluateTension_Errors(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	bad := p
	bad.A = 0
	_, err := member.EvaluateTension(bad, m, member.Config{})
	assert.ErrorIs(t, err, aisc.ErrValidation, "zero gross area")

	bad = p
	bad.An = p.A * 2
	_, err = member.EvaluateTension(bad, m, member.Config{})
	assert.ErrorIs(t, err, aisc.ErrValidation, "net area above gross")

	_, err = member.EvaluateTension(p, m, member.Config{U: 1.5})
	assert.ErrorIs(t, err, aisc.ErrValidation, "shear-lag factor above 1")

	badM := m
	badM.Fu = 0
	_, err = member.EvaluateTension(p, badM, member.Config{})
	assert.ErrorIs(t, err, aisc.ErrValidation, "missing Fu")
}
