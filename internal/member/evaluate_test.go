package member_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiperezh/gosteel/internal/aisc"
	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/section"
)

// TestEvaluate_Dispatch verifies the axial sign convention routes to
// exactly one of tension and compression, and flexure follows the
// loaded axes.
func TestEvaluate_Dispatch(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()
	cfg := member.Config{Lx: 300, Ly: 300, Lb: 300}

	rep, err := member.Evaluate(p, m, cfg, member.Demands{P: 50000})
	require.NoError(t, err)
	assert.NotNil(t, rep.Tension)
	assert.Nil(t, rep.Compression)
	assert.Contains(t, rep.Checks, "tension")
	assert.NotContains(t, rep.Checks, "flexure_strong")

	rep, err = member.Evaluate(p, m, cfg, member.Demands{P: -50000, Mx: 1e6, My: 1e5})
	require.NoError(t, err)
	assert.Nil(t, rep.Tension)
	assert.NotNil(t, rep.Compression)
	assert.NotNil(t, rep.FlexureStrong)
	assert.NotNil(t, rep.FlexureWeak)
	assert.Len(t, rep.Checks, 3)
}

// TestEvaluate_NoDemands rejects an empty evaluation.
func TestEvaluate_NoDemands(t *testing.T) {
	p := testShape(t, "W18X50")
	_, err := member.Evaluate(p, section.DefaultSteel(), member.Config{Lx: 300, Ly: 300}, member.Demands{})
	assert.ErrorIs(t, err, aisc.ErrValidation)
}

// TestEvaluate_Utilization checks the demand-to-capacity ratio and the
// pass verdict against a hand-set demand at half capacity.
func TestEvaluate_Utilization(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()
	cfg := member.Config{Lb: 100}

	full, err := member.Evaluate(p, m, cfg, member.Demands{Mx: 1})
	require.NoError(t, err)
	capacity := full.Checks["flexure_strong"].Result.Design

	rep, err := member.Evaluate(p, m, cfg, member.Demands{Mx: capacity / 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rep.MaxUtilization, 1e-9)
	assert.True(t, rep.OK)

	rep, err = member.Evaluate(p, m, cfg, member.Demands{Mx: capacity * 1.1})
	require.NoError(t, err)
	assert.InDelta(t, 1.1, rep.MaxUtilization, 1e-9)
	assert.False(t, rep.OK)
}

// TestEvaluate_Interaction exercises both H1 equations around the
// Pr/Pc = 0.2 switch.
func TestEvaluate_Interaction(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()
	cfg := member.Config{Lx: 300, Ly: 300, Lb: 300}

	comp, err := member.EvaluateCompression(p, m, cfg)
	require.NoError(t, err)
	pc := comp.Governing.Design

	high, err := member.Evaluate(p, m, cfg, member.Demands{P: -0.5 * pc, Mx: 1e5})
	require.NoError(t, err)
	require.NotNil(t, high.Interaction)
	assert.Equal(t, "H1-1a", high.Interaction.Equation)
	assert.InDelta(t, 0.5, high.Interaction.PrPc, 1e-9)

	low, err := member.Evaluate(p, m, cfg, member.Demands{P: -0.1 * pc, Mx: 1e5})
	require.NoError(t, err)
	require.NotNil(t, low.Interaction)
	assert.Equal(t, "H1-1b", low.Interaction.Equation)

	// Tension plus moment carries no H1 interaction here
	tens, err := member.Evaluate(p, m, cfg, member.Demands{P: 0.5 * pc, Mx: 1e5})
	require.NoError(t, err)
	assert.Nil(t, tens.Interaction)

	// Pure compression carries none either
	pure, err := member.Evaluate(p, m, cfg, member.Demands{P: -0.5 * pc})
	require.NoError(t, err)
	assert.Nil(t, pure.Interaction)
}

// TestEvaluate_InteractionBoundary: Pr/Pc at 0.2 takes H1-1a. The
// demand carries a hair of margin so floating-point round-trip through
// the ratio cannot drop it below the switch.
func TestEvaluate_InteractionBoundary(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()
	cfg := member.Config{Lx: 300, Ly: 300, Lb: 300}

	comp, err := member.EvaluateCompression(p, m, cfg)
	require.NoError(t, err)

	rep, err := member.Evaluate(p, m, cfg, member.Demands{P: -0.2 * comp.Governing.Design * (1 + 1e-9), Mx: 1e5})
	require.NoError(t, err)
	require.NotNil(t, rep.Interaction)
	assert.Equal(t, "H1-1a", rep.Interaction.Equation)
}

// TestEvaluate_Deterministic: equal inputs produce identical reports.
func TestEvaluate_Deterministic(t *testing.T) {
	p := testShape(t, "W14X53")
	m := section.DefaultSteel()
	cfg := member.Config{Lx: 400, Ly: 400, Lz: 400, Lb: 250, Cb: 1.14}
	d := member.Demands{P: -40000, Mx: 2e6}

	a, err := member.Evaluate(p, m, cfg, d)
	require.NoError(t, err)
	b, err := member.Evaluate(p, m, cfg, d)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestEvaluate_FailurePropagation: a failing limit-state family fails
// the whole evaluation rather than returning a partial report.
func TestEvaluate_FailurePropagation(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()

	// Compression requested but no lengths supplied
	rep, err := member.Evaluate(p, m, member.Config{}, member.Demands{P: -1000, Mx: 1e5})
	assert.ErrorIs(t, err, aisc.ErrDomain)
	assert.Zero(t, rep)
}

// TestEvaluate_GoverningIsMinimum: the report-level governing strength
// is the smallest design strength across the evaluated families.
func TestEvaluate_GoverningIsMinimum(t *testing.T) {
	p := testShape(t, "W18X50")
	m := section.DefaultSteel()
	cfg := member.Config{Lx: 500, Ly: 500, Lb: 400}

	rep, err := member.Evaluate(p, m, cfg, member.Demands{P: -10000, Mx: 1e5, My: 1e4})
	require.NoError(t, err)

	for name, fc := range rep.Checks {
		assert.LessOrEqual(t, rep.Governing.Design, fc.Result.Design, "family %s", name)
	}
}
