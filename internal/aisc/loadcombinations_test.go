package aisc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiperezh/gosteel/internal/aisc"
)

// TestFactor applies a single combination to a set of effects.
func TestFactor(t *testing.T) {
	e := aisc.LoadEffects{Dead: 10, Live: 5}

	assert.InDelta(t, 14.0, aisc.LoadCombinations[0].Factor(e), 1e-12, "1.4D")
	assert.InDelta(t, 20.0, aisc.LoadCombinations[1].Factor(e), 1e-12, "1.2D + 1.6L")
}

// TestGoverningEffect verifies the maximum-magnitude rule, including
// negative (compression-side) effects.
func TestGoverningEffect(t *testing.T) {
	u, combo := aisc.GoverningEffect(aisc.LoadEffects{Dead: 10, Live: 5}, aisc.LoadCombinations)
	assert.InDelta(t, 20.0, u, 1e-12)
	assert.Equal(t, "2", combo.ID)

	// Dead-dominated case: 1.4D governs over 1.2D + 1.6L
	u, combo = aisc.GoverningEffect(aisc.LoadEffects{Dead: 100, Live: 1}, aisc.LoadCombinations)
	assert.InDelta(t, 140.0, u, 1e-12)
	assert.Equal(t, "1", combo.ID)

	// Compression sign is preserved through the magnitude comparison
	u, combo = aisc.GoverningEffect(aisc.LoadEffects{Dead: -10, Live: -5}, aisc.SimplifiedCombinations)
	assert.InDelta(t, -20.0, u, 1e-12)
	assert.Equal(t, "2", combo.ID)
}

// TestGoverningEffect_WindUplift checks that the 0.9D + 1.0W combination
// can govern when wind opposes gravity.
func TestGoverningEffect_WindUplift(t *testing.T) {
	u, combo := aisc.GoverningEffect(aisc.LoadEffects{Dead: 5, Wind: -30}, aisc.LoadCombinations)
	assert.InDelta(t, 0.9*5-30, u, 1e-12)
	assert.Equal(t, "6", combo.ID)
}
