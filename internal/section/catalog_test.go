package section_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiperezh/gosteel/internal/section"
)

// TestLookup covers case-insensitive matching and missing shapes.
func TestLookup(t *testing.T) {
	p, ok := section.Lookup("W18X50")
	require.True(t, ok)
	assert.Equal(t, "W18X50", p.Name)
	assert.InDelta(t, 95.48, p.A, 1e-9)

	lower, ok := section.Lookup("  w18x50 ")
	require.True(t, ok, "lookup must tolerate case and surrounding whitespace")
	assert.Equal(t, p, lower)

	_, ok = section.Lookup("W99X999")
	assert.False(t, ok)
}

// TestNames verifies the listing is sorted and complete.
func TestNames(t *testing.T) {
	names := section.Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Len(t, names, 50)
	assert.Contains(t, names, "W36X160")
	assert.Contains(t, names, "W6X15")
}

// TestCatalogIntegrity runs every catalog entry through the property
// validator and the derived-quantity helpers. A bad transcription shows
// up here before it poisons a strength check.
func TestCatalogIntegrity(t *testing.T) {
	for _, name := range section.Names() {
		p, ok := section.Lookup(name)
		require.True(t, ok)

		assert.NoError(t, p.Validate(), "catalog entry %s must validate", name)
		assert.Greater(t, p.FlangeRatio(), 0.0, "%s flange ratio", name)
		assert.Greater(t, p.WebRatio(), 0.0, "%s web ratio", name)
		assert.Greater(t, p.Zx, p.Sx, "%s: plastic modulus must exceed elastic", name)
		assert.Greater(t, p.Ix, p.Iy, "%s: strong axis must be strong", name)
	}
}

// TestNetArea checks the gross-area fallback when An is unset.
func TestNetArea(t *testing.T) {
	p, _ := section.Lookup("W12X26")
	assert.Equal(t, p.A, p.NetArea(), "unset An defaults to gross area")

	p.An = 40.0
	assert.Equal(t, 40.0, p.NetArea())
}

// TestMaterialDefaults verifies the stock A992-grade material.
func TestMaterialDefaults(t *testing.T) {
	m := section.DefaultSteel()
	require.NoError(t, m.Validate())
	assert.InDelta(t, 3515.0, m.Fy, 1e-9)
	assert.InDelta(t, 4570.0, m.Fu, 1e-9)
	assert.Greater(t, m.Fu, m.Fy)
	assert.InDelta(t, m.E/2.6, m.G, 1e-6)
}

// TestMaterialValidate rejects inconsistent strengths.
func TestMaterialValidate(t *testing.T) {
	m := section.DefaultSteel()
	m.Fu = m.Fy * 0.5
	assert.Error(t, m.Validate(), "Fu below Fy must fail")

	m = section.DefaultSteel()
	m.E = 0
	assert.Error(t, m.Validate())
}
