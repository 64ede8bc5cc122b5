package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiperezh/gosteel/internal/member"
	"github.com/jiperezh/gosteel/internal/report"
	"github.com/jiperezh/gosteel/internal/section"
)

// TestWritePDF renders a full report and checks a plausible PDF lands
// on disk.
func TestWritePDF(t *testing.T) {
	p, ok := section.Lookup("W18X50")
	require.True(t, ok)
	m := section.DefaultSteel()
	cfg := member.Config{Lx: 300, Ly: 300, Lb: 300}
	d := member.Demands{P: -30000, Mx: 1e6}

	rep, err := member.Evaluate(p, m, cfg, d)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, report.WritePDF(rep, p, m, d, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}
