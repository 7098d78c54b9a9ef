package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genolab/pcrmix/internal/pcr"
	"github.com/genolab/pcrmix/internal/report"
)

func TestCalculateText(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "calculate", "8", "--excess", "12.5")
	require.NoError(t, err)

	assert.Contains(t, out, "Samples: 8 | Excess: 12.5% | Mix: 2X")
	assert.Contains(t, out, "Preparing for: 9 samples")
	assert.Contains(t, out, "TOTAL master mix = 99.0 µL")
}

func TestCalculateAlias(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "calc", "-n", "8", "-e", "12.5")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL master mix = 99.0 µL")
}

func TestCalculateZeroExcessFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// -e 0 must override the builtin 10 % default
	out, err := execute(t, "calculate", "10", "-e", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Samples: 10 | Excess: 0.0% | Mix: 2X")
	assert.Contains(t, out, "Preparing for: 10 samples")
	assert.Contains(t, out, "TOTAL master mix = 110.0 µL")
}

func TestCalculateJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "calculate", "-n", "10", "-m", "5X", "-o", "json")
	require.NoError(t, err)

	var res report.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, 10, res.Samples)
	assert.Equal(t, 10.0, res.ExcessPercent)
	assert.Equal(t, "5X", res.Mix)
	assert.Equal(t, 2.5, res.Recipe.Mix)
	assert.Equal(t, 11, res.Totals.EffectiveSamples)
	assert.Equal(t, 82.5, res.Totals.Total)
}

func TestCalculateConfigPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".pcrmix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  excess: 0\n  mix: 5X\n"), 0644))

	// config defaults apply when no flag is passed
	out, err := execute(t, "calculate", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Samples: 4 | Excess: 0.0% | Mix: 5X")
	assert.Contains(t, out, "Preparing for: 4 samples")

	// flags beat the config file
	out, err = execute(t, "calculate", "4", "-e", "50", "-m", "2X")
	require.NoError(t, err)
	assert.Contains(t, out, "Samples: 4 | Excess: 50.0% | Mix: 2X")
	assert.Contains(t, out, "Preparing for: 6 samples")
}

func TestCalculateConfigFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("doses:\n  ddw: 5\n"), 0644))

	out, err := execute(t, "--config", path, "calculate", "1", "-e", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "= 5.0 µL")
	assert.Contains(t, out, "Per-sample total: 12.0 µL")
}

func TestCalculateMatchingCounts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// positional and flag agreeing is allowed
	out, err := execute(t, "calculate", "8", "-n", "8", "-e", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Samples: 8 |")
}

func TestCalculateInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no samples", []string{"calculate"}},
		{"zero samples", []string{"calculate", "0"}},
		{"negative samples", []string{"calculate", "--", "-3"}},
		{"non-numeric samples", []string{"calculate", "abc"}},
		{"counts disagreeing", []string{"calculate", "8", "-n", "9"}},
		{"two positionals", []string{"calculate", "1", "2"}},
		{"negative excess", []string{"calculate", "5", "-e", "-1"}},
		{"excess overflowing the count", []string{"calculate", "5", "-e", "1e21"}},
		{"bad mix", []string{"calculate", "5", "-m", "3X"}},
		{"empty mix", []string{"calculate", "5", "--mix", ""}},
		{"bad output", []string{"calculate", "5", "-o", "xml"}},
		{"empty output", []string{"calculate", "5", "--output", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())

			_, err := execute(t, tc.args...)
			require.Error(t, err)

			var invalid *pcr.ErrInvalidInput
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, 2, exitCode(err))
		})
	}
}

func TestCalculateBadFlagValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// pflag rejects the value before RunE; still the invalid-input code
	_, err := execute(t, "calculate", "-n", "abc")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}
