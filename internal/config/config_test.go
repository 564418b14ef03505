package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "{stem}.{timestamp}.json", cfg.OutputNameFormat)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.True(t, *cfg.PrettyOutput)
	assert.True(t, *cfg.ContinueOnError)

	assert.Equal(t, ReferenceRandom, cfg.Policy.ReferencePolicy)
	assert.Equal(t, 0.05, *cfg.Policy.PaymentTolerance)
	assert.Equal(t, 0.025, *cfg.Policy.BalanceTolerance)
	assert.Equal(t, "Equifax", cfg.Policy.RevolvingBureau)
	assert.Empty(t, cfg.Policy.ScoreBureau)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input_dir: /data/reports
log_level: debug
pretty_output: false
max_concurrency: 8
policy:
  reference_policy: stable
  payment_tolerance: 0.1
  revolving_bureau: TransUnion
  score_bureau: Experian
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/reports", cfg.InputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, *cfg.PrettyOutput)
	assert.Equal(t, 8, cfg.MaxConcurrency)

	assert.Equal(t, ReferenceStable, cfg.Policy.ReferencePolicy)
	assert.Equal(t, 0.1, *cfg.Policy.PaymentTolerance)
	assert.Equal(t, 0.025, *cfg.Policy.BalanceTolerance)
	assert.Equal(t, "TransUnion", cfg.Policy.RevolvingBureau)
	assert.Equal(t, "Experian", cfg.Policy.ScoreBureau)
}

func TestLoadKeepsExplicitZeroTolerances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
policy:
  payment_tolerance: 0
  balance_tolerance: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Zero means exact-amount matching, not "use the default".
	assert.Equal(t, 0.0, *cfg.Policy.PaymentTolerance)
	assert.Equal(t, 0.0, *cfg.Policy.BalanceTolerance)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad reference policy", "policy:\n  reference_policy: sequential\n"},
		{"bad tolerance", "policy:\n  payment_tolerance: 2\n"},
		{"bad log level", "log_level: trace\n"},
		{"bad concurrency", "max_concurrency: -2\n"},
		{"malformed yaml", "input_dir: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
