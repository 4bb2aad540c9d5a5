package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfigZeroPacing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecourts.json5")
	err := os.WriteFile(path, []byte(`{ portal: { requests_per_second: 0 } }`), 0600)
	require.NoError(t, err)

	cfg, err := readConfig(path)
	require.NoError(t, err)
	require.Zero(t, cfg.Portal.RequestsPerSecond)
	require.Equal(t, defaultConfig().Portal.BaseUrl, cfg.Portal.BaseUrl)
	require.Equal(t, 15, cfg.Portal.StatusTimeoutSeconds)
}

func TestFlagOverrides(t *testing.T) {
	cfg := defaultConfig()
	cfg.OutputDir = "results"

	f := flags{dumpDir: "dumps", verbose: true}
	cfg, err := applyFlags(cfg, f)
	require.NoError(t, err)
	require.Equal(t, "results", cfg.OutputDir)
	require.Equal(t, "dumps", cfg.Portal.DumpDir)
	require.Equal(t, "debug", cfg.Telemetry.Level)
	require.Equal(t, defaultConfig().Portal.BaseUrl, cfg.Portal.BaseUrl)
}
