package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TKDRAFT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8731/generate_code", cfg.Generator.Endpoint)
	require.Equal(t, 10, cfg.Generator.TimeoutSeconds)
	require.Equal(t, "generated_gui.py", cfg.Export.Filename)
	require.Equal(t, "127.0.0.1:8731", cfg.Server.Addr)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[generator]
endpoint = "http://gen.local/generate_code"
timeout_seconds = 3

[export]
filename = "out.py"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("TKDRAFT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://gen.local/generate_code", cfg.Generator.Endpoint)
	require.Equal(t, 3, cfg.Generator.TimeoutSeconds)
	require.Equal(t, "out.py", cfg.Export.Filename)
	// untouched key keeps its default
	require.Equal(t, "127.0.0.1:8731", cfg.Server.Addr)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TKDRAFT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("TKDRAFT_EXPORT_FILENAME", "custom.py")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "custom.py", cfg.Export.Filename)
}
