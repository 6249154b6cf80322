package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/analytics")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("UNRELATED_VARIABLE", "x")

	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/analytics", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "swetrix", cfg.Export.FilenamePrefix)
	assert.Equal(t, "en", cfg.Export.DefaultLocale)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
database:
  dsn: "postgres://file/db"
  max_open_conns: 5
  max_idle_conns: 2
export:
  filename_prefix: "acme"
  default_locale: "de"
`), 0o600))

	t.Setenv("EXPORT_DEFAULT_LOCALE", "fr")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "postgres://file/db", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, "acme", cfg.Export.FilenamePrefix)
	assert.Equal(t, "fr", cfg.Export.DefaultLocale, "env overrides file")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing_dsn", map[string]string{}},
		{"bad_log_level", map[string]string{"POSTGRES_DSN": "x", "LOG_LEVEL": "loud"}},
		{"bad_prefix", map[string]string{"POSTGRES_DSN": "x", "EXPORT_FILENAME_PREFIX": "a/b"}},
		{"idle_above_open", map[string]string{"POSTGRES_DSN": "x", "DB_MAX_OPEN_CONNS": "2", "DB_MAX_IDLE_CONNS": "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POSTGRES_DSN", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load("")
			assert.Error(t, err)
		})
	}
}

func TestFindConfigFile_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	assert.Equal(t, path, findConfigFile())
}
