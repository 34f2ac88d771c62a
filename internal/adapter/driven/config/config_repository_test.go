package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

func newRepo(env map[string]string) *ConfigRepositoryImpl {
	return &ConfigRepositoryImpl{lookupEnv: func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := newRepo(nil).Load("")
	require.NoError(t, err)

	assert.Equal(t, types.DefaultConfig(), *cfg)
	assert.Equal(t, "3001", cfg.Port)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "dashboard.toml", "port = \"8080\"\nenvironment = \"production\"\ncors_origins = [\"https://a.example\", \"https://b.example\"]\n"},
		{"yaml", "dashboard.yaml", "port: \"8080\"\nenvironment: production\ncors_origins:\n  - https://a.example\n  - https://b.example\n"},
		{"yml", "dashboard.yml", "port: \"8080\"\nenvironment: production\ncors_origins: [https://a.example, https://b.example]\n"},
		{"json", "dashboard.json", `{"port":"8080","environment":"production","cors_origins":["https://a.example","https://b.example"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg, err := newRepo(nil).LoadConfigFile(path)
			require.NoError(t, err)

			assert.Equal(t, "8080", cfg.Port)
			assert.True(t, cfg.IsProduction())
			assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
			// Campos ausentes mantêm o padrão
			assert.Equal(t, "info", cfg.LogLevel)
			assert.Equal(t, "http://localhost:3001", cfg.APIURL)
			assert.Equal(t, 10, cfg.RequestTimeout)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := newRepo(nil)

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "dashboard.ini", "port=1"))
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)

	_, err = repo.LoadConfigFile(writeFile(t, "dashboard.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")

	_, err = repo.LoadConfigFile(writeFile(t, "dashboard.yaml", "port: [unterminated"))
	assert.ErrorContains(t, err, "error parsing YAML file")

	_, err = repo.LoadConfigFile(writeFile(t, "dashboard.toml", "port = "))
	assert.ErrorContains(t, err, "error parsing TOML file")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "dashboard.yaml", "port: \"8080\"\nlog_level: warn\nstatic_dir: /srv/www\n")

	repo := newRepo(map[string]string{
		EnvPort:        "9090",
		EnvAppEnv:      "production",
		EnvCORSOrigins: " https://a.example , ,https://b.example",
		EnvAPIURL:      "http://api.internal:3001",
		EnvTimeout:     "3",
	})

	cfg, err := repo.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/srv/www", cfg.StaticDir)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "http://api.internal:3001", cfg.APIURL)
	assert.Equal(t, 3, cfg.RequestTimeout)
}

func TestLoadRejectsBadEnvironment(t *testing.T) {
	_, err := newRepo(map[string]string{EnvTimeout: "soon"}).Load("")
	assert.ErrorContains(t, err, EnvTimeout)

}

func TestLoadLeavesPortCheckToServe(t *testing.T) {
	cfg, err := newRepo(map[string]string{EnvPort: "http"}).Load("")
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Port)
	assert.Error(t, cfg.ValidatePort())
}

func TestLoadPropagatesFileErrors(t *testing.T) {
	_, err := newRepo(nil).Load(writeFile(t, "dashboard.txt", "x"))
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(" , "))
	assert.Equal(t, []string{"*"}, SplitList("*"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,b,"))
}
