package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/api/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears keys for the test; t.Setenv restores the previous values afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestDotEnvFeedsServerAndAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PORT=9090\n"+
			"REQUEST_TIMEOUT=5s\n"+
			"QUERIDO_DIARIO_ELASTICSEARCH_HOST=http://es.internal:9200\n"+
			"FILES_ENDPOINT=data.example.org\n",
	), 0o600))

	t.Setenv("ENV_PATH", path)
	unset(t, "PORT", "REQUEST_TIMEOUT", "QUERIDO_DIARIO_ELASTICSEARCH_HOST", "FILES_ENDPOINT")

	app := &AppConfig{ENV: "local"}
	app.LoadDotEnv()

	sCfg, err := server.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", sCfg.Port)
	assert.Equal(t, 5*time.Second, sCfg.RequestTimeout)

	cfg, err := app.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://es.internal:9200"}, cfg.Search.Addresses)
	assert.Equal(t, "data.example.org", cfg.Files.Endpoint)
}

func TestDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("PORT", "7070")

	(&AppConfig{ENV: "local"}).LoadDotEnv()

	sCfg, err := server.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7070", sCfg.Port)
}
