package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadCoreConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{
		"database": {
			"host": "localhost",
			"database": "vigilance"
		}
	}`)

	cfg, err := LoadCoreConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoadCoreConfigFullFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"listen_addr": ":9000",
		"api_key": "file-key",
		"database": {
			"host": "db.internal",
			"port": 5432,
			"database": "vigilance",
			"username": "core",
			"password": "file-password"
		},
		"nats": {"url": "nats://broker:4222", "subject": "events.anomaly.created"},
		"notifier_url": "http://notifier:8081",
		"detector_url": "http://detector:8082",
		"evaluator": {"workers": 8, "queue_size": 512, "task_timeout": "10s"},
		"cors": {"allowed_origins": ["https://dashboard.example.com"]}
	}`)

	cfg, err := LoadCoreConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "file-key", cfg.APIKey)
	require.NotNil(t, cfg.NATS)
	assert.Equal(t, "nats://broker:4222", cfg.NATS.URL)
	assert.Equal(t, 8, cfg.Evaluator.Workers)
	assert.Equal(t, []string{"https://dashboard.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadCoreConfigEnvOverridesSecrets(t *testing.T) {
	t.Setenv("API_KEY", "env-key")
	t.Setenv("DATABASE_PASSWORD", "env-password")

	path := writeConfigFile(t, `{
		"api_key": "file-key",
		"database": {
			"host": "localhost",
			"database": "vigilance",
			"password": "file-password"
		}
	}`)

	cfg, err := LoadCoreConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "env-password", cfg.Database.Password)
}

func TestLoadCoreConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing database host",
			content: `{"database": {"database": "vigilance"}}`,
			wantErr: errMissingDatabaseHost,
		},
		{
			name:    "missing database name",
			content: `{"database": {"host": "localhost"}}`,
			wantErr: errMissingDatabaseName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCoreConfig(writeConfigFile(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadCoreConfigMissingFile(t *testing.T) {
	_, err := LoadCoreConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadCoreConfigMalformedJSON(t *testing.T) {
	_, err := LoadCoreConfig(writeConfigFile(t, "{not json"))
	assert.Error(t, err)
}
