package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDuration_UnmarshalJSON_String verifies that duration strings like "30s"
// are accepted.
func TestDuration_UnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))
}

// TestDuration_UnmarshalJSON_Number verifies that raw nanosecond numbers are
// accepted.
func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

// TestDuration_UnmarshalJSON_Invalid verifies that a non-duration string is
// rejected.
func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

// TestParseJSON_FullConfig verifies that all sections of the JSON file land
// in the right StructuredConfig fields and that JSONFilePath is not carried
// over from the file itself.
func TestParseJSON_FullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"version": "3.1.0", "log_level": "warn"},
		"adapter": {"base_url": "http://backend:8081", "request_timeout": "20s"},
		"storage": {"db": {"dsn": "/tmp/client.db"}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "http://backend:8081", cfg.Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

// TestParseJSON_MissingFile verifies the wrapped read error.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}
