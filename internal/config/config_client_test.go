package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestClientConfig_ApplyDefaults verifies that empty fields receive the
// documented fallbacks and set fields are preserved.
func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)

	custom := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://api.example.com", RequestTimeout: time.Minute},
		Storage: ClientStorage{DB: ClientDB{DSN: "custom.db"}},
	}
	custom.applyDefaults()

	assert.Equal(t, "http://api.example.com", custom.Adapter.BaseURL)
	assert.Equal(t, time.Minute, custom.Adapter.RequestTimeout)
	assert.Equal(t, "custom.db", custom.Storage.DB.DSN)
}

// TestClientConfig_Validate covers the invariants checked at startup.
func TestClientConfig_Validate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8081", RequestTimeout: 30 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "sar-drone.db"}},
	}
	assert.NoError(t, valid.validate())

	noDSN := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8081", RequestTimeout: 30 * time.Second},
	}
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noURL := &ClientConfig{
		Adapter: ClientAdapter{RequestTimeout: 30 * time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "sar-drone.db"}},
	}
	assert.ErrorIs(t, noURL.validate(), ErrInvalidAdapterConfigs)

	noTimeout := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8081"},
		Storage: ClientStorage{DB: ClientDB{DSN: "sar-drone.db"}},
	}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}
