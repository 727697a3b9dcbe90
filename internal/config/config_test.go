package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("POLICY_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, DefaultPolicy(), cfg.Policy)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("POLICY_FILE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, ,https://admin.example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadPolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `
no_show_grace: 10m
cancellation_lead_time: 3h
max_bookings_per_week: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("POLICY_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.Policy.NoShowGrace)
	assert.Equal(t, 3*time.Hour, cfg.Policy.CancellationLeadTime)
	assert.Equal(t, 3, cfg.Policy.MaxBookingsPerWeek)
	assert.Equal(t, 1, cfg.Policy.MaxBookingsPerDay)
	assert.Equal(t, 15*time.Minute, cfg.Policy.SlotStep)
}

func TestLoadPolicyFileInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("no_show_grace: soon\n"), 0o644))

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("POLICY_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "mongo" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.StorageDriver = StoragePostgres; c.DBUrl = "" }, wantErr: true},
		{name: "zero slot step", mutate: func(c *Config) { c.Policy.SlotStep = 0 }, wantErr: true},
		{name: "zero weekly limit", mutate: func(c *Config) { c.Policy.MaxBookingsPerWeek = 0 }, wantErr: true},
		{name: "negative grace", mutate: func(c *Config) { c.Policy.NoShowGrace = -time.Minute }, wantErr: true},
		{name: "negative rate", mutate: func(c *Config) { c.RateLimitRPS = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{StorageDriver: StorageMemory, Policy: DefaultPolicy()}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
