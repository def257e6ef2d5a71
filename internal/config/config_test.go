package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Without a .envrc file the defaults produce a working configuration
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Server.Port)
	require.NotEmpty(t, cfg.Storage.Driver)
	require.Greater(t, cfg.Session.TTL, time.Duration(0))

	require.NoError(t, cfg.Validate())
}

// Tests Validate
func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", Host: "localhost"},
			Storage:  StorageConfig{Driver: DriverPostgres},
			Database: DatabaseConfig{URL: "postgres://localhost:5432/lotline"},
			Redis:    RedisConfig{Addr: "localhost:6379"},
			Session:  SessionConfig{TTL: time.Hour},
			Logging:  LoggingConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "valid_postgres_config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name: "memory_driver_needs_no_database",
			mutate: func(c *Config) {
				c.Storage.Driver = DriverMemory
				c.Database.URL = ""
				c.Redis.Addr = ""
			},
			wantError: false,
		},
		{
			name:      "missing_port",
			mutate:    func(c *Config) { c.Server.Port = "" },
			wantError: true,
		},
		{
			name:      "unknown_storage_driver",
			mutate:    func(c *Config) { c.Storage.Driver = "cassandra" },
			wantError: true,
		},
		{
			name:      "postgres_without_database_url",
			mutate:    func(c *Config) { c.Database.URL = "" },
			wantError: true,
		},
		{
			name:      "postgres_without_redis",
			mutate:    func(c *Config) { c.Redis.Addr = "" },
			wantError: true,
		},
		{
			name:      "zero_session_ttl",
			mutate:    func(c *Config) { c.Session.TTL = 0 },
			wantError: true,
		},
		{
			name:      "negative_session_ttl",
			mutate:    func(c *Config) { c.Session.TTL = -time.Minute },
			wantError: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
