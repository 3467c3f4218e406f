package config_test

import (
	"os"
	"testing"

	"shiftmatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, config.BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHIFTMATCH_STORAGE_BACKEND", "Redis")
	t.Setenv("SHIFTMATCH_REDIS_ADDR", "cache:6380")
	t.Setenv("SHIFTMATCH_LOG_LEVEL", "debug")
	t.Setenv("SHIFTMATCH_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_UnknownBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHIFTMATCH_STORAGE_BACKEND", "etcd")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name: "memory ok",
			cfg:  config.Config{Server: config.ServerConfig{Port: 8080}, Storage: config.StorageConfig{Backend: "memory"}},
		},
		{
			name:    "sqlite without path",
			cfg:     config.Config{Server: config.ServerConfig{Port: 8080}, Storage: config.StorageConfig{Backend: "sqlite"}},
			wantErr: true,
		},
		{
			name:    "redis without addr",
			cfg:     config.Config{Server: config.ServerConfig{Port: 8080}, Storage: config.StorageConfig{Backend: "redis"}},
			wantErr: true,
		},
		{
			name:    "postgres without url or host",
			cfg:     config.Config{Server: config.ServerConfig{Port: 8080}, Storage: config.StorageConfig{Backend: "postgres"}},
			wantErr: true,
		},
		{
			name: "postgres with url",
			cfg: config.Config{
				Server:  config.ServerConfig{Port: 8080},
				Storage: config.StorageConfig{Backend: "postgres"},
				DB:      config.DBConfig{URL: "postgres://localhost/shiftmatch"},
			},
		},
		{
			name:    "port out of range",
			cfg:     config.Config{Server: config.ServerConfig{Port: 70000}, Storage: config.StorageConfig{Backend: "memory"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
