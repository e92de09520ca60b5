package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("SWEEP_WORKERS", "2")
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-l", "error",
		"-k", "flag-secret",
		"-s=true",
		"-i", "5m",
		"-w", "8",
	}
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, "flag-secret", cfg.JWTSecret)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 8, cfg.SweepWorkers)
}

func TestNewFromEnv(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLvl)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, 2, cfg.SweepWorkers)
}

func TestSweepWorkersAtLeastOne(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	t.Setenv("SWEEP_WORKERS", "0")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.SweepWorkers)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		expectedErr string
	}{
		{
			name:        "Malformed sweep interval",
			env:         map[string]string{"SWEEP_INTERVAL": "often"},
			expectedErr: "can't parse environment",
		},
		{
			name:        "Malformed worker count",
			env:         map[string]string{"SWEEP_WORKERS": "many"},
			expectedErr: "can't parse environment",
		},
		{
			name:        "Default secret without sample data",
			env:         map[string]string{"JWT_SECRET": DefaultJWTSecret, "SEED_DATA": "false"},
			expectedErr: ErrDefaultSecret.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlagsAndArgs()
			setEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := New()

			assert.ErrorContains(t, err, tt.expectedErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestDefaultSecretWithSampleData(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	t.Setenv("JWT_SECRET", DefaultJWTSecret)
	t.Setenv("SEED_DATA", "true")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
}
