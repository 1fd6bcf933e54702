package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  server:
    cors: "https://a.example, ,https://b.example"
redis:
  url: redis://localhost:6379/0
  connect_retry:
    attempts: 3
    backoff_ms: 250
authenticator:
  totp:
    issuer: Authenticator
    period: 30
    skew: 1
instrument:
  trace_sample_ratio: 0.5
  enabled: true
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, cfg.Close()) })

	assert.Equal(t, "redis://localhost:6379/0", cfg.GetString("redis.url"))
	assert.Equal(t, 3, cfg.GetInt("redis.connect_retry.attempts"))
	assert.Equal(t, 250*time.Millisecond, cfg.GetMillisecond("redis.connect_retry.backoff_ms"))
	assert.Equal(t, uint(30), cfg.GetUint("authenticator.totp.period"))
	assert.Equal(t, 30*time.Second, cfg.GetSecond("authenticator.totp.period"))
	assert.InDelta(t, 0.5, cfg.GetFloat64("instrument.trace_sample_ratio"), 0.0001)
	assert.True(t, cfg.GetBool("instrument.enabled"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.GetArray("app.server.cors"))
	assert.Empty(t, cfg.GetArray("missing.key"))
}

func TestNewViperFromBytesRequiresType(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sample))
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("AUTHENTICATOR_AUTHENTICATOR_TOTP_ISSUER", "FromEnv")

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.GetString("authenticator.totp.issuer"))
}

func TestNewViperFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)

	assert.Equal(t, "Authenticator", cfg.GetString("authenticator.totp.issuer"))
}

func TestNewViperMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
