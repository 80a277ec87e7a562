package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	cfg := fromViper(newTestViper())

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, BackendMemory, cfg.Session.Store)
	assert.Equal(t, 800*time.Millisecond, cfg.Session.LoginDelay)
	assert.Equal(t, BackendMemory, cfg.Activity.Store)
	assert.Equal(t, 24*time.Hour, cfg.Exports.SignedURLTTL)
	require.Len(t, cfg.Media.AllowedMIMEs, 5)
	assert.Contains(t, cfg.Media.AllowedMIMEs, "video/mp4")
	assert.False(t, cfg.Tracing.Enabled)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SESSION_STORE", "REDIS")
	t.Setenv("ACTIVITY_STORE", "postgres")
	t.Setenv("LOGIN_DELAY", "0s")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("OTEL_SAMPLER_RATIO", "4")

	cfg := fromViper(newTestViper())

	assert.Equal(t, BackendRedis, cfg.Session.Store)
	assert.Equal(t, BackendPostgres, cfg.Activity.Store)
	assert.Equal(t, time.Duration(0), cfg.Session.LoginDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestUnknownBackendFallsBack(t *testing.T) {
	assert.Equal(t, BackendMemory, backend("etcd", BackendMemory, BackendRedis))
	assert.Equal(t, BackendRedis, backend(" Redis ", BackendMemory, BackendRedis))
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("nonsense", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Minute))
}
