package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MAPS_API_KEY", "GIGS_CITY", "GIGS_ENDPOINT_BASE", "GIGS_CITY_TIMEZONE", "LISTEN_PORT", "BIND_ADDR", "REDIS_DB_ADDRESS"} {
		unsetenv(t, key)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.ListenPort)
	assert.Equal(t, "https://api.lml.live", cfg.GigsEndpointBase)
	assert.Equal(t, "melbourne", cfg.City)
	assert.Equal(t, "Australia/Melbourne", cfg.Timezone)
	assert.Equal(t, "redis:6379", cfg.RedisAddress)
	assert.Empty(t, cfg.MapsAPIKey)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func unsetenv(t *testing.T, key string) {
	t.Helper()
	if prev, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, prev) })
	}
	os.Unsetenv(key)
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LML_TEST_ONLY_KEY=abc\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LML_TEST_ONLY_KEY") })
	t.Setenv("MAPS_API_KEY", "maps-key")
	t.Setenv("LISTEN_PORT", "9090")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "abc", os.Getenv("LML_TEST_ONLY_KEY"))
	assert.Equal(t, "maps-key", cfg.MapsAPIKey)
	assert.Equal(t, uint16(9090), cfg.ListenPort)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{Timezone: "Australia/Melbourne"}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Australia/Melbourne", loc.String())

	cfg.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/lml")
	assert.Equal(t, "/srv/lml/resources/gigs_response.json", GetResourcePath(GIGS_RESPONSE_RESOURCE))
}
