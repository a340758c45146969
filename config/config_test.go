package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_PORT", "API_URL", "API_PORT", "WEB_PORT", "CACHE_TTL", "HTTP_TIMEOUT", "KAFKA_BROKER", "SITE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "http://localhost:8001", cfg.Web.APIURL)
	assert.Equal(t, "8001", cfg.API.Port)
	assert.Equal(t, "8080", cfg.Web.Port)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Web.HTTPTimeout)
	assert.Empty(t, cfg.Kafka.Broker)
	assert.Equal(t, "catalog", cfg.Kafka.Topic)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_URL", "http://api.example.com/")
	t.Setenv("SITE_URL", "https://tastywheels.example/")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com", cfg.Web.APIURL)
	assert.Equal(t, "https://tastywheels.example", cfg.API.SiteURL)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "db port", key: "DB_PORT", value: "abc"},
		{name: "cache ttl", key: "CACHE_TTL", value: "soon"},
		{name: "http timeout", key: "HTTP_TIMEOUT", value: "-"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.key, testCase.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnString(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "foodtruck"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=foodtruck sslmode=disable", cfg.ConnString())
}
