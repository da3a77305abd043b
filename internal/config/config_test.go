package config_test

import (
	"factcrawler/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 7, cfg.Crawler.MaxPages)
	require.Equal(t, 10, cfg.Crawler.MaxSites)
	require.Equal(t, 10*time.Second, cfg.Crawler.FetchTimeout)
	require.EqualValues(t, 2097152, cfg.Crawler.MaxBytes)
	require.Equal(t, 10, cfg.PhoneWeights.TelLink)
	require.Equal(t, 2, cfg.PhoneWeights.Fallback)
	require.Equal(t, 10, cfg.PhoneWeights.MaxPhones)
	require.Empty(t, cfg.LLM.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
crawler:
  maxPages: 3
  fetchTimeout: 2s
phoneWeights:
  telLink: 20
redis:
  addr: localhost:6379
  ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Crawler.MaxPages)
	require.Equal(t, 2*time.Second, cfg.Crawler.FetchTimeout)
	require.Equal(t, 20, cfg.PhoneWeights.TelLink)
	require.Equal(t, 9, cfg.PhoneWeights.LabelStrong)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, time.Hour, cfg.Redis.TTL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, "could not read config")
}
