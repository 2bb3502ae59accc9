// internal/config/config_test.go
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
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 12, cfg.Catalog.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Catalog.SearchDebounce)
	assert.Equal(t, 10000.0, cfg.Catalog.PriceRangeMax)
	assert.Equal(t, 10, cfg.Admin.PageSize)
	assert.Equal(t, 3*time.Second, cfg.Notifications.DefaultDuration)
	assert.Equal(t, "5000", cfg.MockAPI.Port)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.toml")
	content := `
api_base_url = "https://shop.example.com/api"
request_timeout = "30s"
page_size = 24
search_debounce = "150ms"
log_level = "debug"
log_format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 24, cfg.Catalog.PageSize)
	assert.Equal(t, 150*time.Millisecond, cfg.Catalog.SearchDebounce)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_base_url = "https://file.example.com"`), 0o644))

	t.Setenv("API_BASE_URL", "https://env.example.com")
	t.Setenv("CATALOG_PAGE_SIZE", "6")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, 6, cfg.Catalog.PageSize)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("API_BASE_URL", "not-a-url")
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	t.Setenv("MOCKAPI_JWT_SECRET", "short")
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestMalformedTOMLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_base_url = [broken`), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
}
