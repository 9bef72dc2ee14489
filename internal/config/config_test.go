package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validConfigPath     = "testdata/valid_config.yaml"
	expansionConfigPath = "testdata/expansion_config.yaml"
)

func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "courtside", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5, cfg.Prediction.MinGames)
	assert.Equal(t, "2026", cfg.DataSource.DefaultSeason)
}

func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load("testdata/nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	os.Setenv("COURTSIDE_APP_NAME", "courtside-test")
	defer os.Unsetenv("COURTSIDE_APP_NAME")

	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "courtside-test", cfg.App.Name)
}

func TestLoadConfigExpandsEnvPlaceholders(t *testing.T) {
	os.Setenv("COURTSIDE_TEST_DB_PASSWORD", "expanded-secret")
	defer os.Unsetenv("COURTSIDE_TEST_DB_PASSWORD")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Database.Password)
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults("testdata/nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "courtside", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Prediction.MinGames)
	assert.Equal(t, 8081, cfg.Health.Port)
}

func TestValidateSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	assert.NoError(t, Validate(cfg))
}

func TestValidateInvalidEnvironment(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	cfg.App.Environment = "invalid"
	err = Validate(cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Environment"))
}

func TestValidateInvalidLogLevel(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
}

func TestValidateProductionRequiresSSL(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	cfg.App.Environment = "production"
	cfg.Database.SSLMode = "disable"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SSL")
}

func TestValidateIdleConnectionsBound(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	cfg.Database.MaxIdleConnections = 50
	cfg.Database.MaxConnections = 10
	assert.Error(t, Validate(cfg))
}

func TestValidatePortCollision(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	cfg.Health.Port = cfg.Server.Port
	assert.Error(t, Validate(cfg))
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)

	dsn := cfg.GetDatabaseDSN()
	assert.True(t, strings.HasPrefix(dsn, "postgres://"))
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestListenAddr(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.ListenAddr())
}
