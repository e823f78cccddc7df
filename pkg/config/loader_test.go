package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookies/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"CFG_TEST_DEFAULT_NAME" envDefault:"cookied"`
	Port    int           `env:"CFG_TEST_DEFAULT_PORT" envDefault:"8080"`
	Debug   bool          `env:"CFG_TEST_DEFAULT_DEBUG" envDefault:"true"`
	Timeout time.Duration `env:"CFG_TEST_DEFAULT_TIMEOUT" envDefault:"5s"`
}

type envConfig struct {
	Name string `env:"CFG_TEST_ENV_NAME" envDefault:"default"`
	Port int    `env:"CFG_TEST_ENV_PORT" envDefault:"1"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED_VALUE"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED_VALUE,required"`
}

type invalidConfig struct {
	Port int `env:"CFG_TEST_INVALID_PORT"`
}

type mustConfig struct {
	Value string `env:"CFG_TEST_MUST_VALUE,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "cookied", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_ENV_NAME", "custom")
	t.Setenv("CFG_TEST_ENV_PORT", "9090")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", second.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	// The failure is cached too.
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CFG_TEST_INVALID_PORT", "not-a-number")

	var cfg invalidConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("CFG_TEST_MUST_VALUE")

	var cfg mustConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
