package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitrunner/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bitrunner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "home", cfg.RootHost)
	assert.Equal(t, 50, cfg.QueueCapacity)
	assert.Equal(t, 200.0, cfg.HomeReserveGB)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("  ")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, "data_dir: /tmp/br\nqueue_capacity: 8\nhome_reserve_gb: 32.5\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/br", cfg.DataDir)
	assert.Equal(t, 8, cfg.QueueCapacity)
	assert.Equal(t, 32.5, cfg.HomeReserveGB)
	assert.Equal(t, "home", cfg.RootHost, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "queue_capacity: [1\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "queue_capacity: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"data_dir":     func(c *config.Config) { c.DataDir = "" },
		"miner_script": func(c *config.Config) { c.MinerScript = " " },
		"root_host":    func(c *config.Config) { c.RootHost = "" },
		"reserve":      func(c *config.Config) { c.HomeReserveGB = -1 },
		"capacity":     func(c *config.Config) { c.QueueCapacity = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
