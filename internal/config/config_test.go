package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"hexquantity/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
server:
  port: ":9090"
logger:
  level: DEBUG
  format: text
decoder:
  max_input_length: 128
  max_batch_size: 4
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, config.DefaultServerIdleTimeoutSeconds, cfg.Server.IdleTimeoutSeconds)
	assert.Equal(t, config.LogLevelDebug, cfg.Logger.Level)
	assert.Equal(t, config.LogFormatText, cfg.Logger.Format)
	assert.Equal(t, 128, cfg.Decoder.MaxInputLength)
	assert.Equal(t, 4, cfg.Decoder.MaxBatchSize)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[server]
port = ":7070"
read_timeout_seconds = 5

[decoder]
max_input_length = 0
max_batch_size = 10
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, config.DefaultLoggerLevel, cfg.Logger.Level)
	assert.Equal(t, 0, cfg.Decoder.MaxInputLength)
	assert.Equal(t, 10, cfg.Decoder.MaxBatchSize)
}

func TestLoadConfig_PartialDecoderSectionKeepsDefaults(t *testing.T) {
	yamlPath := writeFile(t, "config.yml", "decoder:\n  max_batch_size: 8\n")

	cfg, err := config.LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDecoderMaxInputLength, cfg.Decoder.MaxInputLength)
	assert.Equal(t, 8, cfg.Decoder.MaxBatchSize)

	tomlPath := writeFile(t, "config.toml", "[decoder]\nmax_input_length = 16\n")

	cfg, err = config.LoadConfig(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Decoder.MaxInputLength)
	assert.Equal(t, config.DefaultDecoderMaxBatchSize, cfg.Decoder.MaxBatchSize)
}

func TestLoadConfig_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeFile(t, "config.yml", "server: [unterminated")
	_, err := config.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := writeFile(t, "config.yml", "logger:\n  level: verbose\n")
	_, err := config.LoadConfig(path)
	assert.ErrorContains(t, err, "logger.level")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "Defaults", mutate: func(*config.Config) {}},
		{name: "Empty port", mutate: func(c *config.Config) { c.Server.Port = "" }, wantErr: true},
		{name: "Colon port", mutate: func(c *config.Config) { c.Server.Port = ":" }, wantErr: true},
		{name: "Bad format", mutate: func(c *config.Config) { c.Logger.Format = "xml" }, wantErr: true},
		{name: "Negative timeout", mutate: func(c *config.Config) { c.Server.WriteTimeoutSeconds = -1 }, wantErr: true},
		{name: "Negative input limit", mutate: func(c *config.Config) { c.Decoder.MaxInputLength = -1 }, wantErr: true},
		{name: "Negative batch limit", mutate: func(c *config.Config) { c.Decoder.MaxBatchSize = -1 }, wantErr: true},
		{name: "Unlimited decoder", mutate: func(c *config.Config) { c.Decoder = config.DecoderConfig{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
