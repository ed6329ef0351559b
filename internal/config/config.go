// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// partialConfig mirrors Config with pointer sections so absent sections keep their defaults.
type partialConfig struct {
	Server  *ServerConfig  `yaml:"server" toml:"server"`
	Logger  *LoggerConfig  `yaml:"logger" toml:"logger"`
	Decoder *partialDecoderConfig `yaml:"decoder" toml:"decoder"`
}

// partialDecoderConfig uses pointers because zero is a meaningful limit ("unlimited").
type partialDecoderConfig struct {
	MaxInputLength *int `yaml:"max_input_length" toml:"max_input_length"`
	MaxBatchSize   *int `yaml:"max_batch_size" toml:"max_batch_size"`
}

// LoadConfig loads the configuration from a YAML or TOML file, chosen by extension.
// A missing default file is not an error; defaults are returned instead.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && (filePath == "" || filePath == DefaultConfigFilePath) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	var pCfg partialConfig
	if err := unmarshal(loadPath, fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Server != nil {
		mergeServer(&cfg.Server, pCfg.Server)
	}
	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = LogLevel(strings.ToLower(string(pCfg.Logger.Level)))
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = LogFormat(strings.ToLower(string(pCfg.Logger.Format)))
		}
	}
	if pCfg.Decoder != nil {
		if pCfg.Decoder.MaxInputLength != nil {
			cfg.Decoder.MaxInputLength = *pCfg.Decoder.MaxInputLength
		}
		if pCfg.Decoder.MaxBatchSize != nil {
			cfg.Decoder.MaxBatchSize = *pCfg.Decoder.MaxBatchSize
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", loadPath, err)
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, out *partialConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), out)
		return err
	default:
		return yaml.Unmarshal(data, out)
	}
}

func mergeServer(dst, src *ServerConfig) {
	if src.Port != "" {
		dst.Port = src.Port
	}
	if src.ReadTimeoutSeconds != 0 {
		dst.ReadTimeoutSeconds = src.ReadTimeoutSeconds
	}
	if src.WriteTimeoutSeconds != 0 {
		dst.WriteTimeoutSeconds = src.WriteTimeoutSeconds
	}
	if src.IdleTimeoutSeconds != 0 {
		dst.IdleTimeoutSeconds = src.IdleTimeoutSeconds
	}
	if src.ReadHeaderTimeoutSeconds != 0 {
		dst.ReadHeaderTimeoutSeconds = src.ReadHeaderTimeoutSeconds
	}
}
