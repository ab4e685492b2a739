package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const configHeader = `# fastfile configuration file
#
# Values can be overridden with FASTFILE_* environment variables, e.g.
#   FASTFILE_READER_STRATEGY=mmap
#   FASTFILE_LOGGING_LEVEL=DEBUG
#
# Byte sizes accept plain numbers or binary units (Ki, Mi, Gi, Ti).

`

// InitConfig writes a configuration file with default values to the
// default location and returns its path. An existing file is only
// replaced when force is set.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes a configuration file with default values to path.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	data, err := generateConfigYAML(GetDefaultConfig())
	if err != nil {
		return err
	}
	return writeConfigFile(path, data)
}

func generateConfigYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}
