package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for in the working directory and in
// the user config directory (e.g. ~/.config/migforge/).
const FileName = "migforge.yaml"

// Load overlays cfg with values from a config file. With an explicit path
// the file must exist and parse; with path == "" the standard locations are
// searched and absence is not an error.
func Load(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("migforge")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "migforge"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// WriteDefault writes a YAML rendering of the default configuration to path,
// refusing to replace an existing file. Used by the init command.
func WriteDefault(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	def := DefaultConfig()
	out, err := yaml.Marshal(&def)
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}

	header := []byte("# migforge configuration. All keys optional; these are the defaults.\n")
	return os.WriteFile(path, append(header, out...), 0o644)
}
