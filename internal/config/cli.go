package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const cliEnvPrefix = "CAREERCRAFT_"

// CLIConfig is the terminal client's configuration, kept in a YAML file.
type CLIConfig struct {
	BackendURL string        `yaml:"backend_url" koanf:"backend_url"`
	Timeout    time.Duration `yaml:"timeout" koanf:"timeout"`
	Theme      model.Theme   `yaml:"theme" koanf:"theme"`
	OutputDir  string        `yaml:"output_dir" koanf:"output_dir"`
}

func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		BackendURL: defaultBackendURL,
		Theme:      model.DefaultTheme,
		OutputDir:  ".",
	}
}

// DefaultCLIConfigPath returns ~/.careercraft.yml, or the relative name when
// the home directory cannot be resolved.
func DefaultCLIConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".careercraft.yml"
	}
	return filepath.Join(home, ".careercraft.yml")
}

// LoadCLIConfig reads the YAML file at path, then overlays CAREERCRAFT_*
// environment variables. A missing file yields the defaults.
func LoadCLIConfig(path string) (*CLIConfig, error) {
	k := koanf.New(".")
	cfg := DefaultCLIConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(cliEnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, cliEnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return cfg, nil
}

func (c *CLIConfig) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func (c *CLIConfig) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend_url is required")
	}
	if _, err := model.ParseTheme(string(c.Theme)); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
