package l10ncheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ConfigFileName is looked up in the working directory to provide defaults
// for CLI flags. Explicit flags always win.
const ConfigFileName = ".l10ncheck.yaml"

// Config carries optional flag defaults. No environment variables are
// consulted.
type Config struct {
	Ref        string `yaml:"ref"`
	Exceptions string `yaml:"exceptions"`
	Ellipsis   *bool  `yaml:"ellipsis"`
}

// LoadConfig reads a config file. A missing file yields a zero Config;
// malformed YAML is an error.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %v", path, err)
	}
	return cfg, nil
}

// EllipsisEnabled reports whether the report ellipsis check is on; it
// defaults to on when the config does not say otherwise.
func (c Config) EllipsisEnabled() bool {
	return c.Ellipsis == nil || *c.Ellipsis
}
