package shared

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the record service. Zero values mean
// "use the default"; ApplyDefaults fills them in.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8000" or "0.0.0.0:8000".
	Addr string `yaml:"addr" json:"addr"`

	// DBPath selects the store: empty for the in-memory store,
	// ":memory:" or a file path for SQLite.
	DBPath string `yaml:"db_path" json:"db_path"`

	// Verbose enables per-request logging.
	Verbose bool `yaml:"verbose" json:"verbose"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr: ":8000",
	}
}

// LoadServerConfig reads a YAML or JSON config file, chosen by file
// extension, and applies defaults for unset fields.
func LoadServerConfig(path string) (*ServerConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c ServerConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	c.ApplyDefaults()
	return &c, nil
}

func (c *ServerConfig) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
}

func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if !strings.Contains(c.Addr, ":") {
		return fmt.Errorf("addr %q has no port", c.Addr)
	}
	return nil
}
