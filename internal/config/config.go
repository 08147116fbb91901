package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bppdevops/codename/internal/names"
)

const (
	DefaultFile = "codename.yaml"
	EnvFile     = "CODENAME_CONFIG"
)

// Config is the on-disk CLI configuration.
type Config struct {
	Policy string   `yaml:"policy,omitempty"`
	Seed   *int64   `yaml:"seed,omitempty"`
	Names  []string `yaml:"names,omitempty"`
}

// ResolvePath picks the explicit path, then $CODENAME_CONFIG, then ./codename.yaml.
func ResolvePath(explicit string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFile)); v != "" {
		return v
	}
	return filepath.Join(".", DefaultFile)
}

// Load reads path. A missing file yields the zero Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := names.ParsePolicy(c.Policy); err != nil {
		return err
	}
	for _, n := range c.Names {
		if err := names.Validate(n); err != nil {
			return err
		}
	}
	return nil
}

// Manager builds a NameManager from the default pool extended with c.Names.
func (c Config) Manager() (*names.NameManager, error) {
	policy, err := names.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	pool := names.DefaultPool()
	if len(c.Names) > 0 {
		pool, err = pool.Extend(c.Names...)
		if err != nil {
			return nil, fmt.Errorf("extend pool: %w", err)
		}
	}
	opts := []names.Option{names.WithPool(pool), names.WithPolicy(policy)}
	if c.Seed != nil {
		opts = append(opts, names.WithSeed(*c.Seed))
	}
	return names.New(opts...), nil
}
