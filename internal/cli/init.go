package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bppdevops/codename/internal/config"
	"github.com/bppdevops/codename/internal/names"
)

// InitConfigFile writes a starter config to path. An existing file is left
// alone and os.ErrExist is returned.
func InitConfigFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("config file path required")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s: %w", path, os.ErrExist)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := config.Config{Policy: names.PolicyFixed.String()}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// CheckName returns an error unless name belongs to the manager's pool.
func CheckName(m *names.NameManager, name string) error {
	if err := names.Validate(name); err != nil {
		return err
	}
	if !m.Pool().Contains(name) {
		return fmt.Errorf("%q is not a known code name", name)
	}
	return nil
}
