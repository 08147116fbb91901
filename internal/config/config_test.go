package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bppdevops/codename/internal/names"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvFile, "")
	if got := ResolvePath(""); got != filepath.Join(".", DefaultFile) {
		t.Fatalf("default path = %q", got)
	}
	t.Setenv(EnvFile, "/etc/codename.yaml")
	if got := ResolvePath(""); got != "/etc/codename.yaml" {
		t.Fatalf("env path = %q", got)
	}
	if got := ResolvePath(" custom.yaml "); got != "custom.yaml" {
		t.Fatalf("explicit path = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	m, err := cfg.Manager()
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if got := m.CreateName(); got != "Secret Squirrel" {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestLoadExtraNames(t *testing.T) {
	path := writeFile(t, "policy: random\nseed: 3\nnames:\n  - Covert Cougar\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed != 3 {
		t.Fatalf("expected seed 3, got %v", cfg.Seed)
	}
	m, err := cfg.Manager()
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	if m.Policy() != names.PolicyRandom {
		t.Fatalf("expected random policy, got %s", m.Policy())
	}
	if !m.Pool().Contains("Covert Cougar") || m.Pool().Len() != 4 {
		t.Fatalf("unexpected pool: %v", m.Pool().Names())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		body string
		want error
	}{
		{"policy: cycle\n", names.ErrUnknownPolicy},
		{"names:\n  - Agent 007\n", names.ErrInvalidName},
	}
	for _, tt := range tests {
		if _, err := Load(writeFile(t, tt.body)); !errors.Is(err, tt.want) {
			t.Errorf("Load(%q) = %v, want %v", tt.body, err, tt.want)
		}
	}
	if _, err := Load(writeFile(t, "names: [unterminated\n")); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

func TestManagerDuplicateName(t *testing.T) {
	cfg := Config{Names: []string{"Hidden Hedgehog"}}
	if _, err := cfg.Manager(); !errors.Is(err, names.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}
