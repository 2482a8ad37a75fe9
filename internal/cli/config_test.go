package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("loadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[convert]
default_to = "graphml"

[server]
addr = "127.0.0.1:9000"

[log]
level = "debug"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Convert.DefaultTo != "graphml" {
		t.Errorf("DefaultTo = %q, want %q", cfg.Convert.DefaultTo, "graphml")
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, "127.0.0.1:9000")
	}
	if cfg.Server.MaxBodyBytes != DefaultConfig().Server.MaxBodyBytes {
		t.Errorf("MaxBodyBytes = %d, want default %d", cfg.Server.MaxBodyBytes, DefaultConfig().Server.MaxBodyBytes)
	}
	if cfg.level() != log.DebugLevel {
		t.Errorf("level() = %v, want %v", cfg.level(), log.DebugLevel)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errs.Code
	}{
		{"syntax", "[convert\n", errs.ErrCodeInvalidInput},
		{"unknown format", "[convert]\ndefault_to = \"dot\"\n", errs.ErrCodeInvalidFormat},
		{"unknown level", "[log]\nlevel = \"loud\"\n", errs.ErrCodeInvalidInput},
		{"negative body", "[server]\nmax_body_bytes = -1\n", errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			_, err := loadConfig(path)
			if err == nil {
				t.Fatal("loadConfig() expected error")
			}
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}
