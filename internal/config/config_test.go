package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int64("seed", 0, "")
	fs.String("theme", "", "")
	fs.Int("bonus", 6, "")
	fs.String("log-level", "info", "")
	fs.String("ssh", ":23234", "")
	fs.Duration("idle-timeout", 30*time.Minute, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 0 || cfg.Theme != "" || cfg.ThemesFile != "" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.BonusSeconds != 6 {
		t.Errorf("Expected 6 bonus seconds, got %d", cfg.BonusSeconds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.SSH.Address != ":23234" {
		t.Errorf("Expected default ssh address, got %q", cfg.SSH.Address)
	}
	if cfg.SSH.IdleTimeout != 30*time.Minute {
		t.Errorf("Expected 30m idle timeout, got %v", cfg.SSH.IdleTimeout)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `seed: 5
theme: Animals
bonus_seconds: 4
ssh:
  address: ":2222"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	// Environment beats the file.
	t.Setenv("CONCENTRATION_THEME", "Fruits")
	t.Setenv("CONCENTRATION_SSH__IDLE_TIMEOUT", "5m")

	// Changed flags beat the environment.
	fs := newFlagSet()
	if err := fs.Parse([]string{"--bonus", "9"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, fs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 5 {
		t.Errorf("Expected seed 5 from file, got %d", cfg.Seed)
	}
	if cfg.Theme != "Fruits" {
		t.Errorf("Expected theme Fruits from env, got %q", cfg.Theme)
	}
	if cfg.BonusSeconds != 9 {
		t.Errorf("Expected bonus 9 from flag, got %d", cfg.BonusSeconds)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("Unchanged flag should not override file, got %q", cfg.SSH.Address)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("Expected 5m idle timeout from env, got %v", cfg.SSH.IdleTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative bonus", []string{"--bonus=-1"}},
		{"unknown log level", []string{"--log-level=loud"}},
		{"empty ssh address", []string{"--ssh="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlagSet()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}
			if _, err := Load("", fs); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestBonusTimeLimit(t *testing.T) {
	if got := (Config{BonusSeconds: 6}).BonusTimeLimit(); got != 6*time.Second {
		t.Errorf("Expected 6s, got %v", got)
	}
	if got := (Config{}).BonusTimeLimit(); got >= 0 {
		t.Errorf("Zero seconds should disable the bonus, got %v", got)
	}
}
