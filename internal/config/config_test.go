package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

func newFlagBinder(defaults Config) *fakeBinder {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeBinder{fs: fs}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}

	if cfg.Echo.DelaySamples != 10000 {
		t.Errorf("Echo.DelaySamples = %d; want 10000", cfg.Echo.DelaySamples)
	}

	if cfg.Echo.Intensity != 0.8 {
		t.Errorf("Echo.Intensity = %v; want 0.8", cfg.Echo.Intensity)
	}

	if cfg.Gain.Up != 1.2 {
		t.Errorf("Gain.Up = %v; want 1.2", cfg.Gain.Up)
	}

	if cfg.Gain.Down != 0.8 {
		t.Errorf("Gain.Down = %v; want 0.8", cfg.Gain.Down)
	}
}

func TestLoadWithDefaultsOnly(t *testing.T) {
	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Fatalf("Load with defaults only = %+v; want %+v", cfg, DefaultConfig())
	}
}

func TestLoadFromFlags(t *testing.T) {
	binder := newFlagBinder(DefaultConfig())
	if err := binder.fs.Parse([]string{"--echo-delay-samples=500", "--gain-up=2.0"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{Cmd: binder, Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Echo.DelaySamples != 500 {
		t.Errorf("Echo.DelaySamples = %d; want 500 from flag", cfg.Echo.DelaySamples)
	}

	if cfg.Gain.Up != 2.0 {
		t.Errorf("Gain.Up = %v; want 2.0 from flag", cfg.Gain.Up)
	}

	// untouched keys keep their defaults
	if cfg.Echo.Intensity != 0.8 {
		t.Errorf("Echo.Intensity = %v; want default 0.8", cfg.Echo.Intensity)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wavefx.yaml")
	content := "log_level: debug\necho:\n  delay_samples: 123\n  intensity: 0.5\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{ConfigFile: path, Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q from file", cfg.LogLevel, "debug")
	}

	if cfg.Echo.DelaySamples != 123 || cfg.Echo.Intensity != 0.5 {
		t.Errorf("Echo = %+v; want file values", cfg.Echo)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WAVEFX_GAIN_DOWN", "0.5")

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Gain.Down != 0.5 {
		t.Errorf("Gain.Down = %v; want 0.5 from env", cfg.Gain.Down)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		Defaults:   DefaultConfig(),
	})
	if err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}
