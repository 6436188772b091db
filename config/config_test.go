package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parallelism != 4 {
		t.Errorf("expected parallelism 4, got %d", cfg.Parallelism)
	}
	if cfg.Random.Seed != 42 || cfg.Random.Count != 10000 || cfg.Random.Min != 0 || cfg.Random.Max != 10 {
		t.Errorf("unexpected random defaults %+v", cfg.Random)
	}
	if cfg.Log.Level != "info" || !cfg.Log.Timestamp {
		t.Errorf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ANALYTICS_PARALLELISM", "8")
	t.Setenv("ANALYTICS_RANDOM_MAX", "100")
	t.Setenv("ANALYTICS_LOG_LEVEL", "debug")

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parallelism != 8 || cfg.Random.Max != 100 || cfg.Log.Level != "debug" {
		t.Errorf("expected environment overrides, got %+v", cfg)
	}
}

func TestLoadFileAndMissingEnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "analytics.yaml")
	content := "parallelism: 2\nrandom:\n  count: 50\n  min: 5\n  max: 6\nlog:\n  format: json\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(file, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Parallelism != 2 || cfg.Random.Count != 50 || cfg.Random.Min != 5 || cfg.Random.Max != 6 {
		t.Errorf("expected file values, got %+v", cfg)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected json log format, got %q", cfg.Log.Format)
	}
	if cfg.Random.Seed != 42 {
		t.Errorf("expected the default seed to survive, got %d", cfg.Random.Seed)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("ANALYTICS_RANDOM_COUNT=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANALYTICS_RANDOM_COUNT", "")
	os.Unsetenv("ANALYTICS_RANDOM_COUNT")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Random.Count != 7 {
		t.Errorf("expected count 7 from the env file, got %d", cfg.Random.Count)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		errs []string
	}{
		{"valid", Config{Random: RandomConfig{Min: 0, Max: 1}}, nil},
		{"negative parallelism", Config{Parallelism: -1, Random: RandomConfig{Max: 1}}, []string{"parallelism"}},
		{"empty range", Config{Random: RandomConfig{Min: 3, Max: 3}}, []string{"random.min"}},
		{"everything wrong", Config{Parallelism: -2, Random: RandomConfig{Count: -1, Min: 5, Max: 1}},
			[]string{"parallelism", "random.count", "random.min"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.errs) == 0 {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, want := range tt.errs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("expected %q in %v", want, err)
				}
			}
		})
	}
}
