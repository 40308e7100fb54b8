package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GOOGLE_AI_API_KEY", "GEMINI_HOST", "GEMINI_MODEL", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Gemini.Host != DefaultHost {
		t.Errorf("Gemini.Host = %q, want %q", cfg.Gemini.Host, DefaultHost)
	}
	if cfg.Gemini.Model != DefaultModel {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, DefaultModel)
	}
	if cfg.Gemini.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Gemini.TimeoutSeconds = %d, want %d", cfg.Gemini.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if cfg.Gemini.APIKey != "" {
		t.Errorf("Gemini.APIKey = %q, want empty", cfg.Gemini.APIKey)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	yamlContent := []byte(`
gemini:
  api_key: "file-key"
  host: "https://example.invalid"
  model: "gemini-2.0-flash"
  timeout_seconds: 30
logging:
  level: "debug"
`)
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, yamlContent, 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Gemini.APIKey != "file-key" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Gemini.APIKey, "file-key")
	}
	if cfg.Gemini.Host != "https://example.invalid" {
		t.Errorf("Gemini.Host = %q, want %q", cfg.Gemini.Host, "https://example.invalid")
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, "gemini-2.0-flash")
	}
	if cfg.Gemini.TimeoutSeconds != 30 {
		t.Errorf("Gemini.TimeoutSeconds = %d, want 30", cfg.Gemini.TimeoutSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() returned error for missing file: %v", err)
	}
	if cfg.Gemini.Model != DefaultModel {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, DefaultModel)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_AI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Gemini.APIKey, "env-key")
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, "gemini-1.5-flash")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte("gemini: ["), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}
