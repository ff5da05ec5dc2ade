package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points config discovery at empty temp dirs and clears env overrides.
func isolate(t *testing.T) (homeDir, workspace string) {
	t.Helper()
	homeDir = t.TempDir()
	workspace = t.TempDir()

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(workspace); err != nil {
		t.Fatalf("chdir workspace: %v", err)
	}

	t.Setenv("HOME", homeDir)
	t.Setenv(configDirEnvKey, "")
	t.Setenv(trustProjectConfigEnvKey, "")
	t.Setenv(fileEnvKey, "")
	t.Setenv(backendEnvKey, "")
	return homeDir, workspace
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Backend != BackendText {
		t.Fatalf("expected text backend, got %q", cfg.Backend)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("expected default log level %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Color != ColorAuto {
		t.Fatalf("expected auto color, got %q", cfg.Color)
	}
	if cfg.DataPath() != DefaultTextFile {
		t.Fatalf("expected %q, got %q", DefaultTextFile, cfg.DataPath())
	}
}

func TestDataPath(t *testing.T) {
	cfg := Default()
	cfg.Backend = BackendSQLite
	if cfg.DataPath() != DefaultSQLiteFile {
		t.Fatalf("expected %q, got %q", DefaultSQLiteFile, cfg.DataPath())
	}
	cfg.File = "/tmp/tasks.db"
	if cfg.DataPath() != "/tmp/tasks.db" {
		t.Fatalf("expected explicit file, got %q", cfg.DataPath())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(`file = "/data/tasks.txt"
backend = "sqlite"
log_level = "info"
color = "never"
`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "/data/tasks.txt" {
		t.Fatalf("expected file override, got %q", cfg.File)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", cfg.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected log_level 'info', got %q", cfg.LogLevel)
	}
	if cfg.Color != ColorNever {
		t.Fatalf("expected color 'never', got %q", cfg.Color)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFile("/nonexistent/path/.todo.toml", &cfg); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Backend != BackendText {
		t.Fatalf("defaults should be preserved")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("backend = \n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := Default()
	if err := loadFile(path, &cfg); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestIsAllowedKey(t *testing.T) {
	for _, key := range []string{"file", "backend", "log_level", "color"} {
		if !IsAllowedKey(key) {
			t.Fatalf("expected %q to be allowed", key)
		}
	}
	if IsAllowedKey("invalid") {
		t.Fatal("expected 'invalid' to not be allowed")
	}
}

func TestGetKey(t *testing.T) {
	cfg := Config{File: "tasks.txt", Backend: BackendText, LogLevel: "error", Color: ColorAlways}

	tests := map[string]string{
		"file":      "tasks.txt",
		"backend":   BackendText,
		"log_level": "error",
		"color":     ColorAlways,
	}
	for key, want := range tests {
		got, err := cfg.Get(key)
		if err != nil || got != want {
			t.Fatalf("%s: expected %q, got %q (err: %v)", key, want, got, err)
		}
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestSetKeyCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "new.toml")
	if err := SetKey(path, "file", "/data/tasks.txt"); err != nil {
		t.Fatalf("set: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "/data/tasks.txt" {
		t.Fatalf("expected file, got %q", cfg.File)
	}
}

func TestSetKeyUpdatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.toml")
	if err := os.WriteFile(path, []byte("backend = \"text\"\nlog_level = \"info\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := SetKey(path, "backend", "SQLite"); err != nil {
		t.Fatalf("set: %v", err)
	}

	cfg := Default()
	if err := loadFile(path, &cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("expected normalized 'sqlite', got %q", cfg.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected preserved log_level 'info', got %q", cfg.LogLevel)
	}
}

func TestSetKeyRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")
	if err := SetKey(path, "invalid_key", "value"); err == nil {
		t.Fatal("expected error for invalid key")
	}
	if err := SetKey(path, "backend", "postgres"); err == nil {
		t.Fatal("expected error for invalid backend")
	}
	if err := SetKey(path, "color", "sometimes"); err == nil {
		t.Fatal("expected error for invalid color")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("rejected values should not create the file")
	}
}

func TestConfigDirOverridePaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(configDirEnvKey, dir)

	globalPath, err := GlobalPath()
	if err != nil {
		t.Fatalf("global path: %v", err)
	}
	if globalPath != filepath.Join(dir, configFileName) {
		t.Fatalf("unexpected global path: %s", globalPath)
	}

	projectPath, err := ProjectPath()
	if err != nil {
		t.Fatalf("project path: %v", err)
	}
	if projectPath != filepath.Join(dir, configFileName) {
		t.Fatalf("unexpected project path: %s", projectPath)
	}
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataPath() != DefaultTextFile || cfg.Backend != BackendText || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadHomeConfig(t *testing.T) {
	homeDir, _ := isolate(t)
	if err := os.WriteFile(filepath.Join(homeDir, configFileName), []byte("file = \"home.txt\"\nlog_level = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write home config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "home.txt" {
		t.Fatalf("expected home config file, got %q", cfg.File)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("expected empty log level to fall back to %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestLoadConfigDirOverride(t *testing.T) {
	homeDir, _ := isolate(t)
	if err := os.WriteFile(filepath.Join(homeDir, configFileName), []byte("file = \"home.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write home config: %v", err)
	}
	configDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(configDir, configFileName), []byte("file = \"override.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write override config: %v", err)
	}
	t.Setenv(configDirEnvKey, configDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "override.txt" {
		t.Fatalf("expected config-dir file, got %q", cfg.File)
	}
}

func TestEnvOverrides(t *testing.T) {
	homeDir, _ := isolate(t)
	if err := os.WriteFile(filepath.Join(homeDir, configFileName), []byte("file = \"home.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write home config: %v", err)
	}
	t.Setenv(fileEnvKey, "/tmp/env.db")
	t.Setenv(backendEnvKey, "sqlite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "/tmp/env.db" {
		t.Fatalf("expected env file override, got %q", cfg.File)
	}
	if cfg.Backend != BackendSQLite {
		t.Fatalf("expected env backend override, got %q", cfg.Backend)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv(backendEnvKey, "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected backend validation error")
	}
}

func TestLoadIgnoresProjectConfigByDefault(t *testing.T) {
	homeDir, workspace := isolate(t)
	if err := os.WriteFile(filepath.Join(homeDir, configFileName), []byte("file = \"home.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write home config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(workspace, configFileName), []byte("file = \"project.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "home.txt" {
		t.Fatalf("expected global config file, got %q", cfg.File)
	}
	if cfg.TrustedProjectConfigPath != "" {
		t.Fatalf("expected no trusted project config path, got %q", cfg.TrustedProjectConfigPath)
	}
}

func TestLoadAppliesProjectConfigWhenTrusted(t *testing.T) {
	homeDir, workspace := isolate(t)
	if err := os.WriteFile(filepath.Join(homeDir, configFileName), []byte("file = \"home.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write home config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(workspace, configFileName), []byte("file = \"project.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	t.Setenv(trustProjectConfigEnvKey, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "project.txt" {
		t.Fatalf("expected trusted project file, got %q", cfg.File)
	}
	expectedPath := filepath.Join(workspace, configFileName)
	if cfg.TrustedProjectConfigPath != expectedPath {
		t.Fatalf("expected trusted project config path %q, got %q", expectedPath, cfg.TrustedProjectConfigPath)
	}
}

func TestLoadDoesNotTrustProjectConfigOnInvalidEnvValue(t *testing.T) {
	_, workspace := isolate(t)
	if err := os.WriteFile(filepath.Join(workspace, configFileName), []byte("file = \"project.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	t.Setenv(trustProjectConfigEnvKey, "definitely")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.File != "" {
		t.Fatalf("expected project config to be ignored, got %q", cfg.File)
	}
}
