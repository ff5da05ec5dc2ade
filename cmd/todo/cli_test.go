package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/config"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv(logLevelEnvKey, "")
	cfg := config.Default()
	cfg.File = filepath.Join(t.TempDir(), "todo_list.txt")
	cfg.Color = config.ColorNever
	return &cfg
}

func runCLI(t *testing.T, cfg *config.Config, stdin string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
