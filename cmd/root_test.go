package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/tasklog/internal/cli"
	"github.com/xolan/tasklog/internal/config"
	"github.com/xolan/tasklog/internal/service"
)

// setupCmdTest injects test dependencies with a temporary storage file and
// returns the captured stdout, stderr and exit code. An empty ollamaURL
// keeps the default endpoint.
func setupCmdTest(t *testing.T, ollamaURL string) (stdout, stderr *bytes.Buffer, exitCode *int, storagePath string) {
	t.Helper()

	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.StorageFile = filepath.Join(tmpDir, "tasklog.csv")
	if ollamaURL != "" {
		cfg.OllamaURL = ollamaURL
	}
	configPath := filepath.Join(tmpDir, "config.toml")

	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	code := -1
	exitCode = &code

	cli.SetDeps(&cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(c int) { code = c },
		Services: service.NewServicesWithConfig(configPath, cfg),
		Config:   cfg,
	})
	t.Cleanup(cli.ResetDeps)

	return stdout, stderr, exitCode, cfg.StorageFile
}

// execute runs the root command with the given arguments, capturing cobra's
// own output (usage, errors).
func execute(t *testing.T, args ...string) (cobraOut string, err error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand_NoArgs(t *testing.T) {
	_, _, exitCode, _ := setupCmdTest(t, "")

	out, err := execute(t)
	if err != nil {
		t.Fatalf("Execute() returned unexpected error: %v", err)
	}

	// No command: print help and exit non-zero
	if *exitCode != 1 {
		t.Errorf("Exit code = %d, expected 1", *exitCode)
	}
	if !strings.Contains(out, "tasklog is a CLI tool for logging tasks") {
		t.Errorf("Expected help text, got:\n%s", out)
	}
	if !strings.Contains(out, "Available Commands") {
		t.Errorf("Expected command list in help, got:\n%s", out)
	}
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	setupCmdTest(t, "")

	_, err := execute(t, "frobnicate")
	if err == nil {
		t.Error("Execute() expected error for unknown command, got nil")
	}
}

func TestSetVersionInfo(t *testing.T) {
	setupCmdTest(t, "")
	SetVersionInfo("1.2.3", "abc123", "2024-01-15")

	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute() returned unexpected error: %v", err)
	}
	if !strings.Contains(out, "tasklog version 1.2.3") {
		t.Errorf("Expected version in output, got:\n%s", out)
	}
	if !strings.Contains(out, "commit: abc123") {
		t.Errorf("Expected commit in output, got:\n%s", out)
	}
}
