package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alctny/frename/internal/config"
	"github.com/spf13/cobra"
)

func TestRunValidateEmbeddedDefaults(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	t.Setenv("FRENAME_CONFIG", t.TempDir())
	config.Init()

	cmd := &cobra.Command{}
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := runValidate(cmd, []string{}); err != nil {
		t.Fatalf("runValidate() error = %v", err)
	}

	output := stdout.String()
	expectedStrings := []string{
		"Configuration valid!",
		"Source: embedded defaults",
		"append:   position=after recursive=false skip-dot=false",
		"replace:  recursive=false skip-dot=true change-surfix=false",
		"format:   recursive=false skip-dot=true surfix=false date-layout=2006-01-02",
		"journal:  enabled=true path=(default)",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, output)
		}
	}
}

func TestRunValidateWithConfigFile(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	tmpDir := t.TempDir()
	t.Setenv("FRENAME_CONFIG", tmpDir)

	configPath := filepath.Join(tmpDir, "config.toml")
	content := `
[replace]
skip_dot = false
change_surfix = true

[journal]
enabled = false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	config.Init()

	cmd := &cobra.Command{}
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := runValidate(cmd, []string{}); err != nil {
		t.Fatalf("runValidate() error = %v", err)
	}

	output := stdout.String()
	for _, expected := range []string{
		"Source: " + configPath,
		"replace:  recursive=false skip-dot=false change-surfix=true",
		"journal:  enabled=false",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, output)
		}
	}
}

func TestRunValidateInvalidConfig(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	tmpDir := t.TempDir()
	t.Setenv("FRENAME_CONFIG", tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[append]\nposition = \"left\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	config.Init()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runValidate(cmd, []string{}); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestRunValidateReportsLoadedSource(t *testing.T) {
	resetGlobalState()
	defer resetGlobalState()

	tmpDir := t.TempDir()
	t.Setenv("FRENAME_CONFIG", tmpDir)

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("[case]\nrecursive = true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	config.Init()
	// The loaded configuration is reported even once the file is gone.
	if err := os.Remove(configPath); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	if err := runValidate(cmd, []string{}); err != nil {
		t.Fatalf("runValidate() error = %v", err)
	}

	output := stdout.String()
	for _, expected := range []string{
		"Source: " + configPath,
		"case:     recursive=true",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, output)
		}
	}
}
