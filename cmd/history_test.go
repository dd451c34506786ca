package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alctny/frename/internal/journal"
	"github.com/alctny/frename/internal/testutil"
	"github.com/spf13/cobra"
)

// setupHistory writes entries to a journal in a temporary directory and
// points the config at it.
func setupHistory(t *testing.T, entries ...journal.Entry) string {
	t.Helper()
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	path := filepath.Join(t.TempDir(), "journal.jsonl.gz")
	cleanup := testutil.SetupTestConfig(t, fmt.Sprintf("[journal]\nenabled = true\npath = %q\n", path))
	t.Cleanup(cleanup)

	if err := journal.Init(path, false); err != nil {
		t.Fatalf("journal.Init() error = %v", err)
	}
	for _, e := range entries {
		if err := journal.Log(e); err != nil {
			t.Fatalf("journal.Log() error = %v", err)
		}
	}
	if err := journal.Close(); err != nil {
		t.Fatalf("journal.Close() error = %v", err)
	}
	return path
}

func runHistoryOutput(t *testing.T) string {
	t.Helper()
	cmd := &cobra.Command{}
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	if err := runHistory(cmd, []string{}); err != nil {
		t.Fatalf("runHistory() error = %v", err)
	}
	return stdout.String()
}

func TestRunHistory(t *testing.T) {
	setupHistory(t,
		journal.Entry{Mode: "append", Dir: "/data", Old: "a.txt", New: "a_v2.txt"},
		journal.Entry{Mode: "replace", Dir: "/data", Old: "b c.txt", New: "bc.txt"},
	)

	output := runHistoryOutput(t)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[0], "append") || !strings.HasSuffix(lines[0], "/data/a.txt -> a_v2.txt") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "/data/b c.txt -> bc.txt") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestRunHistoryLimit(t *testing.T) {
	setupHistory(t,
		journal.Entry{Mode: "format", Dir: "/d", Old: "x", New: "1_x"},
		journal.Entry{Mode: "format", Dir: "/d", Old: "y", New: "2_y"},
		journal.Entry{Mode: "format", Dir: "/d", Old: "z", New: "3_z"},
	)
	historyLimit = 1

	output := runHistoryOutput(t)
	if strings.Count(output, "\n") != 1 || !strings.Contains(output, "3_z") {
		t.Errorf("expected only the last rename, got:\n%s", output)
	}
}

func TestRunHistoryShell(t *testing.T) {
	setupHistory(t,
		journal.Entry{Mode: "replace", Dir: "/data", Old: "it's here.txt", New: "its_here.txt"},
	)
	historyShell = true

	output := runHistoryOutput(t)
	if !strings.HasPrefix(output, "mv -- ") {
		t.Errorf("expected mv command, got %q", output)
	}
	if strings.Contains(output, "/data/it's here.txt ") {
		t.Errorf("old path was not quoted: %q", output)
	}
	if !strings.Contains(output, "/data/its_here.txt") {
		t.Errorf("new path missing: %q", output)
	}
}

func TestRunHistoryEmptyJournal(t *testing.T) {
	setupHistory(t)

	if output := runHistoryOutput(t); output != "" {
		t.Errorf("expected no output, got %q", output)
	}
}
