package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
)

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".local", "share", "frename", "journal.jsonl.gz")
	if path != expected {
		t.Errorf("DefaultPath() = %q, want %q", path, expected)
	}
}

func TestInitCreatesFile(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "subdir", "journal.jsonl.gz")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !IsEnabled() {
		t.Error("expected journal to be enabled")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("journal file was not created")
	}
}

func TestInitDisabled(t *testing.T) {
	defer Reset()

	if err := Init("", true); err != nil {
		t.Errorf("Init(disable=true) error = %v", err)
	}
	if IsEnabled() {
		t.Error("expected journal to be disabled")
	}
	if err := Log(Entry{Mode: "append", Old: "a", New: "b"}); err != nil {
		t.Errorf("Log() on disabled journal error = %v", err)
	}
}

func TestLogAndRead(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "journal.jsonl.gz")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	entries := []Entry{
		{Mode: "append", Dir: "/tmp/x", Old: "doc.pdf", New: "doc_v2.pdf"},
		{Mode: "append", Dir: "/tmp/x", Old: "sub", New: "sub_v2", IsDir: true},
	}
	for _, e := range entries {
		if err := Log(e); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for i, e := range got {
		if e.Version != Version {
			t.Errorf("entry %d version = %d, want %d", i, e.Version, Version)
		}
		if e.Old != entries[i].Old || e.New != entries[i].New || e.IsDir != entries[i].IsDir {
			t.Errorf("entry %d = %+v, want %+v", i, e, entries[i])
		}
		if _, err := time.Parse(TimestampFormat, e.Timestamp); err != nil {
			t.Errorf("entry %d timestamp %q does not parse: %v", i, e.Timestamp, err)
		}
	}
	if got[0].OldPath() != filepath.Join("/tmp/x", "doc.pdf") {
		t.Errorf("OldPath() = %q", got[0].OldPath())
	}
	if got[1].NewPath() != filepath.Join("/tmp/x", "sub_v2") {
		t.Errorf("NewPath() = %q", got[1].NewPath())
	}
}

func TestReadAcrossSessions(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "journal.jsonl.gz")
	for i, name := range []string{"first", "second", "third"} {
		if err := Init(path, false); err != nil {
			t.Fatalf("session %d Init() error = %v", i, err)
		}
		if err := Log(Entry{Mode: "replace", Old: name, New: name + "_"}); err != nil {
			t.Fatalf("session %d Log() error = %v", i, err)
		}
		if err := Close(); err != nil {
			t.Fatalf("session %d Close() error = %v", i, err)
		}
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	var names []string
	for _, e := range got {
		names = append(names, e.Old)
	}
	if strings.Join(names, ",") != "first,second,third" {
		t.Errorf("entries = %v, want first,second,third", names)
	}
}

func TestSessionWithoutRenamesWritesNothing(t *testing.T) {
	defer Reset()

	path := filepath.Join(t.TempDir(), "journal.jsonl.gz")
	if err := Init(path, false); err != nil {
		t.Fatal(err)
	}
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("journal size = %d, want 0", info.Size())
	}

	got, err := Read(path)
	if err != nil || len(got) != 0 {
		t.Errorf("Read() = %v, %v, want no entries", got, err)
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.gz"))
	if err != nil {
		t.Errorf("Read() error = %v", err)
	}
	if got != nil {
		t.Errorf("Read() = %v, want nil", got)
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	zw.Write([]byte("not json\n\n{\"mode\":\"case\",\"old\":\"a\",\"new\":\"A\"}\n"))
	zw.Close()
	f.Close()

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || got[0].New != "A" {
		t.Errorf("Read() = %+v, want one case entry", got)
	}
}

func TestReadNotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl.gz")
	if err := os.WriteFile(path, []byte("plain text journal\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Error("expected error for non-gzip journal")
	}
}
